/*
Copyright 2026 the PetFriends QA Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/petfriends-qa/petfriends-api-tests/test/api"
)

var _ = Describe("Pet Deletion", func() {
	var authKey string

	BeforeEach(func() {
		authKey = api.AcquireAuthKey(ctx, client, config)
	})

	Context("When deleting a pet", func() {
		Describe("Given the account owns a pet", func() {
			It("should remove it from the listing", func() {
				// Given: The first of my pets, created if I have none
				pet, err := api.EnsureOwnPet(ctx, client, authKey,
					api.NewPetPayload().
						WithName("Драк").
						WithAnimalType("змей").
						WithAge("666").
						Build(),
					config.ImagePath("cat2.jpg"))
				Expect(err).NotTo(HaveOccurred())

				before, err := api.ListOwnPets(ctx, client, authKey)
				Expect(err).NotTo(HaveOccurred())

				// When: I delete it
				status, _, err := client.DeletePet(ctx, authKey, pet.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(status).To(Equal(http.StatusOK))

				// Then: Its id is gone from my listing
				after, err := api.ListOwnPets(ctx, client, authKey)
				Expect(err).NotTo(HaveOccurred())
				Expect(after.IDs()).NotTo(ContainElement(pet.ID))
				Expect(api.MissingIDs(before, after)).To(ContainElement(pet.ID))
			})
		})

		Describe("Given an empty pet id", func() {
			It("should be rejected with a client error", func() {
				status, _, err := client.DeletePet(ctx, authKey, "")

				Expect(err).NotTo(HaveOccurred())
				Expect(status).To(Or(Equal(http.StatusBadRequest), Equal(http.StatusNotFound)))
				GinkgoWriter.Printf("Deleting without a pet id was rejected with %d\n", status)
			})
		})
	})
})
