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

	"github.com/petfriends-qa/petfriends-api-tests/pkg/petfriends"
	"github.com/petfriends-qa/petfriends-api-tests/test/api"
)

var _ = Describe("Pet Listing", func() {
	var authKey string

	BeforeEach(func() {
		authKey = api.AcquireAuthKey(ctx, client, config)
	})

	Context("When listing pets", func() {
		Describe("Given no filter", func() {
			It("should return every pet on the service", func() {
				status, pets, err := client.ListPets(ctx, authKey, petfriends.FilterAll)

				Expect(err).NotTo(HaveOccurred())
				Expect(status).To(Equal(http.StatusOK))
				Expect(pets).NotTo(BeNil())
				Expect(pets.Pets).NotTo(BeEmpty(), "the service always has pets from other users")
			})
		})

		Describe("Given the my_pets filter", func() {
			It("should return only pets owned by the account", func() {
				// Given: The account owns at least one pet
				created := api.CreatePetWithCleanup(ctx, client, authKey, api.NewPetPayload().Build())

				// When: I list my pets
				status, pets, err := client.ListPets(ctx, authKey, petfriends.FilterMyPets)

				// Then: The new pet is among them
				Expect(err).NotTo(HaveOccurred())
				Expect(status).To(Equal(http.StatusOK))
				Expect(pets.IDs()).To(ContainElement(created.ID))

				// And: Nothing listed belongs to another user
				for _, pet := range pets.Pets {
					if pet.UserID != "" && created.UserID != "" {
						Expect(pet.UserID).To(Equal(created.UserID))
					}
				}
			})
		})
	})
})
