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

var _ = Describe("Pet Update", func() {
	Context("When updating a pet", func() {
		Describe("Given the account owns a pet", func() {
			It("should update name, animal type and age", func() {
				authKey := api.AcquireAuthKey(ctx, client, config)

				// Given: The first of my pets; having none is a broken precondition
				pet, err := api.FirstOwnPet(ctx, client, authKey)
				Expect(err).NotTo(HaveOccurred())

				// When: I update it, sending the age as a number
				status, updated, err := client.UpdatePetInfo(ctx, authKey, pet.ID,
					api.NewPetPayload().
						WithName("Тим").
						WithAnimalType("котопес").
						WithAge(5).
						Build())

				// Then: The pet carries the new name
				Expect(err).NotTo(HaveOccurred())
				Expect(status).To(Equal(http.StatusOK))
				Expect(updated).NotTo(BeNil())
				Expect(updated.Name).To(Equal("Тим"))
			})
		})
	})
})
