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
	"io/fs"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/petfriends-qa/petfriends-api-tests/test/api"
)

var _ = Describe("Pet Creation", func() {
	var authKey string

	BeforeEach(func() {
		authKey = api.AcquireAuthKey(ctx, client, config)
	})

	Context("When creating a pet without a photo", func() {
		Describe("Given valid pet data", func() {
			It("should create the pet", func() {
				status, pet, err := client.AddNewPetSimple(ctx, authKey,
					api.NewPetPayload().
						WithName("Tom").
						WithAnimalType("cat").
						WithAge("1").
						Build())

				Expect(err).NotTo(HaveOccurred())
				Expect(status).To(Equal(http.StatusOK))
				Expect(pet).NotTo(BeNil())
				Expect(pet.ID).NotTo(BeEmpty())
				Expect(pet.Name).To(Equal("Tom"))

				api.DeletePetOnCleanup(client, authKey, pet.ID)
			})
		})

		Describe("Given fields that are not text", func() {
			DescribeTable("should not send the request",
				func(payload *api.PetPayloadBuilder) {
					status, pet, err := client.AddNewPetSimple(ctx, authKey, payload.Build())

					// Then: The payload cannot be encoded, which is the expected outcome
					if api.IsEncodingError(err) {
						api.ReportEncodingError(err)
						return
					}

					// Otherwise nothing is asserted, but anything created is removed
					Expect(err).NotTo(HaveOccurred())

					if status == http.StatusOK && pet != nil {
						api.DeletePetOnCleanup(client, authKey, pet.ID)
					}
				},
				Entry("numeric name", api.NewPetPayload().WithName(678990).WithAnimalType("черепаха").WithAge("300")),
				Entry("numeric animal type", api.NewPetPayload().WithName("гоблин").WithAnimalType(98765).WithAge("13")),
			)
		})

		Describe("Given invalid text fields", func() {
			DescribeTable("should be rejected but are accepted by the service",
				func(payload *api.PetPayloadBuilder, bug string) {
					status, pet, err := client.AddNewPetSimple(ctx, authKey, payload.Build())

					if api.IsEncodingError(err) {
						api.ReportEncodingError(err)
						return
					}

					// Then: The service accepts the pet, which it should not
					Expect(err).NotTo(HaveOccurred())
					Expect(status).To(Equal(http.StatusOK))

					if pet != nil {
						api.DeletePetOnCleanup(client, authKey, pet.ID)
					}

					api.ReportKnownBug("%s", bug)
				},
				Entry("empty name", api.NewPetPayload().WithName("").WithAnimalType("чупакабра").WithAge("666"),
					"pet was created without a name"),
				Entry("empty animal type", api.NewPetPayload().WithName("орк").WithAnimalType("").WithAge("1366"),
					"pet was created without an animal type"),
				Entry("non-numeric age", api.NewPetPayload().WithName("Пип").WithAnimalType("эльф").WithAge("тысяча"),
					"pet was created with a non-numeric age"),
			)
		})
	})

	Context("When creating a pet with a photo", func() {
		Describe("Given valid pet data and an image", func() {
			It("should create the pet", func() {
				status, pet, err := client.AddNewPet(ctx, authKey,
					api.NewPetPayload().
						WithName("Fil").
						WithAnimalType("челокот").
						WithAge("8").
						Build(),
					config.ImagePath("cat1.jpg"))

				Expect(err).NotTo(HaveOccurred())
				Expect(status).To(Equal(http.StatusOK))
				Expect(pet).NotTo(BeNil())
				Expect(pet.Name).To(Equal("Fil"))

				api.DeletePetOnCleanup(client, authKey, pet.ID)
			})
		})

		Describe("Given an image that does not exist", func() {
			It("should fail before sending the request", func() {
				status, pet, err := client.AddNewPet(ctx, authKey, api.NewPetPayload().Build(),
					config.ImagePath("missing.jpg"))

				Expect(err).To(MatchError(fs.ErrNotExist))
				Expect(status).To(BeZero())
				Expect(pet).To(BeNil())
			})
		})
	})
})
