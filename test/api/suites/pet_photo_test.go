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

var _ = Describe("Pet Photo", func() {
	Context("When adding a photo to a pet", func() {
		Describe("Given the account owns a pet", func() {
			It("should attach the photo", func() {
				authKey := api.AcquireAuthKey(ctx, client, config)

				pet, err := api.FirstOwnPet(ctx, client, authKey)
				Expect(err).NotTo(HaveOccurred())

				status, updated, err := client.AddPetPhoto(ctx, authKey, pet.ID, config.ImagePath("kot.jpg"))

				Expect(err).NotTo(HaveOccurred())
				Expect(status).To(Equal(http.StatusOK))
				Expect(updated).NotTo(BeNil())
				Expect(updated.PetPhoto).NotTo(BeEmpty())
			})
		})
	})
})
