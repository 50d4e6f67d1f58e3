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
)

var _ = Describe("Authentication", func() {
	Context("When requesting an auth key", func() {
		Describe("Given valid credentials", func() {
			It("should return an auth key", func() {
				// When: I request a key with the configured email and password
				status, key, err := client.GetAPIKey(ctx, config.Email, config.Password)

				// Then: The key is issued
				Expect(err).NotTo(HaveOccurred())
				Expect(status).To(Equal(http.StatusOK))
				Expect(key).NotTo(BeNil())
				Expect(key.Key).NotTo(BeEmpty())
			})
		})

		Describe("Given invalid credentials", func() {
			It("should reject an invalid email", func() {
				// Given: An email that is not a registered address
				// When: I request a key with the valid password
				status, key, err := client.GetAPIKey(ctx, "1234567mail.ru", config.Password)

				// Then: The request is forbidden
				Expect(err).NotTo(HaveOccurred())
				Expect(status).To(Equal(http.StatusForbidden))
				Expect(key).To(BeNil())
			})

			It("should reject an invalid password", func() {
				// Given: The registered email with a wrong password
				status, key, err := client.GetAPIKey(ctx, config.Email, "123")

				// Then: The request is forbidden, indistinguishable from a bad email
				Expect(err).NotTo(HaveOccurred())
				Expect(status).To(Equal(http.StatusForbidden))
				Expect(key).To(BeNil())
			})
		})
	})

	Context("When using an auth key", func() {
		Describe("Given a key the service never issued", func() {
			It("should reject the pet listing", func() {
				status, _, err := client.ListPets(ctx, "not-a-real-key", petfriends.FilterAll)

				Expect(err).NotTo(HaveOccurred())
				Expect(status).To(Equal(http.StatusForbidden))
			})
		})
	})
})
