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

package api

import (
	"github.com/onsi/ginkgo/v2"

	"github.com/petfriends-qa/petfriends-api-tests/internal/logging"
	"github.com/petfriends-qa/petfriends-api-tests/pkg/petfriends"
)

// NewAPIClientWithConfig returns a client for the configured service.
// Logs go to the Ginkgo writer so they are only shown for failing specs,
// or always with -v.
func NewAPIClientWithConfig(config *TestConfig) *petfriends.Client {
	logger := logging.New(config.LogLevel, ginkgo.GinkgoWriter)

	return petfriends.New(config.BaseURL,
		petfriends.WithLogger(logger),
		petfriends.WithTimeout(config.RequestTimeout),
		petfriends.WithRequestLogging(config.LogRequests, config.LogResponses),
	)
}
