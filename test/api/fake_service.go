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
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"

	"github.com/petfriends-qa/petfriends-api-tests/internal/logging"
	"github.com/petfriends-qa/petfriends-api-tests/pkg/petfriends/fake"
)

// StartFakeService starts the in-process service with the default seed and
// points config at it, using the first seeded account's credentials.
// The returned function stops the service.
func StartFakeService(config *TestConfig) (func(), error) {
	seed, err := fake.DefaultSeed()
	if err != nil {
		return nil, err
	}

	server, err := fake.New(fake.WithLogger(logging.New(config.LogLevel, ginkgo.GinkgoWriter)))
	if err != nil {
		return nil, err
	}

	server.Store().Apply(seed)

	handler, err := server.Handler()
	if err != nil {
		return nil, err
	}

	ts := httptest.NewServer(handler)

	config.BaseURL = ts.URL
	config.Email = seed.Accounts[0].Email
	config.Password = seed.Accounts[0].Password

	return ts.Close, nil
}
