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
	"path/filepath"

	"github.com/petfriends-qa/petfriends-api-tests/internal/config"
)

// envPaths are searched, in order, for a .env file.
var envPaths = []string{
	"../../../test/.env", // From test/api/suites directory
	"../../../.env",
}

// TestConfig is the suite configuration.
type TestConfig struct {
	config.Config
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error wrapping config.ErrMissingConfiguration if credentials
// are missing and the fake service is not in use.
func LoadTestConfig() (*TestConfig, error) {
	cfg, err := config.Load(nil, envPaths...)
	if err != nil {
		return nil, err
	}

	return &TestConfig{Config: *cfg}, nil
}

// ImagePath returns the path of a photo fixture.
func (c *TestConfig) ImagePath(name string) string {
	return filepath.Join(c.ImagesDir, name)
}
