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

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultBaseURL is the public PetFriends deployment.
const DefaultBaseURL = "https://petfriends.skillfactory.ru"

// ErrMissingConfiguration is returned when required settings are absent.
var ErrMissingConfiguration = errors.New("missing required configuration")

// Config holds everything a test run or the smoke CLI needs to talk to the
// service.
type Config struct {
	BaseURL         string        `mapstructure:"api_base_url"`
	Email           string        `mapstructure:"petfriends_email"`
	Password        string        `mapstructure:"petfriends_password"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	TestTimeout     time.Duration `mapstructure:"test_timeout"`
	ImagesDir       string        `mapstructure:"images_dir"`
	SkipIntegration bool          `mapstructure:"skip_integration"`
	UseFakeServer   bool          `mapstructure:"use_fake_server"`
	LogLevel        string        `mapstructure:"log_level"`
	LogRequests     bool          `mapstructure:"log_requests"`
	LogResponses    bool          `mapstructure:"log_responses"`
}

// flagBindings maps command line flags onto configuration keys.
var flagBindings = map[string]string{
	"base-url":        "api_base_url",
	"email":           "petfriends_email",
	"password":        "petfriends_password",
	"request-timeout": "request_timeout",
	"log-level":       "log_level",
	"log-requests":    "log_requests",
	"log-responses":   "log_responses",
}

// AddFlags registers the flags that may override environment settings.
func AddFlags(flags *pflag.FlagSet) {
	flags.String("base-url", DefaultBaseURL, "PetFriends service base URL")
	flags.String("email", "", "account email")
	flags.String("password", "", "account password")
	flags.Duration("request-timeout", 30*time.Second, "per-request timeout")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Bool("log-requests", false, "log every request")
	flags.Bool("log-responses", false, "log every response body")
}

// Load reads configuration from .env files, the environment and, when given,
// parsed command line flags. Flags win over the environment, which wins over
// defaults. The first .env file found in envFiles is loaded; variables
// already present in the environment are not overwritten.
func Load(flags *pflag.FlagSet, envFiles ...string) (*Config, error) {
	loadEnvFile(envFiles)

	v := viper.New()

	v.SetDefault("api_base_url", DefaultBaseURL)
	v.SetDefault("petfriends_email", "")
	v.SetDefault("petfriends_password", "")
	v.SetDefault("request_timeout", 30*time.Second)
	v.SetDefault("test_timeout", 5*time.Minute)
	v.SetDefault("images_dir", "../testdata/images")
	v.SetDefault("skip_integration", false)
	v.SetDefault("use_fake_server", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_requests", false)
	v.SetDefault("log_responses", false)

	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagBindings {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}

			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that required values are set. Credentials are only
// required when talking to a real service.
func (c *Config) Validate() error {
	var missing []string

	if c.BaseURL == "" {
		missing = append(missing, "API_BASE_URL")
	}

	if !c.UseFakeServer {
		if c.Email == "" {
			missing = append(missing, "PETFRIENDS_EMAIL")
		}

		if c.Password == "" {
			missing = append(missing, "PETFRIENDS_PASSWORD")
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s. Please set these environment variables or add them to a .env file", ErrMissingConfiguration, strings.Join(missing, ", "))
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("invalid request_timeout %s (must be positive)", c.RequestTimeout)
	}

	if c.TestTimeout <= 0 {
		return fmt.Errorf("invalid test_timeout %s (must be positive)", c.TestTimeout)
	}

	return nil
}

func loadEnvFile(paths []string) {
	var envPath string

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// No .env file, which is normal in CI where variables are set directly.
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}
