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

// petfriends-smoke checks that a PetFriends deployment issues auth keys and
// lists pets with the configured account.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/petfriends-qa/petfriends-api-tests/internal/config"
	"github.com/petfriends-qa/petfriends-api-tests/internal/logging"
	"github.com/petfriends-qa/petfriends-api-tests/pkg/petfriends"
)

var errUnexpectedStatus = errors.New("unexpected status")

func run(ctx context.Context, logger *zap.Logger, cfg *config.Config, filter petfriends.Filter) error {
	client := petfriends.New(cfg.BaseURL,
		petfriends.WithLogger(logger),
		petfriends.WithTimeout(cfg.RequestTimeout),
		petfriends.WithRequestLogging(cfg.LogRequests, cfg.LogResponses),
	)

	status, key, err := client.GetAPIKey(ctx, cfg.Email, cfg.Password)
	if err != nil {
		return err
	}

	if status != http.StatusOK || key == nil {
		return fmt.Errorf("%w: auth key request returned %d", errUnexpectedStatus, status)
	}

	logger.Info("auth key issued", zap.String("email", cfg.Email))

	status, pets, err := client.ListPets(ctx, key.Key, filter)
	if err != nil {
		return err
	}

	if status != http.StatusOK || pets == nil {
		return fmt.Errorf("%w: pet listing returned %d", errUnexpectedStatus, status)
	}

	logger.Info("pets listed", zap.String("filter", string(filter)), zap.Int("count", len(pets.Pets)))

	return nil
}

func main() {
	config.AddFlags(pflag.CommandLine)

	filter := pflag.String("filter", "", "pet listing filter, empty or my_pets")

	pflag.Parse()

	cfg, err := config.Load(pflag.CommandLine, ".env")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel, os.Stdout)
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("smoke check starting", zap.String("baseURL", cfg.BaseURL))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, cfg, petfriends.Filter(*filter)); err != nil {
		logger.Error("smoke check failed", zap.Error(err))
		stop()
		os.Exit(1) //nolint:gocritic
	}

	logger.Info("smoke check passed")
}
