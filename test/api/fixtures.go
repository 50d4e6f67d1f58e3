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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/petfriends-qa/petfriends-api-tests/pkg/petfriends"
)

var (
	// ErrNoOwnPets is returned when the account owns no pets.
	ErrNoOwnPets = errors.New("there are no own pets")

	// ErrUnexpectedStatus is returned when a fixture call is not answered with 200.
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// AcquireAuthKey exchanges the configured credentials for an auth key and
// fails the test if that is not possible.
func AcquireAuthKey(ctx context.Context, client petfriends.ClientInterface, config *TestConfig) string {
	status, key, err := client.GetAPIKey(ctx, config.Email, config.Password)
	Expect(err).NotTo(HaveOccurred())
	Expect(status).To(Equal(http.StatusOK), "acquiring an auth key")
	Expect(key).NotTo(BeNil())
	Expect(key.Key).NotTo(BeEmpty())

	return key.Key
}

// ListOwnPets returns the pets owned by the key's account.
func ListOwnPets(ctx context.Context, client petfriends.ClientInterface, authKey string) (*petfriends.PetList, error) {
	status, pets, err := client.ListPets(ctx, authKey, petfriends.FilterMyPets)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK || pets == nil {
		return nil, fmt.Errorf("%w: listing own pets returned %d", ErrUnexpectedStatus, status)
	}

	return pets, nil
}

// FirstOwnPet returns the first pet in the account's own listing.
func FirstOwnPet(ctx context.Context, client petfriends.ClientInterface, authKey string) (*petfriends.Pet, error) {
	pets, err := ListOwnPets(ctx, client, authKey)
	if err != nil {
		return nil, err
	}

	if len(pets.Pets) == 0 {
		return nil, ErrNoOwnPets
	}

	return &pets.Pets[0], nil
}

// EnsureOwnPet returns the first own pet, creating one with a photo when the
// account owns none.
func EnsureOwnPet(ctx context.Context, client petfriends.ClientInterface, authKey string, payload map[string]interface{}, photoPath string) (*petfriends.Pet, error) {
	pet, err := FirstOwnPet(ctx, client, authKey)
	if err == nil {
		return pet, nil
	}

	if !errors.Is(err, ErrNoOwnPets) {
		return nil, err
	}

	status, _, err := client.AddNewPet(ctx, authKey, payload, photoPath)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: creating a pet returned %d", ErrUnexpectedStatus, status)
	}

	return FirstOwnPet(ctx, client, authKey)
}

// MissingIDs returns, sorted, the ids listed in before but not in after.
func MissingIDs(before, after *petfriends.PetList) []string {
	removed := set.New[string](before.IDs()...).Difference(set.New[string](after.IDs()...))

	var ids []string

	for id := range removed.All() {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}

// CreatePetWithCleanup creates a pet without a photo and schedules its
// deletion when the test ends.
func CreatePetWithCleanup(ctx context.Context, client petfriends.ClientInterface, authKey string, payload map[string]interface{}) *petfriends.Pet {
	status, pet, err := client.AddNewPetSimple(ctx, authKey, payload)
	Expect(err).NotTo(HaveOccurred())
	Expect(status).To(Equal(http.StatusOK))
	Expect(pet).NotTo(BeNil())

	DeletePetOnCleanup(client, authKey, pet.ID)

	return pet
}

// DeletePetOnCleanup schedules deletion of a pet when the test ends,
// whether it passes or fails.
func DeletePetOnCleanup(client petfriends.ClientInterface, authKey, petID string) {
	DeferCleanup(func(ctx SpecContext) {
		GinkgoWriter.Printf("Cleaning up pet: %s\n", petID)

		status, _, err := client.DeletePet(ctx, authKey, petID)
		if err != nil || status != http.StatusOK {
			GinkgoWriter.Printf("Warning: Failed to delete pet %s: status=%d err=%v\n", petID, status, err)
		} else {
			GinkgoWriter.Printf("Successfully deleted pet: %s\n", petID)
		}
	})
}
