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

package fake

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/petfriends-qa/petfriends-api-tests/pkg/petfriends"
)

var (
	// ErrPetNotFound is returned when no pet has the requested id.
	ErrPetNotFound = errors.New("pet not found")

	// ErrNotOwner is returned when the pet exists but another account owns it.
	ErrNotOwner = errors.New("pet belongs to another user")
)

// Account is a registered user.
type Account struct {
	Email    string
	Password string
	Key      string
	UserID   string
}

// Store is an in-memory pet database. It is safe for concurrent use.
type Store struct {
	lock     sync.Mutex
	accounts map[string]*Account
	keys     map[string]*Account
	pets     map[string]*petfriends.Pet
	// order holds pet ids, oldest first.
	order []string
	now   func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		accounts: map[string]*Account{},
		keys:     map[string]*Account{},
		pets:     map[string]*petfriends.Pet{},
		now:      time.Now,
	}
}

// AddAccount registers a user and returns its auth key. Registering an
// existing email replaces the password and keeps the key.
func (s *Store) AddAccount(email, password string) string {
	s.lock.Lock()
	defer s.lock.Unlock()

	if account, ok := s.accounts[email]; ok {
		account.Password = password
		return account.Key
	}

	account := &Account{
		Email:    email,
		Password: password,
		Key:      strings.ReplaceAll(uuid.NewString(), "-", ""),
		UserID:   strings.ReplaceAll(uuid.NewString(), "-", ""),
	}

	s.accounts[email] = account
	s.keys[account.Key] = account

	return account.Key
}

// Authenticate returns the auth key for valid credentials.
func (s *Store) Authenticate(email, password string) (string, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	account, ok := s.accounts[email]
	if !ok || account.Password != password {
		return "", false
	}

	return account.Key, true
}

// AccountForKey resolves an auth key.
func (s *Store) AccountForKey(key string) (Account, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	account, ok := s.keys[key]
	if !ok {
		return Account{}, false
	}

	return *account, true
}

// List returns pets newest first, optionally only those owned by userID.
func (s *Store) List(userID string, mine bool) []petfriends.Pet {
	s.lock.Lock()
	defer s.lock.Unlock()

	pets := make([]petfriends.Pet, 0, len(s.order))

	for _, id := range slices.Backward(s.order) {
		pet := s.pets[id]

		if mine && pet.UserID != userID {
			continue
		}

		pets = append(pets, *pet)
	}

	return pets
}

// Create adds a pet owned by userID. No field is validated: the live
// service accepts empty names and non-numeric ages too.
func (s *Store) Create(userID, name, animalType, age, photo string) petfriends.Pet {
	s.lock.Lock()
	defer s.lock.Unlock()

	pet := &petfriends.Pet{
		ID:         uuid.NewString(),
		Name:       name,
		AnimalType: animalType,
		Age:        petfriends.Age(age),
		PetPhoto:   photo,
		UserID:     userID,
		CreatedAt:  strconv.FormatFloat(float64(s.now().UnixMicro())/1e6, 'f', 6, 64),
	}

	s.pets[pet.ID] = pet
	s.order = append(s.order, pet.ID)

	return *pet
}

// owned returns a pet the user may modify. The caller holds the lock.
func (s *Store) owned(userID, id string) (*petfriends.Pet, error) {
	pet, ok := s.pets[id]
	if !ok {
		return nil, ErrPetNotFound
	}

	if pet.UserID != userID {
		return nil, ErrNotOwner
	}

	return pet, nil
}

// Update changes the given fields of an owned pet. Recognised keys are
// name, animal_type and age; others are ignored.
func (s *Store) Update(userID, id string, fields map[string]string) (petfriends.Pet, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	pet, err := s.owned(userID, id)
	if err != nil {
		return petfriends.Pet{}, err
	}

	if name, ok := fields["name"]; ok {
		pet.Name = name
	}

	if animalType, ok := fields["animal_type"]; ok {
		pet.AnimalType = animalType
	}

	if age, ok := fields["age"]; ok {
		pet.Age = petfriends.Age(age)
	}

	return *pet, nil
}

// SetPhoto replaces the photo of an owned pet.
func (s *Store) SetPhoto(userID, id, photo string) (petfriends.Pet, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	pet, err := s.owned(userID, id)
	if err != nil {
		return petfriends.Pet{}, err
	}

	pet.PetPhoto = photo

	return *pet, nil
}

// Delete removes an owned pet.
func (s *Store) Delete(userID, id string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, err := s.owned(userID, id); err != nil {
		return err
	}

	delete(s.pets, id)

	s.order = slices.DeleteFunc(s.order, func(x string) bool {
		return x == id
	})

	return nil
}
