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
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// ErrEmptySeed is returned when a seed document defines no accounts.
var ErrEmptySeed = errors.New("seed defines no accounts")

// SeedPet is a pet created when a seed is applied.
type SeedPet struct {
	Name       string `yaml:"name"`
	AnimalType string `yaml:"animal_type"`
	Age        string `yaml:"age"`
}

// SeedAccount is an account, and its pets, created when a seed is applied.
type SeedAccount struct {
	Email    string    `yaml:"email"`
	Password string    `yaml:"password"`
	Pets     []SeedPet `yaml:"pets"`
}

// Seed is the initial content of a fake service.
type Seed struct {
	Accounts []SeedAccount `yaml:"accounts"`
}

// LoadSeed parses a YAML seed document.
func LoadSeed(data []byte) (*Seed, error) {
	var seed Seed

	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parsing seed: %w", err)
	}

	if len(seed.Accounts) == 0 {
		return nil, ErrEmptySeed
	}

	for i, account := range seed.Accounts {
		if account.Email == "" || account.Password == "" {
			return nil, fmt.Errorf("seed account %d: email and password are required", i)
		}
	}

	return &seed, nil
}

// DefaultSeed returns the built-in seed.
func DefaultSeed() (*Seed, error) {
	return LoadSeed(defaultSeed)
}

// Apply creates the seed's accounts and pets.
func (s *Store) Apply(seed *Seed) {
	for _, seedAccount := range seed.Accounts {
		key := s.AddAccount(seedAccount.Email, seedAccount.Password)

		account, _ := s.AccountForKey(key)

		for _, pet := range seedAccount.Pets {
			s.Create(account.UserID, pet.Name, pet.AnimalType, pet.Age, "")
		}
	}
}
