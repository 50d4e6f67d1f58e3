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

package petfriends

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Filter narrows a pet listing.
type Filter string

const (
	// FilterAll lists every pet on the service.
	FilterAll Filter = ""
	// FilterMyPets lists only pets owned by the authenticated user.
	FilterMyPets Filter = "my_pets"
)

// AuthKey is the opaque token issued by GET /api/key.
type AuthKey struct {
	Key string `json:"key"`
}

// Age is a pet age. The service stores it as free text, but some records
// come back as JSON numbers, so both are accepted and kept as text.
type Age string

func (a *Age) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Age(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("age must be a string or number: %w", err)
	}

	*a = Age(n.String())

	return nil
}

// Pet is a pet record as returned by the service.
type Pet struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AnimalType string `json:"animal_type"`
	Age        Age    `json:"age"`
	PetPhoto   string `json:"pet_photo"`
	UserID     string `json:"user_id,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// PetList is the body of GET /api/pets.
type PetList struct {
	Pets []Pet `json:"pets"`
}

// IDs returns the ids of all pets in listing order.
func (l *PetList) IDs() []string {
	if l == nil {
		return nil
	}

	ids := make([]string, len(l.Pets))

	for i := range l.Pets {
		ids[i] = l.Pets[i].ID
	}

	return ids
}
