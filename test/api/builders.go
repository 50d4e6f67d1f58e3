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
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"maps"
)

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	_, _ = rand.Read(bytes)

	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

func GenerateTestID() string {
	return generateRandomName("test")
}

// PetPayloadBuilder builds pet field sets for testing. Values are untyped
// so scenarios can send integers where the service expects text.
type PetPayloadBuilder struct {
	payload map[string]interface{}
}

// NewPetPayload creates a pet payload with a unique name.
func NewPetPayload() *PetPayloadBuilder {
	return &PetPayloadBuilder{
		payload: map[string]interface{}{
			"name":        generateRandomName("pet"),
			"animal_type": "cat",
			"age":         "1",
		},
	}
}

// WithName sets the pet name.
func (b *PetPayloadBuilder) WithName(name interface{}) *PetPayloadBuilder {
	b.payload["name"] = name
	return b
}

// WithAnimalType sets the animal type.
func (b *PetPayloadBuilder) WithAnimalType(animalType interface{}) *PetPayloadBuilder {
	b.payload["animal_type"] = animalType
	return b
}

// WithAge sets the age.
func (b *PetPayloadBuilder) WithAge(age interface{}) *PetPayloadBuilder {
	b.payload["age"] = age
	return b
}

// Build returns a copy of the payload.
func (b *PetPayloadBuilder) Build() map[string]interface{} {
	return maps.Clone(b.payload)
}
