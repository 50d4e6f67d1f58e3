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

//go:generate mockgen -source=interfaces.go -destination=mock/interfaces.go -package=mock

package petfriends

import (
	"context"
)

// ClientInterface is the set of PetFriends operations, satisfied by *Client.
type ClientInterface interface {
	GetAPIKey(ctx context.Context, email, password string) (int, *AuthKey, error)
	ListPets(ctx context.Context, authKey string, filter Filter) (int, *PetList, error)
	AddNewPetSimple(ctx context.Context, authKey string, fields map[string]interface{}) (int, *Pet, error)
	AddNewPet(ctx context.Context, authKey string, fields map[string]interface{}, photoPath string) (int, *Pet, error)
	AddPetPhoto(ctx context.Context, authKey, petID, photoPath string) (int, *Pet, error)
	UpdatePetInfo(ctx context.Context, authKey, petID string, fields map[string]interface{}) (int, *Pet, error)
	DeletePet(ctx context.Context, authKey, petID string) (int, string, error)
}

var _ ClientInterface = (*Client)(nil)
