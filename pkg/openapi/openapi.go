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

// Package openapi holds the OpenAPI description of the PetFriends API.
package openapi

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed petfriends.yaml
var document []byte

// ErrOperationNotFound is returned when the document has no operation for a
// method and path.
var ErrOperationNotFound = errors.New("operation not found in the API description")

// Spec returns the raw YAML document.
func Spec() []byte {
	return document
}

// Schema loads and validates the API description.
func Schema() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("loading api description: %w", err)
	}

	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validating api description: %w", err)
	}

	return doc, nil
}

// FindOperation looks up the operation for a method and a templated path
// such as /api/pets/{pet_id}.
func FindOperation(doc *openapi3.T, method, pattern string) (*openapi3.PathItem, *openapi3.Operation, error) {
	pathItem := doc.Paths.Find(pattern)
	if pathItem == nil {
		return nil, nil, fmt.Errorf("%w: %s %s", ErrOperationNotFound, method, pattern)
	}

	operation := pathItem.GetOperation(method)
	if operation == nil {
		return nil, nil, fmt.Errorf("%w: %s %s", ErrOperationNotFound, method, pattern)
	}

	return pathItem, operation, nil
}
