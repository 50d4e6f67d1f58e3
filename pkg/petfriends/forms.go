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
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
)

var (
	// ErrFieldNotString is returned when a multipart field value is not a
	// string. Multipart bodies are sent verbatim, nothing is coerced.
	ErrFieldNotString = errors.New("multipart field value must be a string")

	// ErrUnsupportedFieldType is returned when a urlencoded form value is
	// not a scalar.
	ErrUnsupportedFieldType = errors.New("unsupported form field type")
)

// multipartFields converts fields for a multipart/form-data body.
func multipartFields(fields map[string]interface{}) (map[string]string, error) {
	out := make(map[string]string, len(fields))

	for _, name := range slices.Sorted(maps.Keys(fields)) {
		value, ok := fields[name].(string)
		if !ok {
			return nil, fmt.Errorf("%w: field %q has type %T", ErrFieldNotString, name, fields[name])
		}

		out[name] = value
	}

	return out, nil
}

// urlencodedFields converts fields for an application/x-www-form-urlencoded
// body, formatting scalars the way a form would.
//
//nolint:cyclop
func urlencodedFields(fields map[string]interface{}) (map[string]string, error) {
	out := make(map[string]string, len(fields))

	for _, name := range slices.Sorted(maps.Keys(fields)) {
		switch value := fields[name].(type) {
		case string:
			out[name] = value
		case json.Number:
			out[name] = value.String()
		case bool:
			out[name] = strconv.FormatBool(value)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			out[name] = fmt.Sprintf("%d", value)
		case float32:
			out[name] = strconv.FormatFloat(float64(value), 'f', -1, 32)
		case float64:
			out[name] = strconv.FormatFloat(value, 'f', -1, 64)
		default:
			return nil, fmt.Errorf("%w: field %q has type %T", ErrUnsupportedFieldType, name, value)
		}
	}

	return out, nil
}
