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
	"errors"
	"fmt"

	"github.com/onsi/ginkgo/v2"

	"github.com/petfriends-qa/petfriends-api-tests/pkg/petfriends"
)

// IsEncodingError reports whether a client call failed locally because a
// field could not be encoded into the request body. Scenarios that send
// deliberately invalid payloads treat this as the expected outcome.
func IsEncodingError(err error) bool {
	return errors.Is(err, petfriends.ErrFieldNotString) || errors.Is(err, petfriends.ErrUnsupportedFieldType)
}

// ReportEncodingError prints the expected encoding failure.
func ReportEncodingError(err error) {
	ginkgo.GinkgoWriter.Printf("Request was not sent, payload could not be encoded: %v\n", err)
}

// ReportKnownBug prints a diagnostic for behaviour the service is known to
// get wrong, without failing the test.
func ReportKnownBug(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	ginkgo.GinkgoWriter.Printf("KNOWN BUG: %s\n", message)
	ginkgo.AddReportEntry("known bug", message)
}
