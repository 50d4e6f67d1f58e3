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
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/petfriends-qa/petfriends-api-tests/pkg/openapi"
)

//nolint:gochecknoinits
func init() {
	// Photo parts carry the detected image type rather than
	// application/octet-stream.
	for _, contentType := range []string{"image/jpeg", "image/png", "image/gif"} {
		openapi3filter.RegisterBodyDecoder(contentType, openapi3filter.FileBodyDecoder)
	}
}

// validator returns middleware that checks requests for one route against
// the API description and answers 400 when they do not conform.
func (s *Server) validator(method, pattern string) (func(http.Handler) http.Handler, error) {
	pathItem, operation, err := openapi.FindOperation(s.doc, method, pattern)
	if err != nil {
		return nil, err
	}

	route := &routers.Route{
		Spec:      s.doc,
		Path:      pattern,
		PathItem:  pathItem,
		Method:    method,
		Operation: operation,
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			params := map[string]string{}

			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				for i, key := range rctx.URLParams.Keys {
					params[key] = rctx.URLParams.Values[i]
				}
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: params,
				Route:      route,
				Options:    options,
			}

			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				s.logger.Info("request rejected by api description",
					zap.String("operation", operation.OperationID),
					zap.Error(err),
				)

				writeError(w, http.StatusBadRequest, err.Error())

				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}
