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

// Package fake is an in-process emulation of the PetFriends service.
//
// It follows the live service closely enough for the end-to-end suites to
// run offline, including its known defects: pets with an empty name, an
// empty animal type or a non-numeric age are accepted. Every request is
// validated against the OpenAPI description before it reaches a handler, so
// a client change that drifts from the documented API fails here first.
package fake

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/petfriends-qa/petfriends-api-tests/pkg/openapi"
	"github.com/petfriends-qa/petfriends-api-tests/pkg/petfriends"
)

const maxUploadMemory = 10 << 20

// forbiddenPage mimics the HTML error page the live service serves.
const forbiddenPage = `<!doctype html>
<html lang=en>
<title>403 Forbidden</title>
<h1>Forbidden</h1>
<p>This user wasn&#39;t found in database</p>
`

// Server serves the PetFriends API from a Store.
type Server struct {
	store  *Store
	doc    *openapi3.T
	logger *zap.Logger
}

// Option customises a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithStore serves an existing store instead of an empty one.
func WithStore(store *Store) Option {
	return func(s *Server) {
		s.store = store
	}
}

// New returns a server with an empty store unless WithStore is given.
func New(opts ...Option) (*Server, error) {
	doc, err := openapi.Schema()
	if err != nil {
		return nil, err
	}

	s := &Server{
		store:  NewStore(),
		doc:    doc,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Store returns the backing store, e.g. to seed accounts.
func (s *Server) Store() *Store {
	return s.store
}

// Handler builds the HTTP router.
func (s *Server) Handler() (http.Handler, error) {
	router := chi.NewRouter()
	router.Use(s.middleware()...)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "resource not found")
	})

	routes := []struct {
		method  string
		pattern string
		handler http.HandlerFunc
	}{
		{http.MethodGet, "/api/key", s.getAPIKey},
		{http.MethodGet, "/api/pets", s.listPets},
		{http.MethodPost, "/api/pets", s.createPet},
		{http.MethodPost, "/api/create_pet_simple", s.createPetSimple},
		{http.MethodPost, "/api/pets/set_photo/{pet_id}", s.setPetPhoto},
		{http.MethodPut, "/api/pets/{pet_id}", s.updatePet},
		{http.MethodDelete, "/api/pets/{pet_id}", s.deletePet},
	}

	for _, route := range routes {
		validate, err := s.validator(route.method, route.pattern)
		if err != nil {
			return nil, err
		}

		router.With(validate).Method(route.method, route.pattern, route.handler)
	}

	return router, nil
}

// middleware is the chain every route runs behind. Panics are recovered
// inside the access log so it records the 500.
func (s *Server) middleware() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID,
		s.logRequest,
		middleware.Recoverer,
	}
}

func (s *Server) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Debug("fake request served",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("requestID", middleware.GetReqID(r.Context())),
			zap.String("traceparent", r.Header.Get("Traceparent")),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrPetNotFound):
		writeError(w, http.StatusNotFound, "Pet with this id wasn't found!")
	case errors.Is(err, ErrNotOwner):
		writeError(w, http.StatusForbidden, "This pet belongs to another user")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// authenticate resolves the auth_key header, answering 403 when it is unknown.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (Account, bool) {
	account, ok := s.store.AccountForKey(r.Header.Get("auth_key"))
	if !ok {
		writeError(w, http.StatusForbidden, "Please provide a valid 'auth_key' header")
		return Account{}, false
	}

	return account, true
}

// petID reads the pet_id path parameter, answering 400 when it is empty.
func petID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "pet_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "pet id is required")
		return "", false
	}

	return id, true
}

// readPhoto returns the uploaded pet_photo as a data URL.
func readPhoto(r *http.Request) (string, error) {
	file, _, err := r.FormFile("pet_photo")
	if err != nil {
		return "", fmt.Errorf("reading pet_photo: %w", err)
	}

	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("reading pet_photo: %w", err)
	}

	return fmt.Sprintf("data:%s;base64,%s", http.DetectContentType(data), base64.StdEncoding.EncodeToString(data)), nil
}

// formFields returns the pet fields present in a parsed form.
func formFields(values map[string][]string) map[string]string {
	fields := map[string]string{}

	for _, name := range []string{"name", "animal_type", "age"} {
		if v, ok := values[name]; ok && len(v) > 0 {
			fields[name] = v[0]
		}
	}

	return fields
}

func (s *Server) getAPIKey(w http.ResponseWriter, r *http.Request) {
	key, ok := s.store.Authenticate(r.Header.Get("email"), r.Header.Get("password"))
	if !ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, forbiddenPage)

		return
	}

	writeJSON(w, http.StatusOK, petfriends.AuthKey{Key: key})
}

func (s *Server) listPets(w http.ResponseWriter, r *http.Request) {
	account, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	var pets []petfriends.Pet

	switch filter := petfriends.Filter(r.URL.Query().Get("filter")); filter {
	case petfriends.FilterAll:
		pets = s.store.List(account.UserID, false)
	case petfriends.FilterMyPets:
		pets = s.store.List(account.UserID, true)
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Filter value %q is incorrect", filter))
		return
	}

	writeJSON(w, http.StatusOK, petfriends.PetList{Pets: pets})
}

func (s *Server) create(w http.ResponseWriter, r *http.Request, withPhoto bool) {
	account, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	fields := formFields(r.MultipartForm.Value)

	for _, name := range []string{"name", "animal_type", "age"} {
		if _, ok := fields[name]; !ok {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("%s is required", name))
			return
		}
	}

	var photo string

	if withPhoto {
		var err error

		if photo, err = readPhoto(r); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	pet := s.store.Create(account.UserID, fields["name"], fields["animal_type"], fields["age"], photo)

	writeJSON(w, http.StatusOK, pet)
}

func (s *Server) createPet(w http.ResponseWriter, r *http.Request) {
	s.create(w, r, true)
}

func (s *Server) createPetSimple(w http.ResponseWriter, r *http.Request) {
	s.create(w, r, false)
}

func (s *Server) setPetPhoto(w http.ResponseWriter, r *http.Request) {
	account, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	id, ok := petID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	photo, err := readPhoto(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pet, err := s.store.SetPhoto(account.UserID, id, photo)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pet)
}

func (s *Server) updatePet(w http.ResponseWriter, r *http.Request) {
	account, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	id, ok := petID(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pet, err := s.store.Update(account.UserID, id, formFields(r.PostForm))
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pet)
}

func (s *Server) deletePet(w http.ResponseWriter, r *http.Request) {
	account, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	id, ok := petID(w, r)
	if !ok {
		return
	}

	if err := s.store.Delete(account.UserID, id); err != nil {
		writeStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
