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
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// DefaultTimeout bounds a single request when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// Client talks to the PetFriends REST API.
//
// Every operation returns the HTTP status and, for a 200, the typed body.
// Any other status is not an error and comes with a nil body: callers
// inspect the status. Errors are reserved for local failures such as encoding, file
// access, transport, or a 200 whose body cannot be decoded.
type Client struct {
	baseURL      string
	client       *resty.Client
	httpClient   *http.Client
	timeout      time.Duration
	logger       *zap.Logger
	logRequests  bool
	logResponses bool
	endpoints    *Endpoints
}

// Option customises a Client.
type Option func(*Client)

// WithLogger sets the logger used for request tracing and failures.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets the underlying HTTP client, e.g. an httptest server's.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithRequestLogging turns on logging of every request and response body.
func WithRequestLogging(requests, responses bool) Option {
	return func(c *Client) {
		c.logRequests = requests
		c.logResponses = responses
	}
}

// New returns a client for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		timeout:   DefaultTimeout,
		logger:    zap.NewNop(),
		endpoints: NewEndpoints(),
	}

	for _, opt := range opts {
		opt(c)
	}

	var rc *resty.Client

	if c.httpClient != nil {
		// Resty sets the timeout on the client it wraps, leave the caller's alone.
		httpClient := *c.httpClient
		rc = resty.NewWithClient(&httpClient)
	} else {
		rc = resty.New()
	}

	rc.SetBaseURL(c.baseURL)
	rc.SetTimeout(c.timeout)
	rc.SetLogger(c.logger.Sugar())

	c.client = rc

	return c
}

// BaseURL returns the service URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// logError logs a transport failure with its trace context.
func (c *Client) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	c.logger.Error(context,
		zap.String("method", method),
		zap.String("path", path),
		zap.Duration("duration", duration),
		zap.String("traceparent", traceParent),
		zap.Error(err),
	)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *Client) logTraceContext(traceParent string) {
	c.logger.Info("use the trace ID to search logs for this request", zap.String("traceID", extractTraceID(traceParent)))
}

// doRequest sends a request built by prepare and returns the status and
// raw body.
func (c *Client) doRequest(ctx context.Context, method, path string, prepare func(*resty.Request) *resty.Request) (int, []byte, error) {
	traceParent := createTraceParent()

	req := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader("Traceparent", traceParent).
		SetHeader("Tracestate", "test-automation=ginkgo")

	if prepare != nil {
		req = prepare(req)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err, "http request failed")
		return 0, nil, fmt.Errorf("http request failed: %w", err)
	}

	body := resp.Body()

	if c.logRequests {
		c.logger.Info("request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode()),
			zap.Duration("duration", duration),
			zap.String("traceparent", traceParent),
		)
	}

	if c.logResponses && len(body) > 0 {
		c.logger.Info("response body",
			zap.String("method", method),
			zap.String("path", path),
			zap.ByteString("body", body),
		)
	}

	if resp.StatusCode() != http.StatusOK {
		c.logger.Debug("non-success status",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode()),
			zap.String("traceID", extractTraceID(traceParent)),
		)
	}

	return resp.StatusCode(), body, nil
}

// decode unmarshals a 200 response body. A 200 that does not decode is an
// error. Any other status yields no body, as error payloads never carry the
// resource.
//
//nolint:nilnil
func decode[T any](resource string, status int, body []byte) (*T, error) {
	if status != http.StatusOK {
		return nil, nil
	}

	var out T

	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("unmarshaling %s response: %w", resource, err)
	}

	return &out, nil
}

// GetAPIKey exchanges credentials for an auth key.
// The service answers 403 for both an unknown email and a wrong password.
func (c *Client) GetAPIKey(ctx context.Context, email, password string) (int, *AuthKey, error) {
	path := c.endpoints.APIKey()

	status, body, err := c.doRequest(ctx, http.MethodGet, path, func(r *resty.Request) *resty.Request {
		return r.SetHeader("email", email).SetHeader("password", password)
	})
	if err != nil {
		return 0, nil, fmt.Errorf("getting api key: %w", err)
	}

	key, err := decode[AuthKey]("api key", status, body)
	if err != nil {
		return status, nil, err
	}

	return status, key, nil
}

// ListPets lists pets visible with the given filter. The filter is sent as
// is and the service decides whether it is valid.
func (c *Client) ListPets(ctx context.Context, authKey string, filter Filter) (int, *PetList, error) {
	path := c.endpoints.ListPets()

	status, body, err := c.doRequest(ctx, http.MethodGet, path, func(r *resty.Request) *resty.Request {
		return r.SetHeader("auth_key", authKey).SetQueryParam("filter", string(filter))
	})
	if err != nil {
		return 0, nil, fmt.Errorf("listing pets: %w", err)
	}

	pets, err := decode[PetList]("pet list", status, body)
	if err != nil {
		return status, nil, err
	}

	return status, pets, nil
}

// AddNewPetSimple creates a pet without a photo. Field values must be
// strings, see ErrFieldNotString.
func (c *Client) AddNewPetSimple(ctx context.Context, authKey string, fields map[string]interface{}) (int, *Pet, error) {
	form, err := multipartFields(fields)
	if err != nil {
		return 0, nil, fmt.Errorf("encoding pet fields: %w", err)
	}

	path := c.endpoints.CreatePetSimple()

	status, body, err := c.doRequest(ctx, http.MethodPost, path, func(r *resty.Request) *resty.Request {
		return r.SetHeader("auth_key", authKey).SetMultipartFormData(form)
	})
	if err != nil {
		return 0, nil, fmt.Errorf("creating pet: %w", err)
	}

	return c.decodePet(status, body)
}

// AddNewPet creates a pet with a photo read from photoPath.
func (c *Client) AddNewPet(ctx context.Context, authKey string, fields map[string]interface{}, photoPath string) (int, *Pet, error) {
	form, err := multipartFields(fields)
	if err != nil {
		return 0, nil, fmt.Errorf("encoding pet fields: %w", err)
	}

	photo, err := os.Open(photoPath)
	if err != nil {
		return 0, nil, fmt.Errorf("opening pet photo: %w", err)
	}

	defer photo.Close()

	path := c.endpoints.CreatePet()

	status, body, err := c.doRequest(ctx, http.MethodPost, path, func(r *resty.Request) *resty.Request {
		return r.SetHeader("auth_key", authKey).
			SetMultipartFormData(form).
			SetFileReader("pet_photo", filepath.Base(photoPath), photo)
	})
	if err != nil {
		return 0, nil, fmt.Errorf("creating pet with photo: %w", err)
	}

	return c.decodePet(status, body)
}

// AddPetPhoto attaches or replaces the photo of an existing pet.
func (c *Client) AddPetPhoto(ctx context.Context, authKey, petID, photoPath string) (int, *Pet, error) {
	photo, err := os.Open(photoPath)
	if err != nil {
		return 0, nil, fmt.Errorf("opening pet photo: %w", err)
	}

	defer photo.Close()

	path := c.endpoints.SetPetPhoto(petID)

	status, body, err := c.doRequest(ctx, http.MethodPost, path, func(r *resty.Request) *resty.Request {
		return r.SetHeader("auth_key", authKey).
			SetFileReader("pet_photo", filepath.Base(photoPath), photo)
	})
	if err != nil {
		return 0, nil, fmt.Errorf("setting pet photo: %w", err)
	}

	return c.decodePet(status, body)
}

// UpdatePetInfo updates a pet owned by the authenticated user. Scalar
// field values are formatted, so an integer age is accepted.
func (c *Client) UpdatePetInfo(ctx context.Context, authKey, petID string, fields map[string]interface{}) (int, *Pet, error) {
	form, err := urlencodedFields(fields)
	if err != nil {
		return 0, nil, fmt.Errorf("encoding pet fields: %w", err)
	}

	path := c.endpoints.UpdatePet(petID)

	status, body, err := c.doRequest(ctx, http.MethodPut, path, func(r *resty.Request) *resty.Request {
		return r.SetHeader("auth_key", authKey).SetFormData(form)
	})
	if err != nil {
		return 0, nil, fmt.Errorf("updating pet: %w", err)
	}

	return c.decodePet(status, body)
}

// DeletePet deletes a pet and returns the raw response body. An empty id
// is sent as is; the service answers with a client error.
func (c *Client) DeletePet(ctx context.Context, authKey, petID string) (int, string, error) {
	path := c.endpoints.DeletePet(petID)

	status, body, err := c.doRequest(ctx, http.MethodDelete, path, func(r *resty.Request) *resty.Request {
		return r.SetHeader("auth_key", authKey)
	})
	if err != nil {
		return 0, "", fmt.Errorf("deleting pet: %w", err)
	}

	return status, string(body), nil
}

func (c *Client) decodePet(status int, body []byte) (int, *Pet, error) {
	pet, err := decode[Pet]("pet", status, body)
	if err != nil {
		return status, nil, err
	}

	return status, pet, nil
}
