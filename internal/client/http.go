package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ridehail/internal/domain/entities"
	"ridehail/pkg/apierror"
)

// TokenSource supplies the bearer token from session auth state.
type TokenSource func() string

// HTTPClient talks to the real backend. Every operation sends the bearer
// token and decodes the uniform envelope; non-2xx responses come back as
// *apierror.APIError carrying whatever the body declared, never swallowed.
type HTTPClient struct {
	baseURL string
	token   TokenSource
	http    *http.Client
}

var (
	_ RideAPI   = (*HTTPClient)(nil)
	_ DriverAPI = (*HTTPClient)(nil)
)

func NewHTTPClient(baseURL string, token TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *HTTPClient) CreateRide(ctx context.Context, req entities.CreateRideRequest) (*entities.Response[entities.RideData], error) {
	return doJSON[entities.RideData](ctx, c, http.MethodPost, "/rides/request", req)
}

func (c *HTTPClient) RiderHistory(ctx context.Context) (*entities.Response[entities.RidesData], error) {
	return doJSON[entities.RidesData](ctx, c, http.MethodGet, "/rides/me", nil)
}

func (c *HTTPClient) AvailableRides(ctx context.Context) (*entities.Response[entities.RidesData], error) {
	return doJSON[entities.RidesData](ctx, c, http.MethodGet, "/rides/available", nil)
}

func (c *HTTPClient) UpdateAvailability(ctx context.Context, req entities.AvailabilityUpdate) (*entities.Response[entities.DriverData], error) {
	return doJSON[entities.DriverData](ctx, c, http.MethodPatch, "/drivers/availability", req)
}

func (c *HTTPClient) IncomingRequests(ctx context.Context) (*entities.Response[[]*entities.Ride], error) {
	return doJSON[[]*entities.Ride](ctx, c, http.MethodGet, "/drivers/requests", nil)
}

// doJSON performs one request/decode round trip against the backend.
func doJSON[T any](ctx context.Context, c *HTTPClient, method, path string, body any) (*entities.Response[T], error) {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != nil {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp)
	}

	var envelope entities.Response[T]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &envelope, nil
}

// decodeError lifts a failure response into the normalized shape. The body
// may carry a failure envelope, a validation-errors map or nothing usable;
// the status code survives regardless.
func decodeError(resp *http.Response) error {
	apiErr := &apierror.APIError{Status: resp.StatusCode}

	var body struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
		Err     string              `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Message = body.Message
		apiErr.Errors = body.Errors
		apiErr.Err = body.Err
	}

	return apiErr
}
