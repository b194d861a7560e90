// Package noroff talks to the Holidaze endpoints of the Noroff v2 API.
package noroff

import (
	"bytes"
	"context"
	"fmt"
	"holidaze/internal/models"
	"holidaze/internal/providers"
	"holidaze/internal/services"
	"holidaze/internal/structures"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

const (
	ApiKeyHeader   = "X-Noroff-API-Key"
	maxErrorBody   = 1 << 16
	defaultTimeout = 10 * time.Second
)

type envelope struct {
	Data json.RawMessage `json:"data"`
}

type errorResponse struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	session    services.SessionServiceInterface
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
}

func NewClient(conf *structures.Config, session services.SessionServiceInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) *Client {
	timeout := conf.Api.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(conf.Api.BaseUrl, "/"),
		httpClient: &http.Client{Timeout: timeout},
		session:    session,
		logger:     logger,
		metrics:    metrics,
	}
}

func (c *Client) Login(ctx context.Context, credentials *models.Credentials) (*models.Session, error) {
	var session models.Session
	err := c.do(ctx, "login", http.MethodPost, "/auth/login?_holidaze=true", credentials, false, &session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) GetProfile(ctx context.Context, name string) (*models.Profile, error) {
	var profile models.Profile
	path := "/holidaze/profiles/" + url.PathEscape(name) + "?_bookings=true&_venues=true"
	if err := c.do(ctx, "getProfile", http.MethodGet, path, nil, true, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) GetVenue(ctx context.Context, id string) (*models.Venue, error) {
	var venue models.Venue
	path := "/holidaze/venues/" + url.PathEscape(id) + "?_owner=true"
	if err := c.do(ctx, "getVenue", http.MethodGet, path, nil, false, &venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

func (c *Client) CreateVenue(ctx context.Context, form *models.VenueForm) (*models.Venue, error) {
	var venue models.Venue
	if err := c.do(ctx, "createVenue", http.MethodPost, "/holidaze/venues", form, true, &venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

func (c *Client) CreateBooking(ctx context.Context, form *models.BookingForm) (*models.Booking, error) {
	var booking models.Booking
	if err := c.do(ctx, "createBooking", http.MethodPost, "/holidaze/bookings", form, true, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, body any, auth bool, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := providers.CorrelationID(ctx); id != "" {
		req.Header.Set(providers.CorrelationIDHeader, id)
	}

	apiKey := c.session.ApiKey(ctx)
	if apiKey != "" {
		req.Header.Set(ApiKeyHeader, apiKey)
	}
	if auth {
		token := c.session.AccessToken(ctx)
		if token == "" {
			return models.ErrNotAuthenticated
		}
		if apiKey == "" {
			return models.ErrNoApiKey
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.IncRemoteRequests(op, 0)
		c.logger.Errorf(providers.TypeApp, "%s %s failed: %s", method, path, err)
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()
	c.metrics.IncRemoteRequests(op, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		remoteErr := decodeError(resp)
		c.logger.Errorf(providers.TypeApp, "%s %s returned %d: %s", method, path, resp.StatusCode, remoteErr)
		return remoteErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	if len(env.Data) == 0 {
		return fmt.Errorf("%s: response has no data", op)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func decodeError(resp *http.Response) *models.RemoteRequestError {
	remoteErr := &models.RemoteRequestError{Status: resp.StatusCode}

	var payload errorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&payload); err != nil {
		return remoteErr
	}
	for _, e := range payload.Errors {
		if e.Message != "" {
			remoteErr.Messages = append(remoteErr.Messages, e.Message)
		}
	}
	return remoteErr
}
