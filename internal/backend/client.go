package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"dayplan/internal/instrumentation"
	"dayplan/internal/logging"
)

// defaultHTTPClient is a configured HTTP client with proper timeouts and security settings
var defaultHTTPClient = &http.Client{
	Timeout: 30 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		DisableKeepAlives:     false,
	},
}

// Config holds the settings for a collaborator Client.
type Config struct {
	// BaseURL is the root URL of the scheduling backend, without a trailing slash.
	BaseURL string

	// TokenSource, if set, supplies bearer tokens for each request. The
	// backend issues these after its own OAuth flow; acquiring them is not
	// this client's concern.
	TokenSource oauth2.TokenSource

	// HTTPClient overrides the default HTTP client. Mostly useful in tests.
	HTTPClient *http.Client

	// Logger is the structured logger to use. Defaults to slog.Default().
	Logger *slog.Logger

	// Metrics records request counts and durations. May be nil.
	Metrics *instrumentation.Metrics
}

// Client is a thin JSON client for the scheduling backend. It owns no
// domain state; the events and emails packages build their caches on top
// of it.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	tokenSource oauth2.TokenSource
	logger      *slog.Logger
	metrics     *instrumentation.Metrics
}

// NewClient creates a new collaborator client.
func NewClient(config Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = defaultHTTPClient
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:     strings.TrimRight(config.BaseURL, "/"),
		httpClient:  httpClient,
		tokenSource: config.TokenSource,
		logger:      logging.WithService(logger, "backend"),
		metrics:     config.Metrics,
	}, nil
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT request with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE request. A 204 response carries no body.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// errorBody is the JSON error shape the backend returns for rejected requests.
type errorBody struct {
	Detail string `json:"detail"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path
	start := time.Now()

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body for %s: %w", op, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.tokenSource != nil {
		token, err := c.tokenSource.Token()
		if err != nil {
			return &TransportError{Op: op, Err: fmt.Errorf("failed to obtain token: %w", err)}
		}
		token.SetAuthHeader(req)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		c.record(ctx, method, path, 0, start)
		return &TransportError{Op: op, Err: err}
	}
	defer res.Body.Close()

	c.record(ctx, method, path, res.StatusCode, start)

	switch {
	case res.StatusCode == http.StatusNotFound:
		return &NotFoundError{Path: path}
	case res.StatusCode == http.StatusBadRequest || res.StatusCode == http.StatusUnprocessableEntity:
		var eb errorBody
		if err := json.NewDecoder(res.Body).Decode(&eb); err != nil || eb.Detail == "" {
			eb.Detail = res.Status
		}
		return &ValidationError{Detail: eb.Detail}
	case res.StatusCode < 200 || res.StatusCode > 299:
		return &TransportError{Op: op, Err: fmt.Errorf("unexpected status %s", res.Status)}
	}

	if out == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return nil
}

func (c *Client) record(ctx context.Context, method, path string, status int, start time.Time) {
	duration := time.Since(start)
	if c.metrics != nil {
		c.metrics.RecordBackendRequest(ctx, method, path, status, duration)
	}
	c.logger.Debug("backend request",
		logging.Operation(method+" "+path),
		slog.Int("status", status),
		slog.Duration(logging.KeyDuration, duration),
	)
}
