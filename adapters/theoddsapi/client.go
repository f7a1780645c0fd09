package theoddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Slim0909/nhl-bets/pkg/contracts"
	"github.com/Slim0909/nhl-bets/pkg/models"
)

const (
	DefaultBaseURL = "https://api.the-odds-api.com"
	apiVersion     = "v4"
	userAgent      = "nhl-bets/1.0"
	DefaultTimeout = 10 * time.Second
)

// Client implements the OddsProvider interface for The Odds API.
// Each call makes exactly one request bounded by the client timeout.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	rateLimits models.RateLimits
	mu         sync.RWMutex
}

// Ensure Client implements OddsProvider
var _ contracts.OddsProvider = (*Client)(nil)

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at another host (tests, proxies)
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout overrides the per-request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient creates a new The Odds API client
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HasKey reports whether an API key was configured
func (c *Client) HasKey() bool {
	return c.apiKey != ""
}

// FetchOdds retrieves the odds feed for a sport in decimal format
func (c *Client) FetchOdds(ctx context.Context, opts *models.FetchOddsOptions) ([]models.Game, error) {
	endpoint := fmt.Sprintf("%s/%s/sports/%s/odds", c.baseURL, apiVersion, url.PathEscape(opts.Sport))

	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("regions", strings.Join(opts.Regions, ","))
	params.Set("markets", strings.Join(opts.Markets, ","))
	params.Set("oddsFormat", "decimal")
	params.Set("dateFormat", "iso")

	body, err := c.doRequest(ctx, endpoint+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("fetch odds failed: %w", err)
	}

	var games []models.Game
	if err := json.Unmarshal(body, &games); err != nil {
		return nil, fmt.Errorf("parse odds response: %w", err)
	}

	return games, nil
}

// GetRateLimits returns the quota reported by the last response
func (c *Client) GetRateLimits() models.RateLimits {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rateLimits
}

// doRequest performs a single HTTP request
func (c *Client) doRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	c.updateRateLimits(resp.Header)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Message:    vendorMessage(body),
		}
	}

	return body, nil
}

// updateRateLimits extracts rate limit info from response headers
func (c *Client) updateRateLimits(headers http.Header) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if remaining := headers.Get("x-requests-remaining"); remaining != "" {
		if val, err := strconv.Atoi(remaining); err == nil {
			c.rateLimits.RequestsRemaining = val
		}
	}

	if used := headers.Get("x-requests-used"); used != "" {
		if val, err := strconv.Atoi(used); err == nil {
			c.rateLimits.RequestsUsed = val
		}
	}
}

// HTTPError is returned for non-2xx vendor responses
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// HTTPStatus exposes the vendor status to callers building error envelopes
func (e *HTTPError) HTTPStatus() int {
	return e.StatusCode
}

// vendorMessage pulls the "message" field out of an error body, falling back to the raw text
func vendorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(body))
}
