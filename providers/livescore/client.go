// Package livescore implements the association-football gateway on top of
// the LiveScore API (https://livescore-api.com).
package livescore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the LiveScore API client root.
	DefaultBaseURL = "https://livescore-api.com/api-client"

	defaultRateLimit = 2.0
	defaultBurst     = 3
)

// Client is a thin LiveScore API client.
type Client struct {
	baseURL    string
	key        string
	secret     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// ClientOption configures the client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL (tests point this at a local server).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a LiveScore client with the given credentials.
func NewClient(key, secret string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		key:     key,
		secret:  secret,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(defaultRateLimit), defaultBurst),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Match is a LiveScore fixture with its current score. Status values for a
// settled game are "FINISHED", "FT" or "90".
type Match struct {
	ID        int    `json:"id"`
	HomeName  string `json:"home_name"`
	AwayName  string `json:"away_name"`
	Status    string `json:"status"`
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
}

// MatchesByDate fetches the day's fixtures ("YYYY-MM-DD").
func (c *Client) MatchesByDate(ctx context.Context, date string) ([]Match, error) {
	params := url.Values{}
	params.Set("key", c.key)
	params.Set("secret", c.secret)
	params.Set("date", date)

	var out struct {
		Success bool `json:"success"`
		Data    struct {
			Match []Match `json:"match"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/scores/history.json", params, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, fmt.Errorf("livescore: unsuccessful response")
	}
	return out.Data.Match, nil
}

// get performs a rate-limited GET and decodes the JSON response.
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("livescore error %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
