// Package balldontlie implements the NBA statistics gateway on top of the
// BallDontLie REST API (https://api.balldontlie.io).
package balldontlie

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
	// DefaultBaseURL is the BallDontLie v1 API root.
	DefaultBaseURL = "https://api.balldontlie.io/v1"

	// Free tier allows 5 requests per minute; stay well under it.
	defaultRateLimit = 1.0
	defaultBurst     = 3
)

// Client is a thin BallDontLie API client.
type Client struct {
	baseURL    string
	apiKey     string
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

// WithRateLimit sets custom rate limiting.
func WithRateLimit(rps float64, burst int) ClientOption {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// NewClient creates a BallDontLie client authenticated with the given key.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
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

// Team is a BallDontLie team record.
type Team struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
	Name     string `json:"name"`
	City     string `json:"city"`
}

// Player is a BallDontLie player record.
type Player struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Game is a BallDontLie game record. Status is "Final" once settled.
type Game struct {
	ID          int    `json:"id"`
	Status      string `json:"status"`
	HomeTeam    Team   `json:"home_team"`
	VisitorTeam Team   `json:"visitor_team"`
}

// StatLine is one player's box score in one game.
type StatLine struct {
	Pts    float64 `json:"pts"`
	Ast    float64 `json:"ast"`
	Reb    float64 `json:"reb"`
	Fg3m   float64 `json:"fg3m"`
	Blk    float64 `json:"blk"`
	Stl    float64 `json:"stl"`
	Game   Game    `json:"game"`
	Player Player  `json:"player"`
}

// SearchPlayers looks up players by a name fragment.
func (c *Client) SearchPlayers(ctx context.Context, search string) ([]Player, error) {
	params := url.Values{}
	params.Set("search", search)

	var out struct {
		Data []Player `json:"data"`
	}
	if err := c.get(ctx, "/players", params, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// GamesByDate fetches all games on a "YYYY-MM-DD" date.
func (c *Client) GamesByDate(ctx context.Context, date string) ([]Game, error) {
	params := url.Values{}
	params.Set("dates[]", date)

	var out struct {
		Data []Game `json:"data"`
	}
	if err := c.get(ctx, "/games", params, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Stats fetches a player's box score for a specific game.
func (c *Client) Stats(ctx context.Context, gameID, playerID int) ([]StatLine, error) {
	params := url.Values{}
	params.Set("game_ids[]", fmt.Sprintf("%d", gameID))
	params.Set("player_ids[]", fmt.Sprintf("%d", playerID))

	var out struct {
		Data []StatLine `json:"data"`
	}
	if err := c.get(ctx, "/stats", params, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
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
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("balldontlie error %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
