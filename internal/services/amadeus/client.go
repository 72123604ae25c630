package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/greentrip/internal/common"
	"github.com/ternarybob/greentrip/internal/httpclient"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL   = "https://test.api.amadeus.com"
	tokenPath        = "/v1/security/oauth2/token"
	tokenRefreshSkew = 30 * time.Second
)

// APIError represents an error response from the Amadeus API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("amadeus API error (status %d): %s", e.StatusCode, e.Message)
}

// Client is an Amadeus self-service API client covering flight offers,
// hotel offers and airport reference data.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	logger      arbor.ILogger

	creds clientcredentials.Config

	tokenMu sync.Mutex
	token   *oauth2.Token
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL overrides the API base URL (test vs production)
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithRateLimit sets the maximum requests per second
func WithRateLimit(rps int) ClientOption {
	return func(c *Client) {
		if rps > 0 {
			c.rateLimiter = rate.NewLimiter(rate.Limit(rps), rps)
		}
	}
}

// NewClient creates an Amadeus client with the given credentials
func NewClient(apiKey, apiSecret string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:     defaultBaseURL,
		httpClient:  httpclient.NewDefaultClient(15 * time.Second),
		rateLimiter: rate.NewLimiter(rate.Limit(5), 5),
		logger:      common.GetLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.creds = clientcredentials.Config{
		ClientID:     apiKey,
		ClientSecret: apiSecret,
		TokenURL:     c.baseURL + tokenPath,
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	return c
}

// Configured reports whether credentials are present
func (c *Client) Configured() bool {
	return c.creds.ClientID != "" && c.creds.ClientSecret != ""
}

// accessToken returns a cached OAuth token, refreshing it when within
// tokenRefreshSkew of expiry. A stale "still valid" read only costs one
// extra auth round trip on the next call.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()

	if c.token != nil && c.token.Expiry.After(time.Now().Add(tokenRefreshSkew)) {
		return c.token.AccessToken, nil
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	token, err := c.creds.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to obtain amadeus token: %w", err)
	}

	c.token = token
	c.logger.Debug().Str("expires", token.Expiry.Format(time.RFC3339)).Msg("Refreshed access token")
	return token.AccessToken, nil
}

// get performs an authenticated GET and decodes the JSON response into out
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait failed: %w", err)
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	return nil
}
