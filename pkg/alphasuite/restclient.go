package alphasuite

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RESTClient pulls snapshot state from the backend dashboard API.
type RESTClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewRESTClient(baseURL string, timeout time.Duration) *RESTClient {
	return &RESTClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetStats fetches the authoritative counters snapshot.
func (c *RESTClient) GetStats(ctx context.Context) (Stats, error) {
	var stats Stats
	if err := c.getJSON(ctx, "/api/stats", &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// GetTokens fetches the recently discovered tokens, newest first.
func (c *RESTClient) GetTokens(ctx context.Context) ([]Token, error) {
	var tokens []Token
	if err := c.getJSON(ctx, "/api/tokens", &tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

// GetTrades fetches the recent large-wallet trades, newest first.
func (c *RESTClient) GetTrades(ctx context.Context) ([]Trade, error) {
	var trades []Trade
	if err := c.getJSON(ctx, "/api/trades", &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// GetArbs fetches the recent arbitrage opportunities, newest first.
func (c *RESTClient) GetArbs(ctx context.Context) ([]Arb, error) {
	var arbs []Arb
	if err := c.getJSON(ctx, "/api/arbitrage", &arbs); err != nil {
		return nil, err
	}
	return arbs, nil
}

func (c *RESTClient) getJSON(ctx context.Context, path string, out any) error {
	endpoint := c.baseURL + path

	// Construct the GET request with context for timeout/cancel support
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	// Execute the HTTP request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	// Check HTTP status code
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("backend error: %s", body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
