// Package finnhub implements the market-data client against the Finnhub
// HTTP API (https://finnhub.io/docs/api).
package finnhub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/fintrack/finance-system/internal/api/metrics"
	"github.com/fintrack/finance-system/internal/core/domain"
)

const (
	defaultBaseURL = "https://finnhub.io/api/v1"
	requestTimeout = 10 * time.Second
	providerLabel  = "finnhub"
)

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// New creates a Finnhub client. An empty apiKey is allowed; every call then
// returns domain.ErrNotConfigured so routes degrade explicitly.
func New(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// NewWithBaseURL is used by tests to point the client at a stub server.
func NewWithBaseURL(apiKey, baseURL string) *Client {
	c := New(apiKey)
	c.baseURL = baseURL
	return c
}

func (c *Client) Quote(ctx context.Context, symbol string) (*domain.Quote, error) {
	var quote domain.Quote
	err := c.get(ctx, "/quote", url.Values{"symbol": {symbol}}, &quote)
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (c *Client) Profile(ctx context.Context, symbol string) (*domain.StockProfile, error) {
	var profile domain.StockProfile
	err := c.get(ctx, "/stock/profile2", url.Values{"symbol": {symbol}}, &profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

type screenerResponse struct {
	Results []domain.ScreenerStock `json:"results"`
}

func (c *Client) Screener(ctx context.Context, exchange string) ([]domain.ScreenerStock, error) {
	var resp screenerResponse
	err := c.get(ctx, "/stock/screener", url.Values{"exchange": {exchange}}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (c *Client) ForexRates(ctx context.Context, base string) (*domain.ForexRates, error) {
	var rates domain.ForexRates
	err := c.get(ctx, "/forex/rates", url.Values{"base": {base}}, &rates)
	if err != nil {
		return nil, err
	}
	return &rates, nil
}

// get performs an authenticated GET against the Finnhub API and decodes the
// JSON body into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if c.apiKey == "" {
		return domain.ErrNotConfigured
	}

	params.Set("token", c.apiKey)
	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("finnhub request: %w", err)
	}

	start := time.Now()
	res, err := c.http.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(providerLabel).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(providerLabel, "error").Inc()
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		metrics.UpstreamRequestsTotal.WithLabelValues(providerLabel, "error").Inc()
		return fmt.Errorf("%w: finnhub returned %d", domain.ErrUpstream, res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(providerLabel, "error").Inc()
		return fmt.Errorf("%w: decode finnhub response: %v", domain.ErrUpstream, err)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(providerLabel, "ok").Inc()
	return nil
}
