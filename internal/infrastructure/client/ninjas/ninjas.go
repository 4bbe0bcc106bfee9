// Package ninjas implements the financial-advice client against the
// API-Ninjas quotes endpoint (https://api-ninjas.com/api/quotes).
package ninjas

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/fintrack/finance-system/internal/api/metrics"
	"github.com/fintrack/finance-system/internal/core/domain"
)

const (
	defaultBaseURL = "https://api.api-ninjas.com/v1"
	requestTimeout = 10 * time.Second
	providerLabel  = "ninjas"
)

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// New creates an API-Ninjas client. An empty apiKey makes every call return
// domain.ErrNotConfigured.
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

// MoneyQuotes fetches up to limit money-category quotes. The key travels in
// the X-Api-Key header, not the query string.
func (c *Client) MoneyQuotes(ctx context.Context, limit int) ([]domain.AdviceQuote, error) {
	if c.apiKey == "" {
		return nil, domain.ErrNotConfigured
	}

	reqURL := c.baseURL + "/quotes?category=money&limit=" + strconv.Itoa(limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("ninjas request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	start := time.Now()
	res, err := c.http.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(providerLabel).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(providerLabel, "error").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		metrics.UpstreamRequestsTotal.WithLabelValues(providerLabel, "error").Inc()
		return nil, fmt.Errorf("%w: api-ninjas returned %d", domain.ErrUpstream, res.StatusCode)
	}

	quotes := []domain.AdviceQuote{}
	if err := json.NewDecoder(res.Body).Decode(&quotes); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(providerLabel, "error").Inc()
		return nil, fmt.Errorf("%w: decode api-ninjas response: %v", domain.ErrUpstream, err)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(providerLabel, "ok").Inc()
	return quotes, nil
}
