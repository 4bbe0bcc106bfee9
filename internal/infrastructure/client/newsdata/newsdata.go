// Package newsdata implements the news client against the NewsData.io
// HTTP API (https://newsdata.io/documentation).
package newsdata

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
	defaultBaseURL = "https://newsdata.io/api/1"
	requestTimeout = 10 * time.Second
	providerLabel  = "newsdata"
)

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// New creates a NewsData client. An empty apiKey makes every call return
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

type newsResponse struct {
	Status  string               `json:"status"`
	Results []domain.NewsArticle `json:"results"`
}

// BusinessNews fetches English business-category articles matching query.
func (c *Client) BusinessNews(ctx context.Context, query string) ([]domain.NewsArticle, error) {
	if c.apiKey == "" {
		return nil, domain.ErrNotConfigured
	}

	params := url.Values{
		"apikey":   {c.apiKey},
		"category": {"business"},
		"language": {"en"},
		"q":        {query},
	}
	reqURL := c.baseURL + "/news?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("newsdata request: %w", err)
	}

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
		return nil, fmt.Errorf("%w: newsdata returned %d", domain.ErrUpstream, res.StatusCode)
	}

	var resp newsResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(providerLabel, "error").Inc()
		return nil, fmt.Errorf("%w: decode newsdata response: %v", domain.ErrUpstream, err)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(providerLabel, "ok").Inc()
	return resp.Results, nil
}
