package domain

import "errors"

// ErrNotConfigured signals that the API key for an upstream provider is
// missing from configuration. It is reported distinctly from upstream
// failures so operators can tell misconfiguration from outage.
var ErrNotConfigured = errors.New("provider not configured")

// ErrUpstream signals that an upstream provider call failed (network error or
// non-2xx response).
var ErrUpstream = errors.New("upstream request failed")

// Quote is a point-in-time market quote for a symbol.
type Quote struct {
	Current       float64 `json:"c"`
	Change        float64 `json:"d"`
	ChangePercent float64 `json:"dp"`
	High          float64 `json:"h"`
	Low           float64 `json:"l"`
	Open          float64 `json:"o"`
	PrevClose     float64 `json:"pc"`
}

// StockProfile carries the display fields of a company profile.
type StockProfile struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// ScreenerStock is one row of the market screener used for gainers.
type ScreenerStock struct {
	Symbol        string  `json:"symbol"`
	Description   string  `json:"description,omitempty"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	Price         float64 `json:"price"`
}

// ForexRates holds exchange rates relative to a base currency.
type ForexRates struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"quote"`
}

// NewsArticle is a single article from the news provider.
type NewsArticle struct {
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	Description string   `json:"description,omitempty"`
	PubDate     string   `json:"pubDate,omitempty"`
	SourceID    string   `json:"source_id,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Creator     []string `json:"creator,omitempty"`
}

// AdviceQuote is a financial tip returned by the advice provider.
type AdviceQuote struct {
	Quote    string `json:"quote"`
	Author   string `json:"author"`
	Category string `json:"category"`
}
