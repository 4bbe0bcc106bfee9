package ports

import (
	"context"

	"github.com/fintrack/finance-system/internal/core/domain"
)

// PopularStock merges a quote with profile display fields for one symbol.
// The quote fields are flattened into the JSON object.
type PopularStock struct {
	Symbol string `json:"symbol"`
	domain.Quote
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// IndexQuote is a named market index with its current quote flattened in.
type IndexQuote struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	domain.Quote
}

// MarketService defines the use-cases behind /api/external. Fan-out
// operations wait for every sub-call to settle and drop failed entries.
type MarketService interface {
	Quote(ctx context.Context, symbol string) (*domain.Quote, error)
	Gainers(ctx context.Context) ([]domain.ScreenerStock, error)
	Popular(ctx context.Context) ([]PopularStock, error)
	Trends(ctx context.Context) ([]IndexQuote, error)
	Rates(ctx context.Context) (*domain.ForexRates, error)
	News(ctx context.Context, category string) ([]domain.NewsArticle, error)
	Advice(ctx context.Context) ([]domain.AdviceQuote, error)
}
