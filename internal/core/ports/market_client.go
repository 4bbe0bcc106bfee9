package ports

import (
	"context"

	"github.com/fintrack/finance-system/internal/core/domain"
)

// MarketClient abstracts the market-data provider (Finnhub).
// Implementations return domain.ErrNotConfigured when no API key is set and
// wrap transport failures in domain.ErrUpstream.
type MarketClient interface {
	Quote(ctx context.Context, symbol string) (*domain.Quote, error)
	Profile(ctx context.Context, symbol string) (*domain.StockProfile, error)
	Screener(ctx context.Context, exchange string) ([]domain.ScreenerStock, error)
	ForexRates(ctx context.Context, base string) (*domain.ForexRates, error)
}

// NewsClient abstracts the news provider (NewsData.io).
type NewsClient interface {
	BusinessNews(ctx context.Context, query string) ([]domain.NewsArticle, error)
}

// AdviceClient abstracts the financial-tips provider (API-Ninjas).
type AdviceClient interface {
	MoneyQuotes(ctx context.Context, limit int) ([]domain.AdviceQuote, error)
}

// QuoteCache caches upstream quote payloads for a short TTL. A miss is
// (nil, false, nil); cache errors are returned so callers can degrade to a
// direct fetch.
type QuoteCache interface {
	Get(ctx context.Context, symbol string) (*domain.Quote, bool, error)
	Set(ctx context.Context, symbol string, quote *domain.Quote) error
}
