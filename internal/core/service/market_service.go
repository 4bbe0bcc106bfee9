package service

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/fintrack/finance-system/internal/api/metrics"
	"github.com/fintrack/finance-system/internal/core/domain"
	"github.com/fintrack/finance-system/internal/core/ports"
)

const maxGainers = 10

// popularSymbols is the fixed fan-out list for GET /market/popular.
var popularSymbols = []string{
	"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA", "META", "NVDA", "JPM", "V", "JNJ",
}

// marketIndices is the fixed index list for GET /market/trends.
var marketIndices = []ports.IndexQuote{
	{Symbol: "^GSPC", Name: "S&P 500"},
	{Symbol: "^DJI", Name: "Dow Jones"},
	{Symbol: "^IXIC", Name: "NASDAQ"},
	{Symbol: "^NSEI", Name: "NSE Nifty"},
	{Symbol: "^BSESN", Name: "BSE Sensex"},
}

// MarketService proxies and reshapes third-party market, news and advice
// data. Fan-out operations wait for all sub-calls to settle and keep only the
// successful results, so one failed symbol never fails the whole response.
type MarketService struct {
	market ports.MarketClient
	news   ports.NewsClient
	advice ports.AdviceClient
	cache  ports.QuoteCache
	logger zerolog.Logger
}

func NewMarketService(market ports.MarketClient, news ports.NewsClient, advice ports.AdviceClient, cache ports.QuoteCache, logger zerolog.Logger) *MarketService {
	return &MarketService{market: market, news: news, advice: advice, cache: cache, logger: logger}
}

// Quote fetches a single quote, consulting the cache first. Cache errors
// degrade to a direct fetch.
func (s *MarketService) Quote(ctx context.Context, symbol string) (*domain.Quote, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, symbol)
		if err != nil {
			s.logger.Warn().Err(err).Str("symbol", symbol).Msg("quote cache read failed")
		} else if ok {
			metrics.MarketCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		} else {
			metrics.MarketCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	quote, err := s.market.Quote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, symbol, quote); err != nil {
			s.logger.Warn().Err(err).Str("symbol", symbol).Msg("quote cache write failed")
		}
	}
	return quote, nil
}

// Gainers returns the top risers of the US screener, sorted by change
// percent descending and capped at maxGainers.
func (s *MarketService) Gainers(ctx context.Context) ([]domain.ScreenerStock, error) {
	stocks, err := s.market.Screener(ctx, "US")
	if err != nil {
		return nil, err
	}

	gainers := make([]domain.ScreenerStock, 0, len(stocks))
	for _, st := range stocks {
		if st.Change > 0 {
			gainers = append(gainers, st)
		}
	}
	sort.Slice(gainers, func(i, j int) bool {
		return gainers[i].ChangePercent > gainers[j].ChangePercent
	})
	if len(gainers) > maxGainers {
		gainers = gainers[:maxGainers]
	}
	return gainers, nil
}

// Popular fans out quote+profile requests for the fixed symbol list. Symbols
// whose quote fails are dropped; a missing profile falls back to the symbol
// itself as display name.
func (s *MarketService) Popular(ctx context.Context) ([]ports.PopularStock, error) {
	results := make([]*ports.PopularStock, len(popularSymbols))

	var wg sync.WaitGroup
	for i, symbol := range popularSymbols {
		wg.Add(1)
		go func(i int, symbol string) {
			defer wg.Done()

			quote, err := s.Quote(ctx, symbol)
			if err != nil {
				s.logger.Warn().Err(err).Str("symbol", symbol).Msg("popular quote failed")
				return
			}

			stock := &ports.PopularStock{Symbol: symbol, Quote: *quote, Name: symbol}
			if profile, err := s.market.Profile(ctx, symbol); err == nil {
				if profile.Name != "" {
					stock.Name = profile.Name
				}
				stock.Logo = profile.Logo
			}
			results[i] = stock
		}(i, symbol)
	}
	wg.Wait()

	out := make([]ports.PopularStock, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, nil
}

// Trends fans out quote requests for the fixed index list, dropping failures.
func (s *MarketService) Trends(ctx context.Context) ([]ports.IndexQuote, error) {
	results := make([]*ports.IndexQuote, len(marketIndices))

	var wg sync.WaitGroup
	for i, index := range marketIndices {
		wg.Add(1)
		go func(i int, index ports.IndexQuote) {
			defer wg.Done()

			quote, err := s.market.Quote(ctx, index.Symbol)
			if err != nil {
				s.logger.Warn().Err(err).Str("symbol", index.Symbol).Msg("index quote failed")
				return
			}
			index.Quote = *quote
			results[i] = &index
		}(i, index)
	}
	wg.Wait()

	out := make([]ports.IndexQuote, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *MarketService) Rates(ctx context.Context) (*domain.ForexRates, error) {
	return s.market.ForexRates(ctx, domain.CurrencyUSD)
}

func (s *MarketService) News(ctx context.Context, category string) ([]domain.NewsArticle, error) {
	if category == "" {
		category = "finance"
	}
	return s.news.BusinessNews(ctx, category)
}

func (s *MarketService) Advice(ctx context.Context) ([]domain.AdviceQuote, error) {
	return s.advice.MoneyQuotes(ctx, maxGainers)
}
