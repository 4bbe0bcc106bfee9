package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fintrack/finance-system/internal/core/domain"
)

// quoteTTL keeps quotes fresh enough for a dashboard while absorbing
// repeated reads and the popular-stocks fan-out.
const quoteTTL = time.Minute

// QuoteCache caches upstream market quotes in Redis.
// Key format: quote:<symbol>
type QuoteCache struct {
	client *redis.Client
}

// NewQuoteCache creates a QuoteCache wrapping the given Redis client.
func NewQuoteCache(client *redis.Client) *QuoteCache {
	return &QuoteCache{client: client}
}

// Get returns the cached quote for symbol. A miss is (nil, false, nil).
func (c *QuoteCache) Get(ctx context.Context, symbol string) (*domain.Quote, bool, error) {
	raw, err := c.client.Get(ctx, c.key(symbol)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("quote cache get: %w", err)
	}

	var quote domain.Quote
	if err := json.Unmarshal(raw, &quote); err != nil {
		return nil, false, fmt.Errorf("quote cache decode: %w", err)
	}
	return &quote, true, nil
}

// Set stores the quote for symbol with the cache TTL.
func (c *QuoteCache) Set(ctx context.Context, symbol string, quote *domain.Quote) error {
	raw, err := json.Marshal(quote)
	if err != nil {
		return fmt.Errorf("quote cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(symbol), raw, quoteTTL).Err()
}

func (c *QuoteCache) key(symbol string) string {
	return "quote:" + symbol
}
