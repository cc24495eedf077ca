package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks/internal/middleware"
	"github.com/redis/go-redis/v9"
)

const ledgerKeyPrefix = "bizbooks:ledgers"

// LedgerCache keeps each business's active ledger list in Redis as JSON.
// A nil *LedgerCache, or one without a client, always calls the loader.
type LedgerCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLedgerCache instantiates the cache. A nil client disables caching.
func NewLedgerCache(client *redis.Client, ttl time.Duration) *LedgerCache {
	return &LedgerCache{client: client, ttl: ttl}
}

var _ portsrepo.LedgerListCache = (*LedgerCache)(nil)

func ledgerKey(businessID string) string {
	return strings.Join([]string{ledgerKeyPrefix, businessID}, ":")
}

// FetchLedgers returns the cached list or populates it using the loader.
// Redis failures are logged and fall through to the loader so the cache never fails a request.
func (c *LedgerCache) FetchLedgers(ctx context.Context, businessID string, loader func(context.Context) ([]domain.Ledger, error)) ([]domain.Ledger, error) {
	if loader == nil {
		return nil, errors.New("cache: loader required")
	}
	if c == nil || c.client == nil {
		return loader(ctx)
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	key := ledgerKey(businessID)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var ledgers []domain.Ledger
		if err := json.Unmarshal(payload, &ledgers); err == nil {
			return ledgers, nil
		}
		logger.Warn("Discarding undecodable ledger cache entry", slog.String("key", key))
	} else if !errors.Is(err, redis.Nil) {
		logger.Warn("Ledger cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	ledgers, err := loader(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(ledgers)
	if err != nil {
		return ledgers, nil
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logger.Warn("Ledger cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	return ledgers, nil
}

// InvalidateLedgers drops the cached list for a business.
func (c *LedgerCache) InvalidateLedgers(ctx context.Context, businessID string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, ledgerKey(businessID)).Err()
}

// NewRedisClient parses a redis:// URL. An empty URL returns nil, which disables caching.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		return nil, nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
