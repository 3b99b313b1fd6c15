package analysedby

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/GoSim-25-26J-441/seqr-views/internal/projection"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "seqr:analysed_by:" // seqr:analysed_by:{family_id}
	defaultTTL = 5 * time.Minute
)

// Cache serves analysed-by summaries from Redis and fills misses from the
// wrapped Source. Redis failures degrade to the Source.
type Cache struct {
	client *redis.Client
	source Source
	ttl    time.Duration
	logger *slog.Logger
}

type CacheOption func(*Cache)

func WithTTL(ttl time.Duration) CacheOption {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

func WithLogger(logger *slog.Logger) CacheOption {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewCache(client *redis.Client, source Source, opts ...CacheOption) *Cache {
	c := &Cache{
		client: client,
		source: source,
		ttl:    defaultTTL,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cache) AnalysedBy(ctx context.Context, familyID int64) ([]projection.AnalysedBy, error) {
	key := cacheKey(familyID)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var entries []projection.AnalysedBy
		if err := json.Unmarshal(data, &entries); err == nil {
			return entries, nil
		}
		c.logger.Warn("discarding corrupt analysed-by cache entry", slog.String("key", key))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("analysed-by cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	entries, err := c.source.AnalysedBy(ctx, familyID)
	if err != nil {
		return nil, err
	}

	data, err = json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysed by: %w", err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("analysed-by cache write failed", slog.String("key", key), slog.Any("error", err))
	}
	return entries, nil
}

func cacheKey(familyID int64) string {
	return keyPrefix + strconv.FormatInt(familyID, 10)
}
