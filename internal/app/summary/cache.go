package summary

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CachedSummarizer memoizes summaries in Redis keyed on a hash of the note
// content. Summaries are immutable once stored, so a cache hit is always
// valid. Redis being down only costs the memoization: every failure falls
// through to the inner summarizer.
type CachedSummarizer struct {
	inner Summarizer
	rdb   *redis.Client
	ttl   time.Duration
	log   *zap.SugaredLogger
}

func NewCachedSummarizer(inner Summarizer, rdb *redis.Client, ttl time.Duration, log *zap.SugaredLogger) *CachedSummarizer {
	return &CachedSummarizer{inner: inner, rdb: rdb, ttl: ttl, log: log}
}

func (c *CachedSummarizer) Summarize(ctx context.Context, text string) *string {
	if text == "" {
		return nil
	}

	key := cacheKey(text)
	cached, err := c.rdb.Get(ctx, key).Result()
	if err == nil {
		return &cached
	}
	if !errors.Is(err, redis.Nil) {
		c.log.Debugw("summary cache read failed", "error", err)
	}

	result := c.inner.Summarize(ctx, text)

	// Placeholders are not cached so a recovered tool gets another chance.
	if result != nil && *result != Fallback {
		if err := c.rdb.Set(ctx, key, *result, c.ttl).Err(); err != nil {
			c.log.Debugw("summary cache write failed", "error", err)
		}
	}
	return result
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "summary:" + hex.EncodeToString(sum[:])
}
