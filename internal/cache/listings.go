// Package cache provides the Redis-backed movie listing cache. Cached
// entries are namespaced by a version counter; invalidation bumps the
// counter instead of scanning for keys, so a single INCR drops every cached
// listing at once. Superseded entries simply age out through their TTL.
package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/iliyamo/movie-catalog/internal/config"
)

// Listings caches serialized movie listings and detail responses. A nil
// Redis client or a disabled config turns every operation into a no-op, so
// the service degrades to store-only reads when Redis is unavailable.
type Listings struct {
	rdb    *redis.Client
	cfg    config.CacheConfig
	logger *zap.Logger
}

// NewListings constructs a listing cache. rdb may be nil.
func NewListings(cfg config.CacheConfig, rdb *redis.Client, logger *zap.Logger) *Listings {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Listings{rdb: rdb, cfg: cfg, logger: logger}
}

func (l *Listings) enabled() bool {
	return l != nil && l.cfg.Enabled && l.rdb != nil
}

// versionedKey resolves the current namespace version and builds the full
// Redis key for a cache entry name.
func (l *Listings) versionedKey(ctx context.Context, name string) (string, error) {
	ver, err := l.rdb.Get(ctx, l.cfg.Prefix+":ver").Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}
	return fmt.Sprintf("%s:v%d:%s", l.cfg.Prefix, ver, name), nil
}

// Get returns the cached payload for name, or false on a miss. Redis errors
// are logged and reported as misses.
func (l *Listings) Get(ctx context.Context, name string) ([]byte, bool) {
	if !l.enabled() {
		return nil, false
	}
	key, err := l.versionedKey(ctx, name)
	if err != nil {
		l.logger.Warn("cache version lookup failed", zap.Error(err))
		return nil, false
	}
	payload, err := l.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			l.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return payload, true
}

// Set stores a payload under name with the configured TTL. Failures are
// logged and otherwise ignored; a cold cache is never an error.
func (l *Listings) Set(ctx context.Context, name string, payload []byte) {
	if !l.enabled() {
		return
	}
	key, err := l.versionedKey(ctx, name)
	if err != nil {
		return
	}
	if err := l.rdb.Set(ctx, key, payload, l.cfg.TTL).Err(); err != nil {
		l.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate drops all cached listings by bumping the namespace version.
// Entries written under the old version become unreachable and expire on
// their own.
func (l *Listings) Invalidate(ctx context.Context) {
	if !l.enabled() {
		return
	}
	if err := l.rdb.Incr(ctx, l.cfg.Prefix+":ver").Err(); err != nil {
		l.logger.Warn("cache invalidation failed", zap.Error(err))
	}
}
