package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"temple-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Client is the subset of redis commands the catalog cache needs.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// CatalogCache is a cache-aside decorator over the seva and gotra master data.
// Redis failures fall through to the wrapped store.
type CatalogCache struct {
	next   queries.SevaReadStore
	client Client
	prefix string
	ttl    time.Duration
}

var _ queries.SevaReadStore = (*CatalogCache)(nil)

func NewCatalogCache(next queries.SevaReadStore, client Client, prefix string, ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		next:   next,
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *CatalogCache) ListSevas(ctx context.Context) ([]*queries.SevaView, error) {
	return cached(ctx, c, c.key("sevas"), func() ([]*queries.SevaView, error) {
		return c.next.ListSevas(ctx)
	})
}

func (c *CatalogCache) FindSevaByID(ctx context.Context, id uuid.UUID) (*queries.SevaView, error) {
	return cached(ctx, c, c.key("seva", id.String()), func() (*queries.SevaView, error) {
		return c.next.FindSevaByID(ctx, id)
	})
}

func (c *CatalogCache) ListGotras(ctx context.Context) ([]*queries.GotraView, error) {
	return cached(ctx, c, c.key("gotras"), func() ([]*queries.GotraView, error) {
		return c.next.ListGotras(ctx)
	})
}

func (c *CatalogCache) FindGotraByID(ctx context.Context, id uuid.UUID) (*queries.GotraView, error) {
	return cached(ctx, c, c.key("gotra", id.String()), func() (*queries.GotraView, error) {
		return c.next.FindGotraByID(ctx, id)
	})
}

func (c *CatalogCache) key(parts ...string) string {
	k := c.prefix + ":catalog"
	for _, p := range parts {
		k += ":" + p
	}
	return k
}

// cached serves key from redis or loads and stores it. Load errors, including
// not found, are never cached.
func cached[T any](ctx context.Context, c *CatalogCache, key string, load func() (T, error)) (T, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var v T
		if uerr := json.Unmarshal(raw, &v); uerr == nil {
			return v, nil
		}
		slog.Warn("Discarding undecodable cache entry", "key", key)
	case !errors.Is(err, redis.Nil):
		slog.Warn("Cache read failed", "key", key, "error", err.Error())
	}

	v, err := load()
	if err != nil {
		return v, err
	}

	payload, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Cache encode failed", "key", key, "error", err.Error())
		return v, nil
	}
	if serr := c.client.Set(ctx, key, payload, c.ttl).Err(); serr != nil {
		slog.Warn("Cache write failed", "key", key, "error", serr.Error())
	}
	return v, nil
}
