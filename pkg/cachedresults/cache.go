package cachedresults

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type Cache struct {
	Cache *cache.Cache[string]
}

func New(client *redis.Client) *Cache {
	redisStore := redisstore.NewRedis(client)

	return &Cache{
		Cache: cache.New[string](redisStore),
	}
}

// envelope tags the cached payload with its Go type so a stored empty value is never read as a miss
type envelope struct {
	Type string          `json:"t"`
	Data json.RawMessage `json:"d"`
}

func typeTag[V any]() string {
	return reflect.TypeOf((*V)(nil)).Elem().String()
}

// Fetch returns the cached value for key, or calls fetch and caches its result for ttl.
// Errors from fetch are returned unchanged and nothing is cached.
func Fetch[V any](ctx context.Context, c *Cache, key string, ttl time.Duration, fetch func(ctx context.Context) (V, error)) (V, error) {
	if value, hit := lookup[V](ctx, c, key); hit {
		log.Debug().Str("key", key).Msg("Cache hit")
		return value, nil
	}
	log.Debug().Str("key", key).Msg("Cache miss")

	value, err := fetch(ctx)
	if err != nil {
		return value, err
	}

	save(ctx, c, key, ttl, value)

	return value, nil
}

func lookup[V any](ctx context.Context, c *Cache, key string) (V, bool) {
	var value V

	cachedValue, err := c.Cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, redis.Nil) && !errors.Is(err, store.NotFound{}) {
			log.Warn().Err(err).Str("key", key).Msg("Failed to read cache")
		}
		return value, false
	}

	var cached envelope
	if err := json.Unmarshal([]byte(cachedValue), &cached); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Discarding unreadable cache entry")
		return value, false
	}

	if cached.Type != typeTag[V]() {
		log.Warn().Str("key", key).Str("type", cached.Type).Msg("Discarding cache entry of unexpected type")
		return value, false
	}

	if err := json.Unmarshal(cached.Data, &value); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Discarding unreadable cache entry")
		return value, false
	}

	return value, true
}

func save[V any](ctx context.Context, c *Cache, key string, ttl time.Duration, value V) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to encode cache entry")
		return
	}

	encoded, err := json.Marshal(envelope{Type: typeTag[V](), Data: data})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to encode cache entry")
		return
	}

	if err := c.Cache.Set(ctx, key, string(encoded), store.WithExpiration(ttl)); err != nil {
		log.Error().Err(err).Str("key", key).Str("ttl", ttl.String()).Msg("Failed to write cache entry")
	}
}
