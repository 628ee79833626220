package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"
)

// Aggregate responses change only when the external ingestion pipeline
// appends rows, so a short TTL keeps them fresh enough.
const _TTL = time.Second * 30

type Cache struct {
	cache *ristretto.Cache
}

func NewCache() (*Cache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,     // number of keys to track frequency of
		MaxCost:     1 << 20, // maximum cost of cache
		BufferItems: 64,      // number of keys per Get buffer
	})
	if err != nil {
		return nil, err
	}

	return &Cache{
		cache: cache,
	}, nil
}

func (c *Cache) Set(key string, value interface{}) {
	c.cache.SetWithTTL(key, value, 1, _TTL)
}

func (c *Cache) Get(key string) (interface{}, bool) {
	return c.cache.Get(key)
}

func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	c.cache.SetWithTTL(key, value, 1, ttl)
}

func (c *Cache) Clear() {
	c.cache.Close()
}
