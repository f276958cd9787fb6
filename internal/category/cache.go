package category

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultCacheTTL = 5 * time.Minute
	labelsKey       = "trivia:categories:labels"
)

// Cache keeps the category label map in Redis. Categories are read-only to
// this service, so a TTL is the only invalidation needed.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ LabelCache = (*Cache)(nil)

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// Get returns nil, nil on a cache miss.
func (c *Cache) Get(ctx context.Context) (Labels, error) {
	data, err := c.client.Get(ctx, labelsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var labels Labels
	if err := json.Unmarshal(data, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

func (c *Cache) Set(ctx context.Context, labels Labels) error {
	data, err := json.Marshal(labels)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, labelsKey, data, c.ttl).Err()
}
