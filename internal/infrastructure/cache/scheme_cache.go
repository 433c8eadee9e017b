package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	schemeKeyPrefix = "schemes:"
	allSchemesKey   = schemeKeyPrefix + "all"
	searchKeyPrefix = schemeKeyPrefix + "search:"
)

// SchemeCache stores JSON-encoded scheme responses in Redis with a fixed TTL.
type SchemeCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSchemeCache(client *redis.Client, ttl time.Duration) *SchemeCache {
	return &SchemeCache{client: client, ttl: ttl}
}

// AllSchemesKey is the key of the full directory listing.
func AllSchemesKey() string {
	return allSchemesKey
}

// SearchKey derives a key from the recognized filters and pagination of a
// search. Equivalent requests map to the same key regardless of parameter order.
func SearchKey(filters map[string]string, page, limit int) string {
	values := url.Values{}
	for name, value := range filters {
		values.Set(name, value)
	}
	values.Set("page", fmt.Sprint(page))
	values.Set("limit", fmt.Sprint(limit))
	return searchKeyPrefix + values.Encode()
}

// Get decodes the cached value for key into dest. It reports false on a miss.
func (c *SchemeCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

func (c *SchemeCache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}
