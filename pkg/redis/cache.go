package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Cache provides typed JSON caching on top of the client.
type Cache struct {
	client *Client
	prefix string
}

// NewCache creates a cache helper. Keys are namespaced under prefix.
func NewCache(client *Client, prefix string) *Cache {
	return &Cache{client: client, prefix: prefix}
}

// Get retrieves a cached value into dest. A miss (or disabled Redis)
// returns (false, nil).
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if !c.client.Enabled() {
		return false, nil
	}

	fullKey := fmt.Sprintf("%s:cache:%s", c.prefix, key)
	data, err := c.client.Redis().Get(ctx, fullKey).Bytes()
	if err != nil {
		// Key not found is not an error.
		return false, nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("cache unmarshal failed: %w", err)
	}
	return true, nil
}

// Set stores a value with TTL.
func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if !c.client.Enabled() {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal failed: %w", err)
	}

	fullKey := fmt.Sprintf("%s:cache:%s", c.prefix, key)
	return c.client.Redis().Set(ctx, fullKey, data, ttl).Err()
}

// Delete removes a cached value.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if !c.client.Enabled() {
		return nil
	}

	fullKey := fmt.Sprintf("%s:cache:%s", c.prefix, key)
	return c.client.Redis().Del(ctx, fullKey).Err()
}

// Predefined TTLs.
const (
	TTLShort  = 1 * time.Minute  // geocoding lookups
	TTLMedium = 10 * time.Minute // user profiles
	TTLDaily  = 24 * time.Hour   // daily readings
)

// Cache key generators.

// DailyReadingKey keys a user's daily reading for one calendar day.
func DailyReadingKey(userID, date string) string {
	return fmt.Sprintf("reading:daily:%s:%s", userID, date)
}

// ProfileKey keys a user's natal profile.
func ProfileKey(userID string) string {
	return fmt.Sprintf("profile:%s", userID)
}

// GeoKey keys a geocoding lookup by normalized city name.
func GeoKey(city string) string {
	return fmt.Sprintf("geo:%s", city)
}
