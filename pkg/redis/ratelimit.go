package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter implements sliding-window rate limiting using Redis.
type RateLimiter struct {
	client *Client
	prefix string
}

// RateLimitConfig defines rate limit parameters.
type RateLimitConfig struct {
	Key    string        // unique identifier (e.g., a user ID)
	Limit  int           // maximum requests allowed
	Window time.Duration // time window
}

// NewRateLimiter creates a rate limiter.
func NewRateLimiter(client *Client, prefix string) *RateLimiter {
	return &RateLimiter{client: client, prefix: prefix}
}

// Allow checks whether a request fits under the limit.
// Returns (allowed, remaining, error). Disabled Redis allows all.
func (r *RateLimiter) Allow(ctx context.Context, cfg RateLimitConfig) (bool, int, error) {
	if !r.client.Enabled() {
		return true, cfg.Limit, nil
	}

	key := fmt.Sprintf("%s:ratelimit:%s", r.prefix, cfg.Key)
	now := time.Now().UnixMilli()
	windowStart := now - cfg.Window.Milliseconds()

	// Lua script keeps remove-count-add atomic.
	script := redis.NewScript(`
		local key = KEYS[1]
		local now = tonumber(ARGV[1])
		local window_start = tonumber(ARGV[2])
		local limit = tonumber(ARGV[3])
		local window_ms = tonumber(ARGV[4])

		redis.call('ZREMRANGEBYSCORE', key, '-inf', window_start)
		local count = redis.call('ZCARD', key)

		if count < limit then
			redis.call('ZADD', key, now, now)
			redis.call('PEXPIRE', key, window_ms)
			return {1, limit - count - 1}
		else
			return {0, 0}
		end
	`)

	result, err := script.Run(ctx, r.client.Redis(), []string{key},
		now, windowStart, cfg.Limit, cfg.Window.Milliseconds(),
	).Slice()
	if err != nil {
		return false, 0, fmt.Errorf("rate limit script failed: %w", err)
	}

	allowed := result[0].(int64) == 1
	remaining := int(result[1].(int64))
	return allowed, remaining, nil
}

// ReadingRateLimit caps per-user reading generation. Decision readings
// are unconstrained in count by the idempotency rules, so the API layer
// applies this to keep one user from hammering the draw endpoints.
func ReadingRateLimit(userID string) RateLimitConfig {
	return RateLimitConfig{
		Key:    "readings:" + userID,
		Limit:  30,
		Window: time.Minute,
	}
}
