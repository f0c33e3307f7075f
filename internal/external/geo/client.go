// Package geo resolves birth cities to coordinates and a timezone
// through a public geocoding API. Lookups are best-effort enrichment:
// a failure here never blocks profile creation.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/lunarium/arcana/pkg/config"
	"github.com/lunarium/arcana/pkg/httputil"
	"github.com/lunarium/arcana/pkg/logger"
	"github.com/lunarium/arcana/pkg/redis"
)

// Location is a resolved birth place.
type Location struct {
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

// Client talks to the geocoding API. A local rate limiter keeps us
// polite toward the free upstream; results are cached in Redis.
type Client struct {
	http    *httputil.Client
	baseURL string
	enabled bool
	limiter *rate.Limiter
	cache   *redis.Cache
	logger  *logger.Logger
}

// NewClient creates a geocoding client. cache may be nil.
func NewClient(cfg *config.Config, http *httputil.Client, cache *redis.Cache, log *logger.Logger) *Client {
	return &Client{
		http:    http,
		baseURL: cfg.Geo.BaseURL,
		enabled: cfg.Geo.Enabled,
		limiter: rate.NewLimiter(rate.Limit(cfg.Geo.RateLimit), 1),
		cache:   cache,
		logger:  log,
	}
}

// searchResponse mirrors the upstream JSON shape.
type searchResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Timezone  string  `json:"timezone"`
	} `json:"results"`
}

// Resolve looks up a city name. Returns (nil, nil) when geocoding is
// disabled, the city is empty, or nothing matches.
func (c *Client) Resolve(ctx context.Context, city string) (*Location, error) {
	city = strings.TrimSpace(city)
	if !c.enabled || city == "" {
		return nil, nil
	}

	cacheKey := redis.GeoKey(strings.ToLower(city))
	if c.cache != nil {
		var cached Location
		if found, _ := c.cache.Get(ctx, cacheKey, &cached); found {
			return &cached, nil
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("geo rate limiter: %w", err)
	}

	endpoint := fmt.Sprintf("%s/search?name=%s&count=1", c.baseURL, url.QueryEscape(city))
	resp, err := c.http.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", city, err)
	}
	defer resp.Body.Close()

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(body.Results) == 0 {
		c.logger.WithField("city", city).Debug("Geocoding returned no results")
		return nil, nil
	}

	loc := &Location{
		City:      body.Results[0].Name,
		Latitude:  body.Results[0].Latitude,
		Longitude: body.Results[0].Longitude,
		Timezone:  body.Results[0].Timezone,
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, cacheKey, loc, redis.TTLShort); err != nil {
			c.logger.WithError(err).Debug("Failed to cache geocoding result")
		}
	}
	return loc, nil
}
