package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	auctionKeyPrefix = "auction:"
	auctionListKey   = "auctions:all"

	// AuctionTTL bounds staleness of cached auction reads between the
	// write-path invalidations.
	AuctionTTL = 30 * time.Second
)

// Client wraps redis.Client but fails safe by swallowing connectivity
// errors: a broken cache degrades to a miss, never to a request failure.
type Client struct {
	client *redis.Client
}

// New creates a new Redis client.
func New(addr, password string, db int) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{client: redis.NewClient(opts)}
}

// Get returns value or nil if missing or redis unavailable.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		// fail safe: behave like cache miss
		return nil, nil
	}
	return res, nil
}

// Set stores value with TTL, ignoring redis errors.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		// fail safe: ignore redis errors
		return nil
	}
	return nil
}

// Delete removes a key, ignoring redis errors.
func (c *Client) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return nil
	}
	return nil
}

// GetJSON unmarshals a cached value into out, reporting whether it was a hit.
func (c *Client) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	data, err := c.Get(ctx, key)
	if err != nil || data == nil {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		// stale or corrupt entry: treat as a miss
		return false, nil
	}
	return true, nil
}

// SetJSON stores a JSON-encoded value with TTL.
func (c *Client) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value: %w", err)
	}
	return c.Set(ctx, key, data, ttl)
}

// AuctionKey is the cache key for a single auction's wire representation.
func AuctionKey(id string) string {
	return auctionKeyPrefix + id
}

// AuctionListKey is the cache key for the full auction listing.
func AuctionListKey() string {
	return auctionListKey
}
