package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client wraps redis for response caching and rate limiting. A nil *Client is
// valid and disables both, so the API runs without redis.
type Client struct {
	rdb         *redis.Client
	maxRequests int
}

func NewClient(addr string, maxRequests int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	return &Client{rdb: rdb, maxRequests: maxRequests}, nil
}

// IsRateLimited counts requests per ip in a fixed one-minute window.
func (c *Client) IsRateLimited(ctx context.Context, ip string) bool {
	if c == nil {
		return false
	}

	key := fmt.Sprintf("ratelimit:%s", ip)
	limitWindow := 60 * time.Second

	pipe := c.rdb.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, limitWindow)
	_, err := pipe.Exec(ctx)

	if err != nil {
		return false
	}

	return incr.Val() > int64(c.maxRequests)
}

func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil {
		return nil, redis.Nil
	}
	return c.rdb.Get(ctx, key).Bytes()
}

func (c *Client) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	return c.rdb.Set(ctx, key, data, ttl).Err()
}

func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
