package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache guarda resultados de liquidação já computados por um TTL curto.
// A liquidação continua derivada, nunca estado: expirou, recalcula do
// snapshot e o resultado é o mesmo.
type Cache struct{ R *redis.Client }

func New(r *redis.Client) *Cache { return &Cache{R: r} }

func keyResults(betID string) string { return "settlement:results:" + betID }

func (c *Cache) GetResults(ctx context.Context, betID string, dst any) (bool, error) {
	b, err := c.R.Get(ctx, keyResults(betID)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(b, dst)
}

func (c *Cache) SetResults(ctx context.Context, betID string, v any, ttl time.Duration) error {
	b, _ := json.Marshal(v)
	return c.R.Set(ctx, keyResults(betID), b, ttl).Err()
}
