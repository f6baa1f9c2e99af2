package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache guarda a liquidação computada pelo worker.
// Client: cliente Redis
// TTL: tempo de expiração dos registros
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisCache cria uma instância de cache Redis com TTL configurável
func NewRedisCache(c *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: c, TTL: ttl}
}

// key gera a chave Redis dos resultados de uma aposta, a mesma que o
// bet-service consulta no endpoint de resultados
func key(betID string) string { return "settlement:results:" + betID }

// SetResult armazena a liquidação de uma aposta no Redis com TTL definido
func (r *RedisCache) SetResult(ctx context.Context, betID string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, key(betID), b, r.TTL).Err()
}
