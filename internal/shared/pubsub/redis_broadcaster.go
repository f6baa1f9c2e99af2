package pubsub

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// ChannelBetBroadcast é o canal Redis Pub/Sub das atualizações ao vivo.
// Publicado pelo bet-service (palpites) e pelo settlement-worker (liquidação);
// consumido pelo hub WebSocket do bet-service.
const ChannelBetBroadcast = "bet_updates_broadcast"

type RedisBroadcaster struct {
	r *redis.Client
}

func NewRedisBroadcaster(r *redis.Client) *RedisBroadcaster {
	return &RedisBroadcaster{r: r}
}

func (b *RedisBroadcaster) Publish(ctx context.Context, channel string, payload []byte) error {
	return b.r.Publish(ctx, channel, payload).Err()
}

// Payload padrão para o WS do bet-service
type BetUpdate struct {
	BetID   string      `json:"betId"`
	Kind    string      `json:"kind"`
	Payload interface{} `json:"payload"`
}
