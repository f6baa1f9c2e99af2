package main

import (
	"context"
	"encoding/json"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radieske/bet-that-platform/internal/settlement-worker/cache"
	"github.com/radieske/bet-that-platform/internal/settlement-worker/consumer"
	sharedcache "github.com/radieske/bet-that-platform/internal/shared/cache"
	"github.com/radieske/bet-that-platform/internal/shared/config"
	"github.com/radieske/bet-that-platform/internal/shared/kafka"
	"github.com/radieske/bet-that-platform/internal/shared/logger"
	"github.com/radieske/bet-that-platform/internal/shared/metrics"
	"github.com/radieske/bet-that-platform/internal/shared/pubsub"
	"github.com/radieske/bet-that-platform/pkg/contracts/events"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Redis: cache dos resultados e Pub/Sub das atualizações ao vivo
	redisClient, err := sharedcache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis connect", zap.Error(err))
	}
	defer redisClient.Close()

	// A liquidação é derivada; o cache só poupa recomputo, então TTL curto
	rcache := cache.NewRedisCache(redisClient, 60*time.Second)

	// Kafka consumer (consumer group settlement-worker)
	reader := kafka.NewReader(cfg.KafkaBrokers, cfg.TopicBetResolved, "settlement-worker")
	defer reader.Close()

	// Kafka producers: settlement_ready e fila morta
	readyWriter := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicSettlementReady)
	defer readyWriter.Close()

	var dlqWriter *kafka.Writer
	if cfg.TopicBetResolvedDLQ != "" {
		dlqWriter = kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetResolvedDLQ)
		defer dlqWriter.Close()
	}

	// Métricas Prometheus para monitoramento do processamento
	consumed := prometheus.NewCounter(prometheus.CounterOpts{Name: "settlement_messages_consumed_total", Help: "mensagens consumidas"})
	settled := prometheus.NewCounter(prometheus.CounterOpts{Name: "settlement_settled_total", Help: "apostas liquidadas"})
	errorsBy := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "settlement_errors_total", Help: "erros por estágio"}, []string{"stage"})
	prometheus.MustRegister(consumed, settled, errorsBy)

	// Broadcaster para publicar a liquidação no Redis Pub/Sub (usado pelo bet-service/ws)
	broadcaster := pubsub.NewRedisBroadcaster(redisClient)

	worker := &consumer.Worker{
		Log:        log,
		Reader:     reader,
		Cache:      rcache,
		Publisher:  readyWriter,
		DLQ:        dlqWriter,
		OnConsumed: func() { consumed.Inc() },
		OnSettled:  func() { settled.Inc() },
		OnError:    func(stage string) { errorsBy.WithLabelValues(stage).Inc() },

		// Após liquidar, avisa os clientes conectados via Redis Pub/Sub
		OnAfterSettle: func(e events.SettlementReady) {
			msg := pubsub.BetUpdate{BetID: e.BetID, Kind: "settlement_ready", Payload: e}
			b, _ := json.Marshal(msg)

			ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := broadcaster.Publish(ctx, cfg.RedisPubSubChannel, b); err != nil {
				log.Warn("ws broadcast publish failed", zap.Error(err))
			}
		},
	}

	// Servidor HTTP para métricas e health check
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	})
	log.Info("metrics/health listening", zap.String("addr", ":"+cfg.MetricsPort))

	// Sinalização para shutdown gracioso (SIGINT/SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("settlement-worker started",
		zap.String("consume", cfg.TopicBetResolved),
		zap.String("publish", cfg.TopicSettlementReady),
	)
	if err := worker.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal("worker stopped with error", zap.Error(err))
	}
	log.Info("settlement-worker stopped")
}
