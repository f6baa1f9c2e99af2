package main

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/bet-that-platform/internal/bet"
	bcache "github.com/radieske/bet-that-platform/internal/bet-service/cache"
	bhttp "github.com/radieske/bet-that-platform/internal/bet-service/http"
	"github.com/radieske/bet-that-platform/internal/bet-service/producer"
	"github.com/radieske/bet-that-platform/internal/bet-service/profile"
	"github.com/radieske/bet-that-platform/internal/bet-service/ws"
	sharedcache "github.com/radieske/bet-that-platform/internal/shared/cache"
	"github.com/radieske/bet-that-platform/internal/shared/clock"
	"github.com/radieske/bet-that-platform/internal/shared/config"
	"github.com/radieske/bet-that-platform/internal/shared/kafka"
	"github.com/radieske/bet-that-platform/internal/shared/logger"
	"github.com/radieske/bet-that-platform/internal/shared/metrics"
	"github.com/radieske/bet-that-platform/internal/shared/pubsub"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(fmt.Errorf("logger init: %w", err))
	}
	defer log.Sync()

	// Redis: flags de perfil, cache de resultados e Pub/Sub do WS
	rdb, err := sharedcache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis", zap.Error(err))
	}
	defer rdb.Close()

	// Kafka writers: um por tópico de ciclo de vida
	wagerWriter := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicWagerPlaced)
	defer wagerWriter.Close()
	resolvedWriter := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetResolved)
	defer resolvedWriter.Close()

	// deps
	clk := clock.Real{}
	store := bet.NewStore(clk)
	if cfg.SeedSampleBet {
		seeded := store.SeedSample()
		log.Info("sample bet seeded", zap.String("betId", seeded.ID))
	}

	publ := producer.NewKafkaPublisher(wagerWriter, resolvedWriter)
	flags := profile.NewFlagStore(rdb)
	results := bcache.New(rdb)
	bcast := pubsub.NewRedisBroadcaster(rdb)

	ttlSecs, err := strconv.Atoi(cfg.ResultsCacheTTLSecs)
	if err != nil || ttlSecs <= 0 {
		ttlSecs = 30
	}

	// Hub WS alimentado pelo canal Redis Pub/Sub
	hub := ws.NewHub(func(r *http.Request) bool { return true })
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ws.StartRedisSubscriber(ctx, log, rdb, cfg.RedisPubSubChannel, hub)

	// HTTP público
	api := bhttp.NewServer(
		log,
		store,
		clk,
		results,
		flags,
		publ,
		bcast,
		cfg.RedisPubSubChannel,
		time.Duration(ttlSecs)*time.Second,
		hub,
	)
	apiSrv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: api.Router(),
	}

	// metrics/health
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})
	log.Info("metrics/health", zap.String("addr", ":"+cfg.MetricsPort))

	log.Info("bet-service listening", zap.String("addr", fmt.Sprintf(":%s", cfg.HTTPPort)))
	if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api", zap.Error(err))
	}
}
