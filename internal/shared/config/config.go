package config

import (
	"os"

	ctopics "github.com/radieske/bet-that-platform/pkg/contracts/topics"
)

// Config centraliza variáveis de ambiente e parâmetros de execução dos serviços
// Inclui conexões, tópicos, canais e portas
type Config struct {
	Env         string // "local", "dev", "prod"
	ServiceName string // "bet-service" | "settlement-worker"

	RedisAddr    string
	KafkaBrokers string // "a:9092,b:9092"

	// Tópicos/canais
	TopicWagerPlaced     string
	TopicBetResolved     string
	TopicSettlementReady string
	TopicBetResolvedDLQ  string
	RedisPubSubChannel   string

	// Cache de resultados de liquidação (segundos)
	ResultsCacheTTLSecs string

	// Semear a aposta de exemplo do onboarding no subir do serviço
	SeedSampleBet bool

	// Portas do serviço atual
	HTTPPort    string // Porta pública (API REST + WS)
	MetricsPort string // Porta exclusiva para /metrics e /healthz
}

// Load carrega variáveis de ambiente e define defaults para cada serviço
// Resolve portas e tópicos conforme o SERVICE_NAME
func Load() Config {
	svc := getEnv("SERVICE_NAME", "")
	env := getEnv("ENV", "local")

	cfg := Config{
		Env:         env,
		ServiceName: svc,

		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBrokers: getEnv("KAFKA_BROKERS", "localhost:9092"),

		TopicWagerPlaced:     getEnv("KAFKA_TOPIC_WAGER_PLACED", ctopics.WagerPlaced),
		TopicBetResolved:     getEnv("KAFKA_TOPIC_BET_RESOLVED", ctopics.BetResolved),
		TopicSettlementReady: getEnv("KAFKA_TOPIC_SETTLEMENT_READY", ctopics.SettlementReady),
		TopicBetResolvedDLQ:  getEnv("KAFKA_TOPIC_BET_RESOLVED_DLQ", ctopics.BetResolvedDLQ),

		RedisPubSubChannel: getEnv("REDIS_PUBSUB_CHANNEL", "bet_updates_broadcast"),

		ResultsCacheTTLSecs: getEnv("RESULTS_CACHE_TTL_SECS", "30"),

		SeedSampleBet: getEnv("SEED_SAMPLE_BET", "true") == "true",
	}

	// Define portas padrão para cada serviço
	switch svc {
	case "bet-service":
		cfg.HTTPPort = getEnv("HTTP_PORT_BET", "8083")
		cfg.MetricsPort = getEnv("METRICS_PORT_BET", "9099")
	case "settlement-worker":
		cfg.HTTPPort = getEnv("HTTP_PORT_SETTLEMENT", "") // worker não expõe HTTP público
		cfg.MetricsPort = getEnv("METRICS_PORT_SETTLEMENT", "9097")
	default:
		cfg.HTTPPort = getEnv("HTTP_PORT", "8080")
		cfg.MetricsPort = getEnv("METRICS_PORT", "9095")
	}

	return cfg
}

// getEnv retorna o valor da variável de ambiente ou o default
func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
