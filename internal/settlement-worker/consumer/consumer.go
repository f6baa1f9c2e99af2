package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/radieske/bet-that-platform/internal/bet"
	"github.com/radieske/bet-that-platform/internal/settlement"
	"github.com/radieske/bet-that-platform/internal/settlement-worker/cache"
	"github.com/radieske/bet-that-platform/pkg/contracts/events"
)

// Worker consome eventos bet_resolved, roda o engine de liquidação, faz o
// cache do resultado e publica settlement_ready.
// Callbacks de métricas podem ser usadas para monitoramento de cada etapa.
type Worker struct {
	Log       *zap.Logger
	Reader    *kafka.Reader
	Cache     *cache.RedisCache
	Publisher *kafka.Writer // tópico settlement_ready
	DLQ       *kafka.Writer // opcional; mensagens envenenadas

	OnConsumed func()       // métricas (counter++)
	OnSettled  func()       // métricas
	OnError    func(string) // métricas por fase

	// Após liquidar, envia a atualização para o WS via Redis Pub/Sub
	OnAfterSettle func(e events.SettlementReady)
}

// Run inicia o loop principal de consumo e liquidação das mensagens Kafka
func (w *Worker) Run(ctx context.Context) error {
	for {
		m, err := w.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err() // encerra se o contexto for cancelado
			}
			w.Log.Warn("kafka read failed", zap.Error(err))
			if w.OnError != nil {
				w.OnError("read")
			}
			time.Sleep(500 * time.Millisecond)
			continue
		}

		if w.OnConsumed != nil {
			w.OnConsumed() // callback de métrica: mensagem consumida
		}

		var ev events.BetResolved
		if err := json.Unmarshal(m.Value, &ev); err != nil {
			w.Log.Warn("invalid message", zap.Error(err))
			if w.OnError != nil {
				w.OnError("decode")
			}
			w.toDLQ(ctx, m)
			continue
		}

		ready, ok := w.settle(ctx, ev)
		if !ok {
			w.toDLQ(ctx, m)
			continue
		}

		// Publica settlement_ready pra quem quiser reagir (feeds, notificações)
		b, _ := json.Marshal(ready)
		if err := w.Publisher.WriteMessages(ctx, kafka.Message{Key: []byte(ready.BetID), Value: b}); err != nil {
			w.Log.Warn("publish settlement_ready", zap.Error(err))
			if w.OnError != nil {
				w.OnError("publish")
			}
		}

		if w.OnSettled != nil {
			w.OnSettled() // callback de métrica: liquidação concluída
		}
		if w.OnAfterSettle != nil {
			w.OnAfterSettle(ready)
		}
	}
}

// settle reconstrói o snapshot do evento e roda o engine.
// O engine é total pra entrada dentro do domínio; o único caso sem resultado
// é evento sem vencedor declarado, que não deveria chegar aqui.
func (w *Worker) settle(ctx context.Context, ev events.BetResolved) (events.SettlementReady, bool) {
	res := settlement.Calculate(snapshotFrom(ev))
	if res == nil {
		w.Log.Warn("bet_resolved without winning outcome", zap.String("betId", ev.BetID))
		if w.OnError != nil {
			w.OnError("no_winner")
		}
		return events.SettlementReady{}, false
	}

	// Cache pro endpoint de resultados do bet-service
	if err := w.Cache.SetResult(ctx, ev.BetID, res); err != nil {
		w.Log.Warn("redis set failed", zap.Error(err))
		if w.OnError != nil {
			w.OnError("cache")
		}
		// não bloqueia o settlement_ready se falhar o cache
	}

	ready := events.SettlementReady{
		BetID:           ev.BetID,
		PoolTotal:       res.PoolTotal,
		TotalWinStake:   res.TotalWinStake,
		TotalLoserStake: res.TotalLoserStake,
		Transfers:       make([]events.Transfer, 0, len(res.Settlement)),
		Ts:              time.Now(),
	}
	for _, tr := range res.Settlement {
		ready.Transfers = append(ready.Transfers, events.Transfer{From: tr.From, To: tr.To, Amount: tr.Amount})
	}
	return ready, true
}

// toDLQ repassa a mensagem original pra fila morta, se configurada
func (w *Worker) toDLQ(ctx context.Context, m kafka.Message) {
	if w.DLQ == nil {
		return
	}
	if err := w.DLQ.WriteMessages(ctx, kafka.Message{Key: m.Key, Value: m.Value}); err != nil {
		w.Log.Warn("dlq write failed", zap.Error(err))
		if w.OnError != nil {
			w.OnError("dlq")
		}
	}
}

// snapshotFrom converte o evento autossuficiente de volta pro modelo do engine
func snapshotFrom(ev events.BetResolved) bet.Bet {
	b := bet.Bet{
		ID:               ev.BetID,
		Title:            ev.Title,
		Status:           bet.StatusResolved,
		WinningOutcomeID: ev.WinningOutcomeID,
		Outcomes:         make([]bet.Outcome, 0, len(ev.Outcomes)),
		Participants:     make([]bet.Participant, 0, len(ev.Participants)),
	}
	for _, o := range ev.Outcomes {
		b.Outcomes = append(b.Outcomes, bet.Outcome{ID: o.ID, Label: o.Label})
	}
	for _, p := range ev.Participants {
		b.Participants = append(b.Participants, bet.Participant{
			ID:        p.ID,
			Name:      p.Name,
			OutcomeID: p.OutcomeID,
			Amount:    p.Amount,
		})
	}
	return b
}
