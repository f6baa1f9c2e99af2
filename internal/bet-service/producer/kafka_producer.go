package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/radieske/bet-that-platform/internal/bet"
	"github.com/radieske/bet-that-platform/internal/shared/kafka"
	"github.com/radieske/bet-that-platform/pkg/contracts/events"
)

// KafkaPublisher publica os eventos de ciclo de vida das apostas.
// Writers separados porque cada evento tem tópico próprio.
type KafkaPublisher struct {
	WagerWriter    *kafka.Writer
	ResolvedWriter *kafka.Writer
}

func NewKafkaPublisher(wagerW, resolvedW *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{WagerWriter: wagerW, ResolvedWriter: resolvedW}
}

func (p *KafkaPublisher) PublishWagerPlaced(ctx context.Context, e events.WagerPlaced) error {
	e.TsUnixMs = time.Now().UnixMilli()
	b, _ := json.Marshal(e)
	return kafka.WriteJSON(ctx, p.WagerWriter, e.BetID, b)
}

// PublishBetResolved publica o snapshot completo da aposta resolvida.
// O worker de liquidação depende disso: não existe banco compartilhado.
func (p *KafkaPublisher) PublishBetResolved(ctx context.Context, snapshot bet.Bet) error {
	e := events.BetResolved{
		BetID:            snapshot.ID,
		Title:            snapshot.Title,
		WinningOutcomeID: snapshot.WinningOutcomeID,
		Outcomes:         make([]events.Outcome, 0, len(snapshot.Outcomes)),
		Participants:     make([]events.Participant, 0, len(snapshot.Participants)),
		TsUnixMs:         time.Now().UnixMilli(),
	}
	for _, o := range snapshot.Outcomes {
		e.Outcomes = append(e.Outcomes, events.Outcome{ID: o.ID, Label: o.Label})
	}
	for _, pt := range snapshot.Participants {
		e.Participants = append(e.Participants, events.Participant{
			ID:        pt.ID,
			Name:      pt.Name,
			OutcomeID: pt.OutcomeID,
			Amount:    pt.Amount,
		})
	}

	b, _ := json.Marshal(e)
	return kafka.WriteJSON(ctx, p.ResolvedWriter, e.BetID, b)
}
