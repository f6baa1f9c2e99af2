package settlement

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/bet-that-platform/internal/bet"
)

func sampleBet() bet.Bet {
	now := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	return bet.Bet{
		ID:      "example-bet",
		Title:   "Will the hometown team win tonight?",
		CloseAt: now.Add(2 * time.Hour),
		Status:  bet.StatusOpen,
		Outcomes: []bet.Outcome{
			{ID: "yes", Label: "Yes, they win"},
			{ID: "no", Label: "No, they lose"},
			{ID: "tie", Label: "Tie or overtime"},
		},
		Participants: []bet.Participant{
			{ID: "p1", Name: "Alex", OutcomeID: "yes", Amount: 20},
			{ID: "p2", Name: "Sam", OutcomeID: "no", Amount: 15},
			{ID: "p3", Name: "Priya", OutcomeID: "yes", Amount: 10},
			{ID: "p4", Name: "Jules", OutcomeID: "tie", Amount: 8},
		},
	}
}

func TestOutcomeTotals(t *testing.T) {
	b := sampleBet()
	totals := OutcomeTotals(b)

	require.Len(t, totals, 3)
	assert.InDelta(t, 30, totals["yes"], 1e-9)
	assert.InDelta(t, 15, totals["no"], 1e-9)
	assert.InDelta(t, 8, totals["tie"], 1e-9)
}

func TestOutcomeTotals_EmptyOutcomePresentAsZero(t *testing.T) {
	b := sampleBet()
	b.Participants = b.Participants[:1] // só Alex em "yes"

	totals := OutcomeTotals(b)
	require.Len(t, totals, 3)
	assert.Zero(t, totals["no"])
	assert.Zero(t, totals["tie"])
}

func TestOutcomeTotals_OrphanParticipantIgnored(t *testing.T) {
	b := sampleBet()
	b.Participants = append(b.Participants, bet.Participant{
		ID: "px", Name: "Ghost", OutcomeID: "deleted-outcome", Amount: 999,
	})

	totals := OutcomeTotals(b)
	_, ok := totals["deleted-outcome"]
	assert.False(t, ok)
	assert.InDelta(t, 53, PoolTotal(totals), 1e-9) // órfão fora do bolo
}

func TestOutcomeTotals_PoolConservation(t *testing.T) {
	b := sampleBet()
	var stakes float64
	for _, p := range b.Participants {
		stakes += p.Amount
	}
	assert.InDelta(t, stakes, PoolTotal(OutcomeTotals(b)), 1e-9)
}

func TestOutcomeTotals_OrderIndependent(t *testing.T) {
	b := sampleBet()
	want := OutcomeTotals(b)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := b.Clone()
		rng.Shuffle(len(shuffled.Participants), func(a, b int) {
			shuffled.Participants[a], shuffled.Participants[b] = shuffled.Participants[b], shuffled.Participants[a]
		})
		got := OutcomeTotals(shuffled)
		require.Len(t, got, len(want))
		for id, total := range want {
			assert.InDelta(t, total, got[id], 1e-9)
		}
	}
}

func TestPoolTotal_Empty(t *testing.T) {
	assert.Zero(t, PoolTotal(map[string]float64{}))
	assert.Zero(t, PoolTotal(nil))
}
