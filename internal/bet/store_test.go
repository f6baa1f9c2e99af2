package bet

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/bet-that-platform/internal/shared/clock"
)

var testNow = time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)

func newTestStore() *Store {
	return NewStore(clock.Fixed{T: testNow})
}

func validParams() CreateParams {
	return CreateParams{
		Title:       "Game night",
		CreatorName: "Maya",
		CloseAt:     testNow.Add(2 * time.Hour),
		Outcomes: []Outcome{
			{ID: "yes", Label: "Yes"},
			{ID: "no", Label: "No"},
		},
	}
}

func TestStore_Create(t *testing.T) {
	s := newTestStore()
	b, err := s.Create(validParams())
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.NotEmpty(t, b.CreatorID)
	assert.Equal(t, StatusOpen, b.Status)
	assert.Equal(t, testNow, b.CreatedAt)
	assert.Empty(t, b.Participants)

	got, err := s.Get(b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestStore_Create_FillsMissingOutcomeIDs(t *testing.T) {
	s := newTestStore()
	p := validParams()
	p.Outcomes = []Outcome{{Label: "Yes"}, {Label: "No"}}

	b, err := s.Create(p)
	require.NoError(t, err)
	assert.NotEmpty(t, b.Outcomes[0].ID)
	assert.NotEmpty(t, b.Outcomes[1].ID)
	assert.NotEqual(t, b.Outcomes[0].ID, b.Outcomes[1].ID)
}

func TestStore_Create_Validation(t *testing.T) {
	s := newTestStore()

	tests := []struct {
		name   string
		mutate func(*CreateParams)
		want   error
	}{
		{"empty title", func(p *CreateParams) { p.Title = "  " }, ErrTitleRequired},
		{"one outcome", func(p *CreateParams) { p.Outcomes = p.Outcomes[:1] }, ErrOutcomeCount},
		{"seven outcomes", func(p *CreateParams) {
			p.Outcomes = make([]Outcome, 7)
			for i := range p.Outcomes {
				p.Outcomes[i] = Outcome{ID: string(rune('a' + i)), Label: "x"}
			}
		}, ErrOutcomeCount},
		{"duplicate outcome id", func(p *CreateParams) {
			p.Outcomes = []Outcome{{ID: "yes", Label: "Yes"}, {ID: "yes", Label: "Also yes"}}
		}, ErrDuplicateID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			_, err := s.Create(p)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestStore_List_NewestFirst(t *testing.T) {
	s := newTestStore()
	first, _ := s.Create(validParams())
	second, _ := s.Create(validParams())

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestStore_AddParticipant(t *testing.T) {
	s := newTestStore()
	b, _ := s.Create(validParams())

	snap, p, err := s.AddParticipant(b.ID, "Alex", "yes", 20)
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, testNow, p.CreatedAt)
	require.Len(t, snap.Participants, 1)
	assert.Equal(t, p, snap.Participants[0])
}

func TestStore_AddParticipant_Validation(t *testing.T) {
	s := newTestStore()
	b, _ := s.Create(validParams())

	tests := []struct {
		name      string
		nome      string
		outcomeID string
		amount    float64
		want      error
	}{
		{"empty name", "", "yes", 10, ErrNameRequired},
		{"zero amount", "Alex", "yes", 0, ErrInvalidAmount},
		{"negative amount", "Alex", "yes", -5, ErrInvalidAmount},
		{"nan amount", "Alex", "yes", math.NaN(), ErrInvalidAmount},
		{"inf amount", "Alex", "yes", math.Inf(1), ErrInvalidAmount},
		{"unknown outcome", "Alex", "maybe", 10, ErrUnknownOutcome},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := s.AddParticipant(b.ID, tt.nome, tt.outcomeID, tt.amount)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestStore_AddParticipant_RejectedAfterDeadline(t *testing.T) {
	s := NewStore(clock.Fixed{T: testNow.Add(3 * time.Hour)})
	p := validParams() // CloseAt duas horas depois de testNow, já vencido
	b, err := s.Create(p)
	require.NoError(t, err)

	_, _, err = s.AddParticipant(b.ID, "Late", "yes", 10)
	assert.ErrorIs(t, err, ErrBetNotOpen)
}

func TestStore_AddParticipant_RejectedWhenClosed(t *testing.T) {
	s := newTestStore()
	b, _ := s.Create(validParams())
	_, err := s.Close(b.ID)
	require.NoError(t, err)

	_, _, err = s.AddParticipant(b.ID, "Late", "yes", 10)
	assert.ErrorIs(t, err, ErrBetNotOpen)
}

func TestStore_Resolve(t *testing.T) {
	s := newTestStore()
	b, _ := s.Create(validParams())

	resolved, err := s.Resolve(b.ID, "yes")
	require.NoError(t, err)
	assert.Equal(t, StatusResolved, resolved.Status)
	assert.Equal(t, "yes", resolved.WinningOutcomeID)

	// terminal: não re-resolve nem volta a fechar
	_, err = s.Resolve(b.ID, "no")
	assert.ErrorIs(t, err, ErrAlreadyResolved)
	_, err = s.Close(b.ID)
	assert.ErrorIs(t, err, ErrAlreadyResolved)
}

func TestStore_Resolve_UnknownOutcome(t *testing.T) {
	s := newTestStore()
	b, _ := s.Create(validParams())

	_, err := s.Resolve(b.ID, "maybe")
	assert.ErrorIs(t, err, ErrUnknownOutcome)
}

func TestStore_NotFound(t *testing.T) {
	s := newTestStore()
	_, err := s.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
	_, _, err = s.AddParticipant("nope", "Alex", "yes", 10)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Close("nope")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Resolve("nope", "yes")
	assert.ErrorIs(t, err, ErrNotFound)
}

// Snapshots são cópias: mutar o retorno não vaza pro estado interno.
func TestStore_SnapshotsAreCopies(t *testing.T) {
	s := newTestStore()
	b, _ := s.Create(validParams())
	_, _, err := s.AddParticipant(b.ID, "Alex", "yes", 20)
	require.NoError(t, err)

	snap, _ := s.Get(b.ID)
	snap.Participants[0].Amount = 999
	snap.Outcomes[0].Label = "hacked"

	again, _ := s.Get(b.ID)
	assert.InDelta(t, 20, again.Participants[0].Amount, 1e-9)
	assert.Equal(t, "Yes", again.Outcomes[0].Label)
}

func TestStore_SeedSample(t *testing.T) {
	s := newTestStore()
	b := s.SeedSample()

	assert.Equal(t, "example-bet", b.ID)
	require.Len(t, b.Outcomes, 3)
	require.Len(t, b.Participants, 4)

	// idempotente: segunda chamada não duplica
	s.SeedSample()
	assert.Len(t, s.List(), 1)
}

func TestStore_Reset(t *testing.T) {
	s := newTestStore()
	s.SeedSample()
	s.Reset()
	assert.Empty(t, s.List())
}
