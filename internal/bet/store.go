package bet

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/radieske/bet-that-platform/internal/shared/clock"
)

var (
	ErrNotFound        = errors.New("bet not found")
	ErrBetNotOpen      = errors.New("bet is not open for wagers")
	ErrAlreadyResolved = errors.New("bet already resolved")
)

// CreateParams é o payload de criação de uma aposta.
type CreateParams struct {
	Title       string
	Description string
	Rules       string
	CreatorName string
	CloseAt     time.Time
	Outcomes    []Outcome
}

// Store guarda as apostas em memória, protegidas por mutex.
// Não há durabilidade: a liquidação é informativa e recalculada sob demanda,
// então perder o estado num restart é aceitável pro escopo do app.
type Store struct {
	mu    sync.RWMutex
	bets  map[string]*Bet
	order []string // ids, mais recente primeiro
	clk   clock.Clock
}

// NewStore cria o store com o relógio injetado.
func NewStore(clk clock.Clock) *Store {
	return &Store{
		bets: make(map[string]*Bet),
		clk:  clk,
	}
}

// Create valida e registra uma aposta nova com status open.
// Outcomes sem id ganham um uuid antes da validação.
func (s *Store) Create(p CreateParams) (Bet, error) {
	outcomes := make([]Outcome, len(p.Outcomes))
	copy(outcomes, p.Outcomes)
	for i := range outcomes {
		if outcomes[i].ID == "" {
			outcomes[i].ID = uuid.NewString()
		}
	}
	if err := ValidateNew(p.Title, outcomes); err != nil {
		return Bet{}, err
	}

	now := s.clk.Now()
	b := &Bet{
		ID:           uuid.NewString(),
		Title:        p.Title,
		Description:  p.Description,
		Rules:        p.Rules,
		CreatorID:    uuid.NewString(),
		CreatorName:  p.CreatorName,
		CloseAt:      p.CloseAt,
		Status:       StatusOpen,
		CreatedAt:    now,
		Outcomes:     outcomes,
		Participants: []Participant{},
	}

	s.mu.Lock()
	s.bets[b.ID] = b
	s.order = append([]string{b.ID}, s.order...)
	s.mu.Unlock()

	return b.Clone(), nil
}

// Get devolve um snapshot da aposta.
func (s *Store) Get(id string) (Bet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bets[id]
	if !ok {
		return Bet{}, ErrNotFound
	}
	return b.Clone(), nil
}

// List devolve snapshots de todas as apostas, mais recente primeiro.
func (s *Store) List() []Bet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Bet, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.bets[id].Clone())
	}
	return out
}

// AddParticipant trava um palpite novo na aposta.
// Só entra enquanto o status derivado for open; depois disso a lista é
// append-only e nenhum palpite é editado ou retirado.
func (s *Store) AddParticipant(betID, name, outcomeID string, amount float64) (Bet, Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bets[betID]
	if !ok {
		return Bet{}, Participant{}, ErrNotFound
	}
	now := s.clk.Now()
	if StatusAt(*b, now) != StatusOpen {
		return Bet{}, Participant{}, ErrBetNotOpen
	}
	if err := ValidateWager(*b, name, outcomeID, amount); err != nil {
		return Bet{}, Participant{}, err
	}

	p := Participant{
		ID:        uuid.NewString(),
		Name:      name,
		OutcomeID: outcomeID,
		Amount:    amount,
		CreatedAt: now,
	}
	b.Participants = append(b.Participants, p)
	return b.Clone(), p, nil
}

// Close encerra manualmente a janela de entrada.
func (s *Store) Close(betID string) (Bet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bets[betID]
	if !ok {
		return Bet{}, ErrNotFound
	}
	if b.Status == StatusResolved {
		return Bet{}, ErrAlreadyResolved
	}
	b.Status = StatusClosed
	return b.Clone(), nil
}

// Resolve declara o outcome vencedor. Transição terminal: o vencedor fica
// fixo pra sempre e a liquidação passa a ser computável.
func (s *Store) Resolve(betID, winningOutcomeID string) (Bet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bets[betID]
	if !ok {
		return Bet{}, ErrNotFound
	}
	if b.Status == StatusResolved {
		return Bet{}, ErrAlreadyResolved
	}
	if !b.HasOutcome(winningOutcomeID) {
		return Bet{}, fmt.Errorf("%w: %s", ErrUnknownOutcome, winningOutcomeID)
	}
	b.Status = StatusResolved
	b.WinningOutcomeID = winningOutcomeID
	return b.Clone(), nil
}

// Reset descarta tudo. Usado em testes e no modo demo.
func (s *Store) Reset() {
	s.mu.Lock()
	s.bets = make(map[string]*Bet)
	s.order = nil
	s.mu.Unlock()
}

// SeedSample registra a aposta de exemplo que o app mostra no onboarding.
func (s *Store) SeedSample() Bet {
	now := s.clk.Now()
	b := &Bet{
		ID:          "example-bet",
		Title:       "Will the hometown team win tonight?",
		Description: "Friendly watch party bet. If the game is postponed, we roll to the next game.",
		Rules:       "If it goes to overtime, a win still counts as a win.",
		CreatorID:   "creator_example",
		CreatorName: "Maya",
		CloseAt:     now.Add(120 * time.Minute),
		Status:      StatusOpen,
		CreatedAt:   now,
		Outcomes: []Outcome{
			{ID: "yes", Label: "Yes, they win"},
			{ID: "no", Label: "No, they lose"},
			{ID: "tie", Label: "Tie or overtime"},
		},
		Participants: []Participant{
			{ID: "p1", Name: "Alex", OutcomeID: "yes", Amount: 20, CreatedAt: now},
			{ID: "p2", Name: "Sam", OutcomeID: "no", Amount: 15, CreatedAt: now},
			{ID: "p3", Name: "Priya", OutcomeID: "yes", Amount: 10, CreatedAt: now},
			{ID: "p4", Name: "Jules", OutcomeID: "tie", Amount: 8, CreatedAt: now},
		},
	}

	s.mu.Lock()
	if _, exists := s.bets[b.ID]; !exists {
		s.bets[b.ID] = b
		s.order = append(s.order, b.ID)
	}
	out := s.bets[b.ID].Clone()
	s.mu.Unlock()
	return out
}
