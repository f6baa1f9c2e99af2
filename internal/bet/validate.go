package bet

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Limites de outcomes por aposta.
const (
	MinOutcomes = 2
	MaxOutcomes = 6
)

var (
	ErrTitleRequired  = errors.New("title required")
	ErrOutcomeCount   = fmt.Errorf("bet must have between %d and %d outcomes", MinOutcomes, MaxOutcomes)
	ErrDuplicateID    = errors.New("duplicate outcome id")
	ErrUnknownOutcome = errors.New("unknown outcome id")
	ErrInvalidAmount  = errors.New("amount must be a positive finite number")
	ErrNameRequired   = errors.New("name required")
)

// ValidateNew valida o payload de criação de uma aposta: título, quantidade
// de outcomes e unicidade dos ids. Validação fica aqui, fora da matemática
// de liquidação; o engine nunca valida nem lança erro.
func ValidateNew(title string, outcomes []Outcome) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}
	if len(outcomes) < MinOutcomes || len(outcomes) > MaxOutcomes {
		return ErrOutcomeCount
	}
	seen := make(map[string]struct{}, len(outcomes))
	for _, o := range outcomes {
		id := strings.TrimSpace(o.ID)
		if id == "" || strings.TrimSpace(o.Label) == "" {
			return fmt.Errorf("outcome needs id and label: %+v", o)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateID, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// ValidateWager valida um palpite antes de entrar na lista append-only.
// NaN, Inf e valores não positivos são erro de integridade, nunca coagidos.
func ValidateWager(b Bet, name, outcomeID string, amount float64) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return ErrInvalidAmount
	}
	if !b.HasOutcome(outcomeID) {
		return fmt.Errorf("%w: %s", ErrUnknownOutcome, outcomeID)
	}
	return nil
}
