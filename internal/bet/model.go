package bet

import "time"

// Status representa o estado do ciclo de vida de uma aposta.
type Status string

const (
	StatusOpen     Status = "open"
	StatusClosed   Status = "closed"
	StatusResolved Status = "resolved"
)

// Outcome é um dos resultados possíveis de uma aposta.
// Criado junto com a aposta; imutável depois disso.
type Outcome struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Participant é um palpite travado de um membro do grupo.
// Lista append-only: sem edição nem retirada após entrar.
type Participant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"` // não é único; nomes repetidos são entradas distintas
	OutcomeID string    `json:"outcomeId"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

// Bet é o snapshot de uma aposta entre amigos.
// WinningOutcomeID vazio significa "ainda não resolvida".
type Bet struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description,omitempty"`
	Rules            string        `json:"rules,omitempty"`
	CreatorID        string        `json:"creatorId"`
	CreatorName      string        `json:"creatorName"`
	CloseAt          time.Time     `json:"closeAt"`
	Status           Status        `json:"status"`
	WinningOutcomeID string        `json:"winningOutcomeId,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
	Outcomes         []Outcome     `json:"outcomes"`
	Participants     []Participant `json:"participants"`
}

// HasOutcome informa se o id referencia um outcome existente da aposta.
func (b Bet) HasOutcome(outcomeID string) bool {
	for _, o := range b.Outcomes {
		if o.ID == outcomeID {
			return true
		}
	}
	return false
}

// Clone devolve uma cópia profunda do snapshot, pra ninguém mutar o estado
// guardado no store por fora.
func (b Bet) Clone() Bet {
	c := b
	c.Outcomes = make([]Outcome, len(b.Outcomes))
	copy(c.Outcomes, b.Outcomes)
	c.Participants = make([]Participant, len(b.Participants))
	copy(c.Participants, b.Participants)
	return c
}
