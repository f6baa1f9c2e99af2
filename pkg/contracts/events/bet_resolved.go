package events

// BetResolved carrega o snapshot completo da aposta no momento da resolução.
// As apostas vivem só na memória do bet-service, então o evento precisa ser
// autossuficiente pro worker liquidar sem consultar ninguém.
type BetResolved struct {
	BetID            string        `json:"bet_id"`
	Title            string        `json:"title"`
	WinningOutcomeID string        `json:"winning_outcome_id"`
	Outcomes         []Outcome     `json:"outcomes"`
	Participants     []Participant `json:"participants"`
	TsUnixMs         int64         `json:"ts_unix_ms"`
}

type Outcome struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type Participant struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	OutcomeID string  `json:"outcome_id"`
	Amount    float64 `json:"amount"`
}
