package events

type WagerPlaced struct {
	BetID         string  `json:"bet_id"`
	ParticipantID string  `json:"participant_id"`
	Name          string  `json:"name"`
	OutcomeID     string  `json:"outcome_id"`
	Amount        float64 `json:"amount"`
	TsUnixMs      int64   `json:"ts_unix_ms"`
}
