package dto

import "time"

type OutcomePayload struct {
	ID    string `json:"id,omitempty"` // opcional; gerado quando vazio
	Label string `json:"label"`
}

type CreateBetRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Rules       string           `json:"rules,omitempty"`
	CreatorName string           `json:"creatorName"`
	CloseAt     time.Time        `json:"closeAt"`
	Outcomes    []OutcomePayload `json:"outcomes"`
}

type PlaceWagerRequest struct {
	Name      string  `json:"name"`
	OutcomeID string  `json:"outcomeId"`
	Amount    float64 `json:"amount"`
}

type ResolveBetRequest struct {
	WinningOutcomeID string `json:"winningOutcomeId"`
}

type SetFlagRequest struct {
	Value string `json:"value"`
}
