package dto

import (
	"github.com/radieske/bet-that-platform/internal/bet"
	"github.com/radieske/bet-that-platform/internal/settlement"
)

// BetResponse é o snapshot da aposta com os campos derivados que as telas
// precisam: status efetivo no instante da consulta, totais por outcome e
// total do bolo. O status persistido fica de fora pra ninguém confiar nele.
type BetResponse struct {
	bet.Bet
	DerivedStatus bet.Status         `json:"derivedStatus"`
	Totals        map[string]float64 `json:"totals"`
	PoolTotal     float64            `json:"poolTotal"`
	ShareCode     string             `json:"shareCode"`
}

type CreateBetResponse struct {
	BetResponse
	CreatorShareCode string `json:"creatorShareCode"`
}

type PlaceWagerResponse struct {
	Bet         BetResponse     `json:"bet"`
	Participant bet.Participant `json:"participant"`
}

type ResultsResponse struct {
	BetID  string             `json:"betId"`
	Result *settlement.Result `json:"result"`
}

type FlagResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
