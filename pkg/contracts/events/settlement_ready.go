package events

import "time"

// Evento emitido pelo settlement-worker após liquidar uma aposta resolvida.
type SettlementReady struct {
	BetID           string     `json:"betId"`
	PoolTotal       float64    `json:"poolTotal"`
	TotalWinStake   float64    `json:"totalWinStake"`
	TotalLoserStake float64    `json:"totalLoserStake"`
	Transfers       []Transfer `json:"transfers"`
	Ts              time.Time  `json:"ts"`
}

type Transfer struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}
