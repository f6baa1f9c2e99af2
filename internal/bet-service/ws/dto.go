package ws

// ClientMsg representa uma mensagem recebida do cliente WebSocket
// Type: subscribe | unsubscribe | ping
// BetID: obrigatório para subscribe/unsubscribe
type ClientMsg struct {
	Type  string `json:"type"`  // subscribe | unsubscribe | ping
	BetID string `json:"betId"` // requerido em subscribe/unsubscribe
}

// BetUpdate representa uma atualização de aposta enviada para clientes WebSocket
// Kind: wager_placed | bet_closed | bet_resolved | settlement_ready
type BetUpdate struct {
	BetID   string      `json:"betId"`
	Kind    string      `json:"kind"`
	Payload interface{} `json:"payload"`
}
