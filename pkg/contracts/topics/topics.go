package topics

const (
	// Ciclo de vida das apostas
	WagerPlaced = "wager_placed"
	BetResolved = "bet_resolved"

	// Liquidação
	SettlementReady = "settlement_ready"

	// DLQs
	BetResolvedDLQ = "bet_resolved_dlq"
)
