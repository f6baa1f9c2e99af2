// Package settlement implementa a liquidação pari-mutuel de uma aposta:
// totais por outcome, payout pro-rata dos vencedores e a lista de
// transferências perdedor→vencedor. Tudo aqui é função pura sobre um
// snapshot imutável: sem estado compartilhado, sem I/O, sem erro pra
// entrada dentro do domínio.
package settlement

import "github.com/radieske/bet-that-platform/internal/bet"

// OutcomeTotals soma os palpites por outcome.
// Todo outcome aparece no mapa, mesmo com total zero. Palpite apontando pra
// outcome desconhecido é ignorado em silêncio (dado bem formado
// nunca produz isso). A ordem dos participantes não altera o resultado.
func OutcomeTotals(b bet.Bet) map[string]float64 {
	totals := make(map[string]float64, len(b.Outcomes))
	for _, o := range b.Outcomes {
		totals[o.ID] = 0
	}
	for _, p := range b.Participants {
		if _, ok := totals[p.OutcomeID]; ok {
			totals[p.OutcomeID] += p.Amount
		}
	}
	return totals
}

// PoolTotal soma os valores de um mapa de totais.
func PoolTotal(totals map[string]float64) float64 {
	var sum float64
	for _, v := range totals {
		sum += v
	}
	return sum
}
