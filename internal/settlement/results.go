package settlement

import "github.com/radieske/bet-that-platform/internal/bet"

// transferEpsilon descarta transferências de ruído de ponto flutuante.
// O valor 0.004 vem do app original e precisa ser mantido igual pra
// compatibilidade do que cada cliente exibe.
const transferEpsilon = 0.004

// WinnerPayout é um vencedor com o payout pro-rata calculado.
// Net é o lucro (payout menos a própria entrada).
type WinnerPayout struct {
	bet.Participant
	Payout float64 `json:"payout"`
	Net    float64 `json:"net"`
}

// Transfer é uma dívida par-a-par de um perdedor pra um vencedor.
// Identificada por nome, como no app; nomes repetidos geram linhas
// separadas, uma por palpite.
type Transfer struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// Result é a liquidação derivada de uma aposta resolvida.
// Nunca é persistido: recalcula-se sob demanda a partir do snapshot.
type Result struct {
	PoolTotal       float64            `json:"poolTotal"`
	Totals          map[string]float64 `json:"totals"`
	Winners         []WinnerPayout     `json:"winners"`
	Losers          []bet.Participant  `json:"losers"`
	TotalWinStake   float64            `json:"totalWinStake"`
	TotalLoserStake float64            `json:"totalLoserStake"`
	Settlement      []Transfer         `json:"settlement"`
}

// Calculate computa a liquidação pari-mutuel de uma aposta resolvida.
// Devolve nil se nenhum vencedor foi declarado ainda: estado esperado,
// não erro. Pra qualquer snapshot dentro do domínio a função termina sem
// pânico, sem NaN e sem Inf:
//
//   - vencedor sem aposta (totalWinStake <= 0): payouts e nets zerados,
//     settlement vazio;
//   - todo mundo no outcome vencedor (totalLoserStake <= 0): cada payout
//     igual à própria entrada, settlement vazio;
//   - winningOutcomeID fora da lista de outcomes: todo participante vira
//     perdedor; comportamento degenerado porém definido.
//
// A lista de transferências é deliberadamente O(perdedores × vencedores):
// cada perdedor reparte sua entrada entre os nets dos vencedores, na
// proporção da fatia dele no bolo perdedor. Não é liquidação de número
// mínimo de transações e não deve ser "otimizada": isso mudaria a saída
// observável dos clientes.
func Calculate(b bet.Bet) *Result {
	if b.WinningOutcomeID == "" {
		return nil
	}

	totals := OutcomeTotals(b)
	poolTotal := PoolTotal(totals)

	winners := []bet.Participant{}
	losers := []bet.Participant{}
	for _, p := range b.Participants {
		if p.OutcomeID == b.WinningOutcomeID {
			winners = append(winners, p)
		} else {
			losers = append(losers, p)
		}
	}

	var totalWinStake float64
	for _, w := range winners {
		totalWinStake += w.Amount
	}
	totalLoserStake := poolTotal - totalWinStake

	winnersWithPayout := make([]WinnerPayout, 0, len(winners))
	for _, w := range winners {
		if totalWinStake <= 0 {
			winnersWithPayout = append(winnersWithPayout, WinnerPayout{Participant: w})
			continue
		}
		payout := (w.Amount / totalWinStake) * poolTotal
		winnersWithPayout = append(winnersWithPayout, WinnerPayout{
			Participant: w,
			Payout:      payout,
			Net:         payout - w.Amount,
		})
	}

	settlement := []Transfer{}
	if totalLoserStake > 0 && len(winnersWithPayout) > 0 {
		for _, loser := range losers {
			for _, winner := range winnersWithPayout {
				amount := (loser.Amount / totalLoserStake) * winner.Net
				if amount > transferEpsilon {
					settlement = append(settlement, Transfer{
						From:   loser.Name,
						To:     winner.Name,
						Amount: amount,
					})
				}
			}
		}
	}

	return &Result{
		PoolTotal:       poolTotal,
		Totals:          totals,
		Winners:         winnersWithPayout,
		Losers:          losers,
		TotalWinStake:   totalWinStake,
		TotalLoserStake: totalLoserStake,
		Settlement:      settlement,
	}
}
