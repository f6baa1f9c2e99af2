package bet

import "time"

// StatusAt deriva o status efetivo de uma aposta num instante.
// Prioridade estrita: resolved > closed > prazo vencido > open.
// "resolved" é pegajoso: uma vez resolvida, sempre resolvida, independente
// do relógio. O fechamento por prazo é derivado, não persistido: o caller
// reavalia a cada leitura.
func StatusAt(b Bet, now time.Time) Status {
	if b.Status == StatusResolved {
		return StatusResolved
	}
	if b.Status == StatusClosed {
		return StatusClosed
	}
	if !now.Before(b.CloseAt) {
		return StatusClosed
	}
	return StatusOpen
}
