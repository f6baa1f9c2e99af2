package clock

import "time"

// Clock abstrai o relógio pros componentes que derivam estado por tempo.
// Injetado em vez de ler time.Now() direto, pra manter tudo determinístico
// em teste.
type Clock interface {
	Now() time.Time
}

// Real usa o relógio do sistema.
type Real struct{}

func (Real) Now() time.Time { return time.Now() }

// Fixed devolve sempre o mesmo instante; útil em testes.
type Fixed struct{ T time.Time }

func (f Fixed) Now() time.Time { return f.T }
