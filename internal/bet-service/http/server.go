package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/radieske/bet-that-platform/internal/bet"
	"github.com/radieske/bet-that-platform/internal/bet-service/dto"
	"github.com/radieske/bet-that-platform/internal/bet-service/links"
	"github.com/radieske/bet-that-platform/internal/bet-service/profile"
	"github.com/radieske/bet-that-platform/internal/bet-service/ws"
	"github.com/radieske/bet-that-platform/internal/settlement"
	"github.com/radieske/bet-that-platform/internal/shared/clock"
	"github.com/radieske/bet-that-platform/pkg/contracts/events"
)

// Publisher publica os eventos de ciclo de vida no Kafka.
type Publisher interface {
	PublishWagerPlaced(ctx context.Context, e events.WagerPlaced) error
	PublishBetResolved(ctx context.Context, snapshot bet.Bet) error
}

// ResultsCache guarda liquidações computadas por um TTL curto.
type ResultsCache interface {
	GetResults(ctx context.Context, betID string, dst any) (bool, error)
	SetResults(ctx context.Context, betID string, v any, ttl time.Duration) error
}

// Flags é o armazenamento chave/valor de onboarding e identidade.
type Flags interface {
	Get(ctx context.Context, userID, flag string) (string, error)
	Set(ctx context.Context, userID, flag, value string) error
	Remove(ctx context.Context, userID, flag string) error
}

// Broadcaster publica atualizações ao vivo no Redis Pub/Sub.
type Broadcaster interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// Server expõe a API REST e o WebSocket do bet-service.
type Server struct {
	log        *zap.Logger
	store      *bet.Store
	clk        clock.Clock
	cache      ResultsCache
	flags      Flags
	publ       Publisher
	bcast      Broadcaster
	channel    string
	resultsTTL time.Duration
	hub        *ws.Hub
}

func NewServer(
	log *zap.Logger,
	store *bet.Store,
	clk clock.Clock,
	cache ResultsCache,
	flags Flags,
	publ Publisher,
	bcast Broadcaster,
	channel string,
	resultsTTL time.Duration,
	hub *ws.Hub,
) *Server {
	return &Server{
		log:        log,
		store:      store,
		clk:        clk,
		cache:      cache,
		flags:      flags,
		publ:       publ,
		bcast:      bcast,
		channel:    channel,
		resultsTTL: resultsTTL,
		hub:        hub,
	}
}

// Router retorna o roteador HTTP com os endpoints REST e o WS
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Post("/v1/bets", s.createBet)               // Cria aposta
	r.Get("/v1/bets", s.listBets)                 // Lista apostas
	r.Get("/v1/bets/lookup", s.lookupBet)         // Resolve código/link compartilhado
	r.Get("/v1/bets/{id}", s.getBet)              // Detalhe com status derivado + totais
	r.Post("/v1/bets/{id}/wagers", s.placeWager)  // Entra na aposta
	r.Post("/v1/bets/{id}/close", s.closeBet)     // Fecha entradas manualmente
	r.Post("/v1/bets/{id}/resolve", s.resolveBet) // Declara o outcome vencedor
	r.Get("/v1/bets/{id}/results", s.getResults)  // Liquidação derivada

	r.Get("/v1/profile/{userId}/flags/{key}", s.getFlag)
	r.Put("/v1/profile/{userId}/flags/{key}", s.setFlag)
	r.Delete("/v1/profile/{userId}/flags/{key}", s.removeFlag)

	if s.hub != nil {
		r.Get("/ws", s.hub.HandleWS)
	}
	return r
}

// toResponse anexa ao snapshot os campos derivados que as telas consomem.
// O status é sempre recalculado com o relógio injetado: o campo persistido
// não sabe de prazo vencido.
func (s *Server) toResponse(b bet.Bet) dto.BetResponse {
	totals := settlement.OutcomeTotals(b)
	return dto.BetResponse{
		Bet:           b,
		DerivedStatus: bet.StatusAt(b, s.clk.Now()),
		Totals:        totals,
		PoolTotal:     settlement.PoolTotal(totals),
		ShareCode:     links.BetLink(b.ID),
	}
}

func (s *Server) createBet(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "bad json"})
		return
	}

	outcomes := make([]bet.Outcome, 0, len(req.Outcomes))
	for _, o := range req.Outcomes {
		outcomes = append(outcomes, bet.Outcome{ID: o.ID, Label: o.Label})
	}

	b, err := s.store.Create(bet.CreateParams{
		Title:       req.Title,
		Description: req.Description,
		Rules:       req.Rules,
		CreatorName: req.CreatorName,
		CloseAt:     req.CloseAt,
		Outcomes:    outcomes,
	})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, dto.CreateBetResponse{
		BetResponse:      s.toResponse(b),
		CreatorShareCode: links.CreatorLink(b.CreatorID),
	})
}

func (s *Server) listBets(w http.ResponseWriter, r *http.Request) {
	all := s.store.List()
	out := make([]dto.BetResponse, 0, len(all))
	for _, b := range all {
		out = append(out, s.toResponse(b))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getBet(w http.ResponseWriter, r *http.Request) {
	b, err := s.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
		return
	}
	writeJSON(w, http.StatusOK, s.toResponse(b))
}

// lookupBet resolve um código/link compartilhado pra aposta correspondente.
// Aceita código de participante (bet/{id}) e de criador (creator/{id}).
func (s *Server) lookupBet(w http.ResponseWriter, r *http.Request) {
	id := links.ParseLinkID(r.URL.Query().Get("code"))
	if id == "" {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "code required"})
		return
	}

	if b, err := s.store.Get(id); err == nil {
		writeJSON(w, http.StatusOK, s.toResponse(b))
		return
	}
	// código de criador não é id de aposta; procura pelo dono
	for _, b := range s.store.List() {
		if b.CreatorID == id {
			writeJSON(w, http.StatusOK, s.toResponse(b))
			return
		}
	}
	writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
}

func (s *Server) placeWager(w http.ResponseWriter, r *http.Request) {
	betID := chi.URLParam(r, "id")

	var req dto.PlaceWagerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "bad json"})
		return
	}

	snapshot, p, err := s.store.AddParticipant(betID, req.Name, req.OutcomeID, req.Amount)
	if err != nil {
		writeJSON(w, statusFor(err), dto.ErrorResponse{Error: err.Error()})
		return
	}

	// Publica o evento no Kafka; falha não desfaz o palpite, só perde o feed
	if err := s.publ.PublishWagerPlaced(r.Context(), events.WagerPlaced{
		BetID:         betID,
		ParticipantID: p.ID,
		Name:          p.Name,
		OutcomeID:     p.OutcomeID,
		Amount:        p.Amount,
	}); err != nil {
		s.log.Warn("publish wager_placed", zap.Error(err), zap.String("betId", betID))
	}

	resp := dto.PlaceWagerResponse{Bet: s.toResponse(snapshot), Participant: p}
	s.broadcast(r.Context(), betID, "wager_placed", resp.Bet)
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) closeBet(w http.ResponseWriter, r *http.Request) {
	betID := chi.URLParam(r, "id")
	b, err := s.store.Close(betID)
	if err != nil {
		writeJSON(w, statusFor(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp := s.toResponse(b)
	s.broadcast(r.Context(), betID, "bet_closed", resp)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) resolveBet(w http.ResponseWriter, r *http.Request) {
	betID := chi.URLParam(r, "id")

	var req dto.ResolveBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "bad json"})
		return
	}
	if req.WinningOutcomeID == "" {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "winningOutcomeId required"})
		return
	}

	b, err := s.store.Resolve(betID, req.WinningOutcomeID)
	if err != nil {
		writeJSON(w, statusFor(err), dto.ErrorResponse{Error: err.Error()})
		return
	}

	// snapshot completo pro worker de liquidação; sem banco compartilhado
	if err := s.publ.PublishBetResolved(r.Context(), b); err != nil {
		s.log.Warn("publish bet_resolved", zap.Error(err), zap.String("betId", betID))
	}

	resp := s.toResponse(b)
	s.broadcast(r.Context(), betID, "bet_resolved", resp)
	writeJSON(w, http.StatusOK, resp)
}

// getResults devolve a liquidação derivada, preferencialmente do cache.
// Enquanto não houver vencedor declarado responde 409: "aguardando
// resolução" é estado esperado, não falha.
func (s *Server) getResults(w http.ResponseWriter, r *http.Request) {
	betID := chi.URLParam(r, "id")

	var cached settlement.Result
	if ok, _ := s.cache.GetResults(r.Context(), betID, &cached); ok {
		writeJSON(w, http.StatusOK, dto.ResultsResponse{BetID: betID, Result: &cached})
		return
	}

	b, err := s.store.Get(betID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
		return
	}

	res := settlement.Calculate(b)
	if res == nil {
		writeJSON(w, http.StatusConflict, dto.ErrorResponse{Error: "awaiting resolution"})
		return
	}

	_ = s.cache.SetResults(r.Context(), betID, res, s.resultsTTL)
	writeJSON(w, http.StatusOK, dto.ResultsResponse{BetID: betID, Result: res})
}

func (s *Server) getFlag(w http.ResponseWriter, r *http.Request) {
	userID, key := chi.URLParam(r, "userId"), chi.URLParam(r, "key")
	v, err := s.flags.Get(r.Context(), userID, key)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, dto.FlagResponse{Key: key, Value: v})
}

func (s *Server) setFlag(w http.ResponseWriter, r *http.Request) {
	userID, key := chi.URLParam(r, "userId"), chi.URLParam(r, "key")

	var req dto.SetFlagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "bad json"})
		return
	}
	if err := s.flags.Set(r.Context(), userID, key, req.Value); err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, dto.FlagResponse{Key: key, Value: req.Value})
}

func (s *Server) removeFlag(w http.ResponseWriter, r *http.Request) {
	userID, key := chi.URLParam(r, "userId"), chi.URLParam(r, "key")
	if err := s.flags.Remove(r.Context(), userID, key); err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// broadcast manda a atualização pro canal Pub/Sub; o hub WS repassa.
func (s *Server) broadcast(ctx context.Context, betID, kind string, payload any) {
	if s.bcast == nil {
		return
	}
	b, _ := json.Marshal(ws.BetUpdate{BetID: betID, Kind: kind, Payload: payload})

	bctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	if err := s.bcast.Publish(bctx, s.channel, b); err != nil {
		s.log.Warn("ws broadcast publish", zap.Error(err), zap.String("betId", betID))
	}
}

// statusFor mapeia erros do store pra códigos HTTP.
func statusFor(err error) int {
	switch {
	case errors.Is(err, bet.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, bet.ErrBetNotOpen), errors.Is(err, bet.ErrAlreadyResolved):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// writeJSON serializa a resposta em JSON e define o status HTTP
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
