package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fastprodman/pointpool/internal/repos/participations"
	"github.com/fastprodman/pointpool/internal/repos/players"
	"github.com/fastprodman/pointpool/internal/repos/tournaments"
	"github.com/fastprodman/pointpool/internal/services/pool"
)

// HandlerProvider wraps the pool service and exposes HTTP handlers.
type HandlerProvider struct {
	svc *pool.Service
}

// NewHandler returns a new Handler provider.
func NewHandler(svc *pool.Service) *HandlerProvider {
	return &HandlerProvider{svc: svc}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)

		http.Error(w, `{"error":"internal json encode failure"}`, http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps domain errors onto status codes:
// missing account/tournament -> 404, conflicts -> 409,
// validation and lifecycle violations -> 400, anything else -> 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, players.ErrPlayerNotFound):
		writeError(w, http.StatusNotFound, "player not found")
	case errors.Is(err, tournaments.ErrTournamentNotFound):
		writeError(w, http.StatusNotFound, "tournament not found")
	case errors.Is(err, tournaments.ErrTournamentExists):
		writeError(w, http.StatusConflict, "tournament already exists")
	case errors.Is(err, participations.ErrAlreadyJoined):
		writeError(w, http.StatusConflict, "player already joined this tournament")
	case errors.Is(err, tournaments.ErrTournamentClosed):
		writeError(w, http.StatusBadRequest, "tournament is already closed")
	case errors.Is(err, players.ErrInsufficientBalance):
		writeError(w, http.StatusBadRequest, "one or more players have not enough balance")
	case errors.Is(err, pool.ErrBackerNotFound):
		writeError(w, http.StatusBadRequest, "one or more backers does not exist")
	case errors.Is(err, pool.ErrWinnerMismatch):
		writeError(w, http.StatusBadRequest, "one or more winners have not joined tournament")
	default:
		slog.Error("internal error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func queryID(r *http.Request, name string) (string, error) {
	id := r.URL.Query().Get(name)
	if id == "" {
		return "", fmt.Errorf("missing %s", name)
	}

	return id, nil
}

// queryPoints parses an integer amount query parameter, at least min.
func queryPoints(r *http.Request, name string, min int64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("%s required", name)
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if n < min {
		return 0, fmt.Errorf("%s must be >= %d", name, min)
	}

	return float64(n), nil
}

// --- Handlers ---

// BalanceHandler handles GET /balance?playerId=P1
func (h *HandlerProvider) BalanceHandler(w http.ResponseWriter, r *http.Request) {
	playerID, err := queryID(r, "playerId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	info, err := h.svc.Balance(r.Context(), playerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, info)
}

// FundHandler handles POST /fund?playerId=P1&points=300
func (h *HandlerProvider) FundHandler(w http.ResponseWriter, r *http.Request) {
	playerID, err := queryID(r, "playerId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	points, err := queryPoints(r, "points", 1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.svc.Fund(r.Context(), playerID, points)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// TakeHandler handles POST /take?playerId=P1&points=300
func (h *HandlerProvider) TakeHandler(w http.ResponseWriter, r *http.Request) {
	playerID, err := queryID(r, "playerId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	points, err := queryPoints(r, "points", 1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.svc.Take(r.Context(), playerID, points)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// AnnounceTournamentHandler handles POST /announceTournament?tournamentId=T1&deposit=1000
func (h *HandlerProvider) AnnounceTournamentHandler(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := queryID(r, "tournamentId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	deposit, err := queryPoints(r, "deposit", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.svc.Announce(r.Context(), tournamentID, deposit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// JoinTournamentHandler handles
// POST /joinTournament?tournamentId=T1&playerId=P1&backerId=P2&backerId=P3
// The backerId parameter repeats; duplicates are collapsed.
func (h *HandlerProvider) JoinTournamentHandler(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := queryID(r, "tournamentId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	playerID, err := queryID(r, "playerId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var backerIDs []string
	seen := make(map[string]struct{})
	for _, id := range r.URL.Query()["backerId"] {
		if id == "" {
			writeError(w, http.StatusBadRequest, "empty backerId")
			return
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		backerIDs = append(backerIDs, id)
	}

	err = h.svc.Join(r.Context(), tournamentID, playerID, backerIDs)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type resultRequest struct {
	TournamentID string `json:"tournamentId"`
	Winners      []struct {
		PlayerID string `json:"playerId"`
		Prize    int64  `json:"prize"`
	} `json:"winners"`
}

// ResultTournamentHandler handles POST /resultTournament with a JSON body:
//
//	{"tournamentId": "T1", "winners": [{"playerId": "P1", "prize": 2000}]}
func (h *HandlerProvider) ResultTournamentHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB cap
	defer r.Body.Close()

	var req resultRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	err := dec.Decode(&req)
	if err != nil {
		if errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "empty body")
			return
		}

		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if req.TournamentID == "" {
		writeError(w, http.StatusBadRequest, "tournamentId required")
		return
	}

	winners := make([]pool.Winner, 0, len(req.Winners))
	for _, win := range req.Winners {
		if win.PlayerID == "" {
			writeError(w, http.StatusBadRequest, "winner playerId required")
			return
		}
		if win.Prize < 0 {
			writeError(w, http.StatusBadRequest, "prize must be >= 0")
			return
		}

		winners = append(winners, pool.Winner{PlayerID: win.PlayerID, Prize: float64(win.Prize)})
	}

	err = h.svc.Result(r.Context(), req.TournamentID, winners)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ResetHandler handles POST /reset, wiping all state. Dev/test convenience.
func (h *HandlerProvider) ResetHandler(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Reset(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
