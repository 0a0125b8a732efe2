package api

import (
	"net/http"

	"github.com/fastprodman/pointpool/internal/services/pool"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter constructs the router with all API endpoints registered.
// Ids and amounts arrive as query parameters except for resultTournament,
// which takes a JSON body.
func NewRouter(svc *pool.Service) http.Handler {
	h := NewHandler(svc)
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/balance", instrument("/balance", h.BalanceHandler))
	r.Post("/fund", instrument("/fund", h.FundHandler))
	r.Post("/take", instrument("/take", h.TakeHandler))
	r.Post("/announceTournament", instrument("/announceTournament", h.AnnounceTournamentHandler))
	r.Post("/joinTournament", instrument("/joinTournament", h.JoinTournamentHandler))
	r.Post("/resultTournament", instrument("/resultTournament", h.ResultTournamentHandler))
	r.Post("/reset", instrument("/reset", h.ResetHandler))

	return r
}
