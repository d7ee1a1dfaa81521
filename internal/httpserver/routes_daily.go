// internal/httpserver/routes_daily.go
//
// HTTP routes for the word of the day.
// Exposes two endpoints under /daily:
//   - GET  /daily          → today's date key and word index (not the word)
//   - POST /daily/simulate → run the solver against today's word
//
// Deterministic word selection is based on date + salt.

package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
)

// dailyRes is the GET /daily payload.
type dailyRes struct {
	Date  string `json:"date"`
	Index int    `json:"index"`
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/", s.handleDaily)
		r.Post("/simulate", s.handleDailySimulate)
	})
}

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	writeJSON(w, http.StatusOK, dailyRes{
		Date:  daily.DateKey(now),
		Index: daily.WordIndex(now, s.opts.DailySalt, s.universe.Len()),
	})
}

func (s *Server) handleDailySimulate(w http.ResponseWriter, r *http.Request) {
	s.simulate(w, r, simulateReq{Answer: daily.Pick(s.universe, time.Now().UTC(), s.opts.DailySalt)})
}
