// internal/httpserver/server.go
//
// HTTP server wiring for the solver simulator.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/words/stats".
//   - Simulation endpoints: POST /simulate, GET /simulate/{id}, POST /bench.
//   - Word of the day endpoints: mounted under /daily.
//
// Notes:
//   - Every simulation runs the solver server-side against a hidden word; there
//     is no endpoint for a client to submit its own guesses.
//   - Transcripts live in an in-memory store and vanish on restart.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/bench"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// maxBenchRuns caps POST /bench so a request stays within the handler timeout.
const maxBenchRuns = 10

// Options carries the solver settings applied to every simulation.
type Options struct {
	MaxGuesses int
	Scoring    game.Scoring
	Assertions bool
	DailySalt  string
	Timeout    time.Duration // per-request handler bound; 0 means 30s
}

// Server bundles router, transcript store and word universe.
type Server struct {
	r        *chi.Mux
	store    store.Store
	universe *words.Universe
	opts     Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, u *words.Universe, opts Options) *Server {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	s := &Server{r: chi.NewRouter(), store: st, universe: u, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)             // add X-Request-ID
	s.r.Use(chimw.RealIP)                // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                   // one zerolog line per request
	s.r.Use(chimw.Recoverer)             // recover from panics
	s.r.Use(chimw.Timeout(opts.Timeout)) // bound handler time
	s.r.Use(jsonContentType)             // default JSON responses

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","/words/stats","POST /simulate","GET /simulate/{id}","POST /bench","/daily"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/words/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{"words": u.Len(), "length": u.Length()})
	})

	// --- simulations ---
	s.r.Post("/simulate", s.handleSimulate)
	s.r.Get("/simulate/{id}", s.handleGetSimulation)
	s.r.Post("/bench", s.handleBench)

	s.mountDaily(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// accessLog writes a structured line per request with status and duration.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Str("requestId", chimw.GetReqID(r.Context())).
			Msg("http")
	})
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeBody decodes a JSON request body into v. An empty body, chunked or
// not, leaves v untouched.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// ---------------------------- SIMULATION ------------------------------------

// simulateReq is the POST /simulate payload. Both fields are optional.
type simulateReq struct {
	Answer string `json:"answer"` // fixed solution; random universe word when empty
	Seed   uint64 `json:"seed"`   // solver seed; random when zero
}

// handleSimulate plays one full solver session and stores its transcript.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateReq
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	s.simulate(w, r, req)
}

// simulate runs the solver for req and writes the transcript.
func (s *Server) simulate(w http.ResponseWriter, r *http.Request, req simulateReq) {
	rng := sessionRand(req.Seed)
	answer := req.Answer
	if answer == "" {
		answer = s.universe.Random(rng)
	}

	g, err := game.New(answer, s.universe, game.Options{MaxGuesses: s.opts.MaxGuesses, Scoring: s.opts.Scoring})
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_answer")
		return
	}
	sv := solver.New(s.universe, solver.Options{
		MaxGuesses: s.opts.MaxGuesses,
		Rand:       rng,
		Assertions: s.opts.Assertions,
	})
	tr, err := sv.Play(g)
	if err != nil {
		log.Error().Err(err).Str("gameId", g.ID()).Msg("simulate")
		writeError(w, http.StatusInternalServerError, "solver_failed")
		return
	}
	if err := s.store.Save(r.Context(), tr); err != nil {
		log.Error().Err(err).Str("gameId", tr.ID).Msg("save transcript")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	writeJSON(w, http.StatusOK, tr)
}

// handleGetSimulation returns a stored transcript.
func (s *Server) handleGetSimulation(w http.ResponseWriter, r *http.Request) {
	tr, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "store_failed")
		return
	}
	writeJSON(w, http.StatusOK, tr)
}

// benchReq is the POST /bench payload.
type benchReq struct {
	Runs int    `json:"runs"` // 1..maxBenchRuns, default 1
	Seed uint64 `json:"seed"`
}

// benchRes summarises a benchmark without the per-word failure map.
type benchRes struct {
	Seed      uint64            `json:"seed"`
	Wins      int               `json:"wins"`
	Losses    int               `json:"losses"`
	WinRate   float64           `json:"winRate"`
	Histogram []int             `json:"histogram"`
	Runs      []bench.RunReport `json:"runs"`
}

// handleBench runs a short benchmark over the whole universe.
func (s *Server) handleBench(w http.ResponseWriter, r *http.Request) {
	var req benchReq
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.Runs <= 0 {
		req.Runs = 1
	}
	if req.Runs > maxBenchRuns {
		writeError(w, http.StatusBadRequest, "too_many_runs")
		return
	}

	rep, err := bench.Run(r.Context(), s.universe, bench.Options{
		Runs:       req.Runs,
		Seed:       req.Seed,
		MaxGuesses: s.opts.MaxGuesses,
		Scoring:    s.opts.Scoring,
		Assertions: s.opts.Assertions,
	})
	if err != nil {
		if r.Context().Err() != nil {
			// chimw.Timeout writes the 504 once the handler returns.
			log.Warn().Err(err).Int("runs", req.Runs).Msg("bench interrupted")
			return
		}
		log.Error().Err(err).Msg("bench")
		writeError(w, http.StatusInternalServerError, "bench_failed")
		return
	}
	writeJSON(w, http.StatusOK, benchRes{
		Seed:      rep.Seed,
		Wins:      rep.Wins,
		Losses:    rep.Losses,
		WinRate:   rep.WinRate(),
		Histogram: rep.Histogram,
		Runs:      rep.Runs,
	})
}

// sessionRand returns a PCG seeded from seed, or from the global source when zero.
func sessionRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
