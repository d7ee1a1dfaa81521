// internal/solver/solver.go
//
// Automated player for one puzzle.
// Responsibilities:
//   - Choose the next guess from the candidate pool (best-ranked early, random late).
//   - Submit it to the puzzle and feed the letter feedback back into the pool.
//   - Drive a whole play-through and record it as a Transcript.
//
// Evaluate errors are returned unchanged; the solver never retries a round.

package solver

import (
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/pool"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// randomPickThreshold is the remaining-attempts count at or below which the
// solver stops trusting the ranking and guesses at random.
const randomPickThreshold = 3

// Options configures a Solver. The zero value is usable.
type Options struct {
	MaxGuesses int        // attempt countdown start; 0 means game.DefaultMaxGuesses
	Rand       *rand.Rand // session random source; nil seeds a fresh one
	Assertions bool       // enable pool contract checks
	Logger     *zerolog.Logger
}

// Solver holds the candidate pool and attempt countdown for one session.
type Solver struct {
	pool      *pool.Pool
	remaining int
	log       zerolog.Logger
}

// New returns a solver whose pool is seeded from the universe.
func New(u *words.Universe, opts Options) *Solver {
	if opts.MaxGuesses <= 0 {
		opts.MaxGuesses = game.DefaultMaxGuesses
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Solver{
		pool:      pool.New(u.Words(), pool.Options{Rand: opts.Rand, Assertions: opts.Assertions}),
		remaining: opts.MaxGuesses,
		log:       logger,
	}
}

// NextGuess removes and returns the next word to try.
func (s *Solver) NextGuess() (string, error) {
	if s.remaining <= randomPickThreshold {
		return s.pool.PickRandom()
	}
	return s.pool.PickBest()
}

// PlayRound makes one guess against g and narrows the pool with the feedback.
func (s *Solver) PlayRound(g *game.Game) (game.Feedback, error) {
	guess, err := s.NextGuess()
	if err != nil {
		return nil, err
	}
	fb, err := g.Evaluate(guess)
	if err != nil {
		return nil, err
	}

	s.apply(fb)
	s.remaining--

	s.log.Debug().
		Str("guess", guess).
		Stringer("feedback", fb).
		Int("candidates", s.pool.Len()).
		Int("remaining", s.remaining).
		Msg("round")
	return fb, nil
}

// apply runs one elimination per symbol, left to right. A miss whose letter
// is also a hit or partial elsewhere in the same feedback is skipped: only
// duplicate-aware scoring produces that combination, and the letter is then
// known to be in the solution.
func (s *Solver) apply(fb game.Feedback) {
	var present [256]bool
	for _, sym := range fb {
		if sym.Mark != game.MarkMiss {
			present[sym.Letter] = true
		}
	}
	for i, sym := range fb {
		switch sym.Mark {
		case game.MarkHit:
			s.pool.RemoveNotMatchingPosition(sym.Letter, i)
		case game.MarkPartial:
			s.pool.RemoveWithoutLetter(sym.Letter)
		case game.MarkMiss:
			if !present[sym.Letter] {
				s.pool.RemoveContaining(sym.Letter)
			}
		}
	}
}

// Remaining returns the solver's own attempt countdown.
func (s *Solver) Remaining() int { return s.remaining }

// Candidates exposes the pool for inspection.
func (s *Solver) Candidates() *pool.Pool { return s.pool }
