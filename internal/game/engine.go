// internal/game/engine.go
//
// Puzzle state machine for a single solving session.
// Responsibilities:
//   - Create puzzles whose solution is a member of the word universe.
//   - Validate and record guesses (solved, exhausted, length checks, in that order).
//   - Score guesses into per-letter feedback.
//   - Track state transitions: active → solved / exhausted.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// DefaultMaxGuesses is the guess budget M when none is configured.
const DefaultMaxGuesses = 6

var (
	ErrAlreadySolved   = errors.New("game: already solved")
	ErrTooManyGuesses  = errors.New("game: no guesses remaining")
	ErrIllegalWord     = errors.New("game: illegal word")
	ErrInvalidSolution = errors.New("game: invalid solution")
)

// Options tunes a new Game. The zero value means DefaultMaxGuesses and
// ScoringMembership.
type Options struct {
	MaxGuesses int
	Scoring    Scoring
}

// New constructs a puzzle for solution. The solution must have the universe's
// word length and be one of its words.
func New(solution string, u *words.Universe, opts Options) (*Game, error) {
	solution = strings.ToLower(solution)
	if len(solution) != u.Length() {
		return nil, fmt.Errorf("%w: %q is not %d letters", ErrInvalidSolution, solution, u.Length())
	}
	if !u.Contains(solution) {
		return nil, fmt.Errorf("%w: %q is not in the word list", ErrInvalidSolution, solution)
	}
	if opts.MaxGuesses <= 0 {
		opts.MaxGuesses = DefaultMaxGuesses
	}
	if opts.Scoring == "" {
		opts.Scoring = ScoringMembership
	}
	return &Game{
		id:         randomID(),
		solution:   solution,
		maxGuesses: opts.MaxGuesses,
		scoring:    opts.Scoring,
		guesses:    make([]string, 0, opts.MaxGuesses),
	}, nil
}

// MustNew is like New but panics on an invalid solution.
func MustNew(solution string, u *words.Universe, opts Options) *Game {
	g, err := New(solution, u, opts)
	if err != nil {
		panic(err)
	}
	return g
}

// Evaluate records guess and returns its feedback.
//
// Errors, checked in order:
//   - ErrAlreadySolved if the last guess matched the solution.
//   - ErrTooManyGuesses if the guess budget is spent.
//   - ErrIllegalWord if the guess is not the solution's length.
//
// A failed call leaves the game untouched.
func (g *Game) Evaluate(guess string) (Feedback, error) {
	if g.IsSolved() {
		return nil, ErrAlreadySolved
	}
	if g.RemainingGuesses() == 0 {
		return nil, ErrTooManyGuesses
	}
	if len(guess) != len(g.solution) {
		return nil, fmt.Errorf("%w: %q is not %d letters", ErrIllegalWord, guess, len(g.solution))
	}
	guess = lowerASCII(guess)
	g.guesses = append(g.guesses, guess)

	if g.scoring == ScoringTwoPass {
		return scoreTwoPass(g.solution, guess), nil
	}
	return scoreMembership(g.solution, guess), nil
}

// IsSolved reports whether the most recent guess equals the solution.
func (g *Game) IsSolved() bool {
	n := len(g.guesses)
	return n > 0 && g.guesses[n-1] == g.solution
}

// RemainingGuesses returns how many guesses may still be submitted.
func (g *Game) RemainingGuesses() int {
	return g.maxGuesses - len(g.guesses)
}

// State reports the current lifecycle state.
func (g *Game) State() State {
	switch {
	case g.IsSolved():
		return StateSolved
	case g.RemainingGuesses() == 0:
		return StateExhausted
	default:
		return StateActive
	}
}

// ID returns the game's random identifier.
func (g *Game) ID() string { return g.id }

// Solution returns the hidden word.
func (g *Game) Solution() string { return g.solution }

// MaxGuesses returns the guess budget M.
func (g *Game) MaxGuesses() int { return g.maxGuesses }

// Guesses returns a copy of the guess history in submission order.
func (g *Game) Guesses() []string {
	return append([]string(nil), g.guesses...)
}

// lowerASCII folds A-Z only, so the byte length never changes.
func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

// scoreMembership compares position by position: equal letters are hits, any
// other letter the solution contains is partial, the rest are misses.
func scoreMembership(solution, guess string) Feedback {
	res := make(Feedback, len(guess))
	for i := 0; i < len(guess); i++ {
		c := guess[i]
		switch {
		case c == solution[i]:
			res[i] = Hit(c)
		case strings.IndexByte(solution, c) >= 0:
			res[i] = Partial(c)
		default:
			res[i] = Miss(c)
		}
	}
	return res
}

// scoreTwoPass implements the standard two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Count remaining (non-hit) solution letters.
//
// Pass 2:
//   - For each non-hit guess letter: if there is remaining count for that
//     letter, mark Partial and decrement; otherwise mark Miss.
func scoreTwoPass(solution, guess string) Feedback {
	n := len(guess)
	res := make(Feedback, n)
	var counts [256]int

	for i := 0; i < n; i++ {
		if guess[i] == solution[i] {
			res[i] = Hit(guess[i])
		} else {
			counts[solution[i]]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i].Mark == MarkHit {
			continue
		}
		c := guess[i]
		if counts[c] > 0 {
			res[i] = Partial(c)
			counts[c]--
		} else {
			res[i] = Miss(c)
		}
	}
	return res
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
