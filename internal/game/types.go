// internal/game/types.go
//
// Core type definitions for the puzzle state machine.
// Defines:
//   - Mark / Symbol / Feedback: per-letter result of a guess.
//   - State: active / solved / exhausted.
//   - Scoring: which rule turns a guess into feedback.
//   - Game: state for a single puzzle.

package game

import (
	"encoding/json"
	"strings"
)

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "hit":     letter is in the solution at this position.
//   - "partial": letter appears elsewhere in the solution.
//   - "miss":    letter does not appear in the solution at all.
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPartial Mark = "partial"
	MarkMiss    Mark = "miss"
)

// Symbol is one position of a Feedback: the mark and the guessed letter.
type Symbol struct {
	Mark   Mark
	Letter byte
}

// Hit, Partial and Miss build symbols for letter c.
func Hit(c byte) Symbol     { return Symbol{Mark: MarkHit, Letter: c} }
func Partial(c byte) Symbol { return Symbol{Mark: MarkPartial, Letter: c} }
func Miss(c byte) Symbol    { return Symbol{Mark: MarkMiss, Letter: c} }

// String renders the symbol as e.g. "hit(t)".
func (s Symbol) String() string {
	return string(s.Mark) + "(" + string([]byte{s.Letter}) + ")"
}

// MarshalJSON encodes the letter as a one-byte string. Letters are expected
// to be ASCII; other bytes are not valid UTF-8 on their own and encode as
// U+FFFD.
func (s Symbol) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Mark   Mark   `json:"mark"`
		Letter string `json:"letter"`
	}{s.Mark, string([]byte{s.Letter})})
}

// Feedback is the position-aligned result of evaluating one guess.
type Feedback []Symbol

// Solved reports whether every symbol is a hit.
func (f Feedback) Solved() bool {
	if len(f) == 0 {
		return false
	}
	for _, s := range f {
		if s.Mark != MarkHit {
			return false
		}
	}
	return true
}

func (f Feedback) String() string {
	parts := make([]string, len(f))
	for i, s := range f {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// State is the coarse lifecycle of a Game.
type State string

const (
	StateActive    State = "active"
	StateSolved    State = "solved"
	StateExhausted State = "exhausted"
)

// Scoring selects the rule used to compute feedback.
type Scoring string

const (
	// ScoringMembership marks a non-hit letter partial whenever the solution
	// contains it at all. Repeated guess letters may all come back partial.
	ScoringMembership Scoring = "membership"
	// ScoringTwoPass is the duplicate-aware rule: each solution letter backs
	// at most one hit or partial.
	ScoringTwoPass Scoring = "two-pass"
)

// Game holds the hidden solution and guess history of one puzzle.
type Game struct {
	id         string
	solution   string
	maxGuesses int
	scoring    Scoring
	guesses    []string
}
