package solver

import (
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// Round is one guess and the feedback it earned.
type Round struct {
	Guess    string        `json:"guess"`
	Feedback game.Feedback `json:"feedback"`
}

// Transcript records a complete play-through.
type Transcript struct {
	ID         string     `json:"id"`
	Solution   string     `json:"solution"`
	MaxGuesses int        `json:"maxGuesses"`
	Rounds     []Round    `json:"rounds"`
	State      game.State `json:"state"`
}

// Solved reports whether the play-through ended in a solve.
func (t Transcript) Solved() bool { return t.State == game.StateSolved }

// Play runs rounds until g is solved or out of guesses. On error the
// transcript holds the rounds played so far.
func (s *Solver) Play(g *game.Game) (Transcript, error) {
	t := Transcript{ID: g.ID(), Solution: g.Solution(), MaxGuesses: g.MaxGuesses()}
	for g.State() == game.StateActive {
		fb, err := s.PlayRound(g)
		if err != nil {
			t.State = g.State()
			return t, err
		}
		guesses := g.Guesses()
		t.Rounds = append(t.Rounds, Round{Guess: guesses[len(guesses)-1], Feedback: fb})
	}
	t.State = g.State()
	return t, nil
}
