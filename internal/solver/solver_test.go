package solver

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/pool"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func embedded(t *testing.T) *words.Universe {
	t.Helper()
	u, err := words.Load(words.LoadOptions{})
	require.NoError(t, err)
	return u
}

func small(t *testing.T, list ...string) *words.Universe {
	t.Helper()
	u, err := words.New(list, 5)
	require.NoError(t, err)
	return u
}

func TestSolutionNeverEliminated(t *testing.T) {
	u := embedded(t)
	for _, scoring := range []game.Scoring{game.ScoringMembership, game.ScoringTwoPass} {
		t.Run(string(scoring), func(t *testing.T) {
			for i, solution := range u.Words() {
				s := New(u, Options{Rand: rand.New(rand.NewPCG(uint64(i), 42)), Assertions: true})
				g := game.MustNew(solution, u, game.Options{Scoring: scoring})

				for g.State() == game.StateActive {
					_, err := s.PlayRound(g)
					require.NoError(t, err, solution)
					if !g.IsSolved() {
						require.True(t, s.Candidates().Contains(solution),
							"%s eliminated after %v", solution, g.Guesses())
					}
				}
			}
		})
	}
}

func TestPlayTerminates(t *testing.T) {
	u := embedded(t)
	for i, solution := range u.Words() {
		s := New(u, Options{Rand: rand.New(rand.NewPCG(9, uint64(i)))})
		g := game.MustNew(solution, u, game.Options{})

		tr, err := s.Play(g)
		require.NoError(t, err)
		assert.Equal(t, solution, tr.Solution)
		assert.Equal(t, g.ID(), tr.ID)
		assert.Equal(t, game.DefaultMaxGuesses, tr.MaxGuesses)
		assert.NotEqual(t, game.StateActive, tr.State)
		assert.Equal(t, g.Guesses(), guesses(tr))
		if tr.Solved() {
			assert.Equal(t, solution, tr.Rounds[len(tr.Rounds)-1].Guess)
			assert.True(t, tr.Rounds[len(tr.Rounds)-1].Feedback.Solved())
		} else {
			assert.Len(t, tr.Rounds, game.DefaultMaxGuesses)
		}
	}
}

func guesses(tr Transcript) []string {
	out := make([]string, len(tr.Rounds))
	for i, r := range tr.Rounds {
		out[i] = r.Guess
	}
	return out
}

func TestNextGuessBestEarly(t *testing.T) {
	u := embedded(t)
	s := New(u, Options{Rand: rand.New(rand.NewPCG(1, 2))})
	ranked := s.Candidates().Words()

	w, err := s.NextGuess()
	require.NoError(t, err)
	assert.Equal(t, ranked[len(ranked)-1], w)
	assert.Equal(t, 5, pool.DistinctLetters(w))
}

func TestNextGuessRandomLate(t *testing.T) {
	u := embedded(t)
	s := New(u, Options{MaxGuesses: 3, Rand: rand.New(rand.NewPCG(1, 2))})
	ref := pool.New(u.Words(), pool.Options{Rand: rand.New(rand.NewPCG(1, 2))})

	want, err := ref.PickRandom()
	require.NoError(t, err)
	got, err := s.NextGuess()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPlayRoundDecrementsRemaining(t *testing.T) {
	u := small(t, "those", "hotel", "weigh", "crane")
	s := New(u, Options{})
	g := game.MustNew("those", u, game.Options{})

	assert.Equal(t, game.DefaultMaxGuesses, s.Remaining())
	_, err := s.PlayRound(g)
	require.NoError(t, err)
	assert.Equal(t, game.DefaultMaxGuesses-1, s.Remaining())
}

func TestPlayRoundPropagatesEvaluateError(t *testing.T) {
	u := small(t, "those", "hotel")
	g := game.MustNew("those", u, game.Options{})
	_, err := g.Evaluate("those")
	require.NoError(t, err)

	s := New(u, Options{})
	_, err = s.PlayRound(g)
	require.ErrorIs(t, err, game.ErrAlreadySolved)
	assert.Equal(t, game.DefaultMaxGuesses, s.Remaining())

	g = game.MustNew("those", u, game.Options{MaxGuesses: 1})
	_, err = g.Evaluate("hotel")
	require.NoError(t, err)
	_, err = s.PlayRound(g)
	require.ErrorIs(t, err, game.ErrTooManyGuesses)
}

func TestPlayRoundNoCandidates(t *testing.T) {
	s := New(small(t, "weigh"), Options{})
	u := small(t, "those", "weigh")
	g := game.MustNew("those", u, game.Options{})

	tr, err := s.Play(g)
	require.ErrorIs(t, err, pool.ErrNoCandidates)
	assert.Len(t, tr.Rounds, 1)
	assert.Equal(t, game.StateActive, tr.State)
}

func TestApplySkipsMissForPresentLetter(t *testing.T) {
	u := small(t, "hotel", "llama", "those", "weigh")
	s := New(u, Options{Assertions: true})

	// Two-pass feedback for guess "llama" against "hotel".
	s.apply(game.Feedback{game.Partial('l'), game.Miss('l'), game.Miss('a'), game.Miss('m'), game.Miss('a')})
	assert.Equal(t, []string{"hotel"}, s.Candidates().Words())
}

func TestApplyMembershipFeedback(t *testing.T) {
	u := small(t, "those", "troll", "weigh", "hotel", "thumb")
	s := New(u, Options{Assertions: true})

	s.apply(game.Feedback{game.Hit('t'), game.Miss('r'), game.Hit('o'), game.Miss('l'), game.Miss('l')})
	assert.Equal(t, []string{"those"}, s.Candidates().Words())
}
