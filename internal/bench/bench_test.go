package bench

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func embedded(t *testing.T) *words.Universe {
	t.Helper()
	u, err := words.Load(words.LoadOptions{})
	require.NoError(t, err)
	return u
}

func TestRunAggregates(t *testing.T) {
	u := embedded(t)
	var seen []RunReport
	rep, err := Run(context.Background(), u, Options{
		Runs:    2,
		Workers: 4,
		Seed:    99,
		OnRun:   func(r RunReport) { seen = append(seen, r) },
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(99), rep.Seed)
	assert.Equal(t, 2*u.Len(), rep.Wins+rep.Losses)
	require.Len(t, rep.Runs, 2)
	assert.Equal(t, rep.Runs, seen)
	assert.Equal(t, 0, seen[0].Run)
	assert.Equal(t, 1, seen[1].Run)

	require.Len(t, rep.Histogram, game.DefaultMaxGuesses+1)
	assert.Equal(t, 0, rep.Histogram[0])
	solved := 0
	for _, n := range rep.Histogram {
		solved += n
	}
	assert.Equal(t, rep.Wins, solved)

	lost := 0
	for _, n := range rep.Failed {
		lost += n
	}
	assert.Equal(t, rep.Losses, lost)
	for _, r := range rep.Runs {
		assert.Len(t, r.Failed, r.Losses)
		assert.Equal(t, u.Len(), r.Wins+r.Losses)
	}
	assert.Greater(t, rep.WinRate(), 50.0)
}

func TestRunReproducibleAcrossWorkers(t *testing.T) {
	u := embedded(t)
	a, err := Run(context.Background(), u, Options{Seed: 7, Workers: 1})
	require.NoError(t, err)
	b, err := Run(context.Background(), u, Options{Seed: 7, Workers: 8})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRunTwoPassScoring(t *testing.T) {
	u := embedded(t)
	rep, err := Run(context.Background(), u, Options{Seed: 5, Scoring: game.ScoringTwoPass, Assertions: true})
	require.NoError(t, err)
	assert.Equal(t, u.Len(), rep.Wins+rep.Losses)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, embedded(t), Options{Seed: 1})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunProgress(t *testing.T) {
	u, err := words.New([]string{"those", "hotel", "weigh", "lathe"}, 5)
	require.NoError(t, err)

	var buf bytes.Buffer
	rep, err := Run(context.Background(), u, Options{Seed: 3, Progress: &buf})
	require.NoError(t, err)
	assert.Equal(t, 4, rep.Wins+rep.Losses)
	assert.NotZero(t, buf.Len())
}

func TestWinRate(t *testing.T) {
	assert.Equal(t, 0.0, Report{}.WinRate())
	assert.InDelta(t, 75.0, RunReport{Wins: 3, Losses: 1}.WinRate(), 1e-9)
}
