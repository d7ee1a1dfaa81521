package main

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

func testConfig() config.Config {
	return config.Config{
		LogLevel:   "disabled",
		LogFormat:  "json",
		WordLength: 5,
		MaxGuesses: 6,
		Scoring:    game.ScoringMembership,
		Assertions: true,
		Port:       "0",
		DailySalt:  "test",
		BenchRuns:  1,
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(testConfig())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBenchCommand(t *testing.T) {
	out, err := run(t, "bench", "--runs", "2", "--seed", "5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Regexp(t, regexp.MustCompile(`^won +\d+% \d+ / \d+$`), lines[0])
	assert.Regexp(t, regexp.MustCompile(`^totally won +\d+% \d+ / \d+$`), lines[2])
}

func TestSolveCommand(t *testing.T) {
	out, err := run(t, "solve", "hotel", "--seed", "1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Regexp(t, regexp.MustCompile(`^1\. [a-z]{5} [=+.]{5}$`), lines[0])
	last := lines[len(lines)-1]
	assert.True(t, strings.HasPrefix(last, "solved hotel in ") || last == "failed to solve hotel", last)
}

func TestSolveDaily(t *testing.T) {
	out, err := run(t, "solve", "--daily")
	require.NoError(t, err)
	assert.Contains(t, out, "solve")
}

func TestSolveRejectsUnknownWord(t *testing.T) {
	_, err := run(t, "solve", "qqqqq")
	require.ErrorIs(t, err, game.ErrInvalidSolution)
}

func TestRenderFeedback(t *testing.T) {
	fb := game.Feedback{game.Partial('l'), game.Miss('a'), game.Hit('t'), game.Partial('h'), game.Partial('e')}
	assert.Equal(t, "+.=++", renderFeedback(fb))
}
