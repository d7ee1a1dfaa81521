// internal/bench/bench.go
//
// Benchmark driver: replays the solver against every word of the universe,
// run after run, and aggregates win/loss statistics.
//
// Each session (one Solver + one Game) is independent and owns its random
// source, seeded from (seed, run, word index), so a fixed seed reproduces a
// benchmark exactly regardless of worker count. Sessions within a run execute
// on an errgroup bounded by Workers; runs execute one after another so OnRun
// sees them in order.

package bench

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Options configures Run.
type Options struct {
	Runs       int          // passes over the universe; 0 means 1
	Workers    int          // concurrent sessions; 0 means GOMAXPROCS
	Seed       uint64       // 0 draws a random seed
	MaxGuesses int          // guess budget M; 0 means game.DefaultMaxGuesses
	Scoring    game.Scoring // feedback rule; empty means membership
	Assertions bool         // pool contract checks

	// OnRun is called after each run completes, in run order.
	OnRun func(RunReport)
	// Progress, when set, receives a progress bar over all sessions.
	Progress io.Writer
	Logger   *zerolog.Logger
}

// RunReport summarises one pass over the universe.
type RunReport struct {
	Run    int      `json:"run"`
	Wins   int      `json:"wins"`
	Losses int      `json:"losses"`
	Failed []string `json:"failed,omitempty"`
}

// WinRate returns wins as a percentage of sessions played.
func (r RunReport) WinRate() float64 { return winRate(r.Wins, r.Losses) }

// Report aggregates a whole benchmark.
type Report struct {
	Seed   uint64      `json:"seed"`
	Wins   int         `json:"wins"`
	Losses int         `json:"losses"`
	Runs   []RunReport `json:"runs"`
	// Histogram[n] counts solves that took n guesses.
	Histogram []int `json:"histogram"`
	// Failed counts losses per solution word.
	Failed map[string]int `json:"failed,omitempty"`
}

// WinRate returns wins as a percentage of sessions played.
func (r Report) WinRate() float64 { return winRate(r.Wins, r.Losses) }

func winRate(wins, losses int) float64 {
	if wins+losses == 0 {
		return 0
	}
	return float64(wins) / float64(wins+losses) * 100
}

type outcome struct {
	solved  bool
	guesses int
}

// Run plays every universe word opts.Runs times. The first session error
// aborts the benchmark; the partial report is returned with it.
func Run(ctx context.Context, u *words.Universe, opts Options) (Report, error) {
	if opts.Runs <= 0 {
		opts.Runs = 1
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.MaxGuesses <= 0 {
		opts.MaxGuesses = game.DefaultMaxGuesses
	}
	if opts.Seed == 0 {
		opts.Seed = rand.Uint64()
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = progressbar.NewOptions64(int64(opts.Runs*u.Len()),
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription("bench"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		defer func() { _ = bar.Finish() }()
	}

	rep := Report{
		Seed:      opts.Seed,
		Histogram: make([]int, opts.MaxGuesses+1),
		Failed:    map[string]int{},
	}
	for run := 0; run < opts.Runs; run++ {
		results := make([]outcome, u.Len())
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(opts.Workers)
		for i, word := range u.Words() {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				out, err := playOne(u, word, sessionRand(opts.Seed, run, i), opts)
				if err != nil {
					return fmt.Errorf("bench: run %d solve %q: %w", run, word, err)
				}
				results[i] = out
				if bar != nil {
					_ = bar.Add(1)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return rep, err
		}

		rr := RunReport{Run: run}
		for i, out := range results {
			if out.solved {
				rr.Wins++
				rep.Histogram[out.guesses]++
				continue
			}
			rr.Losses++
			rr.Failed = append(rr.Failed, u.At(i))
			rep.Failed[u.At(i)]++
		}
		rep.Wins += rr.Wins
		rep.Losses += rr.Losses
		rep.Runs = append(rep.Runs, rr)

		logger.Debug().Int("run", run).Int("wins", rr.Wins).Int("losses", rr.Losses).Msg("run complete")
		if opts.OnRun != nil {
			opts.OnRun(rr)
		}
	}
	return rep, nil
}

// playOne runs a single session to completion.
func playOne(u *words.Universe, word string, rng *rand.Rand, opts Options) (outcome, error) {
	g, err := game.New(word, u, game.Options{MaxGuesses: opts.MaxGuesses, Scoring: opts.Scoring})
	if err != nil {
		return outcome{}, err
	}
	s := solver.New(u, solver.Options{
		MaxGuesses: opts.MaxGuesses,
		Rand:       rng,
		Assertions: opts.Assertions,
	})
	tr, err := s.Play(g)
	if err != nil {
		return outcome{}, err
	}
	return outcome{solved: tr.Solved(), guesses: len(tr.Rounds)}, nil
}

func sessionRand(seed uint64, run, index int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, uint64(run)<<32|uint64(index)))
}
