package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/bench"
	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func newRootCmd(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "wordle-solver",
		Short:         "Simulate an automated player solving word puzzles",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newBenchCmd(cfg), newSolveCmd(cfg), newServeCmd(cfg))
	return root
}

// loadUniverse reads the configured word list once per process.
func loadUniverse(cfg config.Config) (*words.Universe, error) {
	u, err := words.Load(words.LoadOptions{Path: cfg.WordsFile, Length: cfg.WordLength})
	if err != nil {
		return nil, err
	}
	log.Debug().Int("words", u.Len()).Int("length", u.Length()).Msg("word universe loaded")
	return u, nil
}

func newBenchCmd(cfg config.Config) *cobra.Command {
	var (
		runs     int
		workers  int
		seed     uint64
		progress bool
		verbose  bool
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Play every word in the universe, repeatedly, and report the win rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := loadUniverse(cfg)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			out := cmd.OutOrStdout()
			opts := bench.Options{
				Runs:       runs,
				Workers:    workers,
				Seed:       seed,
				MaxGuesses: cfg.MaxGuesses,
				Scoring:    cfg.Scoring,
				Assertions: cfg.Assertions,
				Logger:     &log.Logger,
				OnRun: func(r bench.RunReport) {
					if verbose {
						for _, w := range r.Failed {
							fmt.Fprintf(out, "failed to solve %s\n", w)
						}
					}
					fmt.Fprintf(out, "won %3.0f%% %d / %d\n", r.WinRate(), r.Wins, r.Losses)
				},
			}
			if progress {
				opts.Progress = cmd.ErrOrStderr()
			}

			start := time.Now()
			rep, err := bench.Run(ctx, u, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "totally won %3.0f%% %d / %d\n", rep.WinRate(), rep.Wins, rep.Losses)
			log.Info().
				Uint64("seed", rep.Seed).
				Ints("histogram", rep.Histogram).
				Int("distinctFailures", len(rep.Failed)).
				Dur("elapsed", time.Since(start)).
				Msg("bench complete")
			return nil
		},
	}
	cmd.Flags().IntVar(&runs, "runs", cfg.BenchRuns, "passes over the word universe")
	cmd.Flags().IntVar(&workers, "workers", cfg.BenchWorkers, "concurrent sessions (0 = GOMAXPROCS)")
	cmd.Flags().Uint64Var(&seed, "seed", cfg.BenchSeed, "random seed (0 = random)")
	cmd.Flags().BoolVar(&progress, "progress", false, "show a progress bar on stderr")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "list every failed word")
	return cmd
}

func newSolveCmd(cfg config.Config) *cobra.Command {
	var (
		useDaily bool
		seed     uint64
	)
	cmd := &cobra.Command{
		Use:   "solve [word]",
		Short: "Watch the solver play one puzzle",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := loadUniverse(cfg)
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = rand.Uint64()
			}
			rng := rand.New(rand.NewPCG(seed, seed))

			var answer string
			switch {
			case len(args) == 1:
				answer = args[0]
			case useDaily:
				answer = daily.Pick(u, time.Now(), cfg.DailySalt)
			default:
				answer = u.Random(rng)
			}

			g, err := game.New(answer, u, game.Options{MaxGuesses: cfg.MaxGuesses, Scoring: cfg.Scoring})
			if err != nil {
				return err
			}
			s := solver.New(u, solver.Options{
				MaxGuesses: cfg.MaxGuesses,
				Rand:       rng,
				Assertions: cfg.Assertions,
				Logger:     &log.Logger,
			})
			tr, err := s.Play(g)
			if err != nil {
				return fmt.Errorf("solve %q: %w", g.Solution(), err)
			}

			out := cmd.OutOrStdout()
			for i, r := range tr.Rounds {
				fmt.Fprintf(out, "%d. %s %s\n", i+1, r.Guess, renderFeedback(r.Feedback))
			}
			if tr.Solved() {
				fmt.Fprintf(out, "solved %s in %d\n", tr.Solution, len(tr.Rounds))
			} else {
				fmt.Fprintf(out, "failed to solve %s\n", tr.Solution)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&useDaily, "daily", false, "solve the word of the day")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 = random)")
	return cmd
}

// renderFeedback draws feedback as e.g. "=+=.." (= hit, + partial, . miss).
func renderFeedback(fb game.Feedback) string {
	var b strings.Builder
	for _, s := range fb {
		switch s.Mark {
		case game.MarkHit:
			b.WriteByte('=')
		case game.MarkPartial:
			b.WriteByte('+')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}

func newServeCmd(cfg config.Config) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulation HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := loadUniverse(cfg)
			if err != nil {
				return err
			}
			srv := httpserver.New(store.NewMemoryStore(0), u, httpserver.Options{
				MaxGuesses: cfg.MaxGuesses,
				Scoring:    cfg.Scoring,
				Assertions: cfg.Assertions,
				DailySalt:  cfg.DailySalt,
			})
			log.Info().Str("port", port).Int("words", u.Len()).Msg("starting wordle-solver")
			return srv.Start(":" + port)
		},
	}
	cmd.Flags().StringVar(&port, "port", cfg.Port, "listen port")
	return cmd
}
