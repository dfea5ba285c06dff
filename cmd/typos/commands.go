package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/typos"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

type flags struct {
	configPath    string
	algorithm     string
	logLevel      string
	logFormat     string
	workers       int
	maxExpansions int
	verify        bool
}

// =============================================================================
// COMMAND DEFINITIONS
// =============================================================================

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "typos DICTIONARY START END [ALGORITHM]",
		Short: "Find a shortest edit-path between two input words",
		Long: `Find the cheapest word ladder from START to END through the words of
DICTIONARY (one word per line).

Ladders made of many one-letter mutations are preferred to ladders that need
a larger mutation, even when the latter are shorter.

Algorithms:
  astar     best-first search with an edit-distance heuristic (default)
  idastar   iterative-deepening A*
  fringe    fringe search
  dijkstra  uniform-cost search

Examples:
  typos words.txt banane ano
  typos words.txt banane ano fringe
  typos words.txt banane ano --verify --log-level debug`,
		Args:          cobra.RangeArgs(3, 4),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := resolveConfig(cmd, f, args)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), config, args[0], args[1], args[2])
		},
	}

	cmd.Flags().StringVar(&f.configPath, "config", "", "YAML config file")
	cmd.Flags().StringVarP(&f.algorithm, "algorithm", "a", "", "algorithm to use to compute shortest path (astar, idastar, fringe, dijkstra)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&f.logFormat, "log-format", "", "log format (text, json)")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "goroutines scoring neighbors (0 = number of CPUs)")
	cmd.Flags().IntVar(&f.maxExpansions, "max-expansions", 0, "give up after this many expansions (0 = unlimited)")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "run every algorithm and check they agree")

	return cmd
}

// resolveConfig layers explicit flags and the optional ALGORITHM argument
// over the config file.
func resolveConfig(cmd *cobra.Command, f flags, args []string) (Config, error) {
	config, err := LoadConfig(f.configPath)
	if err != nil {
		return Config{}, err
	}

	changed := cmd.Flags().Changed
	if changed("algorithm") {
		config.Algorithm = f.algorithm
	}
	if len(args) == 4 {
		config.Algorithm = args[3]
	}
	if changed("log-level") {
		config.LogLevel = f.logLevel
	}
	if changed("log-format") {
		config.LogFormat = f.logFormat
	}
	if changed("workers") {
		config.Workers = f.workers
	}
	if changed("max-expansions") {
		config.MaxExpansions = f.maxExpansions
	}
	if changed("verify") {
		config.Verify = f.verify
	}

	config.normalize()
	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid arguments: %w", err)
	}
	return config, nil
}

func run(ctx context.Context, stdout, stderr io.Writer, config Config, dictionaryPath, start, end string) error {
	logger := config.Logger(stderr)
	algorithm, err := typos.ParseAlgorithm(config.Algorithm)
	if err != nil {
		return err
	}
	start = strings.ToLower(start)
	end = strings.ToLower(end)

	fmt.Fprintf(stdout, "Using input file: %s with %s algorithm to compute shortest path between %s and %s\n",
		dictionaryPath, algorithm, start, end)

	words, err := LoadDictionaryFile(dictionaryPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%d words loaded into memory\n", len(words))

	workers := config.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	options := []typos.Option{
		typos.WithLogger(logger),
		typos.WithWorkers(workers),
		typos.WithMaxExpansions(config.MaxExpansions),
	}

	began := time.Now()
	var result typos.Ladder
	if config.Verify {
		var results map[typos.Algorithm]typos.Ladder
		results, err = typos.Verify(ctx, start, end, words, options...)
		result = results[algorithm]
		if err == nil {
			logger.Info("all algorithms agree", slog.Int("algorithms", len(results)))
		}
	} else {
		result, err = typos.FindShortestPath(ctx, start, end, words, algorithm, options...)
	}
	elapsed := time.Since(began)

	switch {
	case errors.Is(err, typos.ErrBudgetExceeded):
		fmt.Fprintf(stdout, "No path found within %d expansions\n", config.MaxExpansions)
		return nil
	case err != nil:
		return err
	case !result.Found:
		fmt.Fprintln(stdout, "No path found")
		return nil
	}

	fmt.Fprintf(stdout, "Shortest path found in %v: %s (achieved in %s)\n",
		elapsed, strings.Join(result.Path, "->"), result.Cost)
	return nil
}
