// SPDX-License-Identifier: MIT

// Package cli implements the cobra commands of the wordchain binary.
//
// The root command answers a single query ("wordchain frog goat") or runs the
// demo; build and serve are subcommands. All of them share the graph
// resolution in graph.go: build from word lists, or load the cached graph,
// falling back to the system dictionary.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordchain/config"
	"github.com/katalvlaran/wordchain/internal/logging"
	"github.com/katalvlaran/wordchain/words"
)

// Build metadata, injected from main.
var (
	Version = "dev"
	Commit  = "none"
)

// errUsage marks argument errors that should print usage.
var errUsage = errors.New("usage")

// rootFlags holds the persistent flags shared by every command.
type rootFlags struct {
	configPath  string
	wordLists   []string
	graphInput  string
	graphOutput string
	quiet       bool
	workers     int
	logLevel    string
	logFormat   string
}

// queryFlags holds flags used only by the root query.
type queryFlags struct {
	demo bool
	seed int64
}

// NewRootCommand creates the wordchain command tree.
func NewRootCommand() *cobra.Command {
	rf := &rootFlags{}
	qf := &queryFlags{}

	cmd := &cobra.Command{
		Use:   "wordchain [initial goal]",
		Short: "Find the shortest chain of one-letter changes between two words",
		Long: `wordchain takes two words of equal length and finds the shortest sequence
of transformations from the first to the second, changing one letter at a
time. Every word along the way must be in the dictionary.

Example:
  wordchain frog goat
  frog -> grog -> grot -> grat -> goat

The word graph is built once and cached (see --graph-output), so later
queries start immediately.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (commit: %s)", Version, Commit),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, rf, qf, args)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&rf.configPath, "config", "", "YAML configuration file")
	pf.StringArrayVarP(&rf.wordLists, "word-list", "w", nil,
		"file of words, one per line (repeatable); defaults to "+words.DefaultWordList+" when no cached graph exists")
	pf.StringVarP(&rf.graphInput, "graph-input", "g", "", "cached word graph to load (default from config: wordgraph.db)")
	pf.StringVarP(&rf.graphOutput, "graph-output", "o", "", "where to save the built word graph; /dev/null or - disables saving")
	pf.BoolVarP(&rf.quiet, "quiet", "q", false, "suppress messages about loading and saving")
	pf.IntVar(&rf.workers, "workers", 0, "graph build workers (0 = number of CPUs)")
	pf.StringVar(&rf.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&rf.logFormat, "log-format", "", "log format: text, json")

	cmd.Flags().BoolVarP(&qf.demo, "demo", "d", false, "find chains between randomly chosen words")
	cmd.Flags().Int64Var(&qf.seed, "seed", 0, "random seed for --demo (0 = time based)")

	cmd.AddCommand(newBuildCommand(rf))
	cmd.AddCommand(newServeCommand(rf))

	return cmd
}

// Execute runs cmd and exits non-zero on failure.
func Execute(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, cmd.UsageString())
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// env is the resolved configuration and logger for one invocation.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer
}

// setup loads the config file, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, rf *rootFlags) (*env, error) {
	cfg := config.Default()
	if rf.configPath != "" {
		var err error
		if cfg, err = config.Load(rf.configPath); err != nil {
			return nil, err
		}
	}

	if len(rf.wordLists) > 0 {
		cfg.WordLists = rf.wordLists
	}
	if rf.workers > 0 {
		cfg.Build.Workers = rf.workers
	}
	if rf.quiet {
		cfg.Quiet = true
	}
	if rf.logLevel != "" {
		cfg.Log.Level = rf.logLevel
	}
	if rf.logFormat != "" {
		cfg.Log.Format = rf.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: logging.Format(cfg.Log.Format),
		Writer: cmd.ErrOrStderr(),
		Quiet:  cfg.Quiet,
	})
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, logger: logger, out: cmd.OutOrStdout()}, nil
}
