// SPDX-License-Identifier: MIT

// Package cli implements the pathcount command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathcount/adjlist"
	"github.com/katalvlaran/pathcount/core"
	"github.com/katalvlaran/pathcount/internal/config"
	"github.com/katalvlaran/pathcount/internal/logging"
	"github.com/katalvlaran/pathcount/paths"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer

	input   string
	envFile string
	flags   config.Config // flag values; only changed flags are applied

	cfg    config.Config
	logger *zap.Logger
}

// Execute runs the command tree with args and returns the process exit code.
// Results go to stdout; diagnostics and logs go to stderr.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := NewRootCommand(stdin, stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return CodeOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Message != "" {
			fmt.Fprintln(stderr, "pathcount:", exitErr.Message)
		}
		return exitErr.Code
	}
	fmt.Fprintln(stderr, "pathcount:", err)

	return CodeFailure
}

// NewRootCommand builds the pathcount command tree bound to the given streams.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, flags: config.Default()}

	root := &cobra.Command{
		Use:   "pathcount",
		Short: "Count walks through a directed graph given as an adjacency list",
		Long: `pathcount reads a graph in "node: succ succ ..." form (one line per node)
and counts the distinct walks between nodes, optionally through waypoints.

Settings come from defaults, a .env file, PATHCOUNT_* environment variables
and finally the flags below.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, list []string) error {
			if len(list) > 0 {
				return usageError(fmt.Errorf("unknown command %q", list[0]))
			}
			return cmd.Help()
		},
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	pf := root.PersistentFlags()
	pf.StringVarP(&a.input, "input", "i", "-", "graph file to read; - for stdin")
	pf.StringVar(&a.envFile, "env-file", config.DefaultEnvFile, "dotenv file with PATHCOUNT_* settings")
	pf.StringVar(&a.flags.LogLevel, "log-level", a.flags.LogLevel, "log level: debug, info, warn or error")
	pf.StringVar(&a.flags.LogFormat, "log-format", a.flags.LogFormat, "log format: json or console")
	pf.IntVar(&a.flags.CacheSize, "cache-size", a.flags.CacheSize, "segment cache entries; 0 disables the cache")
	pf.IntVar(&a.flags.Concurrency, "concurrency", a.flags.Concurrency, "segments counted in parallel per waypoint query")

	root.AddCommand(
		a.countCommand(),
		a.throughCommand(),
		a.visitingCommand(),
		a.checkCommand(),
		a.batchCommand(),
	)

	return root
}

// setup resolves configuration (flags over environment over .env over
// defaults) and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return usageError(err)
	}

	fs := cmd.Flags()
	if fs.Changed("log-level") {
		cfg.LogLevel = a.flags.LogLevel
	}
	if fs.Changed("log-format") {
		cfg.LogFormat = a.flags.LogFormat
	}
	if fs.Changed("cache-size") {
		cfg.CacheSize = a.flags.CacheSize
	}
	if fs.Changed("concurrency") {
		cfg.Concurrency = a.flags.Concurrency
	}
	if err = cfg.Validate(); err != nil {
		return usageError(err)
	}
	a.cfg = cfg

	a.logger, err = logging.NewLogger(cfg.LogLevel, cfg.LogFormat, a.stderr)
	if err != nil {
		return usageError(err)
	}
	a.logger.Debug("configuration resolved",
		zap.String("input", a.input),
		zap.String("log_level", cfg.LogLevel),
		zap.Int("cache_size", cfg.CacheSize),
		zap.Int("concurrency", cfg.Concurrency),
	)

	return nil
}

// loadGraph parses the --input graph.
func (a *app) loadGraph() (*core.Graph, error) {
	r := a.stdin
	if a.input != "-" {
		f, err := os.Open(a.input)
		if err != nil {
			return nil, &ExitError{Code: CodeFailure, Message: err.Error()}
		}
		defer f.Close()
		r = f
	}

	g, err := adjlist.ParseReader(r)
	if err != nil {
		return nil, &ExitError{Code: CodeFailure, Message: fmt.Sprintf("%s: %v", a.inputName(), err)}
	}
	a.logger.Debug("graph loaded",
		zap.String("input", a.inputName()),
		zap.Int("keys", g.Len()),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
	)

	return g, nil
}

// loadCounter parses the graph and binds a Counter to it.
func (a *app) loadCounter() (*paths.Counter, error) {
	g, err := a.loadGraph()
	if err != nil {
		return nil, err
	}

	return paths.NewCounter(g,
		paths.WithCacheSize(a.cfg.CacheSize),
		paths.WithSegmentConcurrency(a.cfg.Concurrency),
		paths.WithLogger(a.logger),
	)
}

func (a *app) inputName() string {
	if a.input == "-" {
		return "<stdin>"
	}

	return a.input
}
