// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathcount/core"
	"github.com/katalvlaran/pathcount/paths"
	"github.com/katalvlaran/pathcount/query"
)

// args wraps a positional-args validator so that its failures exit with
// CodeUsage, and rejects empty node names.
func args(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, list []string) error {
		if err := v(cmd, list); err != nil {
			return usageError(err)
		}
		for i, s := range list {
			if strings.TrimSpace(s) == "" {
				return usageError(fmt.Errorf("argument %d is an empty node name", i+1))
			}
		}

		return nil
	}
}

func (a *app) countCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "count FROM TO",
		Short: "Count walks from FROM to TO",
		Args:  args(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, list []string) error {
			c, err := a.loadCounter()
			if err != nil {
				return err
			}
			n, err := c.Count(cmd.Context(), core.NewNode(list[0]), core.NewNode(list[1]))

			return a.printCount(n, err)
		},
	}
}

func (a *app) throughCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "through W1 W2 [W3...]",
		Short: "Count walks visiting the waypoints in the given order",
		Args:  args(cobra.MinimumNArgs(2)),
		RunE: func(cmd *cobra.Command, list []string) error {
			c, err := a.loadCounter()
			if err != nil {
				return err
			}
			n, err := c.CountThrough(cmd.Context(), core.NewNodes(list...))

			return a.printCount(n, err)
		},
	}
}

func (a *app) visitingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "visiting FROM TO [VIA...]",
		Short: "Count walks from FROM to TO that visit every VIA node in any order",
		Long: fmt.Sprintf(`Count walks from FROM to TO that visit every VIA node in any order.
At most %d VIA nodes are accepted; each must be distinct.`, paths.MaxVisitingWaypoints),
		Args: args(cobra.MinimumNArgs(2)),
		RunE: func(cmd *cobra.Command, list []string) error {
			c, err := a.loadCounter()
			if err != nil {
				return err
			}
			n, err := c.CountVisiting(cmd.Context(),
				core.NewNode(list[0]), core.NewNode(list[1]), core.NewNodes(list[2:]...))

			return a.printCount(n, err)
		},
	}
}

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report whether the graph contains a directed cycle",
		Args:  args(cobra.NoArgs),
		RunE: func(*cobra.Command, []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			cycle, err := paths.DetectCycle(g)
			if err != nil {
				return err
			}
			if cycle == nil {
				fmt.Fprintln(a.stdout, "acyclic")
				return nil
			}

			fmt.Fprintln(a.stdout, "cycle:", joinNodes(cycle))

			return &ExitError{Code: CodeFailure}
		},
	}
}

func (a *app) batchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch QUERIES.hcl",
		Short: "Evaluate every query block of an HCL file",
		Long: `Evaluate every query block of an HCL file and print "name<TAB>count"
per query in file order. Failed queries are reported on stderr; the exit code
is non-zero if any query failed.`,
		Args: args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, list []string) error {
			f, err := query.Load(list[0])
			if err != nil {
				if errors.Is(err, query.ErrInvalidQuery) {
					return usageError(err)
				}
				return &ExitError{Code: CodeFailure, Message: err.Error()}
			}
			c, err := a.loadCounter()
			if err != nil {
				return err
			}

			results, runErr := query.Run(cmd.Context(), c, f)
			for _, r := range results {
				if r.Err != nil {
					fmt.Fprintf(a.stderr, "%s\terror: %v\n", r.Name, r.Err)
					continue
				}
				fmt.Fprintf(a.stdout, "%s\t%d\n", r.Name, r.Count)
			}
			if runErr != nil {
				stats := c.Stats()
				return &ExitError{
					Code:    CodeFailure,
					Message: fmt.Sprintf("%d of %d queries failed (cache hits %d, misses %d)", countFailed(results), len(f.Queries), stats.Hits, stats.Misses),
				}
			}

			return nil
		},
	}
}

// printCount writes n on its own line, or converts err into an exit error.
func (a *app) printCount(n uint64, err error) error {
	if err != nil {
		return &ExitError{Code: CodeFailure, Message: err.Error()}
	}
	fmt.Fprintln(a.stdout, n)

	return nil
}

func countFailed(results []query.Result) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}

	return failed
}

func joinNodes(nodes []core.Node) string {
	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = n.String()
	}

	return strings.Join(names, " -> ")
}
