package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aledsdavies/solast/pkg/solidity"
)

func newParseCmd(log **zap.Logger) *cobra.Command {
	var maxErrors int
	var strict bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a Solidity file and print a diagnostic summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			opts := []solidity.Option{solidity.WithMaxErrors(maxErrors)}
			if strict {
				opts = append(opts, solidity.WithoutRecovery())
			}
			start := time.Now()
			tree := solidity.Parse(src, opts...)
			elapsed := time.Since(start)

			units := solidity.SourceUnits(tree)
			(*log).Info("parse complete",
				zap.String("file", args[0]),
				zap.Duration("elapsed", elapsed),
				zap.Int("nodes", tree.NodeCount()),
				zap.Int("top_level_units", len(units)),
				zap.Int("diagnostics", len(tree.Errors)),
			)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d top-level declarations, %d nodes, %d diagnostics\n",
				len(units), tree.NodeCount(), len(tree.Errors))
			for _, e := range tree.Errors {
				fmt.Fprintln(out, e.Render(tree, tree.TokenAt(e.Token)))
			}

			if strict && len(tree.Errors) > 0 {
				return fmt.Errorf("%d diagnostics in strict mode", len(tree.Errors))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxErrors, "max-errors", 0, "Stop recording diagnostics after this many (0 = unlimited)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero if any diagnostic was recorded")
	return cmd
}
