package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aledsdavies/solast/pkg/solidity"
)

func newTokensCmd(log **zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Dump the token stream for a Solidity file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			start := (*log)
			toks := solidity.Tokens(src)
			start.Debug("tokenized source", zap.String("file", args[0]), zap.Int("count", len(toks)))
			for i, tok := range toks {
				fmt.Fprintf(cmd.OutOrStdout(), "%5d  %-20s %q\n", i, tok.Tag.String(), src[tok.Start:tok.End])
			}
			return nil
		},
	}
}
