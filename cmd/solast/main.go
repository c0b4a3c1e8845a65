// Command solast is a small CLI over the Solidity tokenizer/parser: dump
// tokens, parse a file and print diagnostics, or (stub) hand a parsed
// contract to a formatter or an RPC-call skeleton builder.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	var debug bool

	rootCmd := &cobra.Command{
		Use:           "solast",
		Short:         "Tokenize and parse Solidity source",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug-level logging")

	var logger *zap.Logger
	cobra.OnInitialize(func() {
		cfg := zap.NewProductionConfig()
		if debug {
			cfg = zap.NewDevelopmentConfig()
		}
		cfg.OutputPaths = []string{"stderr"}
		built, err := cfg.Build()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Fatal: failed to build logger: %v\n", err)
			os.Exit(1)
		}
		logger = built
	})

	rootCmd.AddCommand(
		newTokensCmd(&logger),
		newParseCmd(&logger),
		newFmtCmd(&logger),
		newRPCStubCmd(&logger),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
