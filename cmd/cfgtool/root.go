package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cfgtool",
	Short: "Transform and parse context-free grammars",
	Long: `cfgtool operates on the whitespace-tokenized BNF grammars of this
module:
- Eliminates ε-productions and unit rules, and assembles Chomsky Normal Form.
- Parses a sentence with either the CYK or the Unger algorithm.
- Compiles a grammar to a portable snapshot file and reads it back.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
