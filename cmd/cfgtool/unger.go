package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nihei9/cfgtoys/parser/unger"
)

var ungerFlags = struct {
	grammarPath *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "unger <sentence>",
		Short:   "Parse a sentence against a grammar with the Unger algorithm",
		Example: `  cfgtool unger -g grammar.bnf "(i+i)×i"`,
		Args:    cobra.ExactArgs(1),
		RunE:    runUnger,
	}
	ungerFlags.grammarPath = cmd.Flags().StringP("grammar", "g", "", "grammar file path (default stdin)")
	rootCmd.AddCommand(cmd)
}

func runUnger(cmd *cobra.Command, args []string) error {
	g, err := readGrammar(*ungerFlags.grammarPath)
	if err != nil {
		return err
	}
	tree, err := unger.Parse(g, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%#v\n", tree)
	return nil
}
