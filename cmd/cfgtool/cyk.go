package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nihei9/cfgtoys/parser/cyk"
)

var cykFlags = struct {
	grammarPath *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "cyk <sentence>",
		Short:   "Parse a sentence against a grammar with the CYK algorithm",
		Example: `  cfgtool cyk -g grammar.bnf "32.5e+1"`,
		Args:    cobra.ExactArgs(1),
		RunE:    runCYK,
	}
	cykFlags.grammarPath = cmd.Flags().StringP("grammar", "g", "", "grammar file path (default stdin)")
	rootCmd.AddCommand(cmd)
}

func runCYK(cmd *cobra.Command, args []string) error {
	g, err := readGrammar(*cykFlags.grammarPath)
	if err != nil {
		return err
	}
	tree, err := cyk.Parse(g, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%#v\n", tree)
	return nil
}
