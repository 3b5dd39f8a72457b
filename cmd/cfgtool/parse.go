package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "parse [grammar file path]",
		Short:   "Parse a BNF grammar and pretty-print it back",
		Example: `  cfgtool parse grammar.bnf`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runParse,
	}
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	}
	g, err := readGrammar(path)
	if err != nil {
		return err
	}
	fmt.Fprint(os.Stdout, g.String())
	return nil
}
