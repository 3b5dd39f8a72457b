package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nihei9/cfgtoys/grammar/cnf"
)

var cnfFlags = struct {
	removeUnreachable *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "cnf [grammar file path]",
		Short:   "Run eliminate-ε, eliminate-unit, and CNF assembly, and print the result",
		Example: `  cfgtool cnf grammar.bnf`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runCNF,
	}
	cnfFlags.removeUnreachable = cmd.Flags().Bool("remove-unreachable", false, "drop heads unreachable from the start symbol before printing")
	rootCmd.AddCommand(cmd)
}

func runCNF(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	}
	g, err := readGrammar(path)
	if err != nil {
		return err
	}
	out, headMapping := cnf.ToChomskyNormalForm(g, *cnfFlags.removeUnreachable)
	fmt.Fprint(os.Stdout, out.String())
	if len(headMapping) > 0 {
		fmt.Fprintln(os.Stdout, "\nhead mapping:")
		for from, to := range headMapping {
			fmt.Fprintf(os.Stdout, "  %s -> %s\n", from, to)
		}
	}
	return nil
}
