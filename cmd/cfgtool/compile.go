package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nihei9/cfgtoys/grammar/cnf"
	"github.com/nihei9/cfgtoys/internal/snapshot"
)

var compileFlags = struct {
	output *string
	cnf    *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "compile [grammar file path]",
		Short:   "Compile a grammar into a portable snapshot file",
		Example: `  cfgtool compile grammar.bnf -o grammar.cfgb`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runCompile,
	}
	compileFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (required)")
	compileFlags.cnf = cmd.Flags().Bool("cnf", false, "run the CNF pipeline before snapshotting")
	rootCmd.AddCommand(cmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	if *compileFlags.output == "" {
		return fmt.Errorf("the --output flag is required")
	}

	var path string
	if len(args) > 0 {
		path = args[0]
	}
	g, err := readGrammar(path)
	if err != nil {
		return err
	}

	var snap *snapshot.Snapshot
	if *compileFlags.cnf {
		out, headMapping := cnf.ToChomskyNormalForm(g, false)
		snap = snapshot.From(out, true, headMapping)
	} else {
		snap = snapshot.From(g, false, nil)
	}

	if err := snapshot.Write(*compileFlags.output, snap); err != nil {
		return fmt.Errorf("cannot write the snapshot: %w", err)
	}
	fmt.Printf("compiled %s (build %s)\n", *compileFlags.output, snap.BuildID)
	return nil
}
