package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nihei9/cfgtoys/internal/snapshot"
)

func init() {
	cmd := &cobra.Command{
		Use:     "show <snapshot file path>",
		Short:   "Read a compiled snapshot back and print its grammar",
		Example: `  cfgtool show grammar.cfgb`,
		Args:    cobra.ExactArgs(1),
		RunE:    runShow,
	}
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	snap, err := snapshot.Read(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "build: %s\n", snap.BuildID)
	fmt.Fprintf(os.Stdout, "cnf: %v\n", snap.CNF)
	fmt.Fprint(os.Stdout, snap.ToGrammar().String())
	return nil
}
