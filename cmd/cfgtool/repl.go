package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/nihei9/cfgtoys/parser/cyk"
	"github.com/nihei9/cfgtoys/parser/unger"
)

var replFlags = struct {
	grammarPath *string
	algorithm   *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "repl",
		Short:   "Load a grammar, then repeatedly parse sentences typed at a prompt",
		Example: `  cfgtool repl -g grammar.bnf --algo unger`,
		Args:    cobra.NoArgs,
		RunE:    runREPL,
	}
	replFlags.grammarPath = cmd.Flags().StringP("grammar", "g", "", "grammar file path (required)")
	replFlags.algorithm = cmd.Flags().String("algo", "cyk", "parsing algorithm: cyk|unger")
	rootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	if *replFlags.grammarPath == "" {
		return fmt.Errorf("the --grammar flag is required")
	}
	if *replFlags.algorithm != "cyk" && *replFlags.algorithm != "unger" {
		return fmt.Errorf("invalid algorithm: %v", *replFlags.algorithm)
	}

	g, err := readGrammar(*replFlags.grammarPath)
	if err != nil {
		return err
	}

	rl, err := readline.New("cfgtool> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Fprintf(os.Stdout, "loaded %s, parsing with %s (quit with ^D)\n", *replFlags.grammarPath, *replFlags.algorithm)
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on ^D
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}

		var tree any
		if *replFlags.algorithm == "unger" {
			tree, err = unger.Parse(g, line)
		} else {
			tree, err = cyk.Parse(g, line)
		}
		if err != nil {
			fmt.Fprintf(os.Stdout, "error: %v\n", err)
			continue
		}
		fmt.Fprintf(os.Stdout, "%#v\n", tree)
	}
	return nil
}
