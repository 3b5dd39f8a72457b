package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/spf13/cobra"

	"github.com/nihei9/cfgtoys/grammar"
	"github.com/nihei9/cfgtoys/symbol"
)

var describeFlags = struct {
	width *int
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "describe [grammar file path]",
		Short:   "Print a long-form report of a grammar's heads, productions, and attributes",
		Example: `  cfgtool describe grammar.bnf`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runDescribe,
	}
	describeFlags.width = cmd.Flags().IntP("width", "w", 80, "wrap the report to this terminal width")
	rootCmd.AddCommand(cmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	}
	g, err := readGrammar(path)
	if err != nil {
		return err
	}
	g.InitNullable()
	g.InitMinLength()
	reachable := reachableHeads(g)

	var b strings.Builder
	fmt.Fprintf(&b, "start symbol: %s\n", g.Start())
	fmt.Fprintf(&b, "heads: %d\n\n", len(g.Heads()))

	for _, head := range g.Heads() {
		attrs := g.Table().Attrs(head)
		ps, _ := g.Productions(head)
		fmt.Fprintf(&b, "%s (productions=%d, nullable=%v, min-length=%d, reachable=%v): ",
			head, ps.Len(), attrs.Nullable == symbol.Yes, attrs.MinLength, reachable[head])
		names := make([]string, ps.Len())
		for i, p := range ps.List() {
			names[i] = p.Pretty()
		}
		fmt.Fprintf(&b, "%s\n", strings.Join(names, " | "))
	}

	report := rosed.Edit(b.String()).Wrap(*describeFlags.width).String()
	fmt.Fprintln(os.Stdout, report)
	return nil
}

// reachableHeads walks the grammar from its start symbol without mutating
// it, unlike Grammar.RemoveUnreachable.
func reachableHeads(g *grammar.Grammar) map[symbol.Symbol]bool {
	queue := []symbol.Symbol{g.Start()}
	reached := map[symbol.Symbol]bool{g.Start(): true}
	for len(queue) > 0 {
		head := queue[0]
		queue = queue[1:]
		ps, ok := g.Productions(head)
		if !ok {
			continue
		}
		for _, p := range ps.List() {
			for _, s := range p {
				if g.IsNonTerminal(s) && !reached[s] {
					reached[s] = true
					queue = append(queue, s)
				}
			}
		}
	}
	return reached
}
