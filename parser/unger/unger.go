// Package unger implements the top-down, memoized Unger parser of spec.md
// §4.7. Unlike the CYK parser, it runs directly against the caller's
// grammar (no Chomsky Normal Form step) and accepts terminals of any
// length, pruning impossible splits with the nullable and minimum-length
// attributes computed by the grammar package's fixed-point analyses.
package unger

import (
	"github.com/nihei9/cfgtoys/cfgerr"
	"github.com/nihei9/cfgtoys/grammar"
	"github.com/nihei9/cfgtoys/symbol"
)

// Tree is either a terminal leaf (string) or a *Node. Every non-terminal
// match is labeled, even one matched by a single terminal production —
// unlike the CYK parser's tree, Unger's never collapses a node away.
type Tree = any

// Node labels a non-terminal's match with the winning production's text and
// the parse trees of its symbols, in order (spec.md §4.7's tree-shape
// note).
type Node struct {
	Label    string
	Children []Tree
}

type key struct {
	sym         symbol.Symbol
	start, stop int
}

// Parse recognizes sentence against g by Unger's method and, on success,
// returns its parse tree. Spans are half-open [start, stop), matching the
// algorithm's own convention. On rejection, cfgerr.NoParse is returned.
func Parse(g *grammar.Grammar, sentence string) (Tree, error) {
	g.InitNullable()
	g.InitMinLength()

	history := map[key]*Tree{}

	var parseSymbol func(s symbol.Symbol, start, stop int) Tree
	parseSymbol = func(s symbol.Symbol, start, stop int) Tree {
		k := key{s, start, stop}
		if v, ok := history[k]; ok {
			if v == nil {
				return nil
			}
			return *v
		}
		history[k] = nil

		switch {
		case s == symbol.Epsilon:
			if start == stop {
				var result Tree = s.String()
				history[k] = &result
			}
		case g.IsTerminal(s):
			if string(s) == sentence[start:stop] {
				var result Tree = s.String()
				history[k] = &result
			}
		default:
			ps, _ := g.Productions(s)
		productions:
			for _, p := range ps.List() {
				for _, division := range divide(start, stop, len(p)) {
					valid := true
					for i, div := range division {
						attrs := g.Table().Attrs(p[i])
						if div == 0 && attrs.Nullable != symbol.Yes {
							valid = false
							break
						}
						if div < attrs.MinLength {
							valid = false
							break
						}
					}
					if !valid {
						continue
					}

					results := make([]Tree, 0, len(p))
					subStart, subStop := start, start
					for i, div := range division {
						subStop += div
						childResult := parseSymbol(p[i], subStart, subStop)
						if childResult == nil {
							valid = false
							break
						}
						results = append(results, childResult)
						subStart = subStop
					}
					if valid {
						var result Tree = &Node{Label: p.Pretty(), Children: results}
						history[k] = &result
						break productions
					}
				}
			}
		}
		if v := history[k]; v != nil {
			return *v
		}
		return nil
	}

	tree := parseSymbol(g.Start(), 0, len(sentence))
	if tree == nil {
		return nil, cfgerr.NewNoParse(sentence)
	}
	return tree, nil
}

// divide enumerates every way to split [start, stop) into parts consecutive,
// non-negative-length pieces, returning each as the sequence of piece
// lengths (spec.md §4.7's division search).
func divide(start, stop, parts int) [][]int {
	if parts-1 == 0 {
		return [][]int{{stop - start}}
	}
	var out [][]int
	for i := start; i <= stop; i++ {
		for _, rest := range divide(i, stop, parts-1) {
			div := append([]int{i - start}, rest...)
			out = append(out, div)
		}
	}
	return out
}
