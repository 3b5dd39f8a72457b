// Package cyk implements the CYK recognizer and parser of spec.md §4.6: a
// bottom-up table filled over a Chomsky Normal Form grammar, with the parse
// tree reconstructed against the original grammar's productions so the
// result reads in the caller's own non-terminals.
package cyk

import (
	"github.com/nihei9/cfgtoys/cfgerr"
	"github.com/nihei9/cfgtoys/grammar"
	"github.com/nihei9/cfgtoys/grammar/cnf"
	"github.com/nihei9/cfgtoys/symbol"
)

// Tree is either a leaf terminal (string), a single-terminal-production
// collapse ([]Tree of length 1, unlabeled), or the general shape: a *Node
// labeled with the production that produced it.
type Tree = any

// Node is a parse-tree node for a production of two or more symbols, or a
// unit production to a non-terminal. Label is the space-joined production
// that derived Children (spec.md §4.6's tree-shape note).
type Node struct {
	Label    string
	Children []Tree
}

type tableKey struct {
	start, stop int
}

// Parse recognizes sentence against g and, on success, reconstructs a parse
// tree. Every terminal symbol g uses (other than ε) must be exactly one
// character long, since the recognition table is indexed by character
// position; NewTerminalLength is returned otherwise. On rejection,
// cfgerr.NoParse is returned.
func Parse(g *grammar.Grammar, sentence string) (Tree, error) {
	if err := validateTerminals(g); err != nil {
		return nil, err
	}
	g.InitNullable()

	cnfGrammar, headMapping := cnf.ToChomskyNormalForm(g, false)
	n := len(sentence)
	rec := buildTable(cnfGrammar, sentence, n)

	type key struct {
		sym         symbol.Symbol
		start, stop int
	}
	history := map[key]*Tree{}

	recognisable := func(s symbol.Symbol, start, stop int) bool {
		if start > stop {
			return g.Table().Attrs(s).Nullable == symbol.Yes
		}
		if g.IsTerminal(s) {
			return string(s) == sentence[start:stop+1]
		}
		target := s
		if m, ok := headMapping[s]; ok {
			target = m
		}
		return rec[tableKey{start, stop}][target]
	}

	var parseSymbol func(s symbol.Symbol, start, stop int) Tree
	var parseProduction func(p grammar.Production, start, stop int) ([]Tree, bool)

	parseProduction = func(p grammar.Production, start, stop int) ([]Tree, bool) {
		if len(p) == 0 {
			if start > stop {
				return []Tree{}, true
			}
			return nil, false
		}
		first, rest := p[0], p[1:]
		if g.IsTerminal(first) {
			firstResult := parseSymbol(first, start, minInt(start, stop))
			if firstResult != nil {
				if restResult, ok := parseProduction(rest, start+1, stop); ok {
					return prepend(firstResult, restResult), true
				}
			}
			return nil, false
		}
		for k := start - 1; k <= stop; k++ {
			firstResult := parseSymbol(first, start, k)
			if firstResult != nil {
				if restResult, ok := parseProduction(rest, k+1, stop); ok {
					return prepend(firstResult, restResult), true
				}
			}
		}
		return nil, false
	}

	parseSymbol = func(s symbol.Symbol, start, stop int) Tree {
		k := key{s, start, stop}
		if v, ok := history[k]; ok {
			if v == nil {
				return nil
			}
			return *v
		}
		history[k] = nil

		if g.IsTerminal(s) {
			if recognisable(s, start, stop) {
				var result Tree = s.String()
				history[k] = &result
			}
		} else if recognisable(s, start, stop) {
			ps, _ := g.Productions(s)
			for _, p := range ps.List() {
				children, ok := parseProduction(p, start, stop)
				if !ok {
					continue
				}
				var result Tree
				if len(p) == 1 && g.IsTerminal(p[0]) {
					result = children
				} else {
					result = &Node{Label: p.Pretty(), Children: children}
				}
				history[k] = &result
				break
			}
		}

		if v := history[k]; v != nil {
			return *v
		}
		return nil
	}

	tree := parseSymbol(g.Start(), 0, n-1)
	if tree == nil {
		return nil, cfgerr.NewNoParse(sentence)
	}
	return tree, nil
}

func buildTable(g *grammar.Grammar, sentence string, n int) map[tableKey]map[symbol.Symbol]bool {
	rec := make(map[tableKey]map[symbol.Symbol]bool, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			rec[tableKey{i, j}] = map[symbol.Symbol]bool{}
		}
	}
	heads := g.Heads()
	for i := 0; i < n; i++ {
		for _, head := range heads {
			ps, _ := g.Productions(head)
			for _, p := range ps.List() {
				if len(p) == 1 && string(p[0]) == string(sentence[i]) {
					rec[tableKey{i, i}][head] = true
					break
				}
			}
		}
	}
	for subLen := 1; subLen < n; subLen++ {
		for i := 0; i < n-subLen; i++ {
			j := i + subLen
			for _, head := range heads {
				ps, _ := g.Productions(head)
				for _, p := range ps.List() {
					if len(p) == 2 {
						for k := i; k < j; k++ {
							if rec[tableKey{i, k}][p[0]] && rec[tableKey{k + 1, j}][p[1]] {
								rec[tableKey{i, j}][head] = true
								break
							}
						}
					}
					if rec[tableKey{i, j}][head] {
						break
					}
				}
			}
		}
	}
	return rec
}

func validateTerminals(g *grammar.Grammar) error {
	for _, s := range g.Table().Symbols() {
		if s == symbol.Epsilon {
			continue
		}
		if g.IsTerminal(s) && len(string(s)) != 1 {
			return cfgerr.NewTerminalLength(string(s))
		}
	}
	return nil
}

func prepend(head Tree, rest []Tree) []Tree {
	out := make([]Tree, 0, len(rest)+1)
	out = append(out, head)
	out = append(out, rest...)
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
