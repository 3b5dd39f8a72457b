// Package cnf implements the ε-elimination, unit-rule elimination, and
// Chomsky Normal Form assembly transformations of spec.md §4.3–§4.5.
package cnf

import (
	"github.com/nihei9/cfgtoys/grammar"
	"github.com/nihei9/cfgtoys/symbol"
)

// EliminateEpsilon builds a grammar in which no head other than the start
// symbol may derive ε (spec.md §4.3). It returns the new grammar together
// with head_mapping: the correspondence from each original head that needed
// rewriting to its ε-free replacement.
func EliminateEpsilon(g *grammar.Grammar) (*grammar.Grammar, map[symbol.Symbol]symbol.Symbol) {
	out := g.Clone()
	out.InitNullable()
	tbl := out.Table()

	headMapping := map[symbol.Symbol]symbol.Symbol{}

	// Step 1-3: create new productions without epsilon.
	originalHeads := out.Heads()
	for _, head := range originalHeads {
		ps, _ := out.Productions(head)
		needsAux := false
		for _, p := range ps.List() {
			for _, s := range p {
				if tbl.Attrs(s).Nullable == symbol.Yes {
					needsAux = true
					break
				}
			}
			if needsAux {
				break
			}
		}
		if !needsAux {
			continue
		}

		newHead := out.CreateAux(head)
		tbl.Attrs(newHead).Nullable = symbol.No

		for _, p := range ps.List() {
			hasNullable := false
			for _, s := range p {
				if tbl.Attrs(s).Nullable == symbol.Yes {
					hasNullable = true
					break
				}
			}
			if !hasNullable {
				cp := make(grammar.Production, len(p))
				copy(cp, p)
				out.AddProduction(newHead, cp)
				continue
			}

			candidates := [][]symbol.Symbol{{}}
			for _, s := range p {
				if tbl.Attrs(s).Nullable == symbol.Yes {
					dup := make([][]symbol.Symbol, len(candidates))
					for i, c := range candidates {
						cp := make([]symbol.Symbol, len(c), len(c)+1)
						copy(cp, c)
						dup[i] = append(cp, s)
					}
					candidates = append(candidates, dup...)
				} else {
					for i := range candidates {
						candidates[i] = append(candidates[i], s)
					}
				}
			}
			for _, cand := range candidates {
				if len(cand) == 0 {
					continue
				}
				if len(cand) == 1 && cand[0] == symbol.Epsilon {
					continue
				}
				out.AddProduction(newHead, grammar.Production(cand))
			}
		}
		headMapping[head] = newHead
	}

	// Step 4-5: rewrite every surviving grammar, worklist-processing every
	// head that exists right now (originals and the freshly created auxes).
	heads := out.Heads()
	headSet := make(map[symbol.Symbol]bool, len(heads))
	for _, h := range heads {
		headSet[h] = true
	}
	queue := append([]symbol.Symbol(nil), heads...)
	inQueue := make(map[symbol.Symbol]bool, len(queue))
	for _, h := range queue {
		inQueue[h] = true
	}

	mapped := func(s symbol.Symbol) symbol.Symbol {
		if m, ok := headMapping[s]; ok {
			return m
		}
		return s
	}

	for len(queue) > 0 {
		head := queue[0]
		queue = queue[1:]
		inQueue[head] = false

		ps, ok := out.Productions(head)
		if !ok {
			continue
		}
		productions := append([]grammar.Production(nil), ps.List()...)
		out.Remove(head)

		if _, isOriginalMapped := headMapping[head]; isOriginalMapped {
			continue
		}

		for _, p := range productions {
			drop := false
			for _, s := range p {
				repl := mapped(s)
				if repl != head && headSet[s] {
					if _, stillExists := out.Productions(repl); !stillExists {
						drop = true
						break
					}
				}
			}
			if drop {
				continue
			}
			newProd := make(grammar.Production, len(p))
			for i, s := range p {
				newProd[i] = mapped(s)
			}
			out.AddProduction(head, newProd)
		}

		if _, stillHead := out.Productions(head); !stillHead {
			for neighbor := range out.Composes(head) {
				if _, isMapped := headMapping[neighbor]; isMapped {
					continue
				}
				if _, exists := out.Productions(neighbor); exists && !inQueue[neighbor] {
					queue = append(queue, neighbor)
					inQueue[neighbor] = true
				}
			}
		}
	}

	// Step 6: start-symbol fix-up.
	if newStart, ok := headMapping[out.Start()]; ok {
		oldStart := out.Start()
		wasNullable := tbl.Attrs(oldStart).Nullable == symbol.Yes
		out.SetStart(newStart)
		if wasNullable {
			out.AddProduction(newStart, grammar.Production{symbol.Epsilon})
			tbl.Attrs(newStart).Nullable = symbol.Yes
		}
	}

	return out, headMapping
}
