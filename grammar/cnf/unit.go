package cnf

import (
	"github.com/nihei9/cfgtoys/grammar"
	"github.com/nihei9/cfgtoys/symbol"
)

// EliminateUnit replaces every unit rule A -> B (B a non-terminal, B != A)
// with B's productions inlined into A, repeating until nothing changes
// (spec.md §4.4). When B has a self-loop B -> B, A -> B is kept alongside
// the inlined productions, so such unit rules remain in the result.
func EliminateUnit(g *grammar.Grammar) *grammar.Grammar {
	out := g.Clone()

	queue := out.Heads()
	inQueue := make(map[symbol.Symbol]bool, len(queue))
	for _, h := range queue {
		inQueue[h] = true
	}

	for len(queue) > 0 {
		head := queue[0]
		queue = queue[1:]
		inQueue[head] = false

		ps, ok := out.Productions(head)
		if !ok {
			continue
		}
		hasUpdate := false
		var newProductions []grammar.Production
		for _, p := range ps.List() {
			if len(p) == 1 && p[0] != head && out.IsNonTerminal(p[0]) {
				subPS, _ := out.Productions(p[0])
				hasSubLoop := false
				for _, sub := range subPS.List() {
					if len(sub) == 1 && sub[0] == p[0] {
						hasSubLoop = true
					}
					cp := make(grammar.Production, len(sub))
					copy(cp, sub)
					newProductions = append(newProductions, cp)
					if out.AddProduction(head, cp) {
						hasUpdate = true
					}
				}
				if !hasSubLoop {
					hasUpdate = true
				}
			} else {
				newProductions = append(newProductions, p)
			}
		}
		out.Clean(head)
		for _, p := range newProductions {
			out.AddProduction(head, p)
		}
		if hasUpdate {
			for neighbor := range out.Composes(head) {
				if _, exists := out.Productions(neighbor); exists && !inQueue[neighbor] {
					queue = append(queue, neighbor)
					inQueue[neighbor] = true
				}
			}
		}
	}
	return out
}
