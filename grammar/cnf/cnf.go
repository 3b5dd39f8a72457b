package cnf

import (
	"github.com/nihei9/cfgtoys/grammar"
	"github.com/nihei9/cfgtoys/symbol"
)

type dual struct {
	a, b symbol.Symbol
}

// ToChomskyNormalForm runs ε-elimination, unit-rule elimination, optional
// unreachable-head removal, and binarization (spec.md §4.5). Every
// production of two or more symbols becomes exactly two non-terminals;
// one-symbol productions are kept as they are, so besides single terminals
// the result can hold the start symbol's ε production and the unit rules
// EliminateUnit keeps for self-looping heads. The returned headMapping is
// the ε-elimination step's original-head-to-replacement correspondence.
func ToChomskyNormalForm(g *grammar.Grammar, removeUnreachable bool) (*grammar.Grammar, map[symbol.Symbol]symbol.Symbol) {
	out, headMapping := EliminateEpsilon(g)
	out = EliminateUnit(out)
	if removeUnreachable {
		out.RemoveUnreachable()
	}

	heads := out.Heads()

	singles := map[symbol.Symbol]symbol.Symbol{}
	duals := map[dual]symbol.Symbol{}
	for _, head := range heads {
		ps, _ := out.Productions(head)
		if ps.Len() != 1 {
			continue
		}
		p := ps.List()[0]
		switch len(p) {
		case 1:
			if out.IsTerminal(p[0]) {
				singles[p[0]] = head
			}
		case 2:
			if out.IsNonTerminal(p[0]) && out.IsNonTerminal(p[1]) {
				duals[dual{p[0], p[1]}] = head
			}
		}
	}

	getOrCreateSingle := func(s symbol.Symbol) symbol.Symbol {
		if out.IsNonTerminal(s) {
			return s
		}
		if h, ok := singles[s]; ok {
			return h
		}
		h := out.CreateAux("T")
		out.AddProduction(h, grammar.Production{s})
		singles[s] = h
		return h
	}
	getOrCreateDual := func(a, b symbol.Symbol) symbol.Symbol {
		k := dual{a, b}
		if h, ok := duals[k]; ok {
			return h
		}
		h := out.CreateAux("N")
		out.AddProduction(h, grammar.Production{a, b})
		duals[k] = h
		return h
	}

	for _, head := range heads {
		ps, _ := out.Productions(head)
		productions := append([]grammar.Production(nil), ps.List()...)
		out.Clean(head)
		for _, p := range productions {
			if len(p) == 1 {
				out.AddProduction(head, p)
				continue
			}
			last := getOrCreateSingle(p[0])
			for i := 1; i < len(p)-1; i++ {
				current := getOrCreateSingle(p[i])
				last = getOrCreateDual(last, current)
			}
			out.AddProduction(head, grammar.Production{last, getOrCreateSingle(p[len(p)-1])})
		}
	}

	return out, headMapping
}
