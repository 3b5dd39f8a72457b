// Package grammar implements the context-free grammar model of spec.md §3:
// symbols, an ordered map of head to productions, the reverse "composes"
// index, the BNF surface-syntax reader, and the reachability, nullability,
// and minimum-length fixed-point analyses.
package grammar

import (
	"fmt"
	"strings"

	"github.com/nihei9/cfgtoys/symbol"
)

// Grammar is the ⟨S, Σ, H, P, C⟩ tuple of spec.md §3.
type Grammar struct {
	table    *symbol.Table
	start    symbol.Symbol
	started  bool
	heads    []symbol.Symbol
	headIdx  map[symbol.Symbol]int
	prods    map[symbol.Symbol]*ProductionSet
	composes map[symbol.Symbol]map[symbol.Symbol]struct{}
}

// New returns an empty grammar, seeded with the epsilon symbol only.
func New() *Grammar {
	g := &Grammar{}
	g.Reset()
	return g
}

// Reset discards every head, production, and interned symbol, exactly as
// Parse does before reading new BNF text (spec.md §4.1).
func (g *Grammar) Reset() {
	g.table = symbol.NewTable()
	g.start = symbol.Epsilon
	g.started = false
	g.heads = nil
	g.headIdx = map[symbol.Symbol]int{}
	g.prods = map[symbol.Symbol]*ProductionSet{}
	g.composes = map[symbol.Symbol]map[symbol.Symbol]struct{}{}
}

// Table returns the grammar's symbol interner (Σ).
func (g *Grammar) Table() *symbol.Table {
	return g.table
}

// Start returns S, the start symbol.
func (g *Grammar) Start() symbol.Symbol {
	return g.start
}

// SetStart overrides the start symbol. Transformations that replace the
// start head (ε-elimination's fix-up step) use this.
func (g *Grammar) SetStart(s symbol.Symbol) {
	g.start = s
}

// Heads returns the non-terminals (H) in insertion order.
func (g *Grammar) Heads() []symbol.Symbol {
	out := make([]symbol.Symbol, len(g.heads))
	copy(out, g.heads)
	return out
}

// Productions returns the production set for head, and whether head is
// actually a head of this grammar.
func (g *Grammar) Productions(head symbol.Symbol) (*ProductionSet, bool) {
	ps, ok := g.prods[head]
	return ps, ok
}

// Composes returns the heads whose productions mention sym (C[sym]).
func (g *Grammar) Composes(sym symbol.Symbol) map[symbol.Symbol]struct{} {
	return g.composes[sym]
}

// IsTerminal reports whether sym is a terminal: spec.md §3 defines a symbol
// to be a non-terminal iff it appears as a head.
func (g *Grammar) IsTerminal(sym symbol.Symbol) bool {
	_, ok := g.prods[sym]
	return !ok
}

// IsNonTerminal is the complement of IsTerminal.
func (g *Grammar) IsNonTerminal(sym symbol.Symbol) bool {
	_, ok := g.prods[sym]
	return ok
}

// GetOrCreateSymbol interns name and returns its Symbol.
func (g *Grammar) GetOrCreateSymbol(name string) symbol.Symbol {
	return g.table.Intern(name)
}

// CreateAux allocates a fresh auxiliary head derived from base (spec.md §9):
// "base_1", "base_2", ... choosing the first unused name.
func (g *Grammar) CreateAux(base symbol.Symbol) symbol.Symbol {
	return g.table.CreateAux(base.String())
}

// AddProduction adds production to head's set, registering head in the
// composes index for every symbol the production mentions. It reports
// whether the production was new.
func (g *Grammar) AddProduction(head symbol.Symbol, production Production) bool {
	for _, sym := range production {
		if g.composes[sym] == nil {
			g.composes[sym] = map[symbol.Symbol]struct{}{}
		}
		g.composes[sym][head] = struct{}{}
	}
	ps, ok := g.prods[head]
	if !ok {
		ps = newProductionSet()
		g.prods[head] = ps
		g.headIdx[head] = len(g.heads)
		g.heads = append(g.heads, head)
	}
	return ps.Add(production)
}

// Clean empties head's production set without removing the head itself.
func (g *Grammar) Clean(head symbol.Symbol) {
	g.prods[head] = newProductionSet()
}

// Remove deletes head entirely: it is no longer a non-terminal of the
// grammar.
func (g *Grammar) Remove(head symbol.Symbol) {
	delete(g.prods, head)
	if i, ok := g.headIdx[head]; ok {
		g.heads = append(g.heads[:i], g.heads[i+1:]...)
		delete(g.headIdx, head)
		for j := i; j < len(g.heads); j++ {
			g.headIdx[g.heads[j]] = j
		}
	}
}

// Clone returns a deep copy with a parallel interner, so that mutating the
// clone's symbol attributes never affects the original (spec.md §5).
func (g *Grammar) Clone() *Grammar {
	out := &Grammar{
		table:    symbol.NewTable(),
		heads:    make([]symbol.Symbol, len(g.heads)),
		headIdx:  map[symbol.Symbol]int{},
		prods:    map[symbol.Symbol]*ProductionSet{},
		composes: map[symbol.Symbol]map[symbol.Symbol]struct{}{},
	}
	for _, s := range g.table.Symbols() {
		src := g.table.Attrs(s)
		out.table.Intern(string(s))
		dst := out.table.Attrs(s)
		*dst = *src
	}
	out.start = g.start
	out.started = g.started
	copy(out.heads, g.heads)
	for i, h := range out.heads {
		out.headIdx[h] = i
	}
	for sym, heads := range g.composes {
		cp := map[symbol.Symbol]struct{}{}
		for h := range heads {
			cp[h] = struct{}{}
		}
		out.composes[sym] = cp
	}
	for head, ps := range g.prods {
		out.prods[head] = ps.clone()
	}
	return out
}

// String pretty-prints the grammar per spec.md §6: head names right-aligned
// in a column as wide as the longest head name, the start symbol first,
// remaining heads in insertion order.
func (g *Grammar) String() string {
	if len(g.heads) == 0 {
		return ""
	}
	longest := 0
	for _, h := range g.heads {
		if n := len(h.String()); n > longest {
			longest = n
		}
	}
	ordered := make([]symbol.Symbol, 0, len(g.heads))
	ordered = append(ordered, g.start)
	for _, h := range g.heads {
		if h != g.start {
			ordered = append(ordered, h)
		}
	}
	var b strings.Builder
	for _, head := range ordered {
		ps := g.prods[head]
		name := head.String()
		list := ps.List()
		fmt.Fprintf(&b, "%s%s -> %s\n", strings.Repeat(" ", longest-len(name)), name, list[0].Pretty())
		for _, p := range list[1:] {
			fmt.Fprintf(&b, "%s| %s\n", strings.Repeat(" ", longest+len(" -")), p.Pretty())
		}
	}
	return b.String()
}
