package grammar

import (
	"strings"

	"github.com/nihei9/cfgtoys/symbol"
)

// Production is a finite ordered, non-empty sequence of symbols, as spec.md
// §3 requires. A derivation of the empty string is represented as the
// single-element production [symbol.Epsilon], never as an empty slice.
type Production []symbol.Symbol

// Pretty returns the space-joined symbol names, used both to print a
// production and as the label of a reconstructed parse-tree node
// (spec.md §4.6, §4.7).
func (p Production) Pretty() string {
	names := make([]string, len(p))
	for i, s := range p {
		names[i] = s.String()
	}
	return strings.Join(names, " ")
}

func (p Production) key() string {
	// "\x00" cannot appear in a BNF-tokenized symbol name, so joining on it
	// gives a collision-free identity for deduplication.
	names := make([]string, len(p))
	for i, s := range p {
		names[i] = string(s)
	}
	return strings.Join(names, "\x00")
}

func (p Production) equal(other []symbol.Symbol) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// ProductionSet is an ordered set of productions for a single head: order of
// insertion is preserved, duplicates are suppressed (spec.md §3). Insertion
// order drives both the deterministic pretty-printed form and which parse
// tree is returned first for an ambiguous sentence.
type ProductionSet struct {
	list []Production
	seen map[string]bool
}

func newProductionSet() *ProductionSet {
	return &ProductionSet{seen: map[string]bool{}}
}

// Add appends prod if it is not already present. It reports whether the
// production was newly added.
func (ps *ProductionSet) Add(prod Production) bool {
	k := prod.key()
	if ps.seen[k] {
		return false
	}
	ps.seen[k] = true
	ps.list = append(ps.list, prod)
	return true
}

// Has reports whether prod (compared symbol-by-symbol) is already present.
func (ps *ProductionSet) Has(prod []symbol.Symbol) bool {
	return ps.seen[Production(prod).key()]
}

// Len returns the number of productions in the set.
func (ps *ProductionSet) Len() int {
	return len(ps.list)
}

// List returns the productions in insertion order. The caller must not
// mutate the returned slice.
func (ps *ProductionSet) List() []Production {
	return ps.list
}

func (ps *ProductionSet) clone() *ProductionSet {
	out := newProductionSet()
	for _, p := range ps.list {
		cp := make(Production, len(p))
		copy(cp, p)
		out.Add(cp)
	}
	return out
}
