package grammar

import "github.com/nihei9/cfgtoys/symbol"

// InitNullable computes the nullable tri-state of every interned symbol
// (spec.md §4.2). It is a worklist fixed point seeded with every symbol;
// whenever a symbol's nullability flips to Yes, the heads that mention it
// (its composes neighbors) are re-enqueued. It terminates because flips are
// monotone (Unknown -> Yes); any symbol left Unknown at the end is No.
func (g *Grammar) InitNullable() {
	queue := g.table.Symbols()
	inQueue := make(map[symbol.Symbol]bool, len(queue))
	for _, s := range queue {
		inQueue[s] = true
	}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		inQueue[s] = false

		a := g.table.Attrs(s)
		if g.IsTerminal(s) {
			if s == symbol.Epsilon {
				a.Nullable = symbol.Yes
			} else {
				a.Nullable = symbol.No
			}
			continue
		}

		nullable := false
		for _, p := range g.prods[s].List() {
			all := true
			for _, child := range p {
				if g.table.Attrs(child).Nullable != symbol.Yes {
					all = false
					break
				}
			}
			if all {
				nullable = true
				break
			}
		}
		if nullable {
			a.Nullable = symbol.Yes
			for h := range g.composes[s] {
				if g.table.Attrs(h).Nullable != symbol.Yes && !inQueue[h] {
					queue = append(queue, h)
					inQueue[h] = true
				}
			}
		} else {
			a.Nullable = symbol.No
		}
	}
}

// InitMinLength computes the minimum terminal-character length derivable
// from every symbol (spec.md §4.2): 0 for ε, len(name) for other terminals,
// and for a head the minimum over its productions of the summed min-length
// of its symbols. Propagated in composes order from an infinity sentinel.
func (g *Grammar) InitMinLength() {
	g.table.Attrs(symbol.Epsilon).MinLength = 0

	var queue []symbol.Symbol
	inQueue := map[symbol.Symbol]bool{}
	for _, s := range g.table.Symbols() {
		a := g.table.Attrs(s)
		if g.IsTerminal(s) {
			if s == symbol.Epsilon {
				continue
			}
			a.MinLength = len(s.String())
		} else {
			a.MinLength = symbol.Infinity
			queue = append(queue, s)
			inQueue[s] = true
		}
	}

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		inQueue[s] = false

		a := g.table.Attrs(s)
		minLen := a.MinLength
		for _, p := range g.prods[s].List() {
			sum := 0
			infinite := false
			for _, child := range p {
				ml := g.table.Attrs(child).MinLength
				if ml == symbol.Infinity {
					infinite = true
					break
				}
				sum += ml
			}
			if !infinite && sum < minLen {
				minLen = sum
			}
		}
		if minLen < a.MinLength {
			a.MinLength = minLen
			for h := range g.composes[s] {
				if !inQueue[h] {
					queue = append(queue, h)
					inQueue[h] = true
				}
			}
		}
	}
}

// RemoveUnreachable deletes every head not reachable from the start symbol
// by a breadth-first walk over productions (spec.md §4.2).
func (g *Grammar) RemoveUnreachable() {
	queue := []symbol.Symbol{g.start}
	reached := map[symbol.Symbol]bool{g.start: true}
	for len(queue) > 0 {
		head := queue[0]
		queue = queue[1:]
		ps, ok := g.prods[head]
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
	for _, h := range g.Heads() {
		if !reached[h] {
			g.Remove(h)
		}
	}
}
