package grammar

import (
	"strings"

	"github.com/nihei9/cfgtoys/cfgerr"
	"github.com/nihei9/cfgtoys/symbol"
)

// Parse reads the whitespace-tokenized BNF surface syntax of spec.md §4.1
// into the receiver, discarding whatever the receiver held before. The
// first head encountered becomes the start symbol; multiple blocks sharing
// a head have their alternatives unioned.
func (g *Grammar) Parse(text string) error {
	g.Reset()

	replaced := strings.NewReplacer("\n", " ", "\r", " ").Replace(text)
	fields := strings.Fields(replaced)
	if len(fields) == 0 {
		return nil
	}

	var arrowBefore []int
	for i, tok := range fields {
		if tok == "->" {
			arrowBefore = append(arrowBefore, i-1)
		}
	}
	if len(arrowBefore) == 0 {
		return cfgerr.NewNoArrow(text)
	}
	if arrowBefore[0] != 0 {
		return cfgerr.NewMultiTokenHead(strings.Join(fields[:arrowBefore[0]+1], " "))
	}
	arrowBefore = append(arrowBefore, len(fields))

	for i := 0; i < len(arrowBefore)-1; i++ {
		start, stop := arrowBefore[i], arrowBefore[i+1]
		headTok := fields[start]
		head := g.GetOrCreateSymbol(headTok)
		if !g.started {
			g.start = head
			g.started = true
		}

		start += 2 // skip the head token and "->"
		var production Production
		for j := start; j < stop; j++ {
			tok := fields[j]
			switch {
			case tok == "|":
				if len(production) == 0 {
					return cfgerr.NewEmptyAlternative(headTok)
				}
				g.AddProduction(head, production)
				production = nil
			case tok == "ε" || tok == "ϵ":
				production = append(production, symbol.Epsilon)
			default:
				production = append(production, g.GetOrCreateSymbol(tok))
			}
		}
		if len(production) == 0 {
			return cfgerr.NewEmptyHeadRHS(headTok)
		}
		g.AddProduction(head, production)
	}
	return nil
}
