package unger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nihei9/cfgtoys/cfgerr"
	"github.com/nihei9/cfgtoys/grammar"
)

func mustParse(t *testing.T, src string) *grammar.Grammar {
	t.Helper()
	g := grammar.New()
	if err := g.Parse(src); err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return g
}

func TestParseArithmeticExpression(t *testing.T) {
	g := mustParse(t, `
		Expr -> Expr + Term | Term
		Term -> Term × Factor | Factor
		Factor -> ( Expr ) | i
	`)
	tree, err := Parse(g, "(i+i)×i")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	leftI := &Node{Label: "i", Children: []Tree{"i"}}
	rightI := &Node{Label: "i", Children: []Tree{"i"}}
	innerExprPlusTerm := &Node{
		Label: "Expr + Term",
		Children: []Tree{
			&Node{Label: "Term", Children: []Tree{
				&Node{Label: "Factor", Children: []Tree{leftI}},
			}},
			"+",
			&Node{Label: "Factor", Children: []Tree{rightI}},
		},
	}
	parenGroup := &Node{
		Label:    "( Expr )",
		Children: []Tree{"(", innerExprPlusTerm, ")"},
	}
	termUnitToFactor := &Node{
		Label:    "Factor",
		Children: []Tree{parenGroup},
	}
	trailingI := &Node{Label: "i", Children: []Tree{"i"}}
	termTimesFactor := &Node{
		Label:    "Term × Factor",
		Children: []Tree{termUnitToFactor, "×", trailingI},
	}
	want := &Node{Label: "Term", Children: []Tree{termTimesFactor}}
	assert.Equal(t, want, tree)
}

func TestParseLeftRecursiveCounterSingleChar(t *testing.T) {
	g := mustParse(t, `
		S -> L S D | ε
		L -> ε
		D -> d
	`)
	tree, err := Parse(g, "d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &Node{
		Label: "L S D",
		Children: []Tree{
			&Node{Label: "ε", Children: []Tree{"ε"}},
			&Node{Label: "ε", Children: []Tree{"ε"}},
			&Node{Label: "d", Children: []Tree{"d"}},
		},
	}
	assert.Equal(t, want, tree)
}

func TestParseLeftRecursiveCounterTwoChars(t *testing.T) {
	g := mustParse(t, `
		S -> L S D | ε
		L -> ε
		D -> d
	`)
	tree, err := Parse(g, "dd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &Node{
		Label: "L S D",
		Children: []Tree{
			&Node{Label: "ε", Children: []Tree{"ε"}},
			&Node{
				Label: "L S D",
				Children: []Tree{
					&Node{Label: "ε", Children: []Tree{"ε"}},
					&Node{Label: "ε", Children: []Tree{"ε"}},
					&Node{Label: "d", Children: []Tree{"d"}},
				},
			},
			&Node{Label: "d", Children: []Tree{"d"}},
		},
	}
	assert.Equal(t, want, tree)
}

func TestParseMultiCharacterTerminals(t *testing.T) {
	g := mustParse(t, `
		S -> A B
		A -> ab
		B -> c
	`)
	tree, err := Parse(g, "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &Node{
		Label: "A B",
		Children: []Tree{
			&Node{Label: "ab", Children: []Tree{"ab"}},
			&Node{Label: "c", Children: []Tree{"c"}},
		},
	}
	assert.Equal(t, want, tree)
}

func TestParseRejectsSentenceOutsideLanguage(t *testing.T) {
	g := mustParse(t, `
		S -> a
	`)
	_, err := Parse(g, "b")
	if _, ok := err.(*cfgerr.NoParse); !ok {
		t.Fatalf("expected *cfgerr.NoParse, got %v (%T)", err, err)
	}
}
