package cnf

import (
	"testing"

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

func TestEliminateEpsilonCase1(t *testing.T) {
	g := mustParse(t, `
		S -> L a M
		L -> L M
		L -> ε
		M -> M M
		M -> ε
	`)
	out, _ := EliminateEpsilon(g)
	want := "S_1 -> a\n     | L_1 a\n     | a M_1\n     | L_1 a M_1\nL_1 -> L_1\n     | M_1\n     | L_1 M_1\nM_1 -> M_1\n     | M_1 M_1\n"
	if got := out.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

const numberGrammarSrc = `
Number -> Integer | Real
Integer -> Digit | Integer Digit
Real -> Integer Fraction Scale
Fraction -> . Integer
Scale -> e Sign Integer | Empty
Digit -> 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 | 8 | 9
Sign -> + | -
Empty -> ε
`

func TestEliminateEpsilonCase2(t *testing.T) {
	g := mustParse(t, numberGrammarSrc)
	out, _ := EliminateEpsilon(g)
	want := "" +
		"  Number -> Integer\n" +
		"          | Real_1\n" +
		" Integer -> Digit\n" +
		"          | Integer Digit\n" +
		"Fraction -> . Integer\n" +
		"   Digit -> 0\n" +
		"          | 1\n" +
		"          | 2\n" +
		"          | 3\n" +
		"          | 4\n" +
		"          | 5\n" +
		"          | 6\n" +
		"          | 7\n" +
		"          | 8\n" +
		"          | 9\n" +
		"    Sign -> +\n" +
		"          | -\n" +
		"  Real_1 -> Integer Fraction\n" +
		"          | Integer Fraction Scale_1\n" +
		" Scale_1 -> e Sign Integer\n"
	if got := out.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEliminateEpsilonCase3Collapses(t *testing.T) {
	g := mustParse(t, `
		S -> L M
		L -> ε
		M -> ε
	`)
	out, _ := EliminateEpsilon(g)
	want := "S_1 -> ε\n"
	if got := out.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEliminateEpsilonCase4Collapses(t *testing.T) {
	g := mustParse(t, `
		S -> L M | A
		A -> M L
		L -> ε
		M -> ε
	`)
	out, _ := EliminateEpsilon(g)
	want := "S_1 -> ε\n"
	if got := out.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEliminateUnitCase1(t *testing.T) {
	g := mustParse(t, numberGrammarSrc)
	eps, _ := EliminateEpsilon(g)
	out := EliminateUnit(eps)
	want := "" +
		"  Number -> 0\n" +
		"          | 1\n" +
		"          | 2\n" +
		"          | 3\n" +
		"          | 4\n" +
		"          | 5\n" +
		"          | 6\n" +
		"          | 7\n" +
		"          | 8\n" +
		"          | 9\n" +
		"          | Integer Digit\n" +
		"          | Integer Fraction\n" +
		"          | Integer Fraction Scale_1\n" +
		" Integer -> 0\n" +
		"          | 1\n" +
		"          | 2\n" +
		"          | 3\n" +
		"          | 4\n" +
		"          | 5\n" +
		"          | 6\n" +
		"          | 7\n" +
		"          | 8\n" +
		"          | 9\n" +
		"          | Integer Digit\n" +
		"Fraction -> . Integer\n" +
		"   Digit -> 0\n" +
		"          | 1\n" +
		"          | 2\n" +
		"          | 3\n" +
		"          | 4\n" +
		"          | 5\n" +
		"          | 6\n" +
		"          | 7\n" +
		"          | 8\n" +
		"          | 9\n" +
		"    Sign -> +\n" +
		"          | -\n" +
		"  Real_1 -> Integer Fraction\n" +
		"          | Integer Fraction Scale_1\n" +
		" Scale_1 -> e Sign Integer\n"
	if got := out.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEliminateUnitCase2ChainsToTerminal(t *testing.T) {
	g := mustParse(t, `
		S -> A
		A -> B
		B -> C
		C -> D
		D -> E
		E -> F
		F -> a
	`)
	eps, _ := EliminateEpsilon(g)
	out := EliminateUnit(eps)
	want := "S -> a\nA -> a\nB -> a\nC -> a\nD -> a\nE -> a\nF -> a\n"
	if got := out.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEliminateUnitCase3SelfLoopSurvives(t *testing.T) {
	g := mustParse(t, `
		S -> A
		A -> A | a
	`)
	eps, _ := EliminateEpsilon(g)
	out := EliminateUnit(eps)
	want := "S -> A\n   | a\nA -> A\n   | a\n"
	if got := out.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestToChomskyNormalFormCase1(t *testing.T) {
	g := mustParse(t, numberGrammarSrc)
	out, _ := ToChomskyNormalForm(g, true)
	want := "" +
		"  Number -> 0\n" +
		"          | 1\n" +
		"          | 2\n" +
		"          | 3\n" +
		"          | 4\n" +
		"          | 5\n" +
		"          | 6\n" +
		"          | 7\n" +
		"          | 8\n" +
		"          | 9\n" +
		"          | Integer Digit\n" +
		"          | Integer Fraction\n" +
		"          | N_1 Scale_1\n" +
		" Integer -> 0\n" +
		"          | 1\n" +
		"          | 2\n" +
		"          | 3\n" +
		"          | 4\n" +
		"          | 5\n" +
		"          | 6\n" +
		"          | 7\n" +
		"          | 8\n" +
		"          | 9\n" +
		"          | Integer Digit\n" +
		"Fraction -> T_1 Integer\n" +
		"   Digit -> 0\n" +
		"          | 1\n" +
		"          | 2\n" +
		"          | 3\n" +
		"          | 4\n" +
		"          | 5\n" +
		"          | 6\n" +
		"          | 7\n" +
		"          | 8\n" +
		"          | 9\n" +
		"    Sign -> +\n" +
		"          | -\n" +
		" Scale_1 -> N_2 Integer\n" +
		"     N_1 -> Integer Fraction\n" +
		"     T_1 -> .\n" +
		"     T_2 -> e\n" +
		"     N_2 -> T_2 Sign\n"
	if got := out.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestToChomskyNormalFormCase2(t *testing.T) {
	g := mustParse(t, `
S -> A B C D
A -> B C D | a b c d
B -> C D | b c d
C -> C D | c d
D -> E H I | d
E -> F G
F -> F
G -> G
H -> B C D
I -> i
	`)
	out, _ := ToChomskyNormalForm(g, true)
	want := "" +
		"  S -> N_2 D\n" +
		"  A -> N_3 D\n" +
		"     | N_5 T_4\n" +
		"  B -> C D\n" +
		"     | N_6 T_4\n" +
		"  C -> C D\n" +
		"     | T_3 T_4\n" +
		"  D -> N_7 I\n" +
		"     | d\n" +
		"  E -> F G\n" +
		"  F -> F\n" +
		"  G -> G\n" +
		"  H -> N_3 D\n" +
		"  I -> i\n" +
		"N_1 -> A B\n" +
		"N_2 -> N_1 C\n" +
		"N_3 -> B C\n" +
		"T_1 -> a\n" +
		"T_2 -> b\n" +
		"N_4 -> T_1 T_2\n" +
		"T_3 -> c\n" +
		"N_5 -> N_4 T_3\n" +
		"T_4 -> d\n" +
		"N_6 -> T_2 T_3\n" +
		"N_7 -> E H\n"
	if got := out.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}
