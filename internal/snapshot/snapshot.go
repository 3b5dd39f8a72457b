// Package snapshot implements the binary on-disk form the compile and show
// subcommands exchange: a grammar reduced to plain, rezi-encodable fields,
// stamped with a random build ID so a later show can report which compile
// produced the file (SPEC_FULL.md §2-3), grounded on vartan's
// cmd/vartan compile.go/show.go pair and tunaq's rezi-backed session state.
package snapshot

import (
	"fmt"
	"os"

	"github.com/dekarrin/rezi"
	"github.com/google/uuid"

	"github.com/nihei9/cfgtoys/grammar"
	"github.com/nihei9/cfgtoys/symbol"
)

// Snapshot is the serializable projection of a Grammar. CNF and HeadMapping
// are populated only when the snapshot was taken after the CNF pipeline ran.
type Snapshot struct {
	BuildID     string
	CNF         bool
	Start       string
	Heads       []string
	Productions map[string][][]string
	HeadMapping map[string]string
}

// From projects g into a Snapshot, stamping a fresh build ID. headMapping may
// be nil for a snapshot of a grammar that never went through CNF assembly.
func From(g *grammar.Grammar, cnf bool, headMapping map[symbol.Symbol]symbol.Symbol) *Snapshot {
	s := &Snapshot{
		BuildID:     uuid.New().String(),
		CNF:         cnf,
		Start:       string(g.Start()),
		Productions: map[string][][]string{},
	}
	for _, h := range g.Heads() {
		s.Heads = append(s.Heads, string(h))
		ps, _ := g.Productions(h)
		var rows [][]string
		for _, p := range ps.List() {
			row := make([]string, len(p))
			for i, sym := range p {
				row[i] = string(sym)
			}
			rows = append(rows, row)
		}
		s.Productions[h.String()] = rows
	}
	if headMapping != nil {
		s.HeadMapping = map[string]string{}
		for from, to := range headMapping {
			s.HeadMapping[string(from)] = string(to)
		}
	}
	return s
}

// ToGrammar rebuilds a Grammar from the snapshot's productions.
func (s *Snapshot) ToGrammar() *grammar.Grammar {
	g := grammar.New()
	g.SetStart(g.GetOrCreateSymbol(s.Start))
	for _, headName := range s.Heads {
		head := g.GetOrCreateSymbol(headName)
		for _, row := range s.Productions[headName] {
			prod := make(grammar.Production, len(row))
			for i, name := range row {
				if name == "" {
					prod[i] = symbol.Epsilon
				} else {
					prod[i] = g.GetOrCreateSymbol(name)
				}
			}
			g.AddProduction(head, prod)
		}
	}
	return g
}

// Write encodes the snapshot with rezi and writes it to path.
func Write(path string, s *Snapshot) error {
	data, err := rezi.Enc(s)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Read loads and decodes a snapshot previously written by Write.
func Read(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var s Snapshot
	if _, err := rezi.Dec(data, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &s, nil
}
