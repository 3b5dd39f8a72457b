package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nihei9/cfgtoys/grammar"
)

// readGrammar reads the whitespace-tokenized BNF surface syntax from path, or
// from stdin when path is empty, and parses it.
func readGrammar(path string) (*grammar.Grammar, error) {
	var src io.Reader
	if path == "" {
		src = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("cannot open the grammar file %s: %w", path, err)
		}
		defer f.Close()
		src = f
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("cannot read the grammar: %w", err)
	}

	g := grammar.New()
	if err := g.Parse(string(data)); err != nil {
		return nil, err
	}
	return g, nil
}
