// Package cfgerr holds the error values the core packages can return. Per
// spec.md §7, everything else a well-formed call can hit is a programmer
// error and is reported via panic, not an error value.
package cfgerr

import "fmt"

// reason is a fixed, comparable cause a MalformedInput wraps, mirroring
// vartan's semErr* sentinel-error style.
type reason string

const (
	ReasonMultiTokenHead   reason = "a head must be a single token"
	ReasonEmptyAlternative reason = "an alternative must not be empty"
	ReasonEmptyHeadRHS     reason = "a production must not be empty"
	ReasonNoArrow          reason = "a production block must contain ->"
	ReasonTerminalLength   reason = "a terminal symbol used with the CYK parser must be exactly one character"
)

func (r reason) Error() string {
	return string(r)
}

// MalformedInput is returned by Grammar.Parse when the BNF surface syntax is
// violated (spec.md §4.1, §7).
type MalformedInput struct {
	Cause   error
	Excerpt string
}

func (e *MalformedInput) Error() string {
	if e.Excerpt == "" {
		return fmt.Sprintf("malformed input: %v", e.Cause)
	}
	return fmt.Sprintf("malformed input: %v: %q", e.Cause, e.Excerpt)
}

func (e *MalformedInput) Unwrap() error {
	return e.Cause
}

func newMalformed(r reason, excerpt string) *MalformedInput {
	return &MalformedInput{Cause: r, Excerpt: excerpt}
}

// NewMultiTokenHead reports a production block whose head is more than one
// token long.
func NewMultiTokenHead(excerpt string) *MalformedInput {
	return newMalformed(ReasonMultiTokenHead, excerpt)
}

// NewEmptyAlternative reports a `|` with no symbols on one of its sides.
func NewEmptyAlternative(excerpt string) *MalformedInput {
	return newMalformed(ReasonEmptyAlternative, excerpt)
}

// NewEmptyHeadRHS reports a production block whose last alternative is
// empty, including a head with nothing after its "->".
func NewEmptyHeadRHS(excerpt string) *MalformedInput {
	return newMalformed(ReasonEmptyHeadRHS, excerpt)
}

// NewNoArrow reports a production block missing its "->" token.
func NewNoArrow(excerpt string) *MalformedInput {
	return newMalformed(ReasonNoArrow, excerpt)
}

// NewTerminalLength reports a terminal symbol whose name is not exactly one
// character, which the character-indexed CYK table cannot represent.
func NewTerminalLength(excerpt string) *MalformedInput {
	return newMalformed(ReasonTerminalLength, excerpt)
}

// NoParse is returned by the CYK and Unger parsers when a sentence is not a
// member of the grammar's language (spec.md §4.6, §4.7).
type NoParse struct {
	Sentence string
}

func (e *NoParse) Error() string {
	return fmt.Sprintf("no parse for %q", e.Sentence)
}

// NewNoParse reports that sentence could not be derived from the grammar.
func NewNoParse(sentence string) *NoParse {
	return &NoParse{Sentence: sentence}
}
