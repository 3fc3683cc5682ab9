// Package vdf implements Valve's KeyValues configuration format, the
// nested, brace-delimited, quoted key/value text format Steam uses for
// files such as libraryfolders.vdf and appmanifest_*.acf.
//
// The parsed tree is ordered and tolerant of duplicate keys:
//
//   - Parse/ParseString/ParseFile: text -> *Mapping of ordered entries
//   - Mapping.Get and friends: last-occurrence dictionary lookup
//   - Marshal/Write: serialize a tree back to KeyValues text
//
// The format is hand-edited and machine-rewritten by Steam itself, so the
// parser is deliberately lenient: any line that is not a brace, a quoted
// key, or a quoted key/value pair is skipped without error.
package vdf

import (
	"fmt"

	"golang.org/x/text/encoding"
)

// Parser holds the optional parsing knobs. The zero value parses UTF-8
// input with keys stored verbatim.
type Parser struct {
	// KeyFunc, when non-nil, is applied to every captured key before it
	// is stored. Values are never transformed.
	KeyFunc func(string) string

	// Encoding decodes file bytes in ParseFile. Nil means UTF-8.
	Encoding encoding.Encoding
}

// StructuralError is a fatal parse failure: an opening brace appeared
// with no preceding key to bind the block to.
type StructuralError struct {
	Line int // 1-based line number of the brace
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("line %d: opening brace without preceding key", e.Line)
}

// Parse parses pre-trimmed lines with default settings.
func Parse(lines []string) (*Mapping, error) {
	var p Parser
	return p.Parse(lines)
}

// ParseString parses a whole KeyValues document.
func ParseString(text string) (*Mapping, error) {
	var p Parser
	return p.ParseString(text)
}

// ParseFile reads and parses a KeyValues file as UTF-8.
func ParseFile(path string) (*Mapping, error) {
	var p Parser
	return p.ParseFile(path)
}
