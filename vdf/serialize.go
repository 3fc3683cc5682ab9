package vdf

import (
	"io"
	"strings"
)

// Marshal serializes a tree to KeyValues text in the layout Steam writes:
// tab indentation, double quotes, scalars separated from their key by two
// tabs, block values on the following lines between braces. A token
// containing a double quote is emitted with single-quote delimiters
// instead; the format has no escape sequences, so a token containing both
// quote characters is not representable.
func Marshal(m *Mapping) []byte {
	var b strings.Builder
	writeMapping(&b, m, 0)
	return []byte(b.String())
}

// Write serializes a tree to w.
func Write(w io.Writer, m *Mapping) error {
	_, err := w.Write(Marshal(m))
	return err
}

func quoteToken(tok string) string {
	if strings.Contains(tok, `"`) {
		return "'" + tok + "'"
	}
	return `"` + tok + `"`
}

func writeMapping(b *strings.Builder, m *Mapping, indent int) {
	prefix := strings.Repeat("\t", indent)
	for _, p := range m.Pairs() {
		switch v := p.Value.(type) {
		case Scalar:
			b.WriteString(prefix)
			b.WriteString(quoteToken(p.Key))
			b.WriteString("\t\t")
			b.WriteString(quoteToken(string(v)))
			b.WriteString("\n")
		case *Mapping:
			b.WriteString(prefix)
			b.WriteString(quoteToken(p.Key))
			b.WriteString("\n")
			b.WriteString(prefix)
			b.WriteString("{\n")
			writeMapping(b, v, indent+1)
			b.WriteString(prefix)
			b.WriteString("}\n")
		}
	}
}
