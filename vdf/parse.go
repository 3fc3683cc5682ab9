package vdf

import (
	"regexp"
	"strings"
)

// The grammar is two fixed patterns. The quote character is matched per
// token ('...' or "..."), and a token never contains its own quote
// character. The key-only pattern must consume the entire line; the pair
// pattern tolerates trailing text after the value's closing quote.
var (
	keyPattern  = regexp.MustCompile(`^(?:"([^"]*)"|'([^']*)')$`)
	pairPattern = regexp.MustCompile(`^(?:"([^"]*)"|'([^']*)')\s*(?:"([^"]*)"|'([^']*)')`)
)

// token joins the two alternative capture groups of a pattern. Exactly one
// of them participates in any match, the other is empty.
func token(a, b string) string {
	return a + b
}

// Parse parses lines (each already stripped of leading and trailing
// whitespace) into the root mapping. The top-level document is a sequence
// of entries with no enclosing braces; end of input closes every open
// block implicitly.
func (p *Parser) Parse(lines []string) (*Mapping, error) {
	root, _, err := p.parseLevel(lines, 0)
	if err != nil {
		return nil, err
	}
	return root, nil
}

// ParseString splits text into lines, trims each, and parses.
func (p *Parser) ParseString(text string) (*Mapping, error) {
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return p.Parse(lines)
}

// parseLevel consumes one brace-nesting level starting at lines[start]
// and returns the accumulated mapping plus the index of the first line
// after the level's closing brace (or len(lines) when input ran out).
func (p *Parser) parseLevel(lines []string, start int) (*Mapping, int, error) {
	m := NewMapping()
	pending := ""
	hasPending := false

	// Index of a line already consumed as the value half of a split pair.
	// That line is re-scanned on the next iteration as an ordinary line,
	// but must not head another split pair of its own.
	tail := -1

	i := start
	for i < len(lines) {
		line := lines[i]

		if strings.HasPrefix(line, "{") {
			if !hasPending {
				return nil, 0, &StructuralError{Line: i + 1}
			}
			child, next, err := p.parseLevel(lines, i+1)
			if err != nil {
				return nil, 0, err
			}
			m.Append(pending, child)
			hasPending = false
			i = next
			continue
		}

		if strings.HasPrefix(line, "}") {
			return m, i + 1, nil
		}

		if pm := pairPattern.FindStringSubmatch(line); pm != nil {
			m.Append(p.key(token(pm[1], pm[2])), Scalar(token(pm[3], pm[4])))
			i++
			continue
		}

		// A pair split across two physical lines. The cursor advances by
		// a single line only, so the value line comes around again as a
		// fresh line; consumers depend on the tree shape this produces.
		if i != tail && i+1 < len(lines) {
			if pm := pairPattern.FindStringSubmatch(line + " " + lines[i+1]); pm != nil {
				m.Append(p.key(token(pm[1], pm[2])), Scalar(token(pm[3], pm[4])))
				tail = i + 1
				i++
				continue
			}
		}

		if km := keyPattern.FindStringSubmatch(line); km != nil {
			pending = p.key(token(km[1], km[2]))
			hasPending = true
			i++
			continue
		}

		// Blank, comment, or otherwise unrecognized line: skip it.
		i++
	}

	return m, i, nil
}

func (p *Parser) key(k string) string {
	if p.KeyFunc != nil {
		return p.KeyFunc(k)
	}
	return k
}
