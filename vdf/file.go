package vdf

import (
	"bytes"
	"fmt"
	"os"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseFile reads the whole file, decodes it with the configured encoding
// (UTF-8 when none is set), strips a leading byte-order mark, and parses.
// The file handle is released before parsing begins.
func (p *Parser) ParseFile(path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if p.Encoding != nil {
		data, err = p.Encoding.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	return p.ParseString(string(data))
}
