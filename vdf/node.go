package vdf

// Node is a value in a parsed KeyValues tree: either a Scalar string
// or a *Mapping of further entries.
type Node interface {
	node()
}

// Scalar is a leaf string value.
type Scalar string

func (Scalar) node() {}

// String returns the scalar's text.
func (s Scalar) String() string { return string(s) }

// Pair is one key-value entry of a Mapping.
type Pair struct {
	Key   string
	Value Node
}

// Mapping is an ordered list of key-value entries. Keys are not required
// to be unique; entries keep the order they appeared in the source text.
type Mapping struct {
	pairs []Pair
}

func (*Mapping) node() {}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{}
}

// Append adds a key-value entry. Repeated keys are kept as separate
// entries, never merged or overwritten.
func (m *Mapping) Append(key string, value Node) {
	m.pairs = append(m.pairs, Pair{Key: key, Value: value})
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	return len(m.pairs)
}

// At returns the i-th entry in source order.
func (m *Mapping) At(i int) Pair {
	return m.pairs[i]
}

// Pairs returns the entries in source order. The returned slice is the
// mapping's backing storage and must not be modified.
func (m *Mapping) Pairs() []Pair {
	return m.pairs
}

// Keys returns every entry's key in source order, duplicates included.
func (m *Mapping) Keys() []string {
	keys := make([]string, len(m.pairs))
	for i, p := range m.pairs {
		keys[i] = p.Key
	}
	return keys
}

// Has reports whether any entry has the given key.
func (m *Mapping) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Get returns the value bound to key. When the key is repeated, the last
// occurrence wins, matching key-overwrite semantics of a plain dictionary.
func (m *Mapping) Get(key string) (Node, bool) {
	for i := len(m.pairs) - 1; i >= 0; i-- {
		if m.pairs[i].Key == key {
			return m.pairs[i].Value, true
		}
	}
	return nil, false
}

// GetString returns the scalar bound to key, or "" if the key is absent
// or bound to a nested mapping.
func (m *Mapping) GetString(key string) (string, bool) {
	v, ok := m.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(Scalar)
	if !ok {
		return "", false
	}
	return string(s), true
}

// GetMapping returns the nested mapping bound to key, or nil if the key
// is absent or bound to a scalar.
func (m *Mapping) GetMapping(key string) (*Mapping, bool) {
	v, ok := m.Get(key)
	if !ok {
		return nil, false
	}
	child, ok := v.(*Mapping)
	if !ok {
		return nil, false
	}
	return child, true
}

// Map projects the tree onto plain map[string]any values, with scalars as
// string and nested mappings as map[string]any. Duplicate keys collapse to
// the last occurrence.
func (m *Mapping) Map() map[string]any {
	result := make(map[string]any, len(m.pairs))
	for _, p := range m.pairs {
		switch v := p.Value.(type) {
		case Scalar:
			result[p.Key] = string(v)
		case *Mapping:
			result[p.Key] = v.Map()
		}
	}
	return result
}
