package element

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicateKey is returned when a key is added twice to one mapping.
var ErrDuplicateKey = errors.New("duplicate key")

// Entry is one key/value pair of a Mapping.
type Entry struct {
	Key   Scalar
	Value Element
}

// Mapping is an ordered association of unique Scalar keys to elements.
// Entries keep document order.
type Mapping struct {
	entries []Entry
	index   map[string]int
}

// Len returns the number of entries.
func (m *Mapping) Len() int { return len(m.entries) }

// At returns the i-th entry in document order.
func (m *Mapping) At(i int) Entry { return m.entries[i] }

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (Element, bool) {
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.entries[i].Value, true
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.index[key]
	return ok
}

// Keys returns the keys in document order.
func (m *Mapping) Keys() []string {
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key.Text()
	}
	return keys
}

// Entries returns a copy of the entries in document order.
func (m *Mapping) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

func (m *Mapping) Kind() Kind { return KindMapping }

func (m *Mapping) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.Key.String())
		b.WriteByte(':')
		b.WriteString(e.Value.String())
	}
	b.WriteByte('}')
	return b.String()
}

func (*Mapping) element() {}

// MappingBuilder collects entries for a Mapping, rejecting duplicate keys.
// The zero value is ready to use.
type MappingBuilder struct {
	entries []Entry
	index   map[string]int
}

// NewMappingBuilder creates an empty builder.
func NewMappingBuilder() *MappingBuilder {
	return &MappingBuilder{}
}

// Add appends an entry. It returns an error wrapping ErrDuplicateKey if key is
// already present; the builder is left unchanged in that case.
func (b *MappingBuilder) Add(key Scalar, value Element) error {
	if b.index == nil {
		b.index = make(map[string]int)
	}
	if _, ok := b.index[key.Text()]; ok {
		return fmt.Errorf("%w %q", ErrDuplicateKey, key.Text())
	}
	b.index[key.Text()] = len(b.entries)
	b.entries = append(b.entries, Entry{Key: key, Value: value})
	return nil
}

// Len returns the number of entries added so far.
func (b *MappingBuilder) Len() int { return len(b.entries) }

// Build returns the mapping. The builder must not be used afterwards.
func (b *MappingBuilder) Build() *Mapping {
	m := &Mapping{entries: b.entries, index: b.index}
	if m.index == nil {
		m.index = make(map[string]int)
	}
	b.entries, b.index = nil, nil
	return m
}

// NewMapping builds a mapping from entries in order.
func NewMapping(entries ...Entry) (*Mapping, error) {
	b := NewMappingBuilder()
	for _, e := range entries {
		if err := b.Add(e.Key, e.Value); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}
