// Package element defines the parsed value model of BML documents.
//
// An Element is exactly one of:
//   - Scalar: a text value
//   - *Mapping: ordered key/value entries with unique Scalar keys
//   - *Sequence: ordered items
//   - Empty: the explicit "no value" marker
//
// The variant set is closed. Elements are immutable once built, so a tree may be
// shared freely between goroutines after parsing.
package element

import (
	"fmt"
	"strings"
)

// Kind identifies the variant of an Element.
type Kind int

const (
	KindScalar Kind = iota
	KindMapping
	KindSequence
	KindEmpty
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "Scalar"
	case KindMapping:
		return "Mapping"
	case KindSequence:
		return "Sequence"
	case KindEmpty:
		return "Empty"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Element is a parsed BML value.
// Only the types of this package implement it.
type Element interface {
	// Kind returns the variant of the element.
	Kind() Kind

	// String returns a collapsed-notation rendering for debugging.
	String() string

	element()
}

// Scalar is a text value.
type Scalar struct {
	text string
}

// NewScalar creates a scalar holding text.
func NewScalar(text string) Scalar {
	return Scalar{text: text}
}

// Text returns the scalar's value.
func (s Scalar) Text() string { return s.text }

func (s Scalar) Kind() Kind { return KindScalar }

func (s Scalar) String() string { return fmt.Sprintf("%q", s.text) }

func (Scalar) element() {}

// Empty is the explicit "no value" marker. It is distinct from an absent entry.
type Empty struct{}

// EmptyValue is the Empty element.
var EmptyValue = Empty{}

func (Empty) Kind() Kind { return KindEmpty }

func (Empty) String() string { return "~" }

func (Empty) element() {}

// Sequence is an ordered list of elements.
type Sequence struct {
	items []Element
}

// NewSequence creates a sequence holding items in order.
func NewSequence(items ...Element) *Sequence {
	return &Sequence{items: append([]Element(nil), items...)}
}

// Len returns the number of items.
func (s *Sequence) Len() int { return len(s.items) }

// At returns the i-th item.
func (s *Sequence) At(i int) Element { return s.items[i] }

// Items returns a copy of the items in order.
func (s *Sequence) Items() []Element {
	return append([]Element(nil), s.items...)
}

func (s *Sequence) Kind() Kind { return KindSequence }

func (s *Sequence) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, item := range s.items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(item.String())
	}
	b.WriteByte(']')
	return b.String()
}

func (*Sequence) element() {}
