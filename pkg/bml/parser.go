// Package bml parses BML documents into an ordered element tree.
//
// A BML document is a mapping of keys to values written one entry per line.
// Values nest either as indented blocks (expanded notation) or on a single
// line between brackets (collapsed notation), and both notations mix freely:
//
//	name: Alice
//	tags: ["admin", "ops"]
//	address:
//	  city: Paris
//	  zip: ~
//	people:
//	  - name: Bob
//	    role: {"title": "dev", "level": "2"}
//
// Parsing is fail-fast. The first syntax error aborts the document and is
// returned as a *FormatError carrying its Reason and its line and character
// position in the document.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple goroutines.
// Each call creates its own parser over its own lines with no shared mutable state.
//
// # Parsing APIs
//
//   - Parse(string) - parses a document held in memory
//   - ParseLines([]string) - parses a document already split into lines
//   - ParseReader(io.Reader) - parses a document from any io.Reader
//   - ParseValue(string) - parses a single inline value
//   - Validate(string) - checks syntax without keeping the tree
//
// Files are read through a Reader, which also creates missing files.
package bml

import (
	"fmt"
	"io"
	"strings"

	"github.com/shapestone/shape-bml/internal/parser"
	"github.com/shapestone/shape-bml/pkg/element"
)

// FormatError is a positioned syntax failure. Line and Char are zero-based,
// Char counts characters within the line.
type FormatError = parser.FormatError

// Reason is the sub-reason of a FormatError.
type Reason = parser.Reason

// Failure reasons.
const (
	MissingSeparator     = parser.MissingSeparator
	UnnecessarySeparator = parser.UnnecessarySeparator
	MissingKey           = parser.MissingKey
	MissingValue         = parser.MissingValue
	InvalidKeyType       = parser.InvalidKeyType
	DuplicateKey         = parser.DuplicateKey
	EmptyKey             = parser.EmptyKey
	UnterminatedBracket  = parser.UnterminatedBracket
	UnknownCharacter     = parser.UnknownCharacter
	InvalidLine          = parser.InvalidLine
)

// ErrInvalidFormat is matched by every *FormatError through errors.Is.
var ErrInvalidFormat = parser.ErrInvalidFormat

// Parse parses a BML document from a string.
//
// The document is split on "\n" and a trailing "\r" is dropped from every
// line, so both Unix and Windows line endings are accepted.
//
// Example:
//
//	doc, err := bml.Parse("name: Alice\nage: 30")
//	if err != nil {
//	    // handle error
//	}
//	name, _ := doc.Get("name") // element.Scalar "Alice"
func Parse(input string) (*element.Mapping, error) {
	return ParseLines(SplitLines(input))
}

// ParseLines parses a document that is already split into lines.
// Lines must not contain "\n". The slice is not modified.
func ParseLines(lines []string) (*element.Mapping, error) {
	return parser.NewParser(lines).Parse()
}

// ParseReader parses a BML document from an io.Reader.
//
// The whole input is read before parsing begins. Read failures are returned
// wrapped and never as a *FormatError.
func ParseReader(reader io.Reader) (*element.Mapping, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return Parse(string(data))
}

// ParseValue parses text as one inline value: a collapsed mapping or
// sequence, a quoted or bare scalar, or the empty literal "~".
//
// Example:
//
//	v, _ := bml.ParseValue(`["a", {"b": ~}]`) // *element.Sequence
func ParseValue(text string) (element.Element, error) {
	return parser.NewParser(SplitLines(text)).ParseValue()
}

// SplitLines splits input into lines the way a line reader does: on "\n",
// with one trailing "\r" removed from each line. A final line terminator does
// not start another line, so empty input has no lines.
func SplitLines(input string) []string {
	if input == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(input, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
