// Package tokenizer provides BML tokenization using Shape's tokenizer framework,
// plus the escape-aware line primitives the expanded notation needs.
package tokenizer

// Token kinds produced by NewTokenizer for collapsed nodes.
const (
	TokenMapOpen       = "MapOpen"       // {
	TokenMapClose      = "MapClose"      // }
	TokenSeqOpen       = "SeqOpen"       // [
	TokenSeqClose      = "SeqClose"      // ]
	TokenKeySeparator  = "KeySeparator"  // :
	TokenItemSeparator = "ItemSeparator" // ,
	TokenEmpty         = "Empty"         // ~
	TokenQuoted        = "Quoted"        // "..." including both quotes
	TokenUnterminated  = "Unterminated"  // " with no closing quote, to the end of input
	TokenSpace         = "Space"         // run of spaces and tabs
	TokenText          = "Text"          // anything else, escapes included
)

// Symbol constants for the BML format.
// Every symbol is a single ASCII byte so scanning can run over bytes without
// splitting UTF-8 sequences.
const (
	// Collapsed (flow) node delimiters
	MapOpen  byte = '{'
	MapClose byte = '}'
	SeqOpen  byte = '['
	SeqClose byte = ']'
	Quote    byte = '"'

	// Separators
	KeySeparator  byte = ':' // key: value
	ItemSeparator byte = ',' // {"a":"1", "b":"2"}

	// Escape makes the following byte literal.
	Escape byte = '\\'

	// ItemMarker introduces an item of an expanded sequence.
	ItemMarker byte = '-'
)

// EmptyLiteral is the token for an explicit "no value" marker.
const EmptyLiteral = "~"

// NotFound is returned by the scanning functions when no match exists.
const NotFound = -1

// IsOpener reports whether b opens a collapsed node.
func IsOpener(b byte) bool {
	return b == MapOpen || b == SeqOpen || b == Quote
}

// CloserFor returns the closing symbol for an opener.
func CloserFor(open byte) byte {
	switch open {
	case MapOpen:
		return MapClose
	case SeqOpen:
		return SeqClose
	default:
		return Quote
	}
}

// IsWhitespace reports whether b is an inline whitespace byte.
func IsWhitespace(b byte) bool {
	return b == ' ' || b == '\t'
}
