package tokenizer

import (
	"strings"

	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
)

// FindMatchingEnd returns the index of the symbol that closes the node opened at line[open].
//
// The node is lexed with NewTokenizer. Bracket pairs nest: only brackets of
// the same kind are counted, and quoted scalars inside them are opaque tokens.
// A quoted scalar does not nest, so the first unescaped quote after the opener
// closes it. An escaped character is never structural.
//
// Returns NotFound if open is not an opener or the line ends before the match.
//
// Example:
//
//	FindMatchingEnd(`{"a":{"}":"b"}}`, 0) // 14
//	FindMatchingEnd(`"a\"b"`, 0)          // 5
//	FindMatchingEnd(`{"a":"1"`, 0)        // NotFound
func FindMatchingEnd(line string, open int) int {
	if open < 0 || open >= len(line) || !IsOpener(line[open]) {
		return NotFound
	}
	if line[open] == Quote {
		return findQuoteEnd(line, open)
	}

	tokens := Lex(line[open:])
	end := MatchClose(tokens, 0)
	if end == NotFound {
		return NotFound
	}
	return open + tokens[end].Offset
}

// findQuoteEnd returns the first unescaped quote after line[open].
func findQuoteEnd(line string, open int) int {
	for i := open + 1; i < len(line); i += 2 {
		offset := shapetokenizer.FindEscapeOrQuote([]byte(line[i:]))
		if offset == -1 {
			return NotFound
		}
		i += offset
		if line[i] == Quote {
			return i
		}
		// escape: skip it and the escaped byte
	}
	return NotFound
}

// FindUnescaped returns the index of the first occurrence of sym in line that
// is not escaped, or NotFound.
func FindUnescaped(line string, sym byte) int {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case Escape:
			if sym == Escape {
				return i
			}
			i++
		case sym:
			return i
		}
	}
	return NotFound
}

// FindKeySeparator returns the index of the key separator at the top syntactic
// level of an expanded-mode line, or NotFound if the line is not a key line.
//
// A bare key ends at the first unescaped separator, provided no opener comes
// first. A quoted key ends at its closing quote and must be followed by the
// separator, optionally after whitespace. An item line never holds a key.
//
// Example:
//
//	FindKeySeparator(`name: Alice`)     // 4
//	FindKeySeparator(`"a:b" : 1`)       // 6
//	FindKeySeparator(`a\:b: 1`)         // 4
//	FindKeySeparator(`{"a":"1"}`)       // NotFound
//	FindKeySeparator(`- a: 1`)          // NotFound
func FindKeySeparator(line string) int {
	if ItemMarkerIndex(line) != NotFound {
		return NotFound
	}
	i := Indentation(line)

	if i < len(line) && line[i] == Quote {
		end := findQuoteEnd(line, i)
		if end == NotFound {
			return NotFound
		}
		j := end + 1
		for j < len(line) && IsWhitespace(line[j]) {
			j++
		}
		if j < len(line) && line[j] == KeySeparator {
			return j
		}
		return NotFound
	}

	for ; i < len(line); i++ {
		c := line[i]
		switch {
		case c == Escape:
			i++
		case c == KeySeparator:
			return i
		case IsOpener(c):
			return NotFound
		}
	}
	return NotFound
}

// Unescape replaces every escape+byte pair with the literal byte.
// A lone escape at the end of text is kept as is.
func Unescape(text string) string {
	if strings.IndexByte(text, Escape) < 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == Escape && i+1 < len(text) {
			i++
			c = text[i]
		}
		b.WriteByte(c)
	}
	return b.String()
}

// TrimTrailing removes trailing whitespace that is not escaped.
func TrimTrailing(text string) string {
	end := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == Escape && i+1 < len(text) {
			i++
			end = i + 1
			continue
		}
		if !IsWhitespace(c) {
			end = i + 1
		}
	}
	return text[:end]
}

// Trim removes leading whitespace and unescaped trailing whitespace.
func Trim(text string) string {
	return TrimTrailing(text[Indentation(text):])
}

// IsBlank reports whether line holds nothing but whitespace.
func IsBlank(line string) bool {
	return Indentation(line) == len(line)
}

// HasEmptyLiteral reports whether the empty-value literal starts at line[i].
func HasEmptyLiteral(line string, i int) bool {
	return strings.HasPrefix(line[i:], EmptyLiteral)
}
