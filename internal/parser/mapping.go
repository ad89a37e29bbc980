package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/shapestone/shape-bml/internal/tokenizer"
	"github.com/shapestone/shape-bml/pkg/element"
)

// mappingInterpreter builds ordered key/value mappings.
type mappingInterpreter struct{}

// collapsed parses a flow mapping.
//
// Grammar:
//
//	Mapping = "{" [ Entry { "," Entry } ] "}" ;
//	Entry   = Scalar ":" Value ;
//	Value   = Scalar | Mapping | Sequence | "~" ;
//
// Whitespace between tokens is ignored.
//
// Example:
//
//	{"name": "Alice", "tags": ["a", "b"], "spouse": ~}
func (mappingInterpreter) collapsed(text string) (element.Element, error) {
	text = tokenizer.TrimTrailing(text)
	tokens, ferr := checkNode(text)
	if ferr != nil {
		return nil, ferr
	}

	var (
		b             = element.NewMappingBuilder()
		key           element.Scalar
		keyAt         int
		hasKey        bool // a key is waiting for its value
		awaitingValue bool // the key separator has been seen
		readyForEntry = true
	)

	add := func(value element.Element) error {
		if err := b.Add(key, value); err != nil {
			return newError(DuplicateKey, 0, keyAt, "duplicate key %q", key.Text())
		}
		hasKey, awaitingValue, readyForEntry = false, false, false
		return nil
	}

	last := len(tokens) - 1
	for k := 1; k < last; k++ {
		tok := tokens[k]
		i := tok.Offset

		switch tok.Kind {
		case tokenizer.TokenSpace:
			continue

		case tokenizer.TokenMapOpen, tokenizer.TokenSeqOpen, tokenizer.TokenQuoted, tokenizer.TokenUnterminated:
			c := tok.Text[0]
			if !readyForEntry {
				return nil, newError(MissingSeparator, 0, i, "missing %q before entry", tokenizer.ItemSeparator)
			}
			if !hasKey && c != tokenizer.Quote {
				return nil, newError(InvalidKeyType, 0, i, "key must be a scalar, found %q", c)
			}
			if hasKey && !awaitingValue {
				return nil, newError(MissingSeparator, 0, i, "missing %q after key %q", tokenizer.KeySeparator, key.Text())
			}

			value, end, err := nested(text, tokens, k)
			if err != nil {
				return nil, err
			}
			if !hasKey {
				key, keyAt, hasKey = value.(element.Scalar), i, true
			} else if err := add(value); err != nil {
				return nil, err
			}
			k = end

		case tokenizer.TokenEmpty:
			if !readyForEntry {
				return nil, newError(MissingSeparator, 0, i, "missing %q before entry", tokenizer.ItemSeparator)
			}
			if !hasKey {
				return nil, newError(InvalidKeyType, 0, i, "key cannot be %q", tokenizer.EmptyLiteral)
			}
			if !awaitingValue {
				return nil, newError(MissingSeparator, 0, i, "missing %q after key %q", tokenizer.KeySeparator, key.Text())
			}
			if err := add(element.EmptyValue); err != nil {
				return nil, err
			}

		case tokenizer.TokenItemSeparator:
			if awaitingValue {
				return nil, newError(MissingValue, 0, i, "key %q has no value", key.Text())
			}
			if readyForEntry {
				return nil, newError(UnnecessarySeparator, 0, i, "unnecessary %q", tokenizer.ItemSeparator)
			}
			readyForEntry = true

		case tokenizer.TokenKeySeparator:
			if awaitingValue {
				return nil, newError(UnnecessarySeparator, 0, i, "unnecessary %q", tokenizer.KeySeparator)
			}
			if !hasKey {
				return nil, newError(MissingKey, 0, i, "missing key before %q", tokenizer.KeySeparator)
			}
			awaitingValue = true

		default:
			r, _ := utf8.DecodeRuneInString(tok.Text)
			return nil, newError(UnknownCharacter, 0, i, "unknown character %q", r)
		}
	}

	end := len(text) - 1
	if hasKey {
		return nil, newError(MissingValue, 0, end, "key %q has no value", key.Text())
	}
	if b.Len() > 0 && readyForEntry {
		return nil, newError(UnnecessarySeparator, 0, end, "unnecessary trailing %q", tokenizer.ItemSeparator)
	}
	return b.Build(), nil
}

// expanded parses a block mapping: one "key: value" entry per key line, all
// at the same indentation. A value either follows the key on the same line or
// occupies the more deeply indented lines below it.
//
// Example:
//
//	name: Alice
//	address:
//	  city: Paris
//	tags: ["a", "b"]
func (mappingInterpreter) expanded(w window) (element.Element, error) {
	b := element.NewMappingBuilder()
	indent := -1

	for i := 0; i < w.len(); i++ {
		line := w.line(i)
		if tokenizer.IsBlank(line) {
			continue
		}

		at := tokenizer.Indentation(line)
		sep := tokenizer.FindKeySeparator(line)
		if sep == tokenizer.NotFound {
			return nil, newError(InvalidLine, i, at, "expected a \"key%c value\" entry", tokenizer.KeySeparator)
		}
		if indent < 0 {
			indent = w.indentation(i)
		} else if w.indentation(i) != indent {
			return nil, newError(InvalidLine, i, at, "entry is indented by %d, expected %d", w.indentation(i), indent)
		}

		key, err := keyOf(line, at, sep)
		if err != nil {
			return nil, err.reframe(i, 0)
		}

		value, consumed, verr := classify(w.strip(i, sep+1), indent)
		if verr != nil {
			return nil, reframe(verr, i, sep+1)
		}
		if err := b.Add(key, value); err != nil {
			return nil, newError(DuplicateKey, i, at, "duplicate key %q", key.Text())
		}
		i += consumed
	}

	return b.Build(), nil
}

// keyOf extracts the key of a key line whose separator is at sep.
// Positions in the returned error are relative to line.
func keyOf(line string, at, sep int) (element.Scalar, *FormatError) {
	var key string
	if line[at] == tokenizer.Quote {
		end := tokenizer.FindMatchingEnd(line, at)
		key = tokenizer.Unescape(line[at+1 : end])
	} else {
		key = tokenizer.Unescape(tokenizer.Trim(line[:sep]))
	}

	if strings.TrimSpace(key) == "" {
		return element.Scalar{}, newError(EmptyKey, 0, at, "key cannot be empty")
	}
	return element.NewScalar(key), nil
}
