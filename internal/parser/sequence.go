package parser

import (
	"unicode/utf8"

	"github.com/shapestone/shape-bml/internal/tokenizer"
	"github.com/shapestone/shape-bml/pkg/element"
)

// sequenceInterpreter builds ordered item lists.
type sequenceInterpreter struct{}

// collapsed parses a flow sequence.
//
// Grammar:
//
//	Sequence = "[" [ Value { "," Value } ] "]" ;
//
// Example:
//
//	["a", ["b", "c"], {"d": "e"}, ~]
func (sequenceInterpreter) collapsed(text string) (element.Element, error) {
	text = tokenizer.TrimTrailing(text)
	tokens, ferr := checkNode(text)
	if ferr != nil {
		return nil, ferr
	}

	var items []element.Element
	readyForEntry := true

	last := len(tokens) - 1
	for k := 1; k < last; k++ {
		tok := tokens[k]
		i := tok.Offset

		switch tok.Kind {
		case tokenizer.TokenSpace:
			continue

		case tokenizer.TokenMapOpen, tokenizer.TokenSeqOpen, tokenizer.TokenQuoted, tokenizer.TokenUnterminated:
			if !readyForEntry {
				return nil, newError(MissingSeparator, 0, i, "missing %q before item", tokenizer.ItemSeparator)
			}
			value, end, err := nested(text, tokens, k)
			if err != nil {
				return nil, err
			}
			items = append(items, value)
			readyForEntry = false
			k = end

		case tokenizer.TokenEmpty:
			if !readyForEntry {
				return nil, newError(MissingSeparator, 0, i, "missing %q before item", tokenizer.ItemSeparator)
			}
			items = append(items, element.EmptyValue)
			readyForEntry = false

		case tokenizer.TokenItemSeparator:
			if readyForEntry {
				return nil, newError(UnnecessarySeparator, 0, i, "unnecessary %q", tokenizer.ItemSeparator)
			}
			readyForEntry = true

		default:
			r, _ := utf8.DecodeRuneInString(tok.Text)
			return nil, newError(UnknownCharacter, 0, i, "unknown character %q", r)
		}
	}

	if len(items) > 0 && readyForEntry {
		return nil, newError(UnnecessarySeparator, 0, len(text)-1, "unnecessary trailing %q", tokenizer.ItemSeparator)
	}
	return element.NewSequence(items...), nil
}

// expanded parses a block sequence: one "- value" item per marker line, all
// markers at the same indentation. An item whose text is itself a key line
// starts a mapping that continues on the lines indented past the marker.
//
// Example:
//
//	- apple
//	- ["b", "c"]
//	-
//	  nested: block
//	- name: Alice
//	  age: "30"
func (sequenceInterpreter) expanded(w window) (element.Element, error) {
	var items []element.Element
	indent := -1

	for i := 0; i < w.len(); i++ {
		line := w.line(i)
		if tokenizer.IsBlank(line) {
			continue
		}

		marker := tokenizer.ItemMarkerIndex(line)
		if marker == tokenizer.NotFound {
			return nil, newError(InvalidLine, i, tokenizer.Indentation(line), "expected a %q item", tokenizer.ItemMarker)
		}
		if indent < 0 {
			indent = w.indentation(i)
		} else if w.indentation(i) != indent {
			return nil, newError(InvalidLine, i, marker, "item is indented by %d, expected %d", w.indentation(i), indent)
		}

		item := w.strip(i, marker+1)
		var (
			value    element.Element
			consumed int
			err      error
		)
		if tokenizer.IsKeyLine(item.line(0)) {
			consumed = item.blockEnd(indent)
			value, err = mappingInterpreter{}.expanded(item.take(consumed + 1))
		} else {
			value, consumed, err = classify(item, indent)
		}
		if err != nil {
			return nil, reframe(err, i, marker+1)
		}

		items = append(items, value)
		i += consumed
	}

	return element.NewSequence(items...), nil
}
