package parser

import (
	"github.com/shapestone/shape-bml/internal/tokenizer"
	"github.com/shapestone/shape-bml/pkg/element"
)

// classify interprets the value that starts on line 0 of w, the text left
// after a key or item marker. indent is the indentation of the line that owns
// the value.
//
// Text on line 0 is an inline value. A blank line 0 means the value is the
// block of deeper-indented lines below it; the block holds a sequence, a
// mapping, or a single inline value on a line of its own.
//
// Returns the value and the number of lines consumed after line 0.
func classify(w window, indent int) (element.Element, int, error) {
	head := w.line(0)
	if !tokenizer.IsBlank(head) {
		value, err := inlineValue(w.take(1))
		return value, 0, err
	}

	end := w.blockEnd(indent)
	if end == 0 {
		return nil, 0, newError(MissingValue, 0, len(head), "missing value")
	}

	value, err := blockValue(w.from(1).take(end))
	if err != nil {
		return nil, 0, reframe(err, 1, 0)
	}
	return value, end, nil
}

// inlineValue interprets the text of line 0 as a single value: a collapsed
// node, the empty literal, or a bare scalar.
func inlineValue(w window) (element.Element, error) {
	head := w.line(0)
	lead := tokenizer.Indentation(head)
	text := tokenizer.TrimTrailing(head[lead:])

	switch c := text[0]; {
	case tokenizer.IsOpener(c):
		value, err := dispatchFor(c).collapsed(text)
		if err != nil {
			return nil, reframe(err, 0, lead)
		}
		return value, nil
	case text == tokenizer.EmptyLiteral:
		return emptyInterpreter{}.expanded(w)
	default:
		return scalarInterpreter{}.expanded(w)
	}
}

// blockValue interprets a nested block by the shape of its first content line.
func blockValue(w window) (element.Element, error) {
	first := 0
	for tokenizer.IsBlank(w.line(first)) {
		first++
	}
	line := w.line(first)

	switch {
	case tokenizer.IsItemLine(line):
		return sequenceInterpreter{}.expanded(w)
	case tokenizer.IsKeyLine(line):
		return mappingInterpreter{}.expanded(w)
	}

	if err := singleLine(w.from(first)); err != nil {
		return nil, err.reframe(first, 0)
	}
	value, err := inlineValue(w.from(first).take(1))
	if err != nil {
		return nil, reframe(err, first, 0)
	}
	return value, nil
}
