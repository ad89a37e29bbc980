package parser

import (
	"fmt"

	"github.com/shapestone/shape-bml/internal/tokenizer"
	"github.com/shapestone/shape-bml/pkg/element"
)

// interpreter builds one kind of element in either notation.
//
// collapsed receives the node text of a single line, from its opening symbol
// through its closing symbol. expanded receives a line window. Errors are
// positioned relative to the input they were given.
type interpreter interface {
	collapsed(text string) (element.Element, error)
	expanded(w window) (element.Element, error)
}

// dispatch maps each opening symbol to the interpreter of its node kind.
var dispatch = map[byte]interpreter{
	tokenizer.MapOpen: mappingInterpreter{},
	tokenizer.SeqOpen: sequenceInterpreter{},
	tokenizer.Quote:   scalarInterpreter{},
}

// dispatchFor returns the interpreter for an opening symbol.
// Callers check tokenizer.IsOpener first.
func dispatchFor(sym byte) interpreter {
	in, ok := dispatch[sym]
	if !ok {
		panic(fmt.Sprintf("parser: no interpreter for symbol %q", sym))
	}
	return in
}

// checkNode lexes text and verifies that it is exactly one collapsed node:
// the token at index 0 must be closed by the last token.
func checkNode(text string) ([]tokenizer.Token, *FormatError) {
	tokens := tokenizer.Lex(text)
	end := tokenizer.MatchClose(tokens, 0)
	if end == tokenizer.NotFound {
		return nil, newError(UnterminatedBracket, 0, 0, "%q is not closed", text[0])
	}
	if end != len(tokens)-1 {
		return nil, newError(InvalidLine, 0, 0, "unexpected text after the closing %q", tokens[end].Text[len(tokens[end].Text)-1])
	}
	return tokens, nil
}

// nested interprets the node opened by tokens[open] and returns it with the
// index of its closing token. Errors are positioned relative to text.
func nested(text string, tokens []tokenizer.Token, open int) (element.Element, int, error) {
	tok := tokens[open]
	end := tokenizer.MatchClose(tokens, open)
	if end == tokenizer.NotFound {
		return nil, 0, newError(UnterminatedBracket, 0, tok.Offset, "%q is not closed", tok.Text[0])
	}
	value, err := dispatchFor(tok.Text[0]).collapsed(text[tok.Offset:tokens[end].End()])
	if err != nil {
		return nil, 0, reframe(err, 0, tok.Offset)
	}
	return value, end, nil
}

// singleLine fails if any line after the first holds content.
func singleLine(w window) *FormatError {
	for i := 1; i < w.len(); i++ {
		line := w.line(i)
		if !tokenizer.IsBlank(line) {
			return newError(InvalidLine, i, tokenizer.Indentation(line), "value does not continue on following lines")
		}
	}
	return nil
}

// scalarInterpreter builds text values.
type scalarInterpreter struct{}

// collapsed unescapes the text between the quotes.
func (scalarInterpreter) collapsed(text string) (element.Element, error) {
	text = tokenizer.TrimTrailing(text)
	if _, err := checkNode(text); err != nil {
		return nil, err
	}
	return element.NewScalar(tokenizer.Unescape(text[1 : len(text)-1])), nil
}

// expanded returns the unescaped, trimmed first line. Scalars have no
// multi-line form.
func (scalarInterpreter) expanded(w window) (element.Element, error) {
	if err := singleLine(w); err != nil {
		return nil, err
	}
	return element.NewScalar(tokenizer.Unescape(tokenizer.Trim(w.line(0)))), nil
}

// emptyInterpreter recognizes the empty-value literal.
type emptyInterpreter struct{}

func (emptyInterpreter) collapsed(text string) (element.Element, error) {
	lead := tokenizer.Indentation(text)
	if tokenizer.TrimTrailing(text[lead:]) != tokenizer.EmptyLiteral {
		return nil, newError(UnknownCharacter, 0, lead, "expected %q", tokenizer.EmptyLiteral)
	}
	return element.EmptyValue, nil
}

func (e emptyInterpreter) expanded(w window) (element.Element, error) {
	if err := singleLine(w); err != nil {
		return nil, err
	}
	return e.collapsed(w.line(0))
}
