// Package parser implements recursive descent interpretation of BML documents.
//
// Every node kind has an interpreter with two modes: collapsed, for a node
// written on one line between its bracket pair, and expanded, for a node laid
// out over an indented block of lines. The context classifier decides which
// applies to each value. Parsing is fail-fast: the first failure aborts the
// document and is reported with its position in document coordinates.
package parser

import (
	"errors"
	"unicode/utf8"

	"github.com/shapestone/shape-bml/internal/tokenizer"
	"github.com/shapestone/shape-bml/pkg/element"
)

// Parser interprets a document that has already been split into lines.
// The lines are never modified, so a Parser may be run more than once.
type Parser struct {
	lines []string
}

// NewParser creates a parser over lines. Lines must not contain line terminators.
func NewParser(lines []string) *Parser {
	return &Parser{lines: lines}
}

// Parse interprets the whole document as one top-level mapping in expanded
// mode, without enclosing braces.
//
// Grammar:
//
//	Document = { Entry } ;
//	Entry    = Key ":" ( InlineValue | NEWLINE Block ) ;
//
// An empty document yields an empty mapping.
func (p *Parser) Parse() (*element.Mapping, error) {
	value, err := mappingInterpreter{}.expanded(newWindow(p.lines))
	if err != nil {
		return nil, p.finalize(err)
	}
	return value.(*element.Mapping), nil
}

// ParseValue interprets the first line as a single inline value: a collapsed
// mapping, sequence or scalar, the empty literal, or bare text.
func (p *Parser) ParseValue() (element.Element, error) {
	w := newWindow(p.lines)
	if w.len() == 0 || tokenizer.IsBlank(w.line(0)) {
		return nil, p.finalize(newError(MissingValue, 0, 0, "missing value"))
	}
	if err := singleLine(w); err != nil {
		return nil, p.finalize(err)
	}

	value, err := inlineValue(w.take(1))
	if err != nil {
		return nil, p.finalize(err)
	}
	return value, nil
}

// finalize converts a failure in document frame into its reported form:
// Char becomes a character count within the line and Offset is filled in.
func (p *Parser) finalize(err error) error {
	var fe *FormatError
	if !errors.As(err, &fe) {
		return err
	}

	out := *fe
	if out.Line < 0 || out.Line >= len(p.lines) {
		return &out
	}

	line := p.lines[out.Line]
	byteCol := out.Char
	if byteCol > len(line) {
		byteCol = len(line)
	}

	offset := 0
	for _, l := range p.lines[:out.Line] {
		offset += len(l) + 1
	}
	out.Offset = offset + byteCol
	out.Char = utf8.RuneCountInString(line[:byteCol])
	return &out
}
