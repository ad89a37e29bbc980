package parser

import (
	"errors"
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// ErrInvalidFormat is the kind shared by every syntax failure.
// Use errors.Is(err, ErrInvalidFormat) to tell syntax errors from I/O errors.
var ErrInvalidFormat = errors.New("invalid format")

// Reason is the sub-reason of an invalid format failure.
type Reason int

const (
	MissingSeparator Reason = iota + 1
	UnnecessarySeparator
	MissingKey
	MissingValue
	InvalidKeyType
	DuplicateKey
	EmptyKey
	UnterminatedBracket
	UnknownCharacter
	InvalidLine
)

// String returns the reason name.
func (r Reason) String() string {
	switch r {
	case MissingSeparator:
		return "MissingSeparator"
	case UnnecessarySeparator:
		return "UnnecessarySeparator"
	case MissingKey:
		return "MissingKey"
	case MissingValue:
		return "MissingValue"
	case InvalidKeyType:
		return "InvalidKeyType"
	case DuplicateKey:
		return "DuplicateKey"
	case EmptyKey:
		return "EmptyKey"
	case UnterminatedBracket:
		return "UnterminatedBracket"
	case UnknownCharacter:
		return "UnknownCharacter"
	case InvalidLine:
		return "InvalidLine"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// FormatError is a positioned syntax failure.
//
// Line and Char are zero-based. While the error travels up through nested
// interpreters they are relative to the line window that produced it; the
// root interpreter turns them into document coordinates, with Char counted in
// characters of the line, and fills in Offset.
type FormatError struct {
	Reason  Reason
	Line    int
	Char    int
	Offset  int // byte offset in the document, set by the root interpreter
	Message string
}

func newError(reason Reason, line, char int, format string, args ...interface{}) *FormatError {
	return &FormatError{
		Reason:  reason,
		Line:    line,
		Char:    char,
		Message: fmt.Sprintf(format, args...),
	}
}

// Error implements error.
func (e *FormatError) Error() string {
	return fmt.Sprintf("%s at line %d, char %d: %s (%s)", ErrInvalidFormat, e.Line, e.Char, e.Message, e.Reason)
}

// Unwrap returns ErrInvalidFormat.
func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}

// Position returns the document position of the failure (1-based line and column).
func (e *FormatError) Position() ast.Position {
	return ast.NewPosition(e.Offset, e.Line+1, e.Char+1)
}

// reframe translates a failure from a nested frame into the caller's frame.
//
// The nested frame starts at line lineOffset of the caller's frame, and its
// line 0 starts at charOffset within that caller line. Lines after the first
// are whole lines in both frames, so only failures on line 0 move sideways.
func (e *FormatError) reframe(lineOffset, charOffset int) *FormatError {
	out := *e
	if out.Line == 0 {
		out.Char += charOffset
	}
	out.Line += lineOffset
	return &out
}

// reframe applies FormatError.reframe to err when it is a *FormatError.
// Any other error is returned unchanged.
func reframe(err error, lineOffset, charOffset int) error {
	var fe *FormatError
	if errors.As(err, &fe) {
		return fe.reframe(lineOffset, charOffset)
	}
	return err
}
