package zplraster

import (
	"fmt"

	"github.com/labelworks/zplraster/internal/parser"
	"github.com/labelworks/zplraster/internal/render"
)

// ErrorKind classifies a ParseError (spec.md §6, §7).
type ErrorKind int

const (
	InvalidSyntax ErrorKind = iota
	IncompleteInput
	MissingCommand
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidSyntax:
		return "InvalidSyntax"
	case IncompleteInput:
		return "IncompleteInput"
	case MissingCommand:
		return "MissingCommand"
	default:
		return "Unknown"
	}
}

// ParseError is returned when the input cannot be decoded into a command
// sequence at all: malformed envelope, an unrecognized opcode inside an
// envelope, or a malformed numeric argument (spec.md §7, fatal).
type ParseError struct {
	Kind    ErrorKind
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("zplraster: parse: %s: %s", e.Kind, e.Message)
}

func fromParserError(err error) error {
	pe, ok := err.(*parser.Error)
	if !ok {
		return err
	}
	var kind ErrorKind
	switch pe.Kind {
	case parser.InvalidSyntax:
		kind = InvalidSyntax
	case parser.IncompleteInput:
		kind = IncompleteInput
	case parser.MissingCommand:
		kind = MissingCommand
	}
	return &ParseError{Kind: kind, Message: pe.Message}
}

// InterpretError wraps a failure inside the (ordinarily pure and total)
// interpretation pass.
type InterpretError struct {
	Err error
}

func (e *InterpretError) Error() string { return fmt.Sprintf("zplraster: interpret: %v", e.Err) }
func (e *InterpretError) Unwrap() error { return e.Err }

// RenderError wraps a failure in the rasterization pass: an unknown font
// name (render.FontError), the one render-time failure spec.md §7 treats as
// fatal, or, from RenderPNG, a PNG encoding failure.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string { return fmt.Sprintf("zplraster: render: %v", e.Err) }
func (e *RenderError) Unwrap() error { return e.Err }

// FontError re-exports render.FontError so callers can type-assert against
// it without importing an internal package.
type FontError = render.FontError
