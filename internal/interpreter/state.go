package interpreter

import (
	"github.com/labelworks/zplraster/internal/label"
	"github.com/labelworks/zplraster/internal/parser"
)

// originMode tracks whether the active cursor command was ^FO (Top) or ^FT
// (Bottom), which changes how an element's y-coordinate is resolved
// (spec.md §3 invariant 5, §4.2).
type originMode int

const (
	originTop originMode = iota
	originBottom
)

// state is the interpreter's single mutable working state. It is reset to
// its zero-ish default on every FieldSeparator except that the font
// descriptor survives (spec.md §4.2, §9: "preserve font only").
type state struct {
	cursorX, cursorY int
	origin           originMode
	font             label.Font
	justification    label.Justification
	reverse          bool
	symbology        *parser.Symbology
	barcodeDefaults  barcodeDefaults
	fieldBlock       *label.FieldBlock
	hexChar          byte
}

type barcodeDefaults struct {
	set         bool
	moduleWidth int
	ratio       float64
	height      int
}

func newState() *state {
	return &state{
		font: label.Font{Name: 'A', Height: 9, Width: 5},
	}
}

// resetField clears every per-field setting on FieldSeparator, preserving
// only the font descriptor (spec.md §4.2 invariant 2, §9 open question
// resolution).
func (s *state) resetField() {
	font := s.font
	*s = state{font: font}
}
