// Package rasterize implements the barcode engine: encoding a content string
// into a symbology-specific bit matrix with correct module counts, plus the
// human-readable text sub-elements that accompany it (spec.md §4.3).
package rasterize

import (
	"github.com/labelworks/zplraster/internal/label"
	"github.com/labelworks/zplraster/internal/zconfig"
)

// SymbologyKind selects which encoder Generate dispatches to.
type SymbologyKind int

const (
	Code128 SymbologyKind = iota
	Ean13
)

// Code128Mode mirrors parser.Code128Mode without coupling this package to
// the parser package.
type Code128Mode int

const (
	Code128ModeNormal Code128Mode = iota
	Code128ModeUCC
	Code128ModeAuto
	Code128ModeEan
)

// Request describes a single barcode field to encode: the resolved
// symbology plus the ^BY defaults in effect when the field was committed.
type Request struct {
	Kind SymbologyKind

	Content string

	// ModuleWidth is the ^BY narrow-bar width in dots (default 2).
	ModuleWidth int
	// Height is the symbol height in dots; 0 means "use the default of 10".
	Height int

	ShowText   bool
	TextAbove  bool // not read by the encoders; text is placed below
	CheckDigit bool // Code128 only
	Mode       Code128Mode

	// Config supplies the tunable constants of SPEC_FULL.md §4.8 (text
	// offset multipliers, default height, font scale table). Nil selects
	// the documented defaults.
	Config *zconfig.Rendering
}

// resolveConfig returns req.Config, or the documented defaults when unset.
// zconfig.Load(nil) never errors since it only applies the default overlay.
func resolveConfig(req Request) zconfig.Rendering {
	if req.Config != nil {
		return *req.Config
	}
	cfg, _ := zconfig.Load(nil)
	return cfg
}

// Generate produces a BarcodeContent for req, or an error if the underlying
// symbol encoder refuses the input (e.g. Code128 character-set overflow).
// Callers treat a non-nil error as a cue to fall back to rendering the field
// as plain text (spec.md §4.2, §7).
func Generate(req Request) (label.BarcodeContent, error) {
	switch req.Kind {
	case Code128:
		return generateCode128(req)
	case Ean13:
		return generateEan13(req)
	default:
		return label.BarcodeContent{}, errUnsupportedSymbology
	}
}
