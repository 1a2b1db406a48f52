package render

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// FontError reports an unknown ZPL font name or a font blob that does not
// parse as TrueType/OpenType (spec.md §4.5, §7 — fatal at render time).
type FontError struct {
	Name byte
	Err  error
}

func (e *FontError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("render: font %q: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("render: unknown font %q", e.Name)
}

func (e *FontError) Unwrap() error { return e.Err }

// fontEntry is a parsed font blob plus its per-font horizontal scale
// constant (spec.md §4.5: "rasterizer font, scale multiplier").
type fontEntry struct {
	face  *truetype.Font
	scale float64
}

// FontSet maps a ZPL font name character ('0', 'A', ';', …) to the font
// blob and scale the renderer uses for it.
type FontSet struct {
	entries map[byte]fontEntry
}

// NewFontSet returns an empty set. Add fonts with Add before calling Render.
func NewFontSet() FontSet {
	return FontSet{entries: make(map[byte]fontEntry)}
}

// Add parses data as TrueType/OpenType and registers it under name.
func (fs FontSet) Add(name byte, data []byte, scale float64) error {
	f, err := truetype.Parse(data)
	if err != nil {
		return &FontError{Name: name, Err: err}
	}
	fs.entries[name] = fontEntry{face: f, scale: scale}
	return nil
}

func (fs FontSet) lookup(name byte) (fontEntry, bool) {
	e, ok := fs.entries[name]
	return e, ok
}

// DefaultFontSet registers the bundled gofont/goregular face under every
// font name spec.md §4.5 names as typical ('0' bold sans, 'A' monospace,
// ';' OCR-B) so the renderer and its tests run without a caller-supplied
// font. Callers rendering real labels should override with Add.
func DefaultFontSet() FontSet {
	fs := NewFontSet()
	for _, name := range []byte{'0', 'A', ';'} {
		_ = fs.Add(name, goregular.TTF, 1.0)
	}
	return fs
}
