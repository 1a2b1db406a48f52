package zplraster

import "github.com/labelworks/zplraster/internal/render"

// FontSet maps a ZPL font name character ('0', 'A', ';', …) to the
// TrueType/OpenType blob and render-scale constant the renderer uses for it
// (spec.md §4.5, §6 "Font contract").
type FontSet = render.FontSet

// NewFontSet returns an empty FontSet. Populate it with Add before
// rendering any label that uses a font name beyond the default set.
func NewFontSet() FontSet { return render.NewFontSet() }

// DefaultFonts returns a FontSet with the bundled gofont/goregular face
// registered under the font names spec.md §4.5 lists as typical ('0', 'A',
// ';'). It lets the package — and its own tests — render without the
// caller supplying real printer font blobs.
func DefaultFonts() FontSet { return render.DefaultFontSet() }
