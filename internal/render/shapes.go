package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/labelworks/zplraster/internal/label"
)

func colorFor(c label.Color) color.Color {
	if c == label.ColorWhite {
		return color.White
	}
	return color.Black
}

// drawRectangle strokes a GraphicBox per spec.md §4.5: a centered stroke of
// width thickness, inset by thickness/2 from the box edges, paints ink
// across the full thickness measured inward from the outer edge
// (original_source/zpl-renderer's rectangle.rs). When thickness covers at
// least min(width,height) (invariant 6) the box is simply filled.
func drawRectangle(dst draw.Image, el label.Element) {
	w, h, t := el.Width, el.Height, el.Thickness
	if t < 1 {
		t = 1
	}
	fg := colorFor(el.Color)
	outer := image.Rect(el.X, el.Y, el.X+w, el.Y+h)

	minDim := w
	if h < minDim {
		minDim = h
	}
	if t >= minDim {
		fillRect(dst, outer, fg)
		return
	}

	// Four bands of width t along the edges; the interior is left untouched.
	fillRect(dst, image.Rect(el.X, el.Y, el.X+w, el.Y+t), fg)
	fillRect(dst, image.Rect(el.X, el.Y+h-t, el.X+w, el.Y+h), fg)
	fillRect(dst, image.Rect(el.X, el.Y+t, el.X+t, el.Y+h-t), fg)
	fillRect(dst, image.Rect(el.X+w-t, el.Y+t, el.X+w, el.Y+h-t), fg)
}

func fillRect(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r.Intersect(dst.Bounds()), &image.Uniform{C: c}, image.Point{}, draw.Src)
}
