package render

import (
	"image"
	"image/color"
)

// applyReverse implements the field-reversal compositing rule of spec.md
// §4.5 (resolved precisely by original_source's mask algorithm): for every
// pixel in scratch that is pure black, toggle the corresponding pixel in
// dst between black and white. Every other scratch pixel — including
// untouched background — is left alone.
func applyReverse(dst *image.RGBA, scratch *image.RGBA) {
	bounds := scratch.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if !isPureBlack(scratch.At(x, y)) {
				continue
			}
			if isWhite(dst.At(x, y)) {
				dst.Set(x, y, color.Black)
			} else {
				dst.Set(x, y, color.White)
			}
		}
	}
}

func isPureBlack(c color.Color) bool {
	r, g, b, a := c.RGBA()
	return r == 0 && g == 0 && b == 0 && a == 0xffff
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}
