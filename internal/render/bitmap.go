package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/labelworks/zplraster/internal/label"
)

// drawBitmap blits a decoded (or barcode-encoded) monochrome bitmap at
// (x, y): a black source masked so payload==1 is opaque and payload==0 is
// transparent, composited with draw.Over (spec.md §4.5).
func drawBitmap(dst draw.Image, bitmap label.Bitmap, x, y int) {
	if bitmap.Width == 0 || bitmap.Height == 0 {
		return
	}
	mask := image.NewAlpha(image.Rect(0, 0, bitmap.Width, bitmap.Height))
	for i, p := range bitmap.Pixels {
		if p != 0 {
			mask.Pix[i] = 0xff
		}
	}
	black := image.NewUniform(color.Black)
	dr := image.Rect(x, y, x+bitmap.Width, y+bitmap.Height)
	draw.DrawMask(dst, dr, black, image.Point{}, mask, image.Point{}, draw.Over)
}
