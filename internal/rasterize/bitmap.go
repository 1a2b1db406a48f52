package rasterize

import (
	"image"
	"image/color"

	"github.com/boombuler/barcode"
	"github.com/labelworks/zplraster/internal/label"
)

// scaleToBitmap resizes an encoded barcode.Barcode to (width, height) dots
// using the boombuler/barcode scaler, then samples it into a monochrome
// label.Bitmap (one byte per pixel, 0 = white, 1 = black), the same
// convention used throughout this module for decoded ^GF images.
func scaleToBitmap(bc barcode.Barcode, width, height int) (label.Bitmap, error) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	scaled, err := barcode.Scale(bc, width, height)
	if err != nil {
		return label.Bitmap{}, err
	}
	return imageToBitmap(scaled), nil
}

func imageToBitmap(img image.Image) label.Bitmap {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
			if g.Y < 128 {
				pixels[y*w+x] = 1
			}
		}
	}
	return label.Bitmap{Width: w, Height: h, Pixels: pixels}
}
