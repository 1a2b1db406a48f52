package rasterize

import (
	"fmt"
	"math"
	"strings"

	"github.com/boombuler/barcode/ean13"
	"github.com/labelworks/zplraster/internal/label"
)

// ean13Digits normalizes req.Content to exactly 12 digits: non-digit runes
// are dropped, a short string is left-padded with zeros, a long one is
// truncated. The 13th (check) digit is computed separately.
func ean13Digits(content string) string {
	var b strings.Builder
	for _, r := range content {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) > 12 {
		digits = digits[:12]
	}
	for len(digits) < 12 {
		digits = "0" + digits
	}
	return digits
}

// ean13CheckDigit implements the standard mod-10 EAN-13 checksum: digits at
// odd positions (1-indexed from the left) weigh 1, even positions weigh 3.
func ean13CheckDigit(digits string) byte {
	sum := 0
	for i, r := range digits {
		d := int(r - '0')
		if i%2 == 0 {
			sum += d
		} else {
			sum += d * 3
		}
	}
	return byte('0' + (10-sum%10)%10)
}

func generateEan13(req Request) (label.BarcodeContent, error) {
	digits := ean13Digits(req.Content)
	full := digits + string(ean13CheckDigit(digits))

	bc, err := ean13.Encode(full)
	if err != nil {
		return label.BarcodeContent{}, fmt.Errorf("rasterize: encode ean13: %w", err)
	}

	cfg := resolveConfig(req)
	ean13FontWidth := cfg.Ean13FontWidth

	moduleWidth := req.ModuleWidth
	if moduleWidth <= 0 {
		moduleWidth = 2
	}
	height := req.Height
	if height <= 0 {
		height = cfg.DefaultBarHeight
	}

	const modules = 95 + 22
	width := int(math.Round(float64(modules) * float64(moduleWidth) * 5.0 / 6.0))

	bitmap, err := scaleToBitmap(bc, width, height)
	if err != nil {
		return label.BarcodeContent{}, fmt.Errorf("rasterize: scale ean13: %w", err)
	}

	content := label.BarcodeContent{
		Symbol:    bitmap,
		FontWidth: ean13FontWidth,
	}
	if req.ShowText {
		yOffset := -ean13FontWidth * 1.1
		content.Texts = []label.TextElement{
			{
				OffsetX:       -ean13FontWidth,
				OffsetY:       yOffset,
				Text:          full[0:1],
				Justification: label.JustifyLeft,
			},
			{
				OffsetX:       float64(bitmap.Width) * 0.27,
				OffsetY:       yOffset,
				Text:          full[1:7],
				Justification: label.JustifyAuto,
			},
			{
				OffsetX:       float64(bitmap.Width) * 0.73,
				OffsetY:       yOffset,
				Text:          full[7:13],
				Justification: label.JustifyAuto,
			},
		}
	}
	return content, nil
}
