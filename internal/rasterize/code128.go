package rasterize

import (
	"fmt"
	"math"

	"github.com/boombuler/barcode/code128"
	"github.com/labelworks/zplraster/internal/label"
)

// code128Modules implements the module-count formula of spec.md §4.3:
// start (11) + one block per character (11 each) + checksum (11) + stop
// pattern (13) + quiet zones (20).
func code128Modules(text string) int {
	return 11 + 11*len([]rune(text)) + 11 + 13 + 20
}

func generateCode128(req Request) (label.BarcodeContent, error) {
	bc, err := code128.Encode(req.Content)
	if err != nil {
		return label.BarcodeContent{}, fmt.Errorf("rasterize: encode code128: %w", err)
	}

	cfg := resolveConfig(req)

	moduleWidth := req.ModuleWidth
	if moduleWidth <= 0 {
		moduleWidth = 2
	}
	height := req.Height
	if height <= 0 {
		height = cfg.DefaultBarHeight
	}

	modules := code128Modules(req.Content)
	width := int(math.Round(float64(modules) * float64(moduleWidth) * 1.0))

	bitmap, err := scaleToBitmap(bc, width, height)
	if err != nil {
		return label.BarcodeContent{}, fmt.Errorf("rasterize: scale code128: %w", err)
	}

	fontWidth := 0.0
	if n := len([]rune(req.Content)); n > 0 {
		fontWidth = float64(bitmap.Width/n) * cfg.Code128TextOffset
	}

	content := label.BarcodeContent{
		Symbol:    bitmap,
		FontWidth: fontWidth,
	}
	if req.ShowText {
		content.Texts = []label.TextElement{
			{
				OffsetX:       float64(bitmap.Width) / 2,
				OffsetY:       fontWidth * 0.2,
				Text:          req.Content,
				Justification: label.JustifyAuto,
			},
		}
	}
	return content, nil
}
