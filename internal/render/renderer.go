// Package render rasterizes an interpreted label.Label into a pixmap: text
// glyphs, rectangle strokes, decoded bitmaps, and barcode symbols, with
// support for the field-reversal compositing rule (spec.md §4.5).
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"go.uber.org/zap"

	"github.com/labelworks/zplraster/internal/label"
)

// Error reports a failure that can only occur at render time: an unknown
// font name (spec.md §7 — fatal here, unlike the locally-recovered barcode
// and image failures earlier in the pipeline).
type Error struct {
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("render: %v", e.Err) }
func (e *Error) Unwrap() error { return e.Err }

// Render paints lbl onto a white (label.Width x label.Height) canvas,
// element by element in source order (later elements overdraw earlier
// ones), and returns the resulting image. logger may be nil.
func Render(lbl *label.Label, fonts FontSet, logger *zap.Logger) (image.Image, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	canvas := image.NewRGBA(image.Rect(0, 0, lbl.Width, lbl.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for _, el := range lbl.Elements {
		if err := renderOne(canvas, el, fonts); err != nil {
			return nil, &Error{Err: err}
		}
	}

	logger.Debug("render: done", zap.Int("elements", len(lbl.Elements)), zap.Int("width", lbl.Width), zap.Int("height", lbl.Height))
	return canvas, nil
}

// RenderPNG is a convenience wrapper exposing the pixmap as a PNG byte
// stream (spec.md §4.5, §6 — "Output: A PNG byte sequence").
func RenderPNG(lbl *label.Label, fonts FontSet, logger *zap.Logger) ([]byte, error) {
	img, err := Render(lbl, fonts, logger)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("render: encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func renderOne(canvas *image.RGBA, el label.Element, fonts FontSet) error {
	if el.Reversed {
		scratch := image.NewRGBA(canvas.Bounds())
		draw.Draw(scratch, scratch.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
		if err := paint(scratch, el, fonts); err != nil {
			return err
		}
		applyReverse(canvas, scratch)
		return nil
	}
	return paint(canvas, el, fonts)
}

func paint(dst draw.Image, el label.Element, fonts FontSet) error {
	switch el.Kind {
	case label.KindText:
		return drawText(dst, el, fonts)
	case label.KindRectangle:
		drawRectangle(dst, el)
		return nil
	case label.KindImage:
		drawBitmap(dst, el.Bitmap, el.X, el.Y)
		return nil
	case label.KindBarcode:
		drawBitmap(dst, el.Barcode.Symbol, el.X, el.Y)
		return drawBarcodeText(dst, el, fonts)
	default:
		return nil
	}
}

// drawBarcodeText paints the human-readable text sub-elements a barcode
// carries, offset horizontally from the symbol's left edge and vertically
// from its bottom edge (spec.md §4.3). It uses the ';' OCR-B slot of fonts, falling back to '0' if the
// caller registered no dedicated barcode font.
func drawBarcodeText(dst draw.Image, el label.Element, fonts FontSet) error {
	if len(el.Barcode.Texts) == 0 {
		return nil
	}
	fontName := byte(';')
	if _, ok := fonts.lookup(fontName); !ok {
		fontName = '0'
	}
	entry, ok := fonts.lookup(fontName)
	if !ok {
		return &FontError{Name: fontName}
	}

	fontHeight := int(el.Barcode.FontWidth)
	if fontHeight <= 0 {
		fontHeight = 10
	}
	fnt := label.Font{Name: fontName, Height: fontHeight, Width: fontHeight}

	for _, t := range el.Barcode.Texts {
		textEl := label.Element{
			Kind:          label.KindText,
			X:             el.X + int(t.OffsetX),
			Y:             el.Y + el.Barcode.Symbol.Height + int(t.OffsetY),
			Font:          fnt,
			Content:       t.Text,
			Justification: t.Justification,
		}
		if err := drawTextWithEntry(dst, textEl, entry); err != nil {
			return err
		}
	}
	return nil
}
