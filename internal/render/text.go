package render

import (
	"image"
	"image/draw"
	"math"
	"strings"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/labelworks/zplraster/internal/label"
)

const textDPI = 72

// glyphMetric carries the per-glyph measurements spec.md §4.5's layout
// formula is stated in terms of: width, height, advance, xmin, ymin.
type glyphMetric struct {
	r                      rune
	width, height, advance int
	xmin, ymin             int
}

func measureGlyphs(face font.Face, text string) []glyphMetric {
	metrics := make([]glyphMetric, 0, len(text))
	for _, r := range text {
		bounds, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		metrics = append(metrics, glyphMetric{
			r:       r,
			width:   (bounds.Max.X - bounds.Min.X).Round(),
			height:  (bounds.Max.Y - bounds.Min.Y).Round(),
			advance: adv.Round(),
			xmin:    bounds.Min.X.Round(),
			ymin:    bounds.Min.Y.Round(),
		})
	}
	return metrics
}

// textWidth sums the pen-step distance (spec.md §4.5: advance rounded, then
// scaled by widthScale) across every glyph — used both to size the text
// bounding box for justification and to measure words for field-block wrap.
func textWidth(metrics []glyphMetric, widthScale float64) int {
	total := 0.0
	for _, m := range metrics {
		total += float64(m.advance) * widthScale
	}
	return int(math.Round(total))
}

// widthScaleFor implements spec.md §4.5: font_width / font_height times the
// font's own scale constant.
func widthScaleFor(fnt label.Font, perFontScale float64) float64 {
	if fnt.Height == 0 {
		return perFontScale
	}
	return float64(fnt.Width) / float64(fnt.Height) * perFontScale
}

// drawGlyphRun paints text starting at position (x, y) with the baseline
// math of spec.md §4.5: the first glyph's pen.y is position.y minus the
// minimum ymin across all glyphs, and each subsequent glyph's pen.y tracks
// the height/ymin deltas from the previous glyph rather than being
// recomputed from scratch (matching zpl-renderer/src/text.rs).
func drawGlyphRun(dst draw.Image, ft *truetype.Font, face font.Face, metrics []glyphMetric, fontSize, widthScale float64, position image.Point, col image.Image) {
	if len(metrics) == 0 {
		return
	}

	minYmin := metrics[0].ymin
	for _, m := range metrics[1:] {
		if m.ymin < minYmin {
			minYmin = m.ymin
		}
	}

	c := freetype.NewContext()
	c.SetDPI(textDPI)
	c.SetFont(ft)
	c.SetFontSize(fontSize)
	c.SetClip(dst.Bounds())
	c.SetDst(dst)
	c.SetSrc(col)

	penX := float64(position.X)
	penY := float64(position.Y - minYmin)

	prev := metrics[0]
	for i, m := range metrics {
		if i > 0 {
			penY += float64((prev.height - m.height) + (prev.ymin - m.ymin))
		}
		pt := fixed.Point26_6{
			X: fixed.Int26_6((penX + float64(m.xmin)) * 64),
			Y: fixed.Int26_6(penY * 64),
		}
		c.DrawString(string(m.r), pt)
		penX += float64(m.advance) * widthScale
		prev = m
	}
}

// penStart resolves the justified starting x for a text run (spec.md §4.5).
func penStart(x, width int, j label.Justification) int {
	switch j {
	case label.JustifyRight:
		return x - width
	case label.JustifyAuto:
		return x - width/2
	default:
		return x
	}
}

// drawText renders a single-line or field-block-wrapped Text element.
func drawText(dst draw.Image, el label.Element, fonts FontSet) error {
	entry, ok := fonts.lookup(el.Font.Name)
	if !ok {
		return &FontError{Name: el.Font.Name}
	}
	return drawTextWithEntry(dst, el, entry)
}

// drawTextWithEntry is drawText with the font resolution already done, so
// callers that resolve a font under a different name (barcode human-
// readable text under ';') can reuse the same layout path.
func drawTextWithEntry(dst draw.Image, el label.Element, entry fontEntry) error {
	fontSize := float64(el.Font.Height)
	if fontSize <= 0 {
		fontSize = 1
	}
	face := truetype.NewFace(entry.face, &truetype.Options{Size: fontSize, DPI: textDPI})
	widthScale := widthScaleFor(el.Font, entry.scale)
	col := image.Black

	if el.FieldBlock == nil || el.FieldBlock.Width <= 0 {
		metrics := measureGlyphs(face, el.Content)
		w := textWidth(metrics, widthScale)
		x := penStart(el.X, w, el.Justification)
		drawGlyphRun(dst, entry.face, face, metrics, fontSize, widthScale, image.Pt(x, el.Y), col)
		return nil
	}

	drawFieldBlock(dst, entry.face, face, el, widthScale, fontSize, col)
	return nil
}

// drawFieldBlock implements the ^FB word-wrap rule of spec.md §4.5: words
// (space-delimited, trailing space included) are laid out greedily; on
// overflow past position.x + block.width the whole word moves to the next
// line. MaxLines bounds how many lines are drawn; HangingIndent shifts every
// line after the first.
func drawFieldBlock(dst draw.Image, ft *truetype.Font, face font.Face, el label.Element, widthScale, fontSize float64, col image.Image) {
	block := el.FieldBlock
	words := splitWords(el.Content)

	type line struct {
		words []string
		width int
	}
	var lines []line
	cur := line{}
	curWidth := 0
	for _, w := range words {
		wm := measureGlyphs(face, w)
		ww := textWidth(wm, widthScale)
		indent := 0
		if len(lines) > 0 {
			indent = block.HangingIndent
		}
		if curWidth+ww > block.Width-indent && len(cur.words) > 0 {
			lines = append(lines, cur)
			cur = line{}
			curWidth = 0
			if block.MaxLines > 0 && len(lines) >= block.MaxLines {
				break
			}
		}
		cur.words = append(cur.words, w)
		curWidth += ww
		cur.width = curWidth
	}
	if len(cur.words) > 0 && (block.MaxLines <= 0 || len(lines) < block.MaxLines) {
		lines = append(lines, cur)
	}

	lineSpacing := block.LineSpacing + el.Font.Height
	y := el.Y
	for i, ln := range lines {
		x := el.X
		if i > 0 {
			x += block.HangingIndent
		}
		text := strings.Join(ln.words, "")
		j := blockJustification(block.Justification)
		metrics := measureGlyphs(face, text)
		w := textWidth(metrics, widthScale)
		startX := penStart(x, w, j)
		drawGlyphRun(dst, ft, face, metrics, fontSize, widthScale, image.Pt(startX, y), col)
		y += lineSpacing
	}
}

func splitWords(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if r == ' ' {
			words = append(words, s[start:i+1])
			start = i + 1
		}
	}
	if start < len(s) {
		words = append(words, s[start:])
	}
	return words
}

func blockJustification(b byte) label.Justification {
	switch b {
	case 'R':
		return label.JustifyRight
	case 'C', 'J':
		return label.JustifyAuto
	default:
		return label.JustifyLeft
	}
}
