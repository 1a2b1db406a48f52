// Package interpreter implements the single-pass ZPL state machine: it
// consumes the parser's command sequence and produces a positioned
// label.Label. It is a pure function with no I/O (spec.md §4.2).
package interpreter

import (
	"strconv"
	"strings"

	"github.com/labelworks/zplraster/internal/imaging"
	"github.com/labelworks/zplraster/internal/label"
	"github.com/labelworks/zplraster/internal/parser"
	"github.com/labelworks/zplraster/internal/rasterize"
	"go.uber.org/zap"
)

// Interpret walks cmds in order and builds the Label they describe. logger
// may be nil; a nil logger falls back to a no-op zap.Logger (spec.md §4.6).
func Interpret(cmds []parser.Command, logger *zap.Logger) (*label.Label, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	st := newState()
	lbl := &label.Label{}

	for _, cmd := range cmds {
		switch cmd.Kind {
		case parser.KindPrintWidth:
			lbl.Width = cmd.Int
		case parser.KindLabelLength:
			lbl.Height = cmd.Int
		case parser.KindLabelShift:
			// Accepted for compatibility; spec.md does not define a
			// geometric effect for ^LS on the emitted element list.

		case parser.KindChangeDefaultFont:
			st.font = label.Font{Name: cmd.FontName, Height: cmd.FontHeight, Width: cmd.FontWidth}
		case parser.KindFont:
			st.font = label.Font{Name: cmd.FontName, Height: cmd.FontHeight, Width: cmd.FontWidth}

		case parser.KindFieldOrigin:
			st.cursorX, st.cursorY = cmd.X, cmd.Y
			st.justification = toLabelJustification(cmd.Justification)
			st.origin = originTop
		case parser.KindFieldTypeset:
			st.cursorX, st.cursorY = cmd.X, cmd.Y
			st.justification = toLabelJustification(cmd.Justification)
			st.origin = originBottom

		case parser.KindFieldHexIndicator:
			st.hexChar = cmd.HexChar

		case parser.KindFieldBlock:
			st.fieldBlock = &label.FieldBlock{
				Width:         cmd.BlockWidth,
				MaxLines:      cmd.BlockMaxLines,
				LineSpacing:   cmd.BlockLineSpacing,
				Justification: cmd.BlockJustification,
				HangingIndent: cmd.BlockHangingIndent,
			}

		case parser.KindBarcodeDefaults:
			st.barcodeDefaults = barcodeDefaults{
				set:         true,
				moduleWidth: cmd.BYModuleWidth,
				ratio:       cmd.BYRatio,
				height:      cmd.BYHeight,
			}

		case parser.KindBarcode:
			sym := cmd.Symbology
			st.symbology = &sym

		case parser.KindReverse:
			st.reverse = true

		case parser.KindGraphicBox:
			commitGraphicBox(lbl, st, cmd)

		case parser.KindGraphicField:
			commitGraphicField(lbl, st, cmd, logger)

		case parser.KindFieldData:
			commitField(lbl, st, cmd, logger)

		case parser.KindFieldSeparator:
			st.resetField()

		case parser.KindCharacterSet:
			// Charset remap table is accepted by the parser; no text in the
			// supported command set requires applying it to decoded content.
		}
	}

	logger.Debug("interpret: done", zap.Int("elements", len(lbl.Elements)))
	return lbl, nil
}

func toLabelJustification(j parser.Justification) label.Justification {
	switch j {
	case parser.JustifyRight:
		return label.JustifyRight
	case parser.JustifyAuto:
		return label.JustifyAuto
	default:
		return label.JustifyLeft
	}
}

// adjustY applies the Bottom-origin semantics of spec.md §4.2: the element's
// top-left y is cursor.y − element_height, clamped to zero on underflow.
func adjustY(origin originMode, y, height int) int {
	if origin == originBottom {
		y -= height
		if y < 0 {
			y = 0
		}
	}
	return y
}

func commitGraphicBox(lbl *label.Label, st *state, cmd parser.Command) {
	width := cmd.BoxWidth
	if width < cmd.BoxThickness {
		width = cmd.BoxThickness
	}
	height := cmd.BoxHeight
	if height < cmd.BoxThickness {
		height = cmd.BoxThickness
	}

	lbl.Elements = append(lbl.Elements, label.Element{
		Kind:      label.KindRectangle,
		X:         st.cursorX,
		Y:         adjustY(st.origin, st.cursorY, height),
		Width:     width,
		Height:    height,
		Thickness: cmd.BoxThickness,
		Color:     toLabelColor(cmd.BoxColor),
		Rounding:  cmd.BoxRounding,
		Reversed:  st.reverse,
	})
}

func toLabelColor(c parser.Color) label.Color {
	if c == parser.ColorWhite {
		return label.ColorWhite
	}
	return label.ColorBlack
}

// commitGraphicField decodes an embedded ^GF image and emits it at the
// current cursor; it requires no FieldData (spec.md §3 invariant 3). A
// decode failure falls back to an empty bitmap rather than aborting the
// whole document (spec.md §7).
func commitGraphicField(lbl *label.Label, st *state, cmd parser.Command, logger *zap.Logger) {
	widthPx := cmd.GFRowBytes * 8
	heightPx := 0
	if cmd.GFRowBytes > 0 {
		heightPx = cmd.GFTotalBytes / cmd.GFRowBytes
	}

	bitmap, err := imaging.Decode(cmd.GFMethod, cmd.GFPayload, widthPx, heightPx, cmd.GFRowBytes)
	if err != nil {
		logger.Debug("interpret: image decode failed, using empty bitmap", zap.Error(err))
		bitmap = label.Bitmap{Width: widthPx, Height: heightPx, Pixels: make([]byte, widthPx*heightPx)}
	}

	lbl.Elements = append(lbl.Elements, label.Element{
		Kind:     label.KindImage,
		X:        st.cursorX,
		Y:        adjustY(st.origin, st.cursorY, bitmap.Height),
		Bitmap:   bitmap,
		Reversed: st.reverse,
	})
}

// commitField implements the FieldData commit rule of spec.md §4.2: prefer
// a barcode when a symbology is pending and its encoder accepts the text,
// otherwise fall back to a plain Text element.
func commitField(lbl *label.Label, st *state, cmd parser.Command, logger *zap.Logger) {
	text := decodeHexEscapes(cmd.Text, st.hexChar)

	if st.symbology != nil {
		if el, ok := tryBarcode(st, text, logger); ok {
			lbl.Elements = append(lbl.Elements, el)
			return
		}
	}

	lbl.Elements = append(lbl.Elements, label.Element{
		Kind:          label.KindText,
		X:             st.cursorX,
		Y:             adjustY(st.origin, st.cursorY, st.font.Height),
		Font:          st.font,
		Width:         st.font.Width,
		Height:        st.font.Height,
		Content:       text,
		Justification: st.justification,
		Reversed:      st.reverse,
		FieldBlock:    st.fieldBlock,
	})
}

func tryBarcode(st *state, text string, logger *zap.Logger) (label.Element, bool) {
	sym := st.symbology

	req := rasterize.Request{
		Content:    text,
		ShowText:   sym.ShowText,
		TextAbove:  sym.TextAbove,
		CheckDigit: sym.CheckDigit,
	}
	switch sym.Kind {
	case parser.SymbologyCode128:
		req.Kind = rasterize.Code128
		req.Mode = toRasterizeCode128Mode(sym.Mode)
	case parser.SymbologyEan13:
		req.Kind = rasterize.Ean13
	default:
		return label.Element{}, false
	}

	if st.barcodeDefaults.set {
		req.ModuleWidth = st.barcodeDefaults.moduleWidth
	}
	if sym.HasHeight {
		req.Height = sym.Height
	} else if st.barcodeDefaults.set {
		req.Height = st.barcodeDefaults.height
	}

	content, err := rasterize.Generate(req)
	if err != nil {
		logger.Debug("interpret: barcode encode failed, falling back to text", zap.Error(err))
		return label.Element{}, false
	}

	return label.Element{
		Kind:     label.KindBarcode,
		X:        st.cursorX,
		Y:        adjustY(st.origin, st.cursorY, content.Symbol.Height),
		Barcode:  content,
		Reversed: st.reverse,
	}, true
}

func toRasterizeCode128Mode(m parser.Code128Mode) rasterize.Code128Mode {
	switch m {
	case parser.Code128UCC:
		return rasterize.Code128ModeUCC
	case parser.Code128Auto:
		return rasterize.Code128ModeAuto
	case parser.Code128Ean:
		return rasterize.Code128ModeEan
	default:
		return rasterize.Code128ModeNormal
	}
}

// decodeHexEscapes replaces every "<indicator><2 hex digits>" run in s with
// the corresponding byte, per the ^FH command (confirmed against
// original_source's decode_hex_string). indicator of 0 means no ^FH was set.
func decodeHexEscapes(s string, indicator byte) string {
	if indicator == 0 || !strings.ContainsRune(s, rune(indicator)) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == indicator && i+2 < len(s) {
			if n, err := strconv.ParseUint(s[i+1:i+3], 16, 8); err == nil {
				b.WriteByte(byte(n))
				i += 2
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
