package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labelworks/zplraster/internal/label"
	"github.com/labelworks/zplraster/internal/parser"
)

func TestInterpret_TextFieldUsesCursorAndFont(t *testing.T) {
	cmds := []parser.Command{
		{Kind: parser.KindPrintWidth, Int: 400},
		{Kind: parser.KindLabelLength, Int: 200},
		{Kind: parser.KindFieldOrigin, X: 10, Y: 20, Justification: parser.JustifyLeft},
		{Kind: parser.KindFieldData, Text: "hello"},
		{Kind: parser.KindFieldSeparator},
	}

	lbl, err := Interpret(cmds, nil)
	require.NoError(t, err)
	assert.Equal(t, 400, lbl.Width)
	assert.Equal(t, 200, lbl.Height)
	require.Len(t, lbl.Elements, 1)

	el := lbl.Elements[0]
	assert.Equal(t, label.KindText, el.Kind)
	assert.Equal(t, 10, el.X)
	assert.Equal(t, 20, el.Y)
	assert.Equal(t, "hello", el.Content)
	assert.Equal(t, label.Font{Name: 'A', Height: 9, Width: 5}, el.Font)
}

func TestInterpret_FieldSeparatorPreservesFontOnly(t *testing.T) {
	cmds := []parser.Command{
		{Kind: parser.KindChangeDefaultFont, FontName: 'B', FontHeight: 30, FontWidth: 20},
		{Kind: parser.KindFieldOrigin, X: 5, Y: 5, Justification: parser.JustifyRight},
		{Kind: parser.KindReverse},
		{Kind: parser.KindFieldData, Text: "first"},
		{Kind: parser.KindFieldSeparator},
		// No new ^FO/^A/^FR issued — the second field should fall back to
		// the cursor's zero value and lose both justification and reverse,
		// but keep the font.
		{Kind: parser.KindFieldData, Text: "second"},
	}

	lbl, err := Interpret(cmds, nil)
	require.NoError(t, err)
	require.Len(t, lbl.Elements, 2)

	first, second := lbl.Elements[0], lbl.Elements[1]
	assert.Equal(t, label.JustifyRight, first.Justification)
	assert.True(t, first.Reversed)

	assert.Equal(t, label.JustifyLeft, second.Justification)
	assert.False(t, second.Reversed)
	assert.Equal(t, byte('B'), second.Font.Name)
	assert.Equal(t, 30, second.Font.Height)
	assert.Equal(t, 0, second.X)
	assert.Equal(t, 0, second.Y)
}

func TestInterpret_BottomOriginSubtractsHeightAndClamps(t *testing.T) {
	cmds := []parser.Command{
		{Kind: parser.KindChangeDefaultFont, FontName: '0', FontHeight: 40, FontWidth: 20},
		{Kind: parser.KindFieldTypeset, X: 10, Y: 5},
		{Kind: parser.KindFieldData, Text: "clamped"},
	}

	lbl, err := Interpret(cmds, nil)
	require.NoError(t, err)
	require.Len(t, lbl.Elements, 1)
	assert.Equal(t, 0, lbl.Elements[0].Y)
}

func TestInterpret_BottomOriginSubtractsHeightNoClamp(t *testing.T) {
	cmds := []parser.Command{
		{Kind: parser.KindChangeDefaultFont, FontName: '0', FontHeight: 40, FontWidth: 20},
		{Kind: parser.KindFieldTypeset, X: 10, Y: 100},
		{Kind: parser.KindFieldData, Text: "not clamped"},
	}

	lbl, err := Interpret(cmds, nil)
	require.NoError(t, err)
	require.Len(t, lbl.Elements, 1)
	assert.Equal(t, 60, lbl.Elements[0].Y)
}

func TestInterpret_GraphicBoxCommitsWithoutFieldData(t *testing.T) {
	cmds := []parser.Command{
		{Kind: parser.KindFieldOrigin, X: 10, Y: 10},
		{Kind: parser.KindGraphicBox, BoxWidth: 100, BoxHeight: 50, BoxThickness: 5, BoxColor: parser.ColorBlack},
		{Kind: parser.KindFieldSeparator},
	}

	lbl, err := Interpret(cmds, nil)
	require.NoError(t, err)
	require.Len(t, lbl.Elements, 1)

	el := lbl.Elements[0]
	assert.Equal(t, label.KindRectangle, el.Kind)
	assert.Equal(t, 100, el.Width)
	assert.Equal(t, 50, el.Height)
}

func TestInterpret_GraphicBoxThicknessWidensDegenerateBox(t *testing.T) {
	cmds := []parser.Command{
		{Kind: parser.KindGraphicBox, BoxWidth: 1, BoxHeight: 1, BoxThickness: 20},
	}

	lbl, err := Interpret(cmds, nil)
	require.NoError(t, err)
	require.Len(t, lbl.Elements, 1)
	assert.Equal(t, 20, lbl.Elements[0].Width)
	assert.Equal(t, 20, lbl.Elements[0].Height)
}

func TestInterpret_BarcodeSymbologyPersistsUntilFieldSeparator(t *testing.T) {
	cmds := []parser.Command{
		{Kind: parser.KindBarcode, Symbology: parser.Symbology{Kind: parser.SymbologyCode128, ShowText: true}},
		{Kind: parser.KindFieldData, Text: "first"},
		{Kind: parser.KindFieldData, Text: "second"},
		{Kind: parser.KindFieldSeparator},
		{Kind: parser.KindFieldData, Text: "plain"},
	}

	lbl, err := Interpret(cmds, nil)
	require.NoError(t, err)
	require.Len(t, lbl.Elements, 3)
	assert.Equal(t, label.KindBarcode, lbl.Elements[0].Kind)
	assert.Equal(t, label.KindBarcode, lbl.Elements[1].Kind)
	assert.Equal(t, label.KindText, lbl.Elements[2].Kind)
}

func TestInterpret_UnsupportedSymbologyFallsBackToText(t *testing.T) {
	cmds := []parser.Command{
		{Kind: parser.KindBarcode, Symbology: parser.Symbology{Kind: parser.SymbologyUnsupported}},
		{Kind: parser.KindFieldData, Text: "nope"},
	}

	lbl, err := Interpret(cmds, nil)
	require.NoError(t, err)
	require.Len(t, lbl.Elements, 1)
	assert.Equal(t, label.KindText, lbl.Elements[0].Kind)
	assert.Equal(t, "nope", lbl.Elements[0].Content)
}

func TestInterpret_HexEscapeSubstitution(t *testing.T) {
	cmds := []parser.Command{
		{Kind: parser.KindFieldHexIndicator, HexChar: '_'},
		{Kind: parser.KindFieldData, Text: "AB_41CD"},
	}

	lbl, err := Interpret(cmds, nil)
	require.NoError(t, err)
	require.Len(t, lbl.Elements, 1)
	assert.Equal(t, "ABACD", lbl.Elements[0].Content)
}

func TestInterpret_HexEscapeNotAppliedWithoutIndicator(t *testing.T) {
	cmds := []parser.Command{
		{Kind: parser.KindFieldData, Text: "AB_41CD"},
	}

	lbl, err := Interpret(cmds, nil)
	require.NoError(t, err)
	require.Len(t, lbl.Elements, 1)
	assert.Equal(t, "AB_41CD", lbl.Elements[0].Content)
}

func TestInterpret_GraphicFieldDecodeFailureFallsBackToEmptyBitmap(t *testing.T) {
	cmds := []parser.Command{
		{
			Kind:         parser.KindGraphicField,
			GFMethod:     parser.CompressionZlib,
			GFPayload:    []byte("not valid zlib/base64 at all"),
			GFRowBytes:   2,
			GFTotalBytes: 16,
		},
	}

	lbl, err := Interpret(cmds, nil)
	require.NoError(t, err)
	require.Len(t, lbl.Elements, 1)

	el := lbl.Elements[0]
	assert.Equal(t, label.KindImage, el.Kind)
	assert.Equal(t, 16, el.Bitmap.Width)
	assert.Equal(t, 8, el.Bitmap.Height)
	assert.Len(t, el.Bitmap.Pixels, 16*8)
}
