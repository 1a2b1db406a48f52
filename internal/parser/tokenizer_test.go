package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SimpleHello(t *testing.T) {
	cmds, err := Parse([]byte("^XA^FO50,50^A0N,30,30^FDHello^FS^XZ"))
	require.NoError(t, err)

	require.Len(t, cmds, 4)
	assert.Equal(t, KindFieldOrigin, cmds[0].Kind)
	assert.Equal(t, 50, cmds[0].X)
	assert.Equal(t, 50, cmds[0].Y)

	assert.Equal(t, KindFont, cmds[1].Kind)
	assert.EqualValues(t, '0', cmds[1].FontName)
	assert.Equal(t, OrientationNormal, cmds[1].Orientation)
	assert.Equal(t, 30, cmds[1].FontHeight)
	assert.Equal(t, 30, cmds[1].FontWidth)

	assert.Equal(t, KindFieldData, cmds[2].Kind)
	assert.Equal(t, "Hello", cmds[2].Text)

	assert.Equal(t, KindFieldSeparator, cmds[3].Kind)
}

func TestParse_LastEnvelopeWins(t *testing.T) {
	cmds, err := Parse([]byte("^XA^FO1,1^FDfirst^FS^XZ garbage ^XA^FO2,2^FDsecond^FS^XZ"))
	require.NoError(t, err)
	require.Len(t, cmds, 3)
	assert.Equal(t, "second", cmds[1].Text)
}

func TestParse_MissingStart(t *testing.T) {
	_, err := Parse([]byte("^FO1,1^FDno start^FS^XZ"))
	require.Error(t, err)
	perr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, MissingCommand, perr.Kind)
}

func TestParse_MissingEnd(t *testing.T) {
	_, err := Parse([]byte("^XA^FO1,1^FDunterminated"))
	require.Error(t, err)
	perr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, MissingCommand, perr.Kind)
}

func TestParse_UnknownOpcodeInsideEnvelopeFails(t *testing.T) {
	_, err := Parse([]byte("^XA^ZZbogus^XZ"))
	require.Error(t, err)
	perr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, InvalidSyntax, perr.Kind)
}

func TestParse_Rectangle(t *testing.T) {
	cmds, err := Parse([]byte("^XA^FO10,10^GB100,50,5^FS^XZ"))
	require.NoError(t, err)
	require.Len(t, cmds, 3)
	gb := cmds[1]
	assert.Equal(t, KindGraphicBox, gb.Kind)
	assert.Equal(t, 100, gb.BoxWidth)
	assert.Equal(t, 50, gb.BoxHeight)
	assert.Equal(t, 5, gb.BoxThickness)
	assert.Equal(t, ColorBlack, gb.BoxColor)
}

func TestParse_GraphicBoxDefaults(t *testing.T) {
	cmds, err := Parse([]byte("^XA^GB,,5^XZ"))
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	gb := cmds[0]
	assert.Equal(t, 5, gb.BoxThickness)
	assert.Equal(t, 5, gb.BoxWidth)
	assert.Equal(t, 5, gb.BoxHeight)
}

func TestParse_Code128Barcode(t *testing.T) {
	cmds, err := Parse([]byte("^XA^FO10,10^BCN,80,Y,N,N,A^FD12345^FS^XZ"))
	require.NoError(t, err)
	require.Len(t, cmds, 4)
	bc := cmds[1]
	assert.Equal(t, KindBarcode, bc.Kind)
	assert.Equal(t, SymbologyCode128, bc.Symbology.Kind)
	assert.Equal(t, OrientationNormal, bc.Symbology.Orientation)
	assert.Equal(t, 80, bc.Symbology.Height)
	assert.True(t, bc.Symbology.ShowText)
	assert.False(t, bc.Symbology.TextAbove)
	assert.False(t, bc.Symbology.CheckDigit)
	assert.Equal(t, Code128Auto, bc.Symbology.Mode)
}

func TestParse_Ean13Barcode(t *testing.T) {
	cmds, err := Parse([]byte("^XA^FO10,10^BEN,60,Y,N^FD000012345678^FS^XZ"))
	require.NoError(t, err)
	bc := cmds[1]
	assert.Equal(t, SymbologyEan13, bc.Symbology.Kind)
	assert.Equal(t, 60, bc.Symbology.Height)
	assert.True(t, bc.Symbology.ShowText)
}

func TestParse_FieldBlock(t *testing.T) {
	cmds, err := Parse([]byte("^XA^FB200,3,5,C,10^XZ"))
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	fb := cmds[0]
	assert.Equal(t, 200, fb.BlockWidth)
	assert.Equal(t, 3, fb.BlockMaxLines)
	assert.Equal(t, 5, fb.BlockLineSpacing)
	assert.EqualValues(t, 'C', fb.BlockJustification)
	assert.Equal(t, 10, fb.BlockHangingIndent)
}

func TestParse_CharacterSet(t *testing.T) {
	cmds, err := Parse([]byte("^XA^CI28^XZ"))
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	assert.Equal(t, KindCharacterSet, cmds[0].Kind)
	assert.Equal(t, 28, cmds[0].CharsetCode)
}

func TestParse_SkippedCommandsProduceNoCommand(t *testing.T) {
	cmds, err := Parse([]byte("^XA^PQ5^MMT^MD10^FX a comment\n^XZ"))
	require.NoError(t, err)
	assert.Empty(t, cmds)
}

func TestParse_ChangeDefaultFontSingleDimension(t *testing.T) {
	cmds, err := Parse([]byte("^XA^CF0,40^XZ"))
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	assert.Equal(t, 40, cmds[0].FontHeight)
	assert.Equal(t, 40, cmds[0].FontWidth)
}

func TestParse_BarcodeDefaults(t *testing.T) {
	cmds, err := Parse([]byte("^XA^BY3,2.5,20^XZ"))
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	assert.Equal(t, 3, cmds[0].BYModuleWidth)
	assert.Equal(t, 2.5, cmds[0].BYRatio)
	assert.Equal(t, 20, cmds[0].BYHeight)
}

func TestParse_FieldHexIndicatorDefault(t *testing.T) {
	cmds, err := Parse([]byte("^XA^FH^XZ"))
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	assert.EqualValues(t, '_', cmds[0].HexChar)
}
