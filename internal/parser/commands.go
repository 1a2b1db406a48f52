package parser

// CommandKind discriminates the Command tagged union. The set is closed and
// matches the ZPL subset enumerated in spec.md §6 — dispatch by switching on
// Kind rather than by type hierarchy, matching spec.md §9's design note.
type CommandKind int

const (
	KindStartLabel CommandKind = iota
	KindEndLabel
	KindPrintWidth
	KindLabelLength
	KindLabelShift
	KindChangeDefaultFont
	KindFont
	KindFieldOrigin
	KindFieldTypeset
	KindFieldData
	KindFieldSeparator
	KindFieldHexIndicator
	KindCharacterSet
	KindFieldBlock
	KindGraphicBox
	KindGraphicField
	KindBarcodeDefaults
	KindBarcode
	KindReverse
	KindPrintQuantity
	KindModeM
	KindMediaDarkness
	KindFieldComment
)

// Orientation is the printer rotation code used by ^A, ^BC and ^BE.
type Orientation int

const (
	OrientationNormal Orientation = iota
	OrientationRotated90
	OrientationInverted180
	OrientationRotated270
)

// orientationFromByte maps the ZPL orientation letter to Orientation. ok is
// false for any letter outside {N,R,I,B}.
func orientationFromByte(b byte) (Orientation, bool) {
	switch b {
	case 'N':
		return OrientationNormal, true
	case 'R':
		return OrientationRotated90, true
	case 'I':
		return OrientationInverted180, true
	case 'B':
		return OrientationRotated270, true
	default:
		return OrientationNormal, false
	}
}

// Justification is the decoded ^FO/^FT third argument.
type Justification int

const (
	JustifyLeft Justification = iota
	JustifyRight
	JustifyAuto
)

func justificationFromByte(b byte, present bool) Justification {
	if !present {
		return JustifyLeft
	}
	switch b {
	case '0':
		return JustifyLeft
	case '1':
		return JustifyRight
	case '2':
		return JustifyAuto
	default:
		return JustifyLeft
	}
}

// Color is the ^GB color argument.
type Color int

const (
	ColorBlack Color = iota
	ColorWhite
)

func colorFromString(s string, present bool) Color {
	if !present {
		return ColorBlack
	}
	switch s {
	case "W":
		return ColorWhite
	default:
		return ColorBlack
	}
}

// CompressionMethod is the ^GF payload encoding.
type CompressionMethod int

const (
	CompressionNone CompressionMethod = iota
	CompressionZlib
)

// Code128Mode is the ^BC mode argument.
type Code128Mode int

const (
	Code128Normal Code128Mode = iota
	Code128UCC
	Code128Auto
	Code128Ean
)

func code128ModeFromByte(b byte, present bool) Code128Mode {
	if !present {
		return Code128Normal
	}
	switch b {
	case 'U':
		return Code128UCC
	case 'A':
		return Code128Auto
	case 'D':
		return Code128Ean
	default:
		return Code128Normal
	}
}

func boolFlag(s string, present bool) bool {
	if !present {
		return true
	}
	return s != "N"
}

// SymbologyKind discriminates the Barcode command's payload.
type SymbologyKind int

const (
	SymbologyCode128 SymbologyKind = iota
	SymbologyEan13
	SymbologyUnsupported
)

// Symbology is the decoded payload of a ^BC/^BE command.
type Symbology struct {
	Kind          SymbologyKind
	Orientation   Orientation
	Height        int // 0 means "unspecified, use ^BY default"
	HasHeight     bool
	ShowText      bool
	TextAbove     bool
	CheckDigit    bool        // Code128 only
	Mode          Code128Mode // Code128 only
}

// CharsetRemap maps an input codepoint to a replacement codepoint, as
// declared by trailing ^CI pairs.
type CharsetRemap struct {
	Src, Dst byte
}

// Command is a tagged union over every recognized ZPL directive. Only the
// fields relevant to Kind are populated; this mirrors the Node/NodeKind
// union shape used for ZPL ASTs elsewhere in the ecosystem (see the
// zpltoolchain reference types) rather than a class hierarchy, per
// spec.md §9.
type Command struct {
	Kind CommandKind

	// PrintWidth / LabelLength
	Int int

	// LabelShift (signed)
	SignedInt int

	// ChangeDefaultFont / Font
	FontName   byte
	FontHeight int
	FontWidth  int
	Orientation Orientation

	// FieldOrigin / FieldTypeset
	X, Y          int
	Justification Justification

	// FieldData
	Text string

	// FieldHexIndicator
	HexChar byte

	// CharacterSet
	CharsetCode int
	Remap       []CharsetRemap

	// FieldBlock
	BlockWidth         int
	BlockMaxLines      int
	BlockLineSpacing   int
	BlockJustification byte
	BlockHangingIndent int

	// GraphicBox
	BoxWidth, BoxHeight, BoxThickness int
	BoxColor                         Color
	BoxRounding                      int

	// GraphicField
	GFCompressionType byte // 'A', 'B', 'C'
	GFDataBytes       int
	GFTotalBytes      int
	GFRowBytes        int
	GFMethod          CompressionMethod
	GFPayload         []byte

	// BarcodeDefaults (^BY)
	BYModuleWidth int
	BYRatio       float64
	BYHeight      int

	// Barcode
	Symbology Symbology
}
