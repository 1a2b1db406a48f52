package zplraster

import "github.com/labelworks/zplraster/internal/label"

// The types below re-export internal/label's data model so callers can name
// Label/Element/Kind without importing an internal package (spec.md §3).

type (
	Label          = label.Label
	Element        = label.Element
	Kind           = label.Kind
	Font           = label.Font
	FieldBlock     = label.FieldBlock
	Bitmap         = label.Bitmap
	TextElement    = label.TextElement
	BarcodeContent = label.BarcodeContent
	Justification  = label.Justification
	Color          = label.Color
)

const (
	KindText      = label.KindText
	KindRectangle = label.KindRectangle
	KindImage     = label.KindImage
	KindBarcode   = label.KindBarcode
)

const (
	JustifyLeft  = label.JustifyLeft
	JustifyRight = label.JustifyRight
	JustifyAuto  = label.JustifyAuto
)

const (
	ColorBlack = label.ColorBlack
	ColorWhite = label.ColorWhite
)

// Interpret runs the interpreter stage alone, for callers that want the
// positioned element list without rendering it (e.g. layout previews,
// golden-element tests).
func Interpret(zpl []byte) (*Label, error) {
	cmds, err := parseCommands(zpl)
	if err != nil {
		return nil, err
	}
	return interpretCommands(cmds)
}
