package parser

// decodeBarcodeDefaults handles ^BY w,ratio,h. Defaults: width=2, ratio=3.0,
// height=10 (spec.md §4.1).
func decodeBarcodeDefaults(body []byte, pos int) (*Command, int, bool, error) {
	args, end := readArgs(body, pos, "^BY")
	fields := splitArgs(args)

	width := parseIntField(fields, 0, 2)
	ratio := parseFloatField(fields, 1, 3.0)
	height := parseIntField(fields, 2, 10)

	return &Command{
		Kind:          KindBarcodeDefaults,
		BYModuleWidth: width,
		BYRatio:       ratio,
		BYHeight:      height,
	}, end, true, nil
}

// decodeCode128 handles ^BCo,h,line,above,check,mode. All fields optional;
// an empty argument list means all defaults.
func decodeCode128(body []byte, pos int) (*Command, int, bool, error) {
	args, end := readArgs(body, pos, "^BC")
	fields := splitArgs(args)

	orientByte, hasOrient := parseByteField(fields, 0)
	orientation := OrientationNormal
	if hasOrient {
		if o, ok := orientationFromByte(orientByte); ok {
			orientation = o
		}
	}

	heightStr, hasHeight := argAt(fields, 1)
	height := parseIntField(fields, 1, 0)
	_ = heightStr

	lineStr, hasLine := argAt(fields, 2)
	showText := boolFlag(lineStr, hasLine)

	aboveStr, hasAbove := argAt(fields, 3)
	textAbove := boolFlag(aboveStr, hasAbove)

	checkStr, hasCheck := argAt(fields, 4)
	checkDigit := boolFlag(checkStr, hasCheck)

	modeByte, hasMode := parseByteField(fields, 5)
	mode := code128ModeFromByte(modeByte, hasMode)

	return &Command{
		Kind: KindBarcode,
		Symbology: Symbology{
			Kind:        SymbologyCode128,
			Orientation: orientation,
			Height:      height,
			HasHeight:   hasHeight,
			ShowText:    showText,
			TextAbove:   textAbove,
			CheckDigit:  checkDigit,
			Mode:        mode,
		},
	}, end, true, nil
}

// decodeEan13 handles ^BEo,h,line,above.
func decodeEan13(body []byte, pos int) (*Command, int, bool, error) {
	args, end := readArgs(body, pos, "^BE")
	fields := splitArgs(args)

	orientByte, hasOrient := parseByteField(fields, 0)
	orientation := OrientationNormal
	if hasOrient {
		if o, ok := orientationFromByte(orientByte); ok {
			orientation = o
		}
	}

	height := parseIntField(fields, 1, 0)
	_, hasHeight := argAt(fields, 1)

	lineStr, hasLine := argAt(fields, 2)
	showText := boolFlag(lineStr, hasLine)

	aboveStr, hasAbove := argAt(fields, 3)
	textAbove := boolFlag(aboveStr, hasAbove)

	return &Command{
		Kind: KindBarcode,
		Symbology: Symbology{
			Kind:        SymbologyEan13,
			Orientation: orientation,
			Height:      height,
			HasHeight:   hasHeight,
			ShowText:    showText,
			TextAbove:   textAbove,
		},
	}, end, true, nil
}
