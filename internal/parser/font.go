package parser

// decodeChangeDefaultFont handles ^CF f[,h[,w]]: a font character then
// optional height and width. When only one dimension is given it applies to
// both (spec.md §4.1).
func decodeChangeDefaultFont(body []byte, pos int) (*Command, int, bool, error) {
	args, end := readArgs(body, pos, "^CF")
	fields := splitArgs(args)

	nameByte, hasName := parseByteField(fields, 0)
	if !hasName {
		return nil, pos, false, nil
	}

	heightStr, hasHeight := argAt(fields, 1)
	widthStr, hasWidth := argAt(fields, 2)

	height := parseIntField(fields, 1, 0)
	width := parseIntField(fields, 2, 0)

	switch {
	case !hasHeight && !hasWidth:
		return nil, pos, false, nil
	case hasHeight && !hasWidth:
		width = height
	case !hasHeight && hasWidth:
		height = width
	}
	_ = heightStr
	_ = widthStr

	return &Command{
		Kind:       KindChangeDefaultFont,
		FontName:   nameByte,
		FontHeight: height,
		FontWidth:  width,
	}, end, true, nil
}

// decodeFont handles ^Af o,h,w: the one-letter ^A mnemonic followed by a
// font name character, an orientation character, then two dimensions.
func decodeFont(body []byte, pos int) (*Command, int, bool, error) {
	const mnemonic = "^A"
	cur := pos + len(mnemonic)
	if cur+1 >= len(body) {
		return nil, pos, false, nil
	}
	nameByte := body[cur]
	orientByte := body[cur+1]
	orientation, ok := orientationFromByte(orientByte)
	if !ok {
		return nil, pos, false, nil
	}

	rest := cur + 2
	end := nextCommandBoundary(body, rest)
	args := string(body[rest:end])
	fields := splitArgs(trimLeadingComma(args))

	height := parseIntField(fields, 0, 0)
	width := parseIntField(fields, 1, 0)

	return &Command{
		Kind:        KindFont,
		FontName:    nameByte,
		Orientation: orientation,
		FontHeight:  height,
		FontWidth:   width,
	}, end, true, nil
}
