package parser

import "strings"

// decodeGraphicBox handles ^GB w,h,t[,color[,round]]. Up to five optional
// fields; defaults: thickness=1, width=thickness if absent, height=
// thickness if absent, color=Black, rounding=0 (spec.md §4.1).
func decodeGraphicBox(body []byte, pos int) (*Command, int, bool, error) {
	args, end := readArgs(body, pos, "^GB")
	fields := splitArgs(args)

	_, hasThickness := argAt(fields, 2)
	thickness := parseIntField(fields, 2, 1)

	_, hasWidth := argAt(fields, 0)
	width := parseIntField(fields, 0, thickness)
	_, hasHeight := argAt(fields, 1)
	height := parseIntField(fields, 1, thickness)
	_ = hasThickness
	_ = hasWidth
	_ = hasHeight

	colorStr, hasColor := argAt(fields, 3)
	color := colorFromString(colorStr, hasColor)

	rounding := parseIntField(fields, 4, 0)

	return &Command{
		Kind:          KindGraphicBox,
		BoxWidth:      width,
		BoxHeight:     height,
		BoxThickness:  thickness,
		BoxColor:      color,
		BoxRounding:   rounding,
	}, end, true, nil
}

// decodeGraphicField handles
// ^GFt,db,tb,rb,:method:data, where the trailing 5 characters of the
// consumed data_bytes window (":CRC") are discarded without validation
// (spec.md §4.1, §6).
func decodeGraphicField(body []byte, pos int) (*Command, int, bool, error) {
	start := pos + len("^GF")
	if start >= len(body) {
		return nil, pos, false, nil
	}

	compressionType := body[start]
	if compressionType != 'A' && compressionType != 'B' && compressionType != 'C' {
		return nil, pos, false, nil
	}
	cur := start + 1
	if cur >= len(body) || body[cur] != ',' {
		return nil, pos, false, nil
	}
	cur++

	dataBytes, cur, ok := readCommaInt(body, cur)
	if !ok {
		return nil, pos, false, nil
	}
	totalBytes, cur, ok := readCommaInt(body, cur)
	if !ok {
		return nil, pos, false, nil
	}
	rowBytes, cur, ok := readCommaInt(body, cur)
	if !ok {
		return nil, pos, false, nil
	}
	if cur >= len(body) || body[cur] != ':' {
		return nil, pos, false, nil
	}
	cur++

	methodEnd := cur
	for methodEnd < len(body) && body[methodEnd] != ':' {
		methodEnd++
	}
	if methodEnd >= len(body) {
		return nil, pos, false, nil
	}
	methodToken := string(body[cur:methodEnd])
	var method CompressionMethod
	switch methodToken {
	case "Z64":
		method = CompressionZlib
	default:
		return nil, pos, false, nil
	}
	cur = methodEnd + 1

	window := cur + dataBytes
	if window > len(body) {
		window = len(body)
	}
	payloadWindow := body[cur:window]

	payload := payloadWindow
	if idx := strings.IndexByte(string(payloadWindow), ':'); idx >= 0 {
		payload = payloadWindow[:idx]
	}

	return &Command{
		Kind:              KindGraphicField,
		GFCompressionType: compressionType,
		GFDataBytes:       dataBytes,
		GFTotalBytes:      totalBytes,
		GFRowBytes:        rowBytes,
		GFMethod:          method,
		GFPayload:         append([]byte(nil), payload...),
	}, window, true, nil
}

// readCommaInt parses a decimal integer terminated by ',' starting at pos,
// returning the value and the position just past the terminating comma.
func readCommaInt(body []byte, pos int) (int, int, bool) {
	start := pos
	for pos < len(body) && body[pos] >= '0' && body[pos] <= '9' {
		pos++
	}
	if pos == start {
		return 0, pos, false
	}
	n := 0
	for _, c := range body[start:pos] {
		n = n*10 + int(c-'0')
	}
	if pos >= len(body) || body[pos] != ',' {
		return 0, pos, false
	}
	return n, pos + 1, true
}
