package parser

// decodeCharacterSet handles ^CI n[,src,dst]…: an integer encoding id
// followed by zero or more (src,dst) byte remapping pairs.
func decodeCharacterSet(body []byte, pos int) (*Command, int, bool, error) {
	args, end := readArgs(body, pos, "^CI")
	fields := splitArgs(args)

	code := parseIntField(fields, 0, 0)
	if _, ok := argAt(fields, 0); !ok {
		return nil, pos, false, nil
	}

	var remap []CharsetRemap
	for i := 1; i+1 <= len(fields); i += 2 {
		srcByte, hasSrc := parseByteField(fields, i)
		dstByte, hasDst := parseByteField(fields, i+1)
		if !hasSrc || !hasDst {
			break
		}
		remap = append(remap, CharsetRemap{Src: srcByte, Dst: dstByte})
	}

	return &Command{
		Kind:        KindCharacterSet,
		CharsetCode: code,
		Remap:       remap,
	}, end, true, nil
}
