package parser

import (
	"strconv"
	"strings"
)

// decodeFieldOrigin handles ^FO x,y[,j] and ^FT x,y[,j]: two integers, plus
// an optional justification byte {0→Left, 1→Right, 2→Auto, other→Left}.
func decodeFieldOrigin(body []byte, pos int, kind CommandKind) (*Command, int, bool, error) {
	mnemonic := "^FO"
	if kind == KindFieldTypeset {
		mnemonic = "^FT"
	}
	args, end := readArgs(body, pos, mnemonic)
	fields := splitArgs(args)

	xStr, hasX := argAt(fields, 0)
	yStr, hasY := argAt(fields, 1)
	if !hasX || !hasY {
		return nil, pos, false, nil
	}
	x, err := strconv.Atoi(strings.TrimSpace(xStr))
	if err != nil {
		return nil, pos, false, nil
	}
	y, err := strconv.Atoi(strings.TrimSpace(yStr))
	if err != nil {
		return nil, pos, false, nil
	}

	jByte, hasJ := parseByteField(fields, 2)
	justification := justificationFromByte(jByte, hasJ)

	return &Command{
		Kind:          kind,
		X:             x,
		Y:             y,
		Justification: justification,
	}, end, true, nil
}

// decodeFieldData handles ^FD …: consume all characters up to the next ^FS.
// If no ^FS follows, text runs to the end of the envelope (spec.md §8).
func decodeFieldData(body []byte, pos int) (*Command, int, bool, error) {
	start := pos + len("^FD")
	rel := strings.Index(string(body[start:]), "^FS")
	var end int
	if rel < 0 {
		end = len(body)
	} else {
		end = start + rel
	}
	return &Command{Kind: KindFieldData, Text: string(body[start:end])}, end, true, nil
}

// decodeFieldHex handles ^FH c: the next character is the hex escape
// indicator (default '_' when omitted).
func decodeFieldHex(body []byte, pos int) (*Command, int, bool, error) {
	args, end := readArgs(body, pos, "^FH")
	hexChar := byte('_')
	trimmed := trimLeadingComma(args)
	if len(trimmed) > 0 {
		hexChar = trimmed[0]
	}
	return &Command{Kind: KindFieldHexIndicator, HexChar: hexChar}, end, true, nil
}

// decodeFieldBlock handles ^FB w,l,ls,j,hi.
func decodeFieldBlock(body []byte, pos int) (*Command, int, bool, error) {
	args, end := readArgs(body, pos, "^FB")
	fields := splitArgs(args)

	width := parseIntField(fields, 0, 0)
	maxLines := parseIntField(fields, 1, 1)
	lineSpacing := parseIntField(fields, 2, 0)
	jByte, hasJ := parseByteField(fields, 3)
	justification := byte('L')
	if hasJ {
		switch jByte {
		case 'L', 'R', 'C', 'J':
			justification = jByte
		}
	}
	hangingIndent := parseIntField(fields, 4, 0)

	return &Command{
		Kind:               KindFieldBlock,
		BlockWidth:         width,
		BlockMaxLines:      maxLines,
		BlockLineSpacing:   lineSpacing,
		BlockJustification: justification,
		BlockHangingIndent: hangingIndent,
	}, end, true, nil
}

// decodeComment handles ^FX <comment until newline>: parsed but produces no
// command.
func decodeComment(body []byte, pos int) (*Command, int, bool, error) {
	start := pos + len("^FX")
	end := start
	for end < len(body) && body[end] != '\n' && body[end] != '^' && body[end] != '~' {
		end++
	}
	return nil, end, true, nil
}
