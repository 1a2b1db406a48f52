// Package imaging decodes the compressed monochrome graphics embedded in a
// ^GF command into a label.Bitmap (spec.md §4.4).
package imaging

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"fmt"
	"io"
	"unicode"

	"github.com/labelworks/zplraster/internal/label"
	"github.com/labelworks/zplraster/internal/parser"
)

// DecodeError reports a graphic field whose packed payload is shorter than
// rowBytes*height once inflated.
type DecodeError struct {
	RowBytes, Height, Got int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("imaging: short payload: want %d bytes (rowBytes=%d height=%d), got %d",
		e.RowBytes*e.Height, e.RowBytes, e.Height, e.Got)
}

// Decode expands a ^GF payload into a monochrome bitmap of (widthPx,
// heightPx). rowBytes is the packed-row stride as declared by the command.
// Only CompressionZlib is supported; any other method, like a base64 or zlib
// failure, produces a plain error, and a payload shorter than
// rowBytes*heightPx produces a *DecodeError. Callers apply the "empty
// bitmap" fallback of spec.md §7 on any error.
func Decode(method parser.CompressionMethod, payload []byte, widthPx, heightPx, rowBytes int) (label.Bitmap, error) {
	if method != parser.CompressionZlib {
		return label.Bitmap{}, fmt.Errorf("imaging: unsupported compression method")
	}

	packed, err := inflateBase64(payload)
	if err != nil {
		return label.Bitmap{}, fmt.Errorf("imaging: inflate: %w", err)
	}
	if len(packed) < rowBytes*heightPx {
		return label.Bitmap{}, &DecodeError{RowBytes: rowBytes, Height: heightPx, Got: len(packed)}
	}

	pixels := make([]byte, widthPx*heightPx)
	for y := 0; y < heightPx; y++ {
		row := packed[y*rowBytes : (y+1)*rowBytes]
		for x := 0; x < widthPx; x++ {
			byteIdx := x / 8
			if byteIdx >= len(row) {
				break
			}
			bitIdx := 7 - uint(x%8)
			if row[byteIdx]>>bitIdx&1 == 1 {
				pixels[y*widthPx+x] = 1
			}
		}
	}
	return label.Bitmap{Width: widthPx, Height: heightPx, Pixels: pixels}, nil
}

// inflateBase64 strips whitespace from payload, base64-decodes it, and
// inflates the zlib stream (spec.md §4.4 step 1).
func inflateBase64(payload []byte) ([]byte, error) {
	stripped := make([]byte, 0, len(payload))
	for _, b := range payload {
		if unicode.IsSpace(rune(b)) {
			continue
		}
		stripped = append(stripped, b)
	}

	raw := make([]byte, base64.StdEncoding.DecodedLen(len(stripped)))
	n, err := base64.StdEncoding.Decode(raw, stripped)
	if err != nil {
		return nil, fmt.Errorf("base64: %w", err)
	}

	r, err := zlib.NewReader(bytes.NewReader(raw[:n]))
	if err != nil {
		return nil, fmt.Errorf("zlib: %w", err)
	}
	defer r.Close()
	return io.ReadAll(r)
}
