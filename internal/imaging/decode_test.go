package imaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labelworks/zplraster/internal/parser"
)

// checkerboardB64 is zlib(base64) of a 16x8 checkerboard (pixel on iff
// (x+y) is even), MSB-first packed, row_bytes=2.
const checkerboardB64 = "eJxbtSo0dBUSBgBGdAf5"

func TestDecode_Checkerboard(t *testing.T) {
	bmp, err := Decode(parser.CompressionZlib, []byte(checkerboardB64), 16, 8, 2)
	require.NoError(t, err)
	require.Equal(t, 16, bmp.Width)
	require.Equal(t, 8, bmp.Height)

	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			want := byte(0)
			if (x+y)%2 == 0 {
				want = 1
			}
			assert.Equalf(t, want, bmp.Pixels[y*16+x], "pixel (%d,%d)", x, y)
		}
	}
}

func TestDecode_StripsWhitespace(t *testing.T) {
	withSpace := "eJxb\ntSo0\ndBUS\nBgBG\ndAf5\n"
	bmp, err := Decode(parser.CompressionZlib, []byte(withSpace), 16, 8, 2)
	require.NoError(t, err)
	assert.Equal(t, 16, bmp.Width)
}

func TestDecode_ShortPayloadIsError(t *testing.T) {
	_, err := Decode(parser.CompressionZlib, []byte(checkerboardB64), 16, 100, 2)
	require.Error(t, err)
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
}

func TestDecode_UnsupportedMethod(t *testing.T) {
	_, err := Decode(parser.CompressionNone, []byte("anything"), 1, 1, 1)
	require.Error(t, err)
}
