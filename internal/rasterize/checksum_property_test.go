package rasterize

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// validateEan13 recomputes the standard EAN-13 checksum over all 13 digits
// and returns it mod 10; the round-trip test below asserts it is zero — the
// property spec.md §8 calls out explicitly.
func validateEan13(full string) int {
	sum := 0
	for i, r := range full {
		d := int(r - '0')
		if i%2 == 0 {
			sum += d
		} else {
			sum += d * 3
		}
	}
	return sum % 10
}

func TestEan13CheckDigit_RoundTripsToZero(t *testing.T) {
	for _, digits := range []string{
		"000000000000",
		"000012345678",
		"999999999999",
		"123456789012",
		"000000000001",
	} {
		t.Run(digits, func(t *testing.T) {
			full := digits + string(ean13CheckDigit(digits))
			assert.Equal(t, 0, validateEan13(full), fmt.Sprintf("checksum for %s", full))
		})
	}
}
