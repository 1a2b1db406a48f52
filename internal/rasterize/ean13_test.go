package rasterize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEan13CheckDigit(t *testing.T) {
	assert.Equal(t, byte('4'), ean13CheckDigit("000012345678"))
}

func TestEan13Digits_PadsAndTruncates(t *testing.T) {
	assert.Equal(t, "000000000001", ean13Digits("1"))
	assert.Equal(t, "123456789012", ean13Digits("12345678901234"))
	assert.Equal(t, "000012345678", ean13Digits("000012345678"))
}

func TestGenerateEan13_AppendsCheckDigit(t *testing.T) {
	content, err := Generate(Request{
		Kind:     Ean13,
		Content:  "000012345678",
		ShowText: true,
	})
	require.NoError(t, err)
	require.Len(t, content.Texts, 3)
	assert.Equal(t, "0", content.Texts[0].Text)
	assert.Equal(t, "000123", content.Texts[1].Text)
	assert.Equal(t, "456784", content.Texts[2].Text)
}

func TestGenerateEan13_HiddenText(t *testing.T) {
	content, err := Generate(Request{Kind: Ean13, Content: "000012345678", ShowText: false})
	require.NoError(t, err)
	assert.Empty(t, content.Texts)
}
