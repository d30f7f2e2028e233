package datamatrix

import (
	"testing"

	"github.com/arvovision/barcode/datamatrix/decoder"
	"github.com/stretchr/testify/require"
)

// TestDecodeBitStreamASCII drives the Data Matrix data-codeword parser
// directly with hand-built ASCII-mode codewords (codeword = char+1),
// bypassing module placement and Reed-Solomon correction entirely.
func TestDecodeBitStreamASCII(t *testing.T) {
	tests := []string{
		"Hello",
		"Test123",
		"1234567890",
		"ABCDEF",
		"Hello, World!",
	}

	for _, tc := range tests {
		t.Run(tc, func(t *testing.T) {
			codewords := make([]byte, len(tc))
			for i := 0; i < len(tc); i++ {
				codewords[i] = byte(tc[i]) + 1
			}

			result, err := decoder.DecodeBitStream(codewords)
			require.NoError(t, err)
			require.Equal(t, tc, result.Text)
		})
	}
}

// TestDecodeBitStreamDigitPairs exercises the two-digit numeric pair
// shortcut (codeword 130 = "00" ... 229 = "99"), which only applies to
// even-length runs of digits.
func TestDecodeBitStreamDigitPairs(t *testing.T) {
	codewords := []byte{130 + 12, 130 + 34, 130 + 56} // "12" "34" "56"

	result, err := decoder.DecodeBitStream(codewords)
	require.NoError(t, err)
	require.Equal(t, "123456", result.Text)
}
