package qrcode

import (
	"math/rand"
	"testing"

	"github.com/arvovision/barcode/bitutil"
	"github.com/arvovision/barcode/qrcode/decoder"
	"github.com/stretchr/testify/require"
)

// TestDataMaskInvolution checks that every QR mask pattern is its own
// inverse: applying UnmaskBitMatrix twice with the same mask index must
// restore the original matrix, since masking is plain per-module XOR.
func TestDataMaskInvolution(t *testing.T) {
	const dimension = 21 // version 1
	src := rand.New(rand.NewSource(1))

	for maskIndex := 0; maskIndex < 8; maskIndex++ {
		original := bitutil.NewBitMatrix(dimension)
		for y := 0; y < dimension; y++ {
			for x := 0; x < dimension; x++ {
				if src.Intn(2) == 1 {
					original.Set(x, y)
				}
			}
		}
		working := original.Clone()
		decoder.UnmaskBitMatrix(working, dimension, maskIndex)
		decoder.UnmaskBitMatrix(working, dimension, maskIndex)
		if !working.Equals(original) {
			t.Errorf("mask %d is not its own inverse", maskIndex)
		}
	}
}

// bitWriter packs bits MSB-first within each byte, matching the convention
// bitutil.BitSource reads against.
type bitWriter struct {
	buf  []byte
	nbit int
}

func (w *bitWriter) writeBits(value, numBits int) {
	for i := numBits - 1; i >= 0; i-- {
		bitIndex := w.nbit % 8
		if bitIndex == 0 {
			w.buf = append(w.buf, 0)
		}
		if (value>>uint(i))&1 != 0 {
			w.buf[len(w.buf)-1] |= 1 << uint(7-bitIndex)
		}
		w.nbit++
	}
}

// TestDecodeBitStreamByteMode drives qrcode/decoder's bit-stream mode parser
// directly with a hand-packed byte-mode segment, bypassing the detector,
// module placement, masking and Reed-Solomon layers entirely.
func TestDecodeBitStreamByteMode(t *testing.T) {
	const content = "HELLO"

	w := &bitWriter{}
	w.writeBits(int(decoder.ModeByte), 4)
	w.writeBits(len(content), 8) // version 1-9 byte-mode count is 8 bits
	for i := 0; i < len(content); i++ {
		w.writeBits(int(content[i]), 8)
	}
	w.writeBits(int(decoder.ModeTerminator), 4)
	// remaining bits of the final byte default to zero padding

	version, err := decoder.GetVersionForNumber(1)
	require.NoError(t, err)

	result, err := decoder.DecodeBitStream(w.buf, version, decoder.ECLevelM, "")
	require.NoError(t, err)
	require.Equal(t, content, result.Text)
}

// TestDecodeBitStreamNumericMode exercises the numeric-mode bit packing:
// digits are grouped by 3 into 10-bit groups, with 7 bits for a trailing
// pair and 4 bits for a trailing single digit.
func TestDecodeBitStreamNumericMode(t *testing.T) {
	const content = "1234567"

	w := &bitWriter{}
	w.writeBits(int(decoder.ModeNumeric), 4)
	w.writeBits(len(content), 10) // version 1-9 numeric-mode count is 10 bits

	i := 0
	for ; i+3 <= len(content); i += 3 {
		group := 0
		for _, c := range content[i : i+3] {
			group = group*10 + int(c-'0')
		}
		w.writeBits(group, 10)
	}
	switch len(content) - i {
	case 2:
		group := int(content[i]-'0')*10 + int(content[i+1]-'0')
		w.writeBits(group, 7)
	case 1:
		w.writeBits(int(content[i]-'0'), 4)
	}
	w.writeBits(int(decoder.ModeTerminator), 4)

	version, err := decoder.GetVersionForNumber(1)
	require.NoError(t, err)

	result, err := decoder.DecodeBitStream(w.buf, version, decoder.ECLevelM, "")
	require.NoError(t, err)
	require.Equal(t, content, result.Text)
}
