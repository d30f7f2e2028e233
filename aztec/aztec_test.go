package aztec

import (
	"errors"
	"testing"

	zxinggo "github.com/arvovision/barcode"
	"github.com/arvovision/barcode/binarizer"
)

// blankLuminanceSource is an all-white image, used to confirm the reader
// reports ErrNotFound instead of panicking when no bullseye is present.
type blankLuminanceSource struct {
	width, height int
}

func (s *blankLuminanceSource) Width() int  { return s.width }
func (s *blankLuminanceSource) Height() int { return s.height }

func (s *blankLuminanceSource) Row(y int, row []byte) []byte {
	if len(row) < s.width {
		row = make([]byte, s.width)
	}
	for x := 0; x < s.width; x++ {
		row[x] = 255
	}
	return row
}

func (s *blankLuminanceSource) Matrix() []byte {
	buf := make([]byte, s.width*s.height)
	for i := range buf {
		buf[i] = 255
	}
	return buf
}

// TestReaderNoBullseye exercises the package-level Reader against a bullseye
// finder pattern's failure path; the concentric-layer extraction and
// mode-table decoding it calls into are covered directly in
// aztec/decoder's tests, which do not depend on image-level detection.
func TestReaderNoBullseye(t *testing.T) {
	source := &blankLuminanceSource{width: 200, height: 200}
	bitmap := zxinggo.NewBinaryBitmap(binarizer.NewGlobalHistogram(source))

	reader := NewReader()
	_, err := reader.Decode(bitmap, nil)
	if !errors.Is(err, zxinggo.ErrNotFound) {
		t.Errorf("got %v, want %v", err, zxinggo.ErrNotFound)
	}
}
