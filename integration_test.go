package zxinggo_test

import (
	"image"
	"image/color"
	"testing"

	zxinggo "github.com/arvovision/barcode"
	"github.com/arvovision/barcode/binarizer"
	"github.com/arvovision/barcode/oned"

	// Import format packages to trigger init() registration.
	_ "github.com/arvovision/barcode/pdf417"
	_ "github.com/arvovision/barcode/qrcode"
)

// rowImageSource repeats a single hand-built row of modules down an image,
// giving the full MultiFormatReader pipeline (binarizer, row scanning,
// multi-format dispatch) a 1D symbol to find without needing a renderer.
type rowImageSource struct {
	modules []bool
	height  int
}

func (s *rowImageSource) Width() int  { return len(s.modules) }
func (s *rowImageSource) Height() int { return s.height }

func (s *rowImageSource) Row(_ int, row []byte) []byte {
	if len(row) < len(s.modules) {
		row = make([]byte, len(s.modules))
	}
	for x, on := range s.modules {
		if on {
			row[x] = 0
		} else {
			row[x] = 255
		}
	}
	return row
}

func (s *rowImageSource) Matrix() []byte {
	buf := make([]byte, len(s.modules)*s.height)
	for y := 0; y < s.height; y++ {
		s.Row(y, buf[y*len(s.modules):(y+1)*len(s.modules)])
	}
	return buf
}

func decodeRow(t *testing.T, modules []bool, format zxinggo.Format) string {
	t.Helper()

	source := &rowImageSource{modules: modules, height: 40}
	bitmap := zxinggo.NewBinaryBitmap(binarizer.NewGlobalHistogram(source))

	opts := &zxinggo.DecodeOptions{PossibleFormats: []zxinggo.Format{format}}
	result, err := zxinggo.Decode(bitmap, opts)
	if err != nil {
		t.Fatalf("Decode(%s) failed: %v", format, err)
	}
	return result.Text
}

// quietModules is the number of blank modules placed on each side of a
// hand-built row, wide enough to satisfy the quiet-zone checks in
// oned.DecodeUPCEAN and the Code 128 reader.
const quietModules = 12

// expandRun turns a sequence of element widths into a row of modules,
// alternating bar/space starting with a bar, mirroring the module layout
// every format in oned actually produces: the decoders match on relative
// run widths, not on which run is nominally a bar, so reconstructing widths
// from the package's own pattern tables is enough to drive them without a
// renderer.
func expandRun(widths []int) []bool {
	modules := make([]bool, 0, 16)
	bar := true
	for _, w := range widths {
		for i := 0; i < w; i++ {
			modules = append(modules, bar)
		}
		bar = !bar
	}
	return modules
}

func rowFromRuns(runs ...[]int) []bool {
	var flat []int
	for _, r := range runs {
		flat = append(flat, r...)
	}
	body := expandRun(flat)
	row := make([]bool, len(body)+2*quietModules)
	copy(row[quietModules:], body)
	return row
}

// buildEAN8Row lays out an EAN-8 row for a 7-digit payload plus its computed
// check digit, using oned's own guard and L-pattern tables; EAN-8 has no
// left/right parity split, unlike EAN-13 and UPC-E.
func buildEAN8Row(payload string) []bool {
	check := oned.GetStandardUPCEANChecksum(payload)
	digits := payload + string(rune('0'+check))

	runs := [][]int{oned.UPCEANStartEndPattern}
	for x := 0; x < 4; x++ {
		runs = append(runs, oned.LPatterns[digits[x]-'0'])
	}
	runs = append(runs, oned.UPCEANMiddlePattern)
	for x := 0; x < 4; x++ {
		runs = append(runs, oned.LPatterns[digits[4+x]-'0'])
	}
	runs = append(runs, oned.UPCEANStartEndPattern)
	return rowFromRuns(runs...)
}

// buildCode128Row lays out a Code Set B row (start/checksum/stop computed
// per the Code 128 spec) using oned's exported symbol pattern table. The
// start-B (104) and stop (106) codeword values are fixed constants of the
// symbology, not something the reader package re-exports.
func buildCode128Row(text string) []bool {
	const startB, stop = 104, 106

	codes := []int{startB}
	checksum := startB
	for i := 0; i < len(text); i++ {
		value := int(text[i]) - 32 // Code Set B: codeword = ASCII - 32
		codes = append(codes, value)
		checksum += (i + 1) * value
	}
	codes = append(codes, checksum%103)
	codes = append(codes, stop)

	var runs [][]int
	for _, c := range codes {
		runs = append(runs, oned.Code128Patterns[c])
	}
	return rowFromRuns(runs...)
}

func TestRoundTripEAN8ThroughImage(t *testing.T) {
	const payload = "1234567"
	modules := buildEAN8Row(payload)
	decoded := decodeRow(t, modules, zxinggo.FormatEAN8)
	check := oned.GetStandardUPCEANChecksum(payload)
	want := payload + string(rune('0'+check))
	if decoded != want {
		t.Errorf("EAN-8 round-trip: got %q, want %q", decoded, want)
	}
}

func TestRoundTripCode128ThroughImage(t *testing.T) {
	const content = "Hello123"
	modules := buildCode128Row(content)
	decoded := decodeRow(t, modules, zxinggo.FormatCode128)
	if decoded != content {
		t.Errorf("Code128 round-trip: got %q, want %q", decoded, content)
	}
}

func TestImageLuminanceSource(t *testing.T) {
	// A small synthetic checkerboard exercises the ImageLuminanceSource
	// plumbing (Width/Height/Row/Matrix) independent of any barcode format.
	img := image.NewGray(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if (x+y)%2 == 0 {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	source := zxinggo.NewGrayImageLuminanceSource(img)

	if source.Width() != img.Bounds().Dx() {
		t.Errorf("width: got %d, want %d", source.Width(), img.Bounds().Dx())
	}
	if source.Height() != img.Bounds().Dy() {
		t.Errorf("height: got %d, want %d", source.Height(), img.Bounds().Dy())
	}

	lum := source.Matrix()
	if len(lum) != source.Width()*source.Height() {
		t.Errorf("matrix length: got %d, want %d", len(lum), source.Width()*source.Height())
	}

	row := source.Row(0, nil)
	if len(row) != source.Width() {
		t.Errorf("row length: got %d, want %d", len(row), source.Width())
	}
}
