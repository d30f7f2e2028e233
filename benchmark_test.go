package zxinggo_test

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"testing"

	zxinggo "github.com/arvovision/barcode"
	"github.com/arvovision/barcode/binarizer"

	_ "github.com/arvovision/barcode/aztec"
	_ "github.com/arvovision/barcode/datamatrix"
	_ "github.com/arvovision/barcode/oned"
	_ "github.com/arvovision/barcode/pdf417"
	_ "github.com/arvovision/barcode/qrcode"
)

func loadTestImage(path string) image.Image {
	f, err := os.Open(path)
	if err != nil {
		panic("failed to open image: " + err.Error())
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		panic("failed to decode image: " + err.Error())
	}
	return img
}

var decodeTests = []struct {
	name   string
	path   string
	format zxinggo.Format
}{
	{"QRCode", "testdata/blackbox/qrcode-1/1.png", zxinggo.FormatQRCode},
	{"DataMatrix", "testdata/blackbox/datamatrix-1/0123456789.png", zxinggo.FormatDataMatrix},
	{"PDF417", "testdata/blackbox/pdf417-1/01.png", zxinggo.FormatPDF417},
	{"Aztec", "testdata/blackbox/aztec-1/abc-37x37.png", zxinggo.FormatAztec},
	{"Code128", "testdata/blackbox/code128-1/1.png", zxinggo.FormatCode128},
	{"EAN13", "testdata/blackbox/ean13-1/1.png", zxinggo.FormatEAN13},
}

func BenchmarkDecode(b *testing.B) {
	for _, tc := range decodeTests {
		b.Run(tc.name, func(b *testing.B) {
			img := loadTestImage(tc.path)
			opts := &zxinggo.DecodeOptions{
				PossibleFormats: []zxinggo.Format{tc.format},
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				// Create fresh binarizer/bitmap each iteration since HybridBinarizer caches
				source := zxinggo.NewImageLuminanceSource(img)
				bitmap := zxinggo.NewBinaryBitmap(binarizer.NewHybrid(source))
				_, err := zxinggo.Decode(bitmap, opts)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
