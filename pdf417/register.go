package pdf417

import zxinggo "github.com/arvovision/barcode"

func init() {
	zxinggo.RegisterReader(zxinggo.FormatPDF417, func(opts *zxinggo.DecodeOptions) zxinggo.Reader {
		return NewPDF417Reader()
	})
}
