package datamatrix

import zxinggo "github.com/arvovision/barcode"

func init() {
	zxinggo.RegisterReader(zxinggo.FormatDataMatrix, func(opts *zxinggo.DecodeOptions) zxinggo.Reader {
		return NewReader()
	})
}
