package aztec

import zxinggo "github.com/arvovision/barcode"

func init() {
	zxinggo.RegisterReader(zxinggo.FormatAztec, func(opts *zxinggo.DecodeOptions) zxinggo.Reader {
		return NewReader()
	})
}
