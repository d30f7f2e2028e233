package maxicode

import zxinggo "github.com/arvovision/barcode"

func init() {
	zxinggo.RegisterReader(zxinggo.FormatMaxiCode, func(opts *zxinggo.DecodeOptions) zxinggo.Reader {
		return NewReader()
	})
}
