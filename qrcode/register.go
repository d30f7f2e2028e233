package qrcode

import zxinggo "github.com/arvovision/barcode"

func init() {
	zxinggo.RegisterReader(zxinggo.FormatQRCode, func(opts *zxinggo.DecodeOptions) zxinggo.Reader {
		return NewReader()
	})
}
