package oned

import zxinggo "github.com/arvovision/barcode"

func init() {
	// Register all 1D readers via the multi-format 1D reader.
	oneDReaderFactory := func(opts *zxinggo.DecodeOptions) zxinggo.Reader {
		return NewMultiFormatOneDReader(opts)
	}
	zxinggo.RegisterReader(zxinggo.FormatCode128, oneDReaderFactory)
	zxinggo.RegisterReader(zxinggo.FormatCode39, oneDReaderFactory)
	zxinggo.RegisterReader(zxinggo.FormatEAN13, oneDReaderFactory)
	zxinggo.RegisterReader(zxinggo.FormatEAN8, oneDReaderFactory)
	zxinggo.RegisterReader(zxinggo.FormatUPCA, oneDReaderFactory)
	zxinggo.RegisterReader(zxinggo.FormatUPCE, oneDReaderFactory)
	zxinggo.RegisterReader(zxinggo.FormatITF, oneDReaderFactory)
	zxinggo.RegisterReader(zxinggo.FormatCodabar, oneDReaderFactory)
	zxinggo.RegisterReader(zxinggo.FormatRSS14, oneDReaderFactory)
	zxinggo.RegisterReader(zxinggo.FormatRSSExpanded, oneDReaderFactory)
	zxinggo.RegisterReader(zxinggo.FormatCode93, oneDReaderFactory)
}
