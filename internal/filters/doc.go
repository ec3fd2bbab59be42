// Package filters implements the generic PDF stream filters used by the
// image extraction pipeline.
//
// # Generic Byte Transforms
//
// FlateDecode, ASCIIHexDecode, and ASCII85Decode map a byte stream to a
// byte stream and can therefore appear anywhere in a filter chain. They are
// applied through [ApplyGeneric]; [Generic] reports whether a filter name
// belongs to this set.
//
// FlateDecode supports the TIFF and PNG predictor algorithms selected by
// the Predictor decode parameter:
//   - 1: no prediction (default)
//   - 2: TIFF predictor 2
//   - 10-15: PNG predictors (None, Sub, Up, Average, Paeth)
//
// # CCITT Fax
//
// [FaxDecode] decodes CCITT Group 3/4 compressed scanlines into packed
// 1-bit rows. It is not a generic transform: its output is raster data, not
// a byte stream, so it may only appear as the terminal filter of a chain.
package filters
