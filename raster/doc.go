// Package raster decodes the pixel data of PDF image XObjects.
//
// An image stream declares one or more filters. All filters except the
// last are generic byte transforms; the last, terminal filter defines the
// pixel encoding and selects one of three decoders:
//
//   - DCTDecode: the stream is a self-contained JPEG, handed whole to a
//     photographic decoder.
//   - FlateDecode: the stream inflates to packed raw samples whose layout
//     is derived from the image's bit depth and color space.
//   - CCITTFaxDecode: the stream is Group 3/4 fax data; a minimal
//     single-strip TIFF container is synthesized around it so a generic
//     scanline codec can decode it.
//
// [Decode] resolves the chain and dispatches. A terminal filter outside
// this set yields a nil raster without error: the image is treated as
// non-decodable rather than failing the surrounding extraction.
//
// Decoded pixels are returned as a [DecodedRaster]: a packed buffer plus
// its [Format], row stride, and, for every format except 24-bit RGB, the
// palette that gives the indices meaning.
//
// All functions are synchronous and touch no shared state; distinct images
// may be decoded concurrently against the same read-only object graph.
package raster
