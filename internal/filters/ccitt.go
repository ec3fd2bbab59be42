package filters

import (
	"bytes"
	"io"

	"golang.org/x/image/ccitt"
)

// FaxDecode decodes CCITT Group 3/4 fax compressed data into packed 1-bit
// scanlines, MSB first, each row padded to a byte boundary.
//
// The output follows the TIFF WhiteIsZero convention: a 0 bit is white and
// a 1 bit is black. Callers that need the opposite convention remap through
// their palette rather than re-decoding.
//
// A rows value <= 0 lets the decoder detect the image height from the data.
func FaxDecode(data []byte, columns, rows int, group4, byteAlign bool) ([]byte, error) {
	sf := ccitt.Group3
	if group4 {
		sf = ccitt.Group4
	}
	if rows <= 0 {
		rows = ccitt.AutoDetectHeight
	}

	// ccitt's native output has black as the 0 bit; invert for WhiteIsZero.
	opts := &ccitt.Options{Invert: true, Align: byteAlign}

	r := ccitt.NewReader(bytes.NewReader(data), ccitt.MSB, sf, columns, rows, opts)
	return io.ReadAll(r)
}
