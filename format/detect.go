// Package format provides image encoding detection from magic bytes.
package format

import "bytes"

// Encoding represents a recognized embedded image encoding.
type Encoding int

const (
	// Unknown indicates an unrecognized encoding.
	Unknown Encoding = iota
	// JPEG indicates a baseline or progressive JPEG stream.
	JPEG
	// PNG indicates a PNG image.
	PNG
	// TIFF indicates a TIFF container, either byte order.
	TIFF
	// JPEG2000 indicates a JP2 container or a raw JPEG 2000 codestream.
	JPEG2000
	// JBIG2 indicates a JBIG2 embedded stream.
	JBIG2
)

// String returns the string representation of the encoding.
func (e Encoding) String() string {
	switch e {
	case JPEG:
		return "JPEG"
	case PNG:
		return "PNG"
	case TIFF:
		return "TIFF"
	case JPEG2000:
		return "JPEG2000"
	case JBIG2:
		return "JBIG2"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the encoding.
func (e Encoding) Extension() string {
	switch e {
	case JPEG:
		return ".jpg"
	case PNG:
		return ".png"
	case TIFF:
		return ".tif"
	case JPEG2000:
		return ".jp2"
	case JBIG2:
		return ".jb2"
	default:
		return ""
	}
}

var (
	pngMagic   = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}
	jp2Magic   = []byte{0x00, 0x00, 0x00, 0x0C, 'j', 'P', ' ', ' ', '\r', '\n', 0x87, '\n'}
	jbig2Magic = []byte{0x97, 'J', 'B', '2', '\r', '\n', 0x1A, '\n'}
)

// Detect determines the image encoding from the leading magic bytes of
// data. Returns Unknown if no signature matches; raw raster and fax data
// carry no signature and always detect as Unknown.
func Detect(data []byte) Encoding {
	if len(data) < 4 {
		return Unknown
	}

	// JPEG: SOI marker.
	if data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF {
		return JPEG
	}

	if bytes.HasPrefix(data, pngMagic) {
		return PNG
	}

	// TIFF: "II" little-endian or "MM" big-endian, then version 42.
	if data[0] == 'I' && data[1] == 'I' && data[2] == 42 && data[3] == 0 {
		return TIFF
	}
	if data[0] == 'M' && data[1] == 'M' && data[2] == 0 && data[3] == 42 {
		return TIFF
	}

	// JPEG 2000: JP2 signature box, or a bare codestream's SOC+SIZ markers.
	if bytes.HasPrefix(data, jp2Magic) {
		return JPEG2000
	}
	if data[0] == 0xFF && data[1] == 0x4F && data[2] == 0xFF && data[3] == 0x51 {
		return JPEG2000
	}

	if bytes.HasPrefix(data, jbig2Magic) {
		return JBIG2
	}

	return Unknown
}
