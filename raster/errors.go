package raster

import "errors"

var (
	// ErrMalformedFilter is returned when an image's filter declaration is
	// missing or is neither a name nor an array of names.
	ErrMalformedFilter = errors.New("malformed filter declaration")

	// ErrUnsupportedFilterChain is returned when a non-terminal chain
	// entry is not a recognized generic byte transform.
	ErrUnsupportedFilterChain = errors.New("unsupported filter chain")

	// ErrUnsupportedBitDepth is returned for bit-depth/color-space
	// combinations outside the supported pixel format table.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")

	// ErrUnsupportedEncoding is returned for inputs that parse fine but
	// cannot be decoded into pixels: CMYK images, indexed spaces over a
	// non-RGB base, or DCT streams whose payload is not JPEG.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")

	// ErrMissingAttribute is returned when a stream confirmed to be an
	// image lacks Width, Height, or BitsPerComponent.
	ErrMissingAttribute = errors.New("missing required image attribute")
)
