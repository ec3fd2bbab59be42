package colorspace

import (
	"errors"
	"fmt"

	"github.com/tsawler/pdfraster/core"
)

var (
	// ErrInvalidPalette is returned when a palette lookup source has a
	// shape this package cannot interpret.
	ErrInvalidPalette = errors.New("invalid palette")

	// ErrPaletteTooShort is returned when a lookup source holds fewer
	// bytes than the declared palette size requires.
	ErrPaletteTooShort = errors.New("palette too short")
)

// Color is one palette entry, an 8-bit-per-component RGB triple.
type Color struct {
	R, G, B uint8
}

// Palette is an ordered sequence of color entries, addressed by pixel
// index.
type Palette []Color

// ResolveLookup resolves an indexed space's palette source to its raw
// bytes, three bytes per entry in source order.
//
// An inline string yields its raw octets unchanged. A reference is
// dereferenced: a stream object yields its fully unfiltered content (the
// palette stream's own filter chain is undone), and a non-stream object
// yields an empty palette. Any other shape is invalid.
func ResolveLookup(lookup core.Object, r Resolver) ([]byte, error) {
	switch v := lookup.(type) {
	case core.String:
		return v.Bytes(), nil

	case core.IndirectRef:
		resolved, err := r.Resolve(v)
		if err != nil {
			return nil, fmt.Errorf("palette reference: %w", err)
		}
		if stream, ok := resolved.(*core.Stream); ok {
			data, err := stream.Decode()
			if err != nil {
				return nil, fmt.Errorf("palette stream: %w", err)
			}
			return data, nil
		}
		// Referenced object carries no stream: the palette is empty.
		return nil, nil
	}

	if lookup == nil {
		return nil, fmt.Errorf("%w: missing lookup", ErrInvalidPalette)
	}
	return nil, fmt.Errorf("%w: lookup is %s", ErrInvalidPalette, lookup.Kind())
}

// ToPalette slices count consecutive RGB triples from raw. Missing bytes
// are an error, never padded.
func ToPalette(raw []byte, count int) (Palette, error) {
	if len(raw) < count*3 {
		return nil, fmt.Errorf("%w: need %d bytes for %d entries, have %d",
			ErrPaletteTooShort, count*3, count, len(raw))
	}

	pal := make(Palette, count)
	for i := range pal {
		pal[i] = Color{R: raw[i*3], G: raw[i*3+1], B: raw[i*3+2]}
	}
	return pal, nil
}

// GrayRamp synthesizes the palette for a grayscale image: 2^bitsPerComponent
// evenly spaced gray levels (capped at 256), entry i at intensity
// round(i*255/(levels-1)). A single-level ramp is black.
func GrayRamp(bitsPerComponent int) Palette {
	levels := 1
	if bitsPerComponent > 0 && bitsPerComponent < 9 {
		levels = 1 << bitsPerComponent
	} else if bitsPerComponent >= 9 {
		levels = 256
	}

	pal := make(Palette, levels)
	if levels == 1 {
		return pal
	}
	for i := range pal {
		v := uint8((i*255*2 + levels - 1) / ((levels - 1) * 2))
		pal[i] = Color{R: v, G: v, B: v}
	}
	return pal
}
