package raster

import (
	"fmt"

	"github.com/tsawler/pdfraster/colorspace"
)

// Format identifies the storage layout of a decoded pixel buffer.
type Format int

const (
	// Format1bppIndexed packs eight palette indices per byte, MSB first.
	Format1bppIndexed Format = iota
	// Format4bppIndexed packs two palette indices per byte, high nibble
	// first. Two-bit source samples are stored one per nibble.
	Format4bppIndexed
	// Format8bppIndexed stores one palette index per byte.
	Format8bppIndexed
	// Format24bppRGB stores three bytes per pixel in blue-green-red order.
	Format24bppRGB
)

func (f Format) String() string {
	switch f {
	case Format1bppIndexed:
		return "1bpp indexed"
	case Format4bppIndexed:
		return "4bpp indexed"
	case Format8bppIndexed:
		return "8bpp indexed"
	case Format24bppRGB:
		return "24bpp RGB"
	default:
		return "unknown"
	}
}

// BitsPerPixel returns the storage width of one pixel.
func (f Format) BitsPerPixel() int {
	switch f {
	case Format1bppIndexed:
		return 1
	case Format4bppIndexed:
		return 4
	case Format8bppIndexed:
		return 8
	case Format24bppRGB:
		return 24
	}
	return 0
}

// Indexed reports whether pixels are palette indices rather than direct
// component values.
func (f Format) Indexed() bool { return f != Format24bppRGB }

// Stride returns the byte length of one buffer row for an image width
// pixels wide: the packed bit count rounded up to a whole byte.
func (f Format) Stride(width int) int {
	return (width*f.BitsPerPixel() + 7) / 8
}

// Map selects the storage format for a bit depth and color space. It is a
// pure function, total over the documented combinations; everything else
// fails with ErrUnsupportedBitDepth.
//
// Two-bit samples have no native storage slot and are widened to four bits
// per pixel; the samples themselves are not rescaled.
func Map(bitsPerComponent int, kind colorspace.Kind, indexed bool) (Format, error) {
	switch bitsPerComponent {
	case 1:
		return Format1bppIndexed, nil
	case 2:
		return Format4bppIndexed, nil
	case 4:
		if indexed {
			return Format4bppIndexed, nil
		}
	case 8:
		if indexed {
			return Format8bppIndexed, nil
		}
		switch kind {
		case colorspace.Gray:
			return Format8bppIndexed, nil
		case colorspace.RGB:
			return Format24bppRGB, nil
		}
	}
	return 0, fmt.Errorf("%w: %d bits per component with %s color space (indexed=%t)",
		ErrUnsupportedBitDepth, bitsPerComponent, kind, indexed)
}
