package raster

import (
	"github.com/tsawler/pdfraster/colorspace"
)

// DecodedRaster is an image's decoded, addressable pixel buffer.
//
// Pix holds Height rows of Stride bytes each. For the indexed formats a
// pixel is a palette index; Palette must be consulted to obtain its color.
// For Format24bppRGB the palette is nil and each pixel's three bytes are
// stored blue-green-red, the reverse of the source component order.
//
// The buffer is exclusively owned by the caller; decoders retain no
// references into it.
type DecodedRaster struct {
	Width   int
	Height  int
	Format  Format
	Palette colorspace.Palette
	Stride  int
	Pix     []byte
}

// newRaster allocates a zeroed raster for the given dimensions and format.
func newRaster(width, height int, format Format) *DecodedRaster {
	stride := format.Stride(width)
	return &DecodedRaster{
		Width:  width,
		Height: height,
		Format: format,
		Stride: stride,
		Pix:    make([]byte, height*stride),
	}
}

// PixelIndex returns the palette index of the pixel at (x, y). It is only
// meaningful for the indexed formats.
func (d *DecodedRaster) PixelIndex(x, y int) uint8 {
	row := d.Pix[y*d.Stride:]
	switch d.Format {
	case Format1bppIndexed:
		return (row[x/8] >> (7 - x%8)) & 1
	case Format4bppIndexed:
		if x%2 == 0 {
			return row[x/2] >> 4
		}
		return row[x/2] & 0x0F
	case Format8bppIndexed:
		return row[x]
	}
	return 0
}

// At returns the color of the pixel at (x, y), looking indices up through
// the palette. Out-of-palette indices return black.
func (d *DecodedRaster) At(x, y int) colorspace.Color {
	if d.Format == Format24bppRGB {
		p := d.Pix[y*d.Stride+x*3:]
		return colorspace.Color{R: p[2], G: p[1], B: p[0]}
	}
	idx := int(d.PixelIndex(x, y))
	if idx >= len(d.Palette) {
		return colorspace.Color{}
	}
	return d.Palette[idx]
}
