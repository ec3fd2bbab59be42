package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"

	"github.com/gen2brain/jpegn"

	"github.com/tsawler/pdfraster/colorspace"
	"github.com/tsawler/pdfraster/core"
	"github.com/tsawler/pdfraster/format"
)

// decodeDCT decodes an image whose terminal filter is DCTDecode. The
// stream bytes are a complete, self-describing JPEG and are handed to the
// photographic decoder unmodified; the result is reshaped into a raster in
// whatever format the decoder reports.
func decodeDCT(stream *core.Stream) (*DecodedRaster, error) {
	if enc := format.Detect(stream.Data); enc != format.JPEG {
		return nil, fmt.Errorf("%w: photographic data is %s, want JPEG", ErrUnsupportedEncoding, enc)
	}

	img, err := jpegn.Decode(bytes.NewReader(stream.Data))
	if err != nil {
		return nil, fmt.Errorf("photographic decode: %w", err)
	}

	if gray, ok := img.(*image.Gray); ok {
		return grayRaster(gray), nil
	}
	return rgbRaster(img), nil
}

// grayRaster reshapes an 8-bit grayscale image into an 8bpp indexed raster
// over a synthesized gray ramp.
func grayRaster(gray *image.Gray) *DecodedRaster {
	b := gray.Bounds()
	out := newRaster(b.Dx(), b.Dy(), Format8bppIndexed)
	out.Palette = colorspace.GrayRamp(8)
	for y := 0; y < out.Height; y++ {
		copy(out.Pix[y*out.Stride:(y+1)*out.Stride], gray.Pix[y*gray.Stride:])
	}
	return out
}

// rgbRaster reshapes a color image into a 24bpp raster, storing components
// in blue-green-red order.
func rgbRaster(img image.Image) *DecodedRaster {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}

	out := newRaster(b.Dx(), b.Dy(), Format24bppRGB)
	for y := 0; y < out.Height; y++ {
		src := rgba.Pix[y*rgba.Stride:]
		dst := out.Pix[y*out.Stride:]
		for x := 0; x < out.Width; x++ {
			dst[x*3+0] = src[x*4+2]
			dst[x*3+1] = src[x*4+1]
			dst[x*3+2] = src[x*4+0]
		}
	}
	return out
}
