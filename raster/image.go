package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
)

// Image converts the raster to a standard library image, resolving palette
// indices to colors. Indexed formats become *image.Paletted; 24-bit RGB
// becomes *image.RGBA.
func (d *DecodedRaster) Image() image.Image {
	if d.Format == Format24bppRGB {
		img := image.NewRGBA(image.Rect(0, 0, d.Width, d.Height))
		for y := 0; y < d.Height; y++ {
			src := d.Pix[y*d.Stride:]
			dst := img.Pix[y*img.Stride:]
			for x := 0; x < d.Width; x++ {
				dst[x*4+0] = src[x*3+2]
				dst[x*4+1] = src[x*3+1]
				dst[x*4+2] = src[x*3+0]
				dst[x*4+3] = 255
			}
		}
		return img
	}

	pal := make(color.Palette, len(d.Palette))
	for i, entry := range d.Palette {
		pal[i] = color.RGBA{R: entry.R, G: entry.G, B: entry.B, A: 255}
	}
	if len(pal) == 0 {
		pal = color.Palette{color.Black}
	}

	img := image.NewPaletted(image.Rect(0, 0, d.Width, d.Height), pal)
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			img.Pix[y*img.Stride+x] = d.PixelIndex(x, y)
		}
	}
	return img
}

// PNG encodes the raster as PNG bytes, suitable for handing to an OCR
// engine or writing to disk.
func (d *DecodedRaster) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, d.Image()); err != nil {
		return nil, fmt.Errorf("png encode: %w", err)
	}
	return buf.Bytes(), nil
}
