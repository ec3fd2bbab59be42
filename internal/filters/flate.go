package filters

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
)

// FlateDecode decompresses Flate (zlib/deflate) compressed data and undoes
// the predictor named by the Predictor decode parameter, if any.
func FlateDecode(data []byte, params Params) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("zlib: %w", err)
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("zlib: %w", err)
	}

	predictor := params.Int("Predictor", 1)
	switch {
	case predictor == 1:
		return out, nil
	case predictor == 2:
		return tiffPredictor(out, params)
	case predictor >= 10 && predictor <= 15:
		return pngPredictor(out, params)
	}
	return nil, fmt.Errorf("unsupported predictor: %d", predictor)
}

// tiffPredictor undoes TIFF predictor 2, which stores each sample as a
// delta against the sample one pixel to its left.
func tiffPredictor(data []byte, params Params) ([]byte, error) {
	columns := params.Int("Columns", 1)
	colors := params.Int("Colors", 1)
	if bpc := params.Int("BitsPerComponent", 8); bpc != 8 {
		return nil, fmt.Errorf("TIFF predictor: unsupported bits per component %d", bpc)
	}

	rowLen := columns * colors
	if rowLen <= 0 || len(data)%rowLen != 0 {
		return nil, fmt.Errorf("TIFF predictor: data length %d not a multiple of row length %d", len(data), rowLen)
	}

	for row := 0; row < len(data); row += rowLen {
		for i := colors; i < rowLen; i++ {
			data[row+i] += data[row+i-colors]
		}
	}
	return data, nil
}

// pngPredictor undoes the PNG predictor family. Each encoded row carries a
// leading tag byte (0-4) selecting the algorithm for that row; the tag
// bytes are stripped from the output.
func pngPredictor(data []byte, params Params) ([]byte, error) {
	columns := params.Int("Columns", 1)
	colors := params.Int("Colors", 1)
	if bpc := params.Int("BitsPerComponent", 8); bpc != 8 {
		return nil, fmt.Errorf("PNG predictor: unsupported bits per component %d", bpc)
	}

	rowLen := columns * colors
	if rowLen <= 0 || len(data)%(rowLen+1) != 0 {
		return nil, fmt.Errorf("PNG predictor: data length %d not a multiple of row length %d", len(data), rowLen+1)
	}

	rows := len(data) / (rowLen + 1)
	out := make([]byte, 0, rows*rowLen)
	prev := make([]byte, rowLen)
	cur := make([]byte, rowLen)

	for r := 0; r < rows; r++ {
		tag := data[r*(rowLen+1)]
		copy(cur, data[r*(rowLen+1)+1:(r+1)*(rowLen+1)])

		switch tag {
		case 0: // None
		case 1: // Sub
			for i := colors; i < rowLen; i++ {
				cur[i] += cur[i-colors]
			}
		case 2: // Up
			for i := range cur {
				cur[i] += prev[i]
			}
		case 3: // Average
			for i := range cur {
				var left byte
				if i >= colors {
					left = cur[i-colors]
				}
				cur[i] += byte((int(left) + int(prev[i])) / 2)
			}
		case 4: // Paeth
			for i := range cur {
				var left, upLeft byte
				if i >= colors {
					left = cur[i-colors]
					upLeft = prev[i-colors]
				}
				cur[i] += paeth(left, prev[i], upLeft)
			}
		default:
			return nil, fmt.Errorf("PNG predictor: unknown row tag %d", tag)
		}

		out = append(out, cur...)
		prev, cur = cur, prev
	}
	return out, nil
}

// paeth selects the neighbor closest to the linear prediction a+b-c, as
// defined by the PNG specification.
func paeth(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))
	if pa <= pb && pa <= pc {
		return a
	}
	if pb <= pc {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
