package raster

import (
	"fmt"

	"github.com/tsawler/pdfraster/colorspace"
	"github.com/tsawler/pdfraster/core"
	"github.com/tsawler/pdfraster/internal/filters"
)

// FaxParams holds the CCITTFaxDecode parameters read from an image's
// /DecodeParms dictionary. Absent entries take the PDF defaults recorded
// on each field.
type FaxParams struct {
	// K selects the coding scheme: negative is pure Group 4, zero is
	// Group 3 one-dimensional, positive is mixed Group 3. Default 0.
	K int
	// EndOfLine indicates EOL codes are present. Default false.
	EndOfLine bool
	// EncodedByteAlign pads each coded scanline to a byte boundary.
	// Default false.
	EncodedByteAlign bool
	// Columns is the scanline width in pixels. Default 1728.
	Columns int
	// Rows is the image height, 0 meaning unspecified. Default 0.
	Rows int
	// EndOfBlock indicates the data ends with an end-of-block pattern.
	// Default true.
	EndOfBlock bool
	// BlackIs1 inverts the bit-to-color convention: if true a 1 bit is
	// black. Default false (a 0 bit is black).
	BlackIs1 bool
	// DamagedRowsBeforeError is the number of damaged rows tolerated
	// before decoding fails. Default 0.
	DamagedRowsBeforeError int
}

// parseFaxParams reads fax decode parameters from dict. A nil dictionary
// yields all defaults.
func parseFaxParams(dict core.Dict) FaxParams {
	p := FaxParams{Columns: 1728, EndOfBlock: true}
	if dict == nil {
		return p
	}
	if v, ok := dict.GetInt("K"); ok {
		p.K = int(v)
	}
	if v, ok := dict.GetBool("EndOfLine"); ok {
		p.EndOfLine = bool(v)
	}
	if v, ok := dict.GetBool("EncodedByteAlign"); ok {
		p.EncodedByteAlign = bool(v)
	}
	if v, ok := dict.GetInt("Columns"); ok {
		p.Columns = int(v)
	}
	if v, ok := dict.GetInt("Rows"); ok {
		p.Rows = int(v)
	}
	if v, ok := dict.GetBool("EndOfBlock"); ok {
		p.EndOfBlock = bool(v)
	}
	if v, ok := dict.GetBool("BlackIs1"); ok {
		p.BlackIs1 = bool(v)
	}
	if v, ok := dict.GetInt("DamagedRowsBeforeError"); ok {
		p.DamagedRowsBeforeError = int(v)
	}
	return p
}

// faxParmsDict extracts the /DecodeParms dictionary from an image stream,
// accepting either a direct dictionary or a parameter array aligned with a
// single-entry filter declaration. Anything else counts as absent.
func faxParmsDict(stream *core.Stream) core.Dict {
	switch v := stream.Dict.Get("DecodeParms").(type) {
	case core.Dict:
		return v
	case core.Array:
		if dict, ok := v.Get(0).(core.Dict); ok {
			return dict
		}
	}
	return nil
}

// decodeFax decodes an image whose terminal filter is CCITTFaxDecode. The
// raw bytes are wrapped in a synthesized single-strip TIFF container, the
// container is handed to the scanline codec, and the decoded bi-level rows
// become a 1bpp raster over a two-entry palette.
func decodeFax(stream *core.Stream) (*DecodedRaster, error) {
	desc, err := newFaxDescriptor(stream)
	if err != nil {
		return nil, err
	}
	params := parseFaxParams(faxParmsDict(stream))

	container := BuildTIFFContainer(desc, stream.Data)
	strip, err := ParseTIFFContainer(container)
	if err != nil {
		return nil, fmt.Errorf("fax container: %w", err)
	}

	rows, err := filters.FaxDecode(strip.Data, strip.Width, strip.Height,
		strip.Compression == TIFFCompressionGroup4, params.EncodedByteAlign)
	if err != nil {
		return nil, fmt.Errorf("fax decode: %w", err)
	}

	out := newRaster(desc.Width, desc.Height, Format1bppIndexed)
	if params.BlackIs1 {
		out.Palette = colorspace.Palette{{}, {R: 255, G: 255, B: 255}}
	} else {
		out.Palette = colorspace.Palette{{R: 255, G: 255, B: 255}, {}}
	}

	// The codec emits byte-padded rows at the same stride as the buffer.
	// A truncated stream may yield fewer rows than declared; the missing
	// rows stay zeroed.
	n := copy(out.Pix, rows)
	if n < len(out.Pix) && n%out.Stride != 0 {
		return nil, fmt.Errorf("fax decode: partial scanline (%d of %d bytes)", n, len(out.Pix))
	}

	return out, nil
}
