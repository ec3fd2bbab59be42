package raster

import (
	"bytes"
	"testing"

	"github.com/tsawler/pdfraster/colorspace"
	"github.com/tsawler/pdfraster/core"
)

func TestParseFaxParamsDefaults(t *testing.T) {
	for _, dict := range []core.Dict{nil, {}} {
		got := parseFaxParams(dict)
		want := FaxParams{Columns: 1728, EndOfBlock: true}
		if got != want {
			t.Errorf("parseFaxParams(%v) = %+v, want %+v", dict, got, want)
		}
	}
}

func TestParseFaxParamsOverrides(t *testing.T) {
	dict := core.Dict{
		"K":                      core.Int(-1),
		"Columns":                core.Int(8),
		"Rows":                   core.Int(2),
		"EndOfLine":              core.Bool(true),
		"EncodedByteAlign":       core.Bool(true),
		"EndOfBlock":             core.Bool(false),
		"BlackIs1":               core.Bool(true),
		"DamagedRowsBeforeError": core.Int(3),
	}

	got := parseFaxParams(dict)
	want := FaxParams{
		K:                      -1,
		Columns:                8,
		Rows:                   2,
		EndOfLine:              true,
		EncodedByteAlign:       true,
		EndOfBlock:             false,
		BlackIs1:               true,
		DamagedRowsBeforeError: 3,
	}
	if got != want {
		t.Errorf("parseFaxParams = %+v, want %+v", got, want)
	}
}

func TestFaxParmsDictShapes(t *testing.T) {
	dict := core.Dict{"K": core.Int(-1)}

	tests := []struct {
		name   string
		parms  core.Object
		wantOK bool
	}{
		{"direct dict", dict, true},
		{"array of dicts", core.Array{dict}, true},
		{"absent", nil, false},
		{"array of nulls", core.Array{core.Null{}}, false},
		{"wrong type", core.Int(7), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream := &core.Stream{Dict: core.Dict{}}
			if tt.parms != nil {
				stream.Dict["DecodeParms"] = tt.parms
			}
			got := faxParmsDict(stream)
			if (got != nil) != tt.wantOK {
				t.Errorf("faxParmsDict = %v, wantOK %v", got, tt.wantOK)
			}
		})
	}
}

// faxImage builds an 8x2 all-white Group 4 image. Each all-white scanline
// codes as a single vertical-mode bit, so the whole image packs into one
// byte.
func faxImage(parms core.Dict) *core.Stream {
	dict := core.Dict{
		"Subtype": core.Name("Image"),
		"Width":   core.Int(8),
		"Height":  core.Int(2),
		"Filter":  core.Name("CCITTFaxDecode"),
	}
	if parms != nil {
		dict["DecodeParms"] = parms
	}
	return &core.Stream{Dict: dict, Data: []byte{0xC0}}
}

func TestDecodeFaxAllWhite(t *testing.T) {
	stream := faxImage(core.Dict{
		"K":       core.Int(-1),
		"Columns": core.Int(8),
		"Rows":    core.Int(2),
	})

	got, err := Decode(stream, emptyResolver())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got.Format != Format1bppIndexed {
		t.Errorf("Format = %v, want 1bpp indexed", got.Format)
	}
	if got.Width != 8 || got.Height != 2 {
		t.Errorf("size = %dx%d, want 8x2", got.Width, got.Height)
	}
	if got.Stride != 1 {
		t.Errorf("Stride = %d, want 1", got.Stride)
	}

	white := colorspace.Color{R: 255, G: 255, B: 255}
	if len(got.Palette) != 2 || got.Palette[0] != white || got.Palette[1] != (colorspace.Color{}) {
		t.Errorf("Palette = %v, want [white black]", got.Palette)
	}

	// White maps to the 0 bit, so an all-white image is an all-zero buffer.
	if !bytes.Equal(got.Pix, []byte{0x00, 0x00}) {
		t.Errorf("Pix = %v, want all zero", got.Pix)
	}
	if got.At(3, 1) != white {
		t.Errorf("At(3,1) = %v, want white", got.At(3, 1))
	}
}

func TestDecodeFaxBlackIs1FlipsPalette(t *testing.T) {
	stream := faxImage(core.Dict{
		"K":        core.Int(-1),
		"Columns":  core.Int(8),
		"Rows":     core.Int(2),
		"BlackIs1": core.Bool(true),
	})

	got, err := Decode(stream, emptyResolver())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	white := colorspace.Color{R: 255, G: 255, B: 255}
	if len(got.Palette) != 2 || got.Palette[0] != (colorspace.Color{}) || got.Palette[1] != white {
		t.Errorf("Palette = %v, want [black white]", got.Palette)
	}
	// The pixel buffer is untouched by the convention flip.
	if !bytes.Equal(got.Pix, []byte{0x00, 0x00}) {
		t.Errorf("Pix = %v, want all zero", got.Pix)
	}
}

func TestDecodeFaxMissingDimensions(t *testing.T) {
	stream := faxImage(nil)
	delete(stream.Dict, "Height")

	if _, err := Decode(stream, emptyResolver()); err == nil {
		t.Error("Decode should fail without /Height")
	}
}

func TestDecodeFaxTruncatedData(t *testing.T) {
	stream := faxImage(core.Dict{
		"K":       core.Int(-1),
		"Columns": core.Int(8),
		"Rows":    core.Int(2),
	})
	stream.Data = nil

	if _, err := Decode(stream, emptyResolver()); err == nil {
		t.Error("Decode should fail when the coded data runs out mid-image")
	}
}
