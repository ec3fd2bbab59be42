package raster

import (
	"bytes"
	"compress/zlib"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/pdfraster/colorspace"
	"github.com/tsawler/pdfraster/core"
	"github.com/tsawler/pdfraster/resolver"
)

func zlibCompress(data []byte) []byte {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	w.Write(data)
	w.Close()
	return buf.Bytes()
}

func emptyResolver() *resolver.ObjectResolver {
	return resolver.New(resolver.MapSource{})
}

// indexedImage builds the reference scenario: a 2x1 indexed 8-bit image
// with a four-entry RGB palette and pixel bytes 0x01 0x02.
func indexedImage() *core.Stream {
	return &core.Stream{
		Dict: core.Dict{
			"Subtype":          core.Name("Image"),
			"Width":            core.Int(2),
			"Height":           core.Int(1),
			"BitsPerComponent": core.Int(8),
			"Filter":           core.Name("FlateDecode"),
			"ColorSpace": core.Array{
				core.Name("Indexed"),
				core.Name("DeviceRGB"),
				core.Int(3),
				core.String("\x00\x00\x00\xFF\x00\x00\x00\xFF\x00\x00\x00\xFF"),
			},
		},
		Data: zlibCompress([]byte{0x01, 0x02}),
	}
}

func TestDecodeIndexedFlate(t *testing.T) {
	got, err := Decode(indexedImage(), emptyResolver())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got == nil {
		t.Fatal("Decode returned no raster")
	}

	if got.Format != Format8bppIndexed {
		t.Errorf("Format = %v, want 8bpp indexed", got.Format)
	}
	if got.Width != 2 || got.Height != 1 {
		t.Errorf("size = %dx%d, want 2x1", got.Width, got.Height)
	}
	if !bytes.Equal(got.Pix, []byte{0x01, 0x02}) {
		t.Errorf("Pix = %v, want [1 2]", got.Pix)
	}
	if len(got.Palette) != 4 {
		t.Fatalf("palette size = %d, want 4", len(got.Palette))
	}
	if got.Palette[1] != (colorspace.Color{R: 255}) {
		t.Errorf("palette[1] = %v, want red", got.Palette[1])
	}
	if got.Palette[2] != (colorspace.Color{G: 255}) {
		t.Errorf("palette[2] = %v, want green", got.Palette[2])
	}
	if got.At(0, 0) != (colorspace.Color{R: 255}) {
		t.Errorf("At(0,0) = %v, want palette entry 1", got.At(0, 0))
	}
}

func TestDecodeRGB(t *testing.T) {
	// One red and one blue pixel in stream order; storage order reverses
	// the components of each pixel.
	stream := &core.Stream{
		Dict: core.Dict{
			"Width":            core.Int(2),
			"Height":           core.Int(1),
			"BitsPerComponent": core.Int(8),
			"ColorSpace":       core.Name("DeviceRGB"),
			"Filter":           core.Name("FlateDecode"),
		},
		Data: zlibCompress([]byte{255, 0, 0, 0, 0, 255}),
	}

	got, err := Decode(stream, emptyResolver())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got.Format != Format24bppRGB {
		t.Fatalf("Format = %v, want 24bpp RGB", got.Format)
	}
	if got.Palette != nil {
		t.Error("24bpp raster should carry no palette")
	}
	if !bytes.Equal(got.Pix, []byte{0, 0, 255, 255, 0, 0}) {
		t.Errorf("Pix = %v, want BGR-ordered [0 0 255 255 0 0]", got.Pix)
	}
	if got.At(0, 0) != (colorspace.Color{R: 255}) {
		t.Errorf("At(0,0) = %v, want red", got.At(0, 0))
	}
	if got.At(1, 0) != (colorspace.Color{B: 255}) {
		t.Errorf("At(1,0) = %v, want blue", got.At(1, 0))
	}
}

func TestDecodeGraySynthesizesRamp(t *testing.T) {
	// 2-bit grayscale: the samples live in 4-bit slots and the palette is
	// a 4-entry ramp at 0, 85, 170, 255.
	stream := &core.Stream{
		Dict: core.Dict{
			"Width":            core.Int(2),
			"Height":           core.Int(1),
			"BitsPerComponent": core.Int(2),
			"ColorSpace":       core.Name("DeviceGray"),
			"Filter":           core.Name("FlateDecode"),
		},
		Data: zlibCompress([]byte{0x03}), // indices 0 and 3, one nibble each
	}

	got, err := Decode(stream, emptyResolver())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got.Format != Format4bppIndexed {
		t.Errorf("Format = %v, want 4bpp indexed", got.Format)
	}
	want := []uint8{0, 85, 170, 255}
	if len(got.Palette) != len(want) {
		t.Fatalf("palette size = %d, want %d", len(got.Palette), len(want))
	}
	for i, v := range want {
		if p := got.Palette[i]; p.R != v || p.G != v || p.B != v {
			t.Errorf("palette[%d] = %v, want gray %d", i, p, v)
		}
	}
	if got.PixelIndex(0, 0) != 0 || got.PixelIndex(1, 0) != 3 {
		t.Errorf("indices = %d,%d, want 0,3", got.PixelIndex(0, 0), got.PixelIndex(1, 0))
	}
}

func TestDecodeCMYKRejected(t *testing.T) {
	stream := &core.Stream{
		Dict: core.Dict{
			"Width":            core.Int(1),
			"Height":           core.Int(1),
			"BitsPerComponent": core.Int(8),
			"ColorSpace":       core.Name("DeviceCMYK"),
			"Filter":           core.Name("FlateDecode"),
		},
		Data: zlibCompress([]byte{0, 0, 0, 0}),
	}

	_, err := Decode(stream, emptyResolver())
	if !errors.Is(err, ErrUnsupportedEncoding) {
		t.Errorf("err = %v, want ErrUnsupportedEncoding", err)
	}
}

func TestDecodeIndexedNonRGBBaseRejected(t *testing.T) {
	stream := &core.Stream{
		Dict: core.Dict{
			"Width":            core.Int(1),
			"Height":           core.Int(1),
			"BitsPerComponent": core.Int(8),
			"ColorSpace": core.Array{
				core.Name("Indexed"),
				core.Name("DeviceGray"),
				core.Int(1),
				core.String("\x00\xFF"),
			},
			"Filter": core.Name("FlateDecode"),
		},
		Data: zlibCompress([]byte{0}),
	}

	_, err := Decode(stream, emptyResolver())
	if !errors.Is(err, ErrUnsupportedEncoding) {
		t.Errorf("err = %v, want ErrUnsupportedEncoding", err)
	}
}

func TestDecodeChainAssociativity(t *testing.T) {
	// Applying [FlateDecode FlateDecode] must equal inflating once by
	// hand and then decoding with FlateDecode alone.
	pixels := []byte{0x01, 0x02}
	inner := zlibCompress(pixels)

	chained := indexedImage()
	chained.Dict["Filter"] = core.Array{core.Name("FlateDecode"), core.Name("FlateDecode")}
	chained.Data = zlibCompress(inner)

	single := indexedImage()
	single.Data = inner

	fromChain, err := Decode(chained, emptyResolver())
	if err != nil {
		t.Fatalf("chained Decode failed: %v", err)
	}
	fromSingle, err := Decode(single, emptyResolver())
	if err != nil {
		t.Fatalf("single Decode failed: %v", err)
	}
	if !reflect.DeepEqual(fromChain, fromSingle) {
		t.Errorf("chained result %+v differs from single-filter result %+v", fromChain, fromSingle)
	}
}

func TestDecodeChainRejectsNonGenericPrefix(t *testing.T) {
	stream := indexedImage()
	stream.Dict["Filter"] = core.Array{core.Name("LZWDecode"), core.Name("FlateDecode")}

	_, err := Decode(stream, emptyResolver())
	if !errors.Is(err, ErrUnsupportedFilterChain) {
		t.Fatalf("err = %v, want ErrUnsupportedFilterChain", err)
	}
	if !strings.Contains(err.Error(), "LZWDecode") {
		t.Errorf("error %q should name the offending filter", err)
	}
}

func TestDecodeUnrecognizedTerminalSkips(t *testing.T) {
	for _, filter := range []core.Object{
		core.Name("JPXDecode"),
		core.Array{core.Name("FlateDecode"), core.Name("JBIG2Decode")},
	} {
		stream := indexedImage()
		stream.Dict["Filter"] = filter
		if _, ok := filter.(core.Array); ok {
			stream.Data = zlibCompress([]byte{0x01, 0x02})
		}

		got, err := Decode(stream, emptyResolver())
		if err != nil {
			t.Errorf("filter %v: err = %v, want nil", filter, err)
		}
		if got != nil {
			t.Errorf("filter %v: got a raster, want nil for unrecognized terminal", filter)
		}
	}
}

func TestDecodeMalformedFilterDeclarations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*core.Stream)
	}{
		{"no filter", func(s *core.Stream) { delete(s.Dict, "Filter") }},
		{"numeric filter", func(s *core.Stream) { s.Dict["Filter"] = core.Int(3) }},
		{"empty array", func(s *core.Stream) { s.Dict["Filter"] = core.Array{} }},
		{"non-name entry", func(s *core.Stream) {
			s.Dict["Filter"] = core.Array{core.Int(1), core.Name("FlateDecode")}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream := indexedImage()
			tt.mutate(stream)
			if _, err := Decode(stream, emptyResolver()); !errors.Is(err, ErrMalformedFilter) {
				t.Errorf("err = %v, want ErrMalformedFilter", err)
			}
		})
	}
}

func TestDecodeMissingAttributes(t *testing.T) {
	for _, key := range []string{"Width", "Height", "BitsPerComponent"} {
		t.Run(key, func(t *testing.T) {
			stream := indexedImage()
			delete(stream.Dict, key)
			if _, err := Decode(stream, emptyResolver()); !errors.Is(err, ErrMissingAttribute) {
				t.Errorf("err = %v, want ErrMissingAttribute", err)
			}
		})
	}
}

func TestDecodePaletteTooShort(t *testing.T) {
	stream := indexedImage()
	cs, _ := stream.Dict.GetArray("ColorSpace")
	cs[3] = core.String("\x00\x00") // needs 12 bytes for 4 entries

	_, err := Decode(stream, emptyResolver())
	if !errors.Is(err, colorspace.ErrPaletteTooShort) {
		t.Errorf("err = %v, want ErrPaletteTooShort", err)
	}
}

func TestDecodeTruncatedPixelData(t *testing.T) {
	stream := indexedImage()
	stream.Dict["Height"] = core.Int(4) // more rows than the data holds

	if _, err := Decode(stream, emptyResolver()); err == nil {
		t.Error("Decode should fail when pixel data is shorter than the raster")
	}
}
