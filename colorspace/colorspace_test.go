package colorspace

import (
	"errors"
	"strings"
	"testing"

	"github.com/tsawler/pdfraster/core"
	"github.com/tsawler/pdfraster/resolver"
)

func TestParseDeviceNames(t *testing.T) {
	r := resolver.New(resolver.MapSource{})

	tests := []struct {
		name string
		kind Kind
	}{
		{"DeviceRGB", RGB},
		{"DeviceGray", Gray},
		{"DeviceCMYK", CMYK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, err := Parse(core.Name(tt.name), r)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if cs.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", cs.Kind, tt.kind)
			}
			if cs.IsIndexed() {
				t.Error("device space should not be indexed")
			}
		})
	}
}

// CMYK parses successfully; rejecting it is the decoders' business, since
// a CMYK space may appear nested and be inspected without being decoded.
func TestParseCMYKSucceeds(t *testing.T) {
	cs, err := Parse(core.Name("DeviceCMYK"), resolver.New(resolver.MapSource{}))
	if err != nil {
		t.Fatalf("Parse(DeviceCMYK) failed: %v", err)
	}
	if cs.Kind != CMYK {
		t.Errorf("Kind = %v, want CMYK", cs.Kind)
	}
}

func TestParseUnknownNameIdentifiesOffender(t *testing.T) {
	_, err := Parse(core.Name("CalRGB"), resolver.New(resolver.MapSource{}))
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("err = %v, want ErrUnsupported", err)
	}
	if !strings.Contains(err.Error(), "CalRGB") {
		t.Errorf("error %q should name the offending color space", err)
	}
}

func TestParseIndexed(t *testing.T) {
	arr := core.Array{
		core.Name("Indexed"),
		core.Name("DeviceRGB"),
		core.Int(3),
		core.String("\x00\x00\x00\xFF\xFF\xFF\x01\x02\x03\x0A\x0B\x0C"),
	}

	cs, err := Parse(arr, resolver.New(resolver.MapSource{}))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !cs.IsIndexed() {
		t.Fatal("space should be indexed")
	}
	if cs.Base == nil || cs.Base.Kind != RGB {
		t.Errorf("Base = %v, want RGB", cs.Base)
	}
	if cs.HighValue != 3 {
		t.Errorf("HighValue = %d, want 3", cs.HighValue)
	}
	if cs.Lookup == nil {
		t.Error("Lookup should be retained unresolved")
	}
}

func TestParseIndexedViaReferences(t *testing.T) {
	// Both the color space declaration and its base arrive as references.
	source := resolver.MapSource{
		5: core.Array{
			core.Name("Indexed"),
			core.IndirectRef{Number: 6},
			core.Int(1),
			core.String("\x00\x00\x00\xFF\xFF\xFF"),
		},
		6: core.Name("DeviceRGB"),
	}

	cs, err := Parse(core.IndirectRef{Number: 5}, resolver.New(source))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !cs.IsIndexed() || cs.Base == nil || !cs.Base.IsRGB() {
		t.Errorf("parsed %v, want Indexed over RGB", cs)
	}
}

func TestParseRejectsOtherArrays(t *testing.T) {
	r := resolver.New(resolver.MapSource{})

	tests := []struct {
		name string
		arr  core.Array
	}{
		{"iccbased", core.Array{core.Name("ICCBased"), core.IndirectRef{Number: 2}}},
		{"separation", core.Array{core.Name("Separation"), core.Name("All"), core.Name("DeviceGray")}},
		{"short indexed", core.Array{core.Name("Indexed"), core.Name("DeviceRGB"), core.Int(1)}},
		{"no family", core.Array{core.Int(4)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.arr, r); !errors.Is(err, ErrUnsupported) {
				t.Errorf("err = %v, want ErrUnsupported", err)
			}
		})
	}
}

func TestParseRejectsOtherKinds(t *testing.T) {
	if _, err := Parse(core.Int(3), resolver.New(resolver.MapSource{})); !errors.Is(err, ErrUnsupported) {
		t.Errorf("err = %v, want ErrUnsupported", err)
	}
}
