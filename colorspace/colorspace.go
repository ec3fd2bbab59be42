package colorspace

import (
	"errors"
	"fmt"

	"github.com/tsawler/pdfraster/core"
)

// ErrUnsupported is returned when a color space declaration is recognized
// as such but names a family this package does not model.
var ErrUnsupported = errors.New("unsupported color space")

// Resolver dereferences indirect object references. It is satisfied by
// *resolver.ObjectResolver.
type Resolver interface {
	Resolve(obj core.Object) (core.Object, error)
}

// Kind identifies a color space family.
type Kind int

const (
	Gray Kind = iota
	RGB
	CMYK
	Indexed
)

func (k Kind) String() string {
	switch k {
	case Gray:
		return "Gray"
	case RGB:
		return "RGB"
	case CMYK:
		return "CMYK"
	case Indexed:
		return "Indexed"
	default:
		return "Unknown"
	}
}

// Space is a resolved color space. Base, HighValue, and Lookup are
// meaningful only when Kind is Indexed; Lookup is the palette source, kept
// unresolved until a decoder asks for the palette.
type Space struct {
	Kind      Kind
	Base      *Space
	HighValue int
	Lookup    core.Object
}

// IsIndexed reports whether the space is an indexed palette space.
func (s Space) IsIndexed() bool { return s.Kind == Indexed }

// IsRGB reports whether the space is plain DeviceRGB.
func (s Space) IsRGB() bool { return s.Kind == RGB }

func (s Space) String() string {
	if s.Kind == Indexed && s.Base != nil {
		return fmt.Sprintf("Indexed(%s, %d)", s.Base, s.HighValue)
	}
	return s.Kind.String()
}

// Parse resolves a color space declaration to a Space. The declaration may
// be a name, an indexed array, or an indirect reference to either.
func Parse(obj core.Object, r Resolver) (Space, error) {
	switch v := obj.(type) {
	case core.IndirectRef:
		resolved, err := r.Resolve(v)
		if err != nil {
			return Space{}, fmt.Errorf("color space reference: %w", err)
		}
		return Parse(resolved, r)

	case core.Name:
		switch v {
		case "DeviceRGB":
			return Space{Kind: RGB}, nil
		case "DeviceGray":
			return Space{Kind: Gray}, nil
		case "DeviceCMYK":
			return Space{Kind: CMYK}, nil
		}
		return Space{}, fmt.Errorf("%w: /%s", ErrUnsupported, v)

	case core.Array:
		return parseArray(v, r)
	}

	return Space{}, fmt.Errorf("%w: %s declaration", ErrUnsupported, obj.Kind())
}

// parseArray handles the four-element indexed form
// [/Indexed base hival lookup]. Every other array shape is unsupported.
func parseArray(arr core.Array, r Resolver) (Space, error) {
	family, ok := arr.GetName(0)
	if !ok {
		return Space{}, fmt.Errorf("%w: array without family name", ErrUnsupported)
	}
	if family != "Indexed" || arr.Len() != 4 {
		return Space{}, fmt.Errorf("%w: /%s", ErrUnsupported, family)
	}

	base, err := Parse(arr.Get(1), r)
	if err != nil {
		return Space{}, fmt.Errorf("indexed base: %w", err)
	}

	hival, ok := arr.GetInt(2)
	if !ok {
		return Space{}, fmt.Errorf("%w: indexed high value is not an integer", ErrUnsupported)
	}

	return Space{
		Kind:      Indexed,
		Base:      &base,
		HighValue: int(hival),
		Lookup:    arr.Get(3),
	}, nil
}
