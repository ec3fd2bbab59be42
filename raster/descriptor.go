package raster

import (
	"fmt"

	"github.com/tsawler/pdfraster/colorspace"
	"github.com/tsawler/pdfraster/core"
)

// ImageDescriptor gathers the attributes a decoder needs from an image
// stream. It is built once per image and never mutated.
type ImageDescriptor struct {
	Width            int
	Height           int
	BitsPerComponent int
	Length           int
	ColorSpace       colorspace.Space
	Raw              []byte
}

// newDescriptor builds a descriptor from an image stream's dictionary.
// Width, Height, and BitsPerComponent are required; a missing /ColorSpace
// entry defaults to DeviceGray.
func newDescriptor(stream *core.Stream, r colorspace.Resolver) (ImageDescriptor, error) {
	width, height, err := dimensions(stream.Dict)
	if err != nil {
		return ImageDescriptor{}, err
	}

	bpc, ok := stream.Dict.GetInt("BitsPerComponent")
	if !ok {
		return ImageDescriptor{}, fmt.Errorf("%w: BitsPerComponent", ErrMissingAttribute)
	}

	cs := colorspace.Space{Kind: colorspace.Gray}
	if csObj := stream.Dict.Get("ColorSpace"); csObj != nil {
		cs, err = colorspace.Parse(csObj, r)
		if err != nil {
			return ImageDescriptor{}, err
		}
	}

	return ImageDescriptor{
		Width:            width,
		Height:           height,
		BitsPerComponent: int(bpc),
		Length:           streamLength(stream),
		ColorSpace:       cs,
		Raw:              stream.Data,
	}, nil
}

// newFaxDescriptor builds the descriptor for a fax-encoded image. Fax data
// is bi-level by definition, so the bit depth is pinned to 1 and the pixels
// index a two-entry palette regardless of what the dictionary declares.
func newFaxDescriptor(stream *core.Stream) (ImageDescriptor, error) {
	width, height, err := dimensions(stream.Dict)
	if err != nil {
		return ImageDescriptor{}, err
	}

	return ImageDescriptor{
		Width:            width,
		Height:           height,
		BitsPerComponent: 1,
		Length:           streamLength(stream),
		ColorSpace:       colorspace.Space{Kind: colorspace.Gray},
		Raw:              stream.Data,
	}, nil
}

func dimensions(dict core.Dict) (int, int, error) {
	width, ok := dict.GetInt("Width")
	if !ok {
		return 0, 0, fmt.Errorf("%w: Width", ErrMissingAttribute)
	}
	height, ok := dict.GetInt("Height")
	if !ok {
		return 0, 0, fmt.Errorf("%w: Height", ErrMissingAttribute)
	}
	return int(width), int(height), nil
}

func streamLength(stream *core.Stream) int {
	if length, ok := stream.Dict.GetInt("Length"); ok {
		return int(length)
	}
	return len(stream.Data)
}
