package raster

import (
	"fmt"

	"github.com/tsawler/pdfraster/colorspace"
	"github.com/tsawler/pdfraster/core"
	"github.com/tsawler/pdfraster/internal/filters"
)

// Decode resolves an image stream's declared filter chain and decodes its
// pixels.
//
// A single filter name dispatches directly to the matching decoder. For a
// filter array, every entry before the last must be a generic byte
// transform; the transforms are applied in order and the stream is rebuilt
// as if it had been declared with the terminal filter alone.
//
// A recognized chain whose terminal filter is not one of DCTDecode,
// FlateDecode, or CCITTFaxDecode returns (nil, nil): the image is not
// decodable by this package, which is not an error.
func Decode(stream *core.Stream, r colorspace.Resolver) (*DecodedRaster, error) {
	filterObj := stream.Dict.Get("Filter")
	if filterObj == nil {
		return nil, fmt.Errorf("%w: image declares no filter", ErrMalformedFilter)
	}

	switch f := filterObj.(type) {
	case core.Name:
		return decodeTerminal(stream, string(f), r)
	case core.Array:
		return decodeChain(stream, f, r)
	}
	return nil, fmt.Errorf("%w: filter is %s, want name or array of names", ErrMalformedFilter, filterObj.Kind())
}

// decodeChain applies every non-terminal transform of chain to the stream
// data, then recurses into Decode with a single-filtered view of the image.
// Attributes other than the filter declaration and the data carry over
// unchanged.
func decodeChain(stream *core.Stream, chain core.Array, r colorspace.Resolver) (*DecodedRaster, error) {
	if chain.Len() == 0 {
		return nil, fmt.Errorf("%w: empty filter array", ErrMalformedFilter)
	}

	data := stream.Data
	for i := 0; i < chain.Len()-1; i++ {
		name, ok := chain.GetName(i)
		if !ok {
			return nil, fmt.Errorf("%w: chain entry %d is not a name", ErrMalformedFilter, i)
		}
		if !filters.Generic(string(name)) {
			return nil, fmt.Errorf("%w: %s at position %d of %s is not a generic byte filter",
				ErrUnsupportedFilterChain, name, i, chain)
		}
		var err error
		data, err = filters.ApplyGeneric(string(name), data, stream.FilterParams(i))
		if err != nil {
			return nil, fmt.Errorf("chain entry %d (%s): %w", i, name, err)
		}
	}

	terminal, ok := chain.GetName(chain.Len() - 1)
	if !ok {
		return nil, fmt.Errorf("%w: terminal chain entry is not a name", ErrMalformedFilter)
	}

	return Decode(singleFiltered(stream, terminal, data, chain.Len()-1), r)
}

// singleFiltered builds an immutable view of stream as if it had been
// declared with just the terminal filter and data as its raw bytes.
func singleFiltered(stream *core.Stream, terminal core.Name, data []byte, terminalPos int) *core.Stream {
	dict := make(core.Dict, len(stream.Dict))
	for k, v := range stream.Dict {
		dict[k] = v
	}
	dict["Filter"] = terminal
	dict["Length"] = core.Int(len(data))

	// Keep only the terminal filter's decode parameters.
	if parms, ok := stream.Dict.GetArray("DecodeParms"); ok {
		if sub, ok := parms.Get(terminalPos).(core.Dict); ok {
			dict["DecodeParms"] = sub
		} else {
			delete(dict, "DecodeParms")
		}
	}

	return &core.Stream{Dict: dict, Data: data}
}

// decodeTerminal dispatches on the terminal, format-defining filter.
func decodeTerminal(stream *core.Stream, filter string, r colorspace.Resolver) (*DecodedRaster, error) {
	switch filter {
	case "DCTDecode", "DCT":
		return decodeDCT(stream)
	case "FlateDecode", "Fl":
		return decodeFlateRaster(stream, r)
	case "CCITTFaxDecode", "CCF":
		return decodeFax(stream)
	}
	// Unrecognized terminal filter: the image is not decodable by this
	// package. Callers skip it and move on to sibling images.
	return nil, nil
}
