package core

import (
	"fmt"

	"github.com/tsawler/pdfraster/internal/filters"
)

// Decode undoes the stream's own declared filter chain and returns the
// unfiltered bytes. A stream with no /Filter entry decodes to its raw data.
// Every filter in the chain must be a generic byte transform (FlateDecode,
// ASCIIHexDecode, ASCII85Decode); image-defining filters are rejected here
// because their output is not a byte stream but a raster.
func (s *Stream) Decode() ([]byte, error) {
	filterObj := s.Dict.Get("Filter")
	if filterObj == nil {
		return s.Data, nil
	}

	switch f := filterObj.(type) {
	case Name:
		return filters.ApplyGeneric(string(f), s.Data, s.FilterParams(0))

	case Array:
		data := s.Data
		for i, entry := range f {
			name, ok := entry.(Name)
			if !ok {
				return nil, fmt.Errorf("filter %d is not a name: %T", i, entry)
			}
			var err error
			data, err = filters.ApplyGeneric(string(name), data, s.FilterParams(i))
			if err != nil {
				return nil, fmt.Errorf("filter %d (%s): %w", i, name, err)
			}
		}
		return data, nil

	default:
		return nil, fmt.Errorf("invalid Filter type: %T", filterObj)
	}
}

// FilterParams returns the decode parameters for the filter at position i
// of the stream's declared chain. A /DecodeParms array lines up with the
// /Filter array; a single dictionary applies to every filter.
func (s *Stream) FilterParams(i int) filters.Params {
	switch v := s.Dict.Get("DecodeParms").(type) {
	case Dict:
		return dictToParams(v)
	case Array:
		if i < len(v) {
			if dict, ok := v[i].(Dict); ok {
				return dictToParams(dict)
			}
		}
	}
	return nil
}

// dictToParams translates a parameter dictionary to filters.Params,
// converting PDF object types to Go primitives.
func dictToParams(dict Dict) filters.Params {
	if dict == nil {
		return nil
	}
	params := make(filters.Params, len(dict))
	for k, v := range dict {
		switch obj := v.(type) {
		case Int:
			params[k] = int(obj)
		case Real:
			params[k] = float64(obj)
		case Bool:
			params[k] = bool(obj)
		case String:
			params[k] = string(obj)
		case Name:
			params[k] = string(obj)
		default:
			params[k] = v
		}
	}
	return params
}
