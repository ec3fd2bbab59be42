package filters

import "fmt"

// Generic reports whether name identifies a generic byte-transform filter,
// one whose output is again a byte stream. Only generic filters may appear
// in non-terminal positions of a filter chain.
func Generic(name string) bool {
	switch name {
	case "FlateDecode", "Fl", "ASCIIHexDecode", "AHx", "ASCII85Decode", "A85":
		return true
	}
	return false
}

// ApplyGeneric applies the named generic byte transform to data. It fails
// for names outside the set accepted by [Generic].
func ApplyGeneric(name string, data []byte, params Params) ([]byte, error) {
	switch name {
	case "FlateDecode", "Fl":
		return FlateDecode(data, params)
	case "ASCIIHexDecode", "AHx":
		return ASCIIHexDecode(data)
	case "ASCII85Decode", "A85":
		return ASCII85Decode(data)
	}
	return nil, fmt.Errorf("%s is not a generic byte filter", name)
}
