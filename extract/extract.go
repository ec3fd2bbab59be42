package extract

import (
	"fmt"
	"sort"

	"github.com/tsawler/pdfraster/core"
	"github.com/tsawler/pdfraster/raster"
)

// Resolver dereferences indirect object references. It is satisfied by
// *resolver.ObjectResolver.
type Resolver interface {
	Resolve(obj core.Object) (core.Object, error)
}

// Image is one extraction result: the XObject's resource name and either
// its decoded raster or the error that stopped its decode. A failed image
// never aborts extraction of its siblings.
type Image struct {
	Name   string
	Raster *raster.DecodedRaster
	Err    error
}

// FromResources extracts every image XObject declared in a page resources
// dictionary. Results are ordered by resource name. Non-image XObjects and
// images with an unsupported terminal filter are omitted; images that fail
// to decode appear with Err set.
func FromResources(resources core.Dict, r Resolver) ([]Image, error) {
	if resources == nil {
		return nil, nil
	}
	xobjObj := resources.Get("XObject")
	if xobjObj == nil {
		return nil, nil
	}

	resolved, err := r.Resolve(xobjObj)
	if err != nil {
		return nil, fmt.Errorf("resolve XObject dictionary: %w", err)
	}
	xobjects, ok := resolved.(core.Dict)
	if !ok {
		return nil, nil
	}

	names := xobjects.Keys()
	sort.Strings(names)

	var images []Image
	for _, name := range names {
		stream, isImage := imageStream(xobjects.Get(name), r)
		if !isImage {
			continue
		}

		decoded, err := raster.Decode(stream, r)
		if err != nil {
			images = append(images, Image{Name: name, Err: err})
			continue
		}
		if decoded == nil {
			// Terminal filter not recognized: skip, not an error.
			continue
		}
		images = append(images, Image{Name: name, Raster: decoded})
	}

	return images, nil
}

// imageStream resolves an XObject entry and reports whether it is an image
// stream. Unresolvable entries, non-streams, and non-image subtypes all
// answer false; none of those are errors.
func imageStream(obj core.Object, r Resolver) (*core.Stream, bool) {
	resolved, err := r.Resolve(obj)
	if err != nil {
		return nil, false
	}
	stream, ok := resolved.(*core.Stream)
	if !ok {
		return nil, false
	}
	subtype, ok := stream.Dict.GetName("Subtype")
	if !ok || subtype != "Image" {
		return nil, false
	}
	return stream, true
}
