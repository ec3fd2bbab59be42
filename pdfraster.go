// Package pdfraster extracts raster images embedded in PDF documents and
// reconstructs them as decoded, addressable pixel buffers.
//
// The heavy lifting lives in the subpackages:
//
//   - core: the PDF object model the extractor consumes
//   - resolver: indirect reference resolution over an object source
//   - colorspace: color space parsing and palette resolution
//   - raster: filter chain resolution and the per-encoding pixel decoders
//   - extract: page-level image enumeration with per-image error isolation
//   - ocr: optional Tesseract text recognition over extracted images
//
// This package ties them together for the common case:
//
//	images, err := pdfraster.Images(pageResources, objectSource)
//	for _, img := range images {
//	    if img.Err != nil {
//	        // this image failed; siblings still decoded
//	        continue
//	    }
//	    png, _ := img.Raster.PNG()
//	    // ...
//	}
package pdfraster

import (
	"github.com/tsawler/pdfraster/core"
	"github.com/tsawler/pdfraster/extract"
	"github.com/tsawler/pdfraster/raster"
	"github.com/tsawler/pdfraster/resolver"
)

// Images decodes every image XObject declared in a page resources
// dictionary, reading indirect objects from source. See
// [extract.FromResources] for the per-image semantics.
func Images(resources core.Dict, source resolver.Source) ([]extract.Image, error) {
	return extract.FromResources(resources, resolver.New(source))
}

// DecodeImage decodes a single image XObject stream. It returns a nil
// raster without error when the image's terminal filter is not supported.
func DecodeImage(stream *core.Stream, source resolver.Source) (*raster.DecodedRaster, error) {
	return raster.Decode(stream, resolver.New(source))
}
