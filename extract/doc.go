// Package extract enumerates and decodes the image XObjects declared in a
// page's resources.
//
// [FromResources] walks the /XObject dictionary, identifies the entries
// whose /Subtype is /Image, and decodes each through package raster.
// Failures are isolated per image: one malformed image yields a result
// carrying its error while extraction of the remaining images continues.
// Images whose terminal filter is not supported at all are skipped
// silently, distinguishing "encoding not supported" from "instance
// malformed".
package extract
