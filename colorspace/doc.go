// Package colorspace models the color space declarations attached to PDF
// image objects.
//
// A color space declaration is a name (/DeviceRGB, /DeviceGray,
// /DeviceCMYK), an indexed array ([/Indexed base hival lookup]), or an
// indirect reference to either. [Parse] resolves a declaration into a
// [Space] value, a closed tagged variant that decoders switch over
// exhaustively.
//
// For indexed spaces the palette lookup source is kept unresolved inside
// the Space; [ResolveLookup] and [ToPalette] turn it into an ordered
// [Palette] of [Color] entries when a decoder needs one. [GrayRamp] synthesizes
// the evenly spaced palette used for grayscale images.
//
// Note that parsing /DeviceCMYK succeeds: a CMYK space may legitimately
// appear in a document and be inspected. Decoding CMYK pixels is what the
// raster decoders reject.
package colorspace
