package raster

import (
	"encoding/binary"
	"fmt"
)

// TIFF tag numbers used by the synthesized container (TIFF 6.0, p. 28-41).
const (
	tiffTagNewSubfileType  = 254
	tiffTagImageWidth      = 256
	tiffTagImageLength     = 257
	tiffTagBitsPerSample   = 258
	tiffTagCompression     = 259
	tiffTagPhotometric     = 262
	tiffTagStripOffsets    = 273
	tiffTagSamplesPerPixel = 277
	tiffTagRowsPerStrip    = 278
	tiffTagStripByteCounts = 279
)

// IFD entry field types.
const (
	tiffTypeShort = 3
	tiffTypeLong  = 4
)

const (
	// TIFFCompressionGroup4 is the Compression tag value for CCITT
	// Group 4 fax encoding.
	TIFFCompressionGroup4 = 4

	// tiffPhotometricWhiteIsZero marks bi-level data where a 0 bit is
	// white.
	tiffPhotometricWhiteIsZero = 0
)

const (
	tiffEntryCount = 10
	tiffEntryLen   = 12

	// tiffHeaderLen spans the file header, the entry count, the fixed
	// entries, and the next-directory terminator; the strip data starts
	// immediately after.
	tiffHeaderLen = 8 + 2 + tiffEntryCount*tiffEntryLen + 4
)

// BuildTIFFContainer wraps Group 4 compressed scanline data in the minimal
// single-strip TIFF container the fax codec needs: a little-endian file
// header, one directory of ten fixed entries in ascending tag order, a
// no-next-directory terminator, and the compressed bytes verbatim.
//
// The container locates exactly one strip for the codec; it is not a
// general-purpose TIFF writer.
func BuildTIFFContainer(desc ImageDescriptor, compressed []byte) []byte {
	buf := make([]byte, tiffHeaderLen, tiffHeaderLen+len(compressed))

	// File header: byte order, version 42, directory offset 8.
	buf[0], buf[1] = 'I', 'I'
	binary.LittleEndian.PutUint16(buf[2:], 42)
	binary.LittleEndian.PutUint32(buf[4:], 8)

	binary.LittleEndian.PutUint16(buf[8:], tiffEntryCount)

	entry := func(i int, tag, typ uint16, value uint32) {
		off := 10 + i*tiffEntryLen
		binary.LittleEndian.PutUint16(buf[off:], tag)
		binary.LittleEndian.PutUint16(buf[off+2:], typ)
		binary.LittleEndian.PutUint32(buf[off+4:], 1)
		binary.LittleEndian.PutUint32(buf[off+8:], value)
	}

	entry(0, tiffTagNewSubfileType, tiffTypeLong, 0)
	entry(1, tiffTagImageWidth, tiffTypeLong, uint32(desc.Width))
	entry(2, tiffTagImageLength, tiffTypeLong, uint32(desc.Height))
	entry(3, tiffTagBitsPerSample, tiffTypeShort, 1)
	entry(4, tiffTagCompression, tiffTypeShort, TIFFCompressionGroup4)
	entry(5, tiffTagPhotometric, tiffTypeShort, tiffPhotometricWhiteIsZero)
	entry(6, tiffTagStripOffsets, tiffTypeLong, tiffHeaderLen)
	entry(7, tiffTagSamplesPerPixel, tiffTypeShort, 1)
	entry(8, tiffTagRowsPerStrip, tiffTypeLong, uint32(desc.Height))
	entry(9, tiffTagStripByteCounts, tiffTypeLong, uint32(len(compressed)))

	// Next-directory offset (none) is already zero.

	return append(buf, compressed...)
}

// TIFFStrip is the single strip described by a synthesized container.
type TIFFStrip struct {
	Width        int
	Height       int
	RowsPerStrip int
	Compression  int
	Data         []byte
}

// ParseTIFFContainer reads back a container produced by
// [BuildTIFFContainer] and locates its strip. It understands only the
// little-endian single-directory shape the synthesizer emits.
func ParseTIFFContainer(buf []byte) (TIFFStrip, error) {
	if len(buf) < tiffHeaderLen {
		return TIFFStrip{}, fmt.Errorf("container too short: %d bytes", len(buf))
	}
	if buf[0] != 'I' || buf[1] != 'I' || binary.LittleEndian.Uint16(buf[2:]) != 42 {
		return TIFFStrip{}, fmt.Errorf("not a little-endian TIFF header")
	}

	dirOff := binary.LittleEndian.Uint32(buf[4:])
	if int(dirOff)+2 > len(buf) {
		return TIFFStrip{}, fmt.Errorf("directory offset %d out of range", dirOff)
	}
	count := int(binary.LittleEndian.Uint16(buf[dirOff:]))
	if int(dirOff)+2+count*tiffEntryLen+4 > len(buf) {
		return TIFFStrip{}, fmt.Errorf("directory of %d entries out of range", count)
	}

	var strip TIFFStrip
	var stripOff, stripLen uint32

	for i := 0; i < count; i++ {
		off := int(dirOff) + 2 + i*tiffEntryLen
		tag := binary.LittleEndian.Uint16(buf[off:])
		typ := binary.LittleEndian.Uint16(buf[off+2:])

		var value uint32
		switch typ {
		case tiffTypeShort:
			value = uint32(binary.LittleEndian.Uint16(buf[off+8:]))
		case tiffTypeLong:
			value = binary.LittleEndian.Uint32(buf[off+8:])
		default:
			return TIFFStrip{}, fmt.Errorf("tag %d: unsupported field type %d", tag, typ)
		}

		switch tag {
		case tiffTagImageWidth:
			strip.Width = int(value)
		case tiffTagImageLength:
			strip.Height = int(value)
		case tiffTagRowsPerStrip:
			strip.RowsPerStrip = int(value)
		case tiffTagCompression:
			strip.Compression = int(value)
		case tiffTagStripOffsets:
			stripOff = value
		case tiffTagStripByteCounts:
			stripLen = value
		}
	}

	if int(stripOff)+int(stripLen) > len(buf) {
		return TIFFStrip{}, fmt.Errorf("strip [%d:%d) out of range", stripOff, stripOff+stripLen)
	}
	strip.Data = buf[stripOff : stripOff+stripLen]

	return strip, nil
}
