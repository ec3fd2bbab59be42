// Package core provides the PDF object model consumed by the image
// extraction packages.
//
// A parsed PDF document is a graph of typed nodes. This package implements
// those node types (null, boolean, integer, real, string, name, array, and
// dictionary), plus [Stream] for stream objects (dictionary + binary data)
// and [IndirectRef] for references into the document's object table. All
// node values are immutable once built and safe to read from multiple
// goroutines.
//
// # Object Types
//
// Every node satisfies the Object interface:
//
//   - [Null] - the PDF null object
//   - [Bool] - PDF boolean values (true/false)
//   - [Int] - PDF integers
//   - [Real] - PDF real numbers (floating point)
//   - [String] - PDF string objects (raw octets)
//   - [Name] - PDF name objects (e.g., /Type, /Image)
//   - [Array] - PDF arrays
//   - [Dict] - PDF dictionaries
//
// # Stream Decoding
//
// Streams can be compressed with one or more filters named in the stream
// dictionary. [Stream.Decode] fully undoes the stream's own declared filter
// chain, returning the unfiltered bytes. Only generic byte filters are
// handled here; image-defining filters (DCTDecode, CCITTFaxDecode) are the
// business of package raster.
package core
