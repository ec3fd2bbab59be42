// Package resolver dereferences indirect object references in a PDF
// object graph.
//
// The [ObjectResolver] type follows [core.IndirectRef] values to the
// objects they name, with cycle detection and a recursion depth limit. It
// reads objects from any [Source]; [MapSource] is a ready-made in-memory
// source useful for tests and for documents whose object table has already
// been materialized.
package resolver
