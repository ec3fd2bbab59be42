package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Object is the interface satisfied by every node in a PDF object graph.
type Object interface {
	Kind() ObjectKind
	String() string
}

// ObjectKind identifies the concrete type of an Object.
type ObjectKind int

const (
	KindNull ObjectKind = iota
	KindBool
	KindInt
	KindReal
	KindString
	KindName
	KindArray
	KindDict
	KindStream
	KindIndirect
)

func (k ObjectKind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindReal:
		return "Real"
	case KindString:
		return "String"
	case KindName:
		return "Name"
	case KindArray:
		return "Array"
	case KindDict:
		return "Dict"
	case KindStream:
		return "Stream"
	case KindIndirect:
		return "IndirectRef"
	default:
		return "Unknown"
	}
}

// Null represents the PDF null object.
type Null struct{}

func (Null) Kind() ObjectKind { return KindNull }
func (Null) String() string   { return "null" }

// Bool represents a PDF boolean.
type Bool bool

func (b Bool) Kind() ObjectKind { return KindBool }
func (b Bool) String() string   { return strconv.FormatBool(bool(b)) }

// Int represents a PDF integer.
type Int int64

func (i Int) Kind() ObjectKind { return KindInt }
func (i Int) String() string   { return strconv.FormatInt(int64(i), 10) }

// Real represents a PDF real number.
type Real float64

func (r Real) Kind() ObjectKind { return KindReal }
func (r Real) String() string   { return strconv.FormatFloat(float64(r), 'f', -1, 64) }

// String represents a PDF string. The value holds the string's raw octets;
// no character encoding is implied.
type String string

func (s String) Kind() ObjectKind { return KindString }
func (s String) String() string   { return "(" + string(s) + ")" }

// Bytes returns the string's raw octets.
func (s String) Bytes() []byte { return []byte(s) }

// Name represents a PDF name object such as /Type or /DeviceRGB.
type Name string

func (n Name) Kind() ObjectKind { return KindName }
func (n Name) String() string   { return "/" + string(n) }

// Array represents a PDF array.
type Array []Object

func (a Array) Kind() ObjectKind { return KindArray }
func (a Array) String() string {
	parts := make([]string, len(a))
	for i, obj := range a {
		parts[i] = obj.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Len returns the number of elements in the array.
func (a Array) Len() int { return len(a) }

// Get returns the element at index, or nil if index is out of range.
func (a Array) Get(index int) Object {
	if index < 0 || index >= len(a) {
		return nil
	}
	return a[index]
}

// GetInt returns the integer at index.
func (a Array) GetInt(index int) (Int, bool) {
	i, ok := a.Get(index).(Int)
	return i, ok
}

// GetName returns the name at index.
func (a Array) GetName(index int) (Name, bool) {
	n, ok := a.Get(index).(Name)
	return n, ok
}

// Dict represents a PDF dictionary.
type Dict map[string]Object

func (d Dict) Kind() ObjectKind { return KindDict }
func (d Dict) String() string {
	var parts []string
	for key, val := range d {
		parts = append(parts, fmt.Sprintf("/%s %s", key, val.String()))
	}
	return "<<" + strings.Join(parts, " ") + ">>"
}

// Get returns the value stored under key, or nil if absent.
func (d Dict) Get(key string) Object { return d[key] }

// Has reports whether key is present in the dictionary.
func (d Dict) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// GetName returns the name stored under key.
func (d Dict) GetName(key string) (Name, bool) {
	n, ok := d[key].(Name)
	return n, ok
}

// GetInt returns the integer stored under key.
func (d Dict) GetInt(key string) (Int, bool) {
	i, ok := d[key].(Int)
	return i, ok
}

// GetBool returns the boolean stored under key.
func (d Dict) GetBool(key string) (Bool, bool) {
	b, ok := d[key].(Bool)
	return b, ok
}

// GetString returns the string stored under key.
func (d Dict) GetString(key string) (String, bool) {
	s, ok := d[key].(String)
	return s, ok
}

// GetDict returns the dictionary stored under key.
func (d Dict) GetDict(key string) (Dict, bool) {
	sub, ok := d[key].(Dict)
	return sub, ok
}

// GetArray returns the array stored under key.
func (d Dict) GetArray(key string) (Array, bool) {
	arr, ok := d[key].(Array)
	return arr, ok
}

// GetIndirectRef returns the indirect reference stored under key.
func (d Dict) GetIndirectRef(key string) (IndirectRef, bool) {
	ref, ok := d[key].(IndirectRef)
	return ref, ok
}

// Keys returns the dictionary's keys in unspecified order.
func (d Dict) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	return keys
}

// Stream represents a PDF stream object: a dictionary describing the stream
// plus the stream's raw (still filtered) bytes.
type Stream struct {
	Dict Dict
	Data []byte
}

func (s *Stream) Kind() ObjectKind { return KindStream }
func (s *Stream) String() string {
	return fmt.Sprintf("stream %s (%d bytes)", s.Dict.String(), len(s.Data))
}

// IndirectRef represents a reference to an indirect object.
type IndirectRef struct {
	Number     int
	Generation int
}

func (r IndirectRef) Kind() ObjectKind { return KindIndirect }
func (r IndirectRef) String() string {
	return fmt.Sprintf("%d %d R", r.Number, r.Generation)
}
