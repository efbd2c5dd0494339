// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package avroschema provides the Avro schema node model and loaders that
// classify raw schema documents into it.
package avroschema

// Kind discriminates the shape of a schema Node.
type Kind int

// Schema node kinds.
const (
	KindUnknown Kind = iota
	KindPrimitive
	KindReference
	KindUnion
	KindRecord
	KindEnum
	KindArray
	KindMap
)

var kindNames = map[Kind]string{
	KindUnknown:   "unknown",
	KindPrimitive: "primitive",
	KindReference: "reference",
	KindUnion:     "union",
	KindRecord:    "record",
	KindEnum:      "enum",
	KindArray:     "array",
	KindMap:       "map",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// Primitive type tags.
const (
	Null    = "null"
	Boolean = "boolean"
	Int     = "int"
	Long    = "long"
	Float   = "float"
	Double  = "double"
	Bytes   = "bytes"
	String  = "string"
)

var primitives = map[string]struct{}{
	Null: {}, Boolean: {}, Int: {}, Long: {}, Float: {}, Double: {}, Bytes: {}, String: {},
}

// IsPrimitive reports whether name is one of the Avro primitive type tags.
func IsPrimitive(name string) bool {
	_, ok := primitives[name]
	return ok
}

// Node is a single schema node. Which fields are meaningful depends on Kind:
//   - KindPrimitive, KindReference: Name
//   - KindUnion: Types
//   - KindRecord: Name, Doc, Fields
//   - KindEnum: Name, Doc, Symbols
//   - KindArray: Items
//   - KindMap: Values
//   - KindUnknown: Raw
type Node struct {
	Kind    Kind
	Name    string
	Doc     string
	Fields  []Field
	Symbols []string
	Types   []Node
	Items   *Node
	Values  *Node
	Raw     any
}

// Field is a named member of a record.
type Field struct {
	Name string
	Type Node
	Doc  string
}

// Primitive returns a primitive node for tag.
func Primitive(tag string) Node {
	return Node{Kind: KindPrimitive, Name: tag}
}

// Ref returns a reference to a type declared elsewhere.
func Ref(name string) Node {
	return Node{Kind: KindReference, Name: name}
}

// Union returns a union of the given members, in order.
func Union(types ...Node) Node {
	return Node{Kind: KindUnion, Types: types}
}

// Record returns a record node.
func Record(name string, fields ...Field) Node {
	return Node{Kind: KindRecord, Name: name, Fields: fields}
}

// Enum returns an enum node.
func Enum(name string, symbols ...string) Node {
	return Node{Kind: KindEnum, Name: name, Symbols: symbols}
}

// Array returns an array node over items.
func Array(items Node) Node {
	return Node{Kind: KindArray, Items: &items}
}

// Map returns a string-keyed map node over values.
func Map(values Node) Node {
	return Node{Kind: KindMap, Values: &values}
}

// Unknown wraps a value that matches no schema shape.
func Unknown(raw any) Node {
	return Node{Kind: KindUnknown, Raw: raw}
}

// NewField is a convenience constructor for record fields.
func NewField(name string, typ Node) Field {
	return Field{Name: name, Type: typ}
}
