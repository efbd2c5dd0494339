// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

// TypeResolver spells Avro schema shapes in a target language.
// Each translator implements this interface to control how schemas map to its output format.
type TypeResolver interface {
	// PrimitiveType maps an Avro primitive tag to a target type.
	// ok is false when the tag has no mapping; the tag is then used verbatim.
	PrimitiveType(tag string) (typ string, ok bool)

	// RefType returns the type string for a reference to a named type.
	RefType(name string) string

	// UnionType joins member types, in order, into one union type.
	UnionType(members []string) string

	// ArrayType wraps an element type string in an array type.
	ArrayType(elemType string) string

	// MapType returns a string-keyed mapping type over valueType.
	MapType(valueType string) string

	// UnknownType is the placeholder used for shapes that cannot be translated.
	UnknownType() string

	// FieldDecl formats a single record field line.
	FieldDecl(f Field) string

	// RecordDecl formats a complete record declaration from its formatted field lines.
	RecordDecl(name, doc string, fieldLines []string) string

	// EnumDecl formats a complete enum declaration.
	EnumDecl(name, doc string, symbols []string) string
}
