// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package typescript

import (
	"strings"

	"github.com/dacolabs/avro-typescript/internal/avroschema"
	"github.com/dacolabs/avro-typescript/internal/translate"
)

// UnknownType is emitted in place of schema shapes that cannot be translated.
const UnknownType = "UNKNOWN"

type resolver struct {
	declaration bool // ambient .d.ts output
}

func (r *resolver) PrimitiveType(tag string) (string, bool) {
	switch tag {
	case avroschema.Long, avroschema.Int, avroschema.Double, avroschema.Float:
		return "number", true
	case avroschema.Bytes:
		return "Buffer", true
	case avroschema.Null:
		return "null | undefined", true
	case avroschema.Boolean:
		return "boolean", true
	default:
		return "", false
	}
}

func (r *resolver) RefType(name string) string {
	return name
}

func (r *resolver) UnionType(members []string) string {
	return strings.Join(members, " | ")
}

// ArrayType parenthesizes union element types so the suffix applies to the
// whole union, not just its last member.
func (r *resolver) ArrayType(elemType string) string {
	if strings.Contains(elemType, " | ") {
		return "(" + elemType + ")[]"
	}
	return elemType + "[]"
}

func (r *resolver) MapType(valueType string) string {
	return "{ [index:string]:" + valueType + " }"
}

func (r *resolver) UnknownType() string {
	return UnknownType
}

func (r *resolver) FieldDecl(f translate.Field) string {
	line := "\t" + f.Name + ": " + f.Type + ";"
	if f.Doc != "" {
		return "\t" + docComment(f.Doc) + "\n" + line
	}
	return line
}

func (r *resolver) RecordDecl(name, doc string, fieldLines []string) string {
	var sb strings.Builder
	if doc != "" {
		sb.WriteString(docComment(doc) + "\n")
	}
	sb.WriteString("export interface " + name + " {\n")
	for _, line := range fieldLines {
		sb.WriteString(line + "\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}

func (r *resolver) EnumDecl(name, doc string, symbols []string) string {
	var sb strings.Builder
	if doc != "" {
		sb.WriteString(docComment(doc) + "\n")
	}
	if r.declaration {
		sb.WriteString("export declare enum " + name + " { " + strings.Join(symbols, ", ") + " }\n")
	} else {
		sb.WriteString("export enum " + name + " { " + strings.Join(symbols, ", ") + " };\n")
	}
	return sb.String()
}

// docComment renders doc as a single-line JSDoc comment.
func docComment(doc string) string {
	doc = strings.Join(strings.Fields(doc), " ")
	doc = strings.ReplaceAll(doc, "*/", "*\\/")
	return "/** " + doc + " */"
}
