// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avroschema

import "fmt"

// FromValue classifies a decoded JSON or YAML value into a Node.
//
// Objects are matched structurally, in this order: record (name + fields),
// array (items), map (values), enum (name + symbols). A record also carries a
// name, so it must be recognized by its full field set before the enum check.
// Anything else becomes KindUnknown.
//
// A field without a usable name is called field<i> after its position, so the
// rendered declaration stays well formed.
func FromValue(v any) Node {
	switch t := v.(type) {
	case nil:
		// YAML decodes an unquoted null to nil.
		return Primitive(Null)
	case string:
		if IsPrimitive(t) {
			return Primitive(t)
		}
		return Ref(t)
	case []any:
		types := make([]Node, 0, len(t))
		for _, member := range t {
			types = append(types, FromValue(member))
		}
		return Union(types...)
	case map[string]any:
		return fromObject(t)
	default:
		return Unknown(v)
	}
}

func fromObject(obj map[string]any) Node {
	name, hasName := obj["name"].(string)
	doc, _ := obj["doc"].(string)

	if fields, ok := obj["fields"].([]any); ok && hasName {
		n := Record(name, fromFields(fields)...)
		n.Doc = doc
		return n
	}
	if items, ok := obj["items"]; ok {
		return Array(FromValue(items))
	}
	if values, ok := obj["values"]; ok {
		return Map(FromValue(values))
	}
	if symbols, ok := obj["symbols"].([]any); ok && hasName {
		n := Enum(name, fromSymbols(symbols)...)
		n.Doc = doc
		return n
	}
	return Unknown(obj)
}

func fromFields(raw []any) []Field {
	fields := make([]Field, 0, len(raw))
	for i, r := range raw {
		obj, ok := r.(map[string]any)
		if !ok {
			fields = append(fields, Field{Name: placeholderFieldName(i), Type: Unknown(r)})
			continue
		}
		name, _ := obj["name"].(string)
		if name == "" {
			name = placeholderFieldName(i)
		}
		doc, _ := obj["doc"].(string)
		fields = append(fields, Field{
			Name: name,
			Type: FromValue(obj["type"]),
			Doc:  doc,
		})
	}
	return fields
}

func placeholderFieldName(i int) string {
	return fmt.Sprintf("field%d", i)
}

func fromSymbols(raw []any) []string {
	symbols := make([]string, 0, len(raw))
	for _, s := range raw {
		if str, ok := s.(string); ok {
			symbols = append(symbols, str)
			continue
		}
		symbols = append(symbols, fmt.Sprint(s))
	}
	return symbols
}
