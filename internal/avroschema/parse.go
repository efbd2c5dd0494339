// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avroschema

import (
	"bytes"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/hamba/avro/v2"
	"gopkg.in/yaml.v3"
)

// ErrEmptySchema indicates the input document holds no schema.
var ErrEmptySchema = errors.New("empty schema document")

// ParseJSON decodes a JSON schema document without validating it.
// Numbers are kept as json.Number so they surface as KindUnknown.
func ParseJSON(data []byte) (Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Node{}, ErrEmptySchema
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return Node{}, fmt.Errorf("failed to decode JSON schema: %w", err)
	}
	return FromValue(v), nil
}

// ParseYAML decodes a YAML schema document without validating it.
func ParseYAML(data []byte) (Node, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Node{}, fmt.Errorf("failed to decode YAML schema: %w", err)
	}
	if v == nil {
		return Node{}, ErrEmptySchema
	}
	return FromValue(v), nil
}

// ParseStrict parses and validates a JSON schema document as Avro.
// Each call uses its own name cache, so named types never leak between documents.
func ParseStrict(data []byte) (Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Node{}, ErrEmptySchema
	}

	schema, err := avro.ParseWithCache(string(data), "", &avro.SchemaCache{})
	if err != nil {
		return Node{}, fmt.Errorf("invalid Avro schema: %w", err)
	}
	return FromAvro(schema), nil
}

// FromAvro converts a parsed Avro schema into a Node.
// Named types that are referenced again after their definition arrive as
// *avro.RefSchema and become references, except fixed types, which map to
// bytes wherever they appear.
func FromAvro(schema avro.Schema) Node {
	switch s := schema.(type) {
	case *avro.NullSchema:
		return Primitive(Null)
	case *avro.PrimitiveSchema:
		return Primitive(string(s.Type()))
	case *avro.RefSchema:
		if _, ok := s.Schema().(*avro.FixedSchema); ok {
			return Primitive(Bytes)
		}
		return Ref(s.Schema().Name())
	case *avro.FixedSchema:
		return Primitive(Bytes)
	case *avro.UnionSchema:
		types := make([]Node, 0, len(s.Types()))
		for _, t := range s.Types() {
			types = append(types, FromAvro(t))
		}
		return Union(types...)
	case *avro.ArraySchema:
		return Array(FromAvro(s.Items()))
	case *avro.MapSchema:
		return Map(FromAvro(s.Values()))
	case *avro.RecordSchema:
		fields := make([]Field, 0, len(s.Fields()))
		for _, f := range s.Fields() {
			fields = append(fields, Field{
				Name: f.Name(),
				Type: FromAvro(f.Type()),
				Doc:  f.Doc(),
			})
		}
		n := Record(s.Name(), fields...)
		n.Doc = s.Doc()
		return n
	case *avro.EnumSchema:
		n := Enum(s.Name(), s.Symbols()...)
		n.Doc = s.Doc()
		return n
	default:
		return Unknown(schema.String())
	}
}
