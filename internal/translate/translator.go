// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate converts Avro schema nodes into target-language type declarations.
package translate

import (
	"fmt"
	"sort"

	"github.com/dacolabs/avro-typescript/internal/avroschema"
)

// Translator defines the interface all format translators must implement.
type Translator interface {
	// Name returns the translator's identifier (e.g., "typescript")
	Name() string

	// Translate converts a schema to a complete source file in the target format.
	// rootName names the root type when it is not itself a hoisted declaration.
	Translate(rootName string, node avroschema.Node, opts ...Option) (*Output, error)

	// FileExtension returns the appropriate file extension (e.g., ".ts", ".d.ts")
	FileExtension() string
}

// Output is a rendered file together with the conversion result it came from.
type Output struct {
	Data   []byte
	Result Result
}

// Register maps translator names to translators.
type Register map[string]Translator

// Add registers t under its own name.
func (r Register) Add(t Translator) {
	r[t.Name()] = t
}

// Get retrieves a translator by name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown translator: %s", name)
	}
	return t, nil
}

// Available returns all registered translator names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
