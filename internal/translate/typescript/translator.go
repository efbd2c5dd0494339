// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package typescript provides TypeScript type declaration translation utilities.
package typescript

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/dacolabs/avro-typescript/internal/avroschema"
	"github.com/dacolabs/avro-typescript/internal/translate"
)

//go:embed typescript.ts.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "typescript.ts.tmpl"))

// Translator translates Avro schemas to TypeScript interfaces and enums.
// With Declaration set it emits an ambient declaration file instead.
type Translator struct {
	Declaration bool
}

// Name returns the translator's identifier.
func (t *Translator) Name() string {
	if t.Declaration {
		return "typescript-declarations"
	}
	return "typescript"
}

// FileExtension returns the file extension for TypeScript sources.
func (t *Translator) FileExtension() string {
	if t.Declaration {
		return ".d.ts"
	}
	return ".ts"
}

type templateData struct {
	Decls    []translate.Decl
	RootName string
	Expr     string
	Alias    bool
}

// Translate converts an Avro schema to a TypeScript source file: every hoisted
// declaration in order, then a type alias named rootName when the root
// expression is not itself one of those declarations.
func (t *Translator) Translate(rootName string, node avroschema.Node, opts ...translate.Option) (*translate.Output, error) {
	res := translate.Convert(node, &resolver{declaration: t.Declaration}, opts...)

	data := templateData{
		Decls:    res.Decls,
		RootName: rootName,
		Expr:     res.Expr,
		Alias:    rootName != "" && res.Expr != "" && !res.HasDecl(res.Expr),
	}
	if data.Alias && res.HasDecl(rootName) {
		data.RootName = rootName + "Root"
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "typescript.ts.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return &translate.Output{Data: buf.Bytes(), Result: res}, nil
}
