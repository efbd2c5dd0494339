// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

// DeclKind identifies what produced a top-level declaration.
type DeclKind string

// Declaration kinds.
const (
	DeclRecord DeclKind = "record"
	DeclEnum   DeclKind = "enum"
)

// Decl is a hoisted top-level declaration.
type Decl struct {
	Name string
	Kind DeclKind
	Text string // complete declaration text, including its trailing newline
}

// Field is a record field after its type has been resolved.
type Field struct {
	Name string // field name, verbatim
	Type string // resolved target type expression
	Doc  string // schema doc, if any
}

// Diagnostic codes.
const (
	CodeUnknownShape           = "unknown-shape"
	CodeConflictingDeclaration = "conflicting-declaration"
)

// Diagnostic is a non-fatal problem found during conversion.
type Diagnostic struct {
	Code    string
	Path    string // dotted location in the schema, e.g. "Person.address.items"
	Message string
}

func (d Diagnostic) String() string {
	if d.Path == "" {
		return d.Code + ": " + d.Message
	}
	return d.Path + ": " + d.Code + ": " + d.Message
}

// Result is the outcome of converting one schema node.
type Result struct {
	Expr        string       // type expression for use at the call site
	Decls       []Decl       // declarations in first-encounter order
	Diagnostics []Diagnostic // problems found, in traversal order
}

// DeclNames returns the names of all declarations, in order.
func (r Result) DeclNames() []string {
	names := make([]string, 0, len(r.Decls))
	for _, d := range r.Decls {
		names = append(names, d.Name)
	}
	return names
}

// HasDecl reports whether a declaration named name was produced.
func (r Result) HasDecl(name string) bool {
	for _, d := range r.Decls {
		if d.Name == name {
			return true
		}
	}
	return false
}
