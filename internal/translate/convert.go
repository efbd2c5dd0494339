// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dacolabs/avro-typescript/internal/avroschema"
)

// DedupePolicy controls what happens when two declarations share a name.
type DedupePolicy int

const (
	// DedupeByName keeps the first declaration of each name. A later one with
	// different text is dropped and reported as a conflict.
	DedupeByName DedupePolicy = iota
	// DedupeNone appends every declaration, once per visit.
	DedupeNone
)

// ParseDedupePolicy parses "name" or "none". The empty string means "name".
func ParseDedupePolicy(s string) (DedupePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "name":
		return DedupeByName, nil
	case "none":
		return DedupeNone, nil
	default:
		return DedupeByName, fmt.Errorf("unknown dedupe policy %q (want name or none)", s)
	}
}

type options struct {
	logger *slog.Logger
	dedupe DedupePolicy
}

// Option configures a conversion.
type Option func(*options)

// WithLogger sets the logger that receives conversion warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithDedupe sets the declaration deduplication policy.
func WithDedupe(policy DedupePolicy) Option {
	return func(o *options) {
		o.dedupe = policy
	}
}

// converter holds the read-only state of one conversion. All accumulated
// output travels in the Result values returned by each step.
type converter struct {
	resolver TypeResolver
	logger   *slog.Logger
	dedupe   DedupePolicy
}

// Convert translates a schema node into a type expression plus the top-level
// declarations hoisted out of it. Records and enums are declared once where
// they are defined and referred to by name at their use site. References are
// never expanded, so self-referential schemas terminate.
func Convert(node avroschema.Node, resolver TypeResolver, opts ...Option) Result {
	o := options{
		logger: slog.New(slog.DiscardHandler),
		dedupe: DedupeByName,
	}
	for _, opt := range opts {
		opt(&o)
	}

	c := &converter{
		resolver: resolver,
		logger:   o.logger.With("component", "translate"),
		dedupe:   o.dedupe,
	}
	return c.convert(node, "")
}

func (c *converter) convert(n avroschema.Node, path string) Result {
	switch n.Kind {
	case avroschema.KindPrimitive:
		if typ, ok := c.resolver.PrimitiveType(n.Name); ok {
			return Result{Expr: typ}
		}
		return Result{Expr: n.Name}

	case avroschema.KindReference:
		return Result{Expr: c.resolver.RefType(n.Name)}

	case avroschema.KindUnion:
		var acc Result
		members := make([]string, 0, len(n.Types))
		for i, member := range n.Types {
			sub := c.convert(member, fmt.Sprintf("%s[%d]", path, i))
			c.fold(&acc, sub)
			members = append(members, sub.Expr)
		}
		acc.Expr = c.resolver.UnionType(members)
		return acc

	case avroschema.KindRecord:
		return c.convertRecord(n, path)

	case avroschema.KindArray:
		if n.Items == nil {
			return c.unknown(n, path)
		}
		sub := c.convert(*n.Items, joinPath(path, "items"))
		sub.Expr = c.resolver.ArrayType(sub.Expr)
		return sub

	case avroschema.KindMap:
		if n.Values == nil {
			return c.unknown(n, path)
		}
		sub := c.convert(*n.Values, joinPath(path, "values"))
		sub.Expr = c.resolver.MapType(sub.Expr)
		return sub

	case avroschema.KindEnum:
		return c.convertEnum(n)

	default:
		return c.unknown(n, path)
	}
}

// convertRecord resolves every field first, so declarations nested in the
// fields land before the record's own declaration.
func (c *converter) convertRecord(n avroschema.Node, path string) Result {
	base := path
	if base == "" {
		base = n.Name
	}

	var acc Result
	lines := make([]string, 0, len(n.Fields))
	for _, f := range n.Fields {
		line, sub := c.convertField(f, joinPath(base, f.Name))
		c.fold(&acc, sub)
		lines = append(lines, line)
	}

	c.appendDecl(&acc, Decl{
		Name: n.Name,
		Kind: DeclRecord,
		Text: c.resolver.RecordDecl(n.Name, n.Doc, lines),
	})
	acc.Expr = c.resolver.RefType(n.Name)
	return acc
}

func (c *converter) convertEnum(n avroschema.Node) Result {
	var acc Result
	c.appendDecl(&acc, Decl{
		Name: n.Name,
		Kind: DeclEnum,
		Text: c.resolver.EnumDecl(n.Name, n.Doc, n.Symbols),
	})
	acc.Expr = c.resolver.RefType(n.Name)
	return acc
}

func (c *converter) convertField(f avroschema.Field, path string) (string, Result) {
	sub := c.convert(f.Type, path)
	line := c.resolver.FieldDecl(Field{
		Name: f.Name,
		Type: sub.Expr,
		Doc:  f.Doc,
	})
	return line, sub
}

func (c *converter) unknown(n avroschema.Node, path string) Result {
	c.logger.Warn("cannot work out type",
		slog.String("path", path),
		slog.Any("value", n.Raw),
	)
	return Result{
		Expr: c.resolver.UnknownType(),
		Diagnostics: []Diagnostic{{
			Code:    CodeUnknownShape,
			Path:    path,
			Message: fmt.Sprintf("cannot work out type %v", n.Raw),
		}},
	}
}

// fold merges the declarations and diagnostics of sub into acc. The
// expression of sub is left for the caller.
func (c *converter) fold(acc *Result, sub Result) {
	acc.Diagnostics = append(acc.Diagnostics, sub.Diagnostics...)
	for _, d := range sub.Decls {
		c.appendDecl(acc, d)
	}
}

func (c *converter) appendDecl(acc *Result, d Decl) {
	if c.dedupe == DedupeByName {
		for _, existing := range acc.Decls {
			if existing.Name != d.Name {
				continue
			}
			if existing.Text != d.Text {
				c.logger.Warn("conflicting declaration dropped",
					slog.String("name", d.Name),
					slog.String("kind", string(d.Kind)),
				)
				acc.Diagnostics = append(acc.Diagnostics, Diagnostic{
					Code:    CodeConflictingDeclaration,
					Path:    d.Name,
					Message: fmt.Sprintf("%s %q redeclared with a different definition; keeping the first", d.Kind, d.Name),
				})
			}
			return
		}
	}
	acc.Decls = append(acc.Decls, d)
}

func joinPath(parent, segment string) string {
	if parent == "" {
		return segment
	}
	return parent + "." + segment
}
