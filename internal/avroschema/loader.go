// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avroschema

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
)

// ErrUnsupportedFormat indicates a schema file extension with no parser.
var ErrUnsupportedFormat = errors.New("format not supported")

// Loader loads schemas from a filesystem.
type Loader struct {
	fsys   fs.FS
	strict bool
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithStrict makes the Loader validate JSON schemas with the Avro parser
// instead of classifying them structurally.
func WithStrict(strict bool) LoaderOption {
	return func(l *Loader) {
		l.strict = strict
	}
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS, opts ...LoaderOption) *Loader {
	l := &Loader{fsys: fsys}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFile loads and parses a schema file.
// The format is determined from the file extension.
func (l *Loader) LoadFile(filePath string) (Node, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return Node{}, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return Node{}, err
	}

	node, err := l.parse(data, filePath)
	if err != nil {
		return Node{}, fmt.Errorf("%s: %w", filePath, err)
	}
	return node, nil
}

func (l *Loader) parse(data []byte, filePath string) (Node, error) {
	switch strings.ToLower(path.Ext(filePath)) {
	case ".avsc", ".json":
		if l.strict {
			return ParseStrict(data)
		}
		return ParseJSON(data)
	case ".yaml", ".yml":
		if l.strict {
			return Node{}, fmt.Errorf("%w: strict mode requires JSON input", ErrUnsupportedFormat)
		}
		return ParseYAML(data)
	default:
		return Node{}, ErrUnsupportedFormat
	}
}
