// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avroschema

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadFile(t *testing.T) {
	fsys := fstest.MapFS{
		"schemas/person.avsc": {Data: []byte(personJSON)},
		"schemas/event.yaml":  {Data: []byte("type: array\nitems: string\n")},
		"schemas/tags.json":   {Data: []byte(`{"type": "map", "values": "long"}`)},
		"schemas/notes.txt":   {Data: []byte("hello")},
	}

	tests := []struct {
		name     string
		path     string
		strict   bool
		wantKind Kind
		wantErr  error
	}{
		{name: "avsc", path: "schemas/person.avsc", wantKind: KindRecord},
		{name: "avsc strict", path: "schemas/person.avsc", strict: true, wantKind: KindRecord},
		{name: "yaml", path: "schemas/event.yaml", wantKind: KindArray},
		{name: "json", path: "schemas/tags.json", wantKind: KindMap},
		{name: "yaml strict", path: "schemas/event.yaml", strict: true, wantErr: ErrUnsupportedFormat},
		{name: "unsupported extension", path: "schemas/notes.txt", wantErr: ErrUnsupportedFormat},
		{name: "missing file", path: "schemas/missing.avsc", wantErr: fs.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewLoader(fsys, WithStrict(tt.strict))
			n, err := loader.LoadFile(tt.path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, n.Kind)
		})
	}
}

func TestLoader_ErrorNamesFile(t *testing.T) {
	fsys := fstest.MapFS{"bad.avsc": {Data: []byte(`{"type":`)}}

	_, err := NewLoader(fsys).LoadFile("bad.avsc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.avsc")
}
