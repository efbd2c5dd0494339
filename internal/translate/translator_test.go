// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"testing"

	"github.com/dacolabs/avro-typescript/internal/avroschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedTranslator struct{ name string }

func (n *namedTranslator) Name() string          { return n.name }
func (n *namedTranslator) FileExtension() string { return ".txt" }
func (n *namedTranslator) Translate(string, avroschema.Node, ...Option) (*Output, error) {
	return &Output{}, nil
}

func TestRegister(t *testing.T) {
	r := make(Register)
	r.Add(&namedTranslator{name: "zeta"})
	r.Add(&namedTranslator{name: "alpha"})

	assert.Equal(t, []string{"alpha", "zeta"}, r.Available())

	tr, err := r.Get("zeta")
	require.NoError(t, err)
	assert.Equal(t, "zeta", tr.Name())

	_, err = r.Get("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown translator: missing")
}

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "user_event", want: "UserEvent"},
		{in: "user-event", want: "UserEvent"},
		{in: "my.schema.v2", want: "MySchemaV2"},
		{in: "userEvent", want: "UserEvent"},
		{in: "HTTP_server", want: "HTTPServer"},
		{in: "2024_report", want: "_2024Report"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ToPascalCase(tt.in))
		})
	}
}

func TestRootNameFromPath(t *testing.T) {
	assert.Equal(t, "UserEvent", RootNameFromPath("schemas/user_event.avsc"))
	assert.Equal(t, "Orders", RootNameFromPath("/tmp/orders.yaml"))
}
