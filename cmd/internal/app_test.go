// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package internal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslators(t *testing.T) {
	assert.Equal(t, []string{"typescript", "typescript-declarations"}, Translators().Available())
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	err := Run(context.Background(), []string{"frobnicate"})
	require.Error(t, err)
}
