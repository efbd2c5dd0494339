// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		dir        string // relative to testdata, empty means use t.TempDir()
		wantErr    error
		wantFormat string // only checked if wantErr is nil
		wantOutput string // only checked if wantErr is nil
	}{
		{
			name:       "no config file uses defaults",
			dir:        "",
			wantFormat: "",
			wantOutput: "types",
		},
		{
			name:    "invalid config",
			dir:     "testdata/invalid-config",
			wantErr: ErrInvalidConfig,
		},
		{
			name:       "valid",
			dir:        "testdata/valid",
			wantFormat: "typescript-declarations",
			wantOutput: "src/types",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var testDir string
			if tt.dir == "" {
				testDir = t.TempDir()
			} else {
				var err error
				testDir, err = filepath.Abs(tt.dir)
				require.NoError(t, err)
			}

			origDir, _ := os.Getwd()
			defer func() { _ = os.Chdir(origDir) }()
			require.NoError(t, os.Chdir(testDir))

			ctx, err := Load(context.Background(), Options{LogOutput: &bytes.Buffer{}})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			sessCtx := From(ctx)
			require.NotNil(t, sessCtx)
			assert.Equal(t, tt.wantFormat, sessCtx.Config.Format)
			assert.Equal(t, tt.wantOutput, sessCtx.Config.Output)
			assert.NotNil(t, sessCtx.Logger)
		})
	}
}

func TestLoad_ExplicitConfigPath(t *testing.T) {
	path, err := filepath.Abs("testdata/valid/avrots.yaml")
	require.NoError(t, err)

	ctx, err := Load(context.Background(), Options{ConfigPath: path, LogOutput: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.Equal(t, path, From(ctx).ConfigPath)

	_, err = Load(context.Background(), Options{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoad_EnvAndLogLevelOverrides(t *testing.T) {
	t.Setenv("AVROTS_OUTPUT", "from-env")

	origDir, _ := os.Getwd()
	defer func() { _ = os.Chdir(origDir) }()
	require.NoError(t, os.Chdir(t.TempDir()))

	var logs bytes.Buffer
	ctx, err := Load(context.Background(), Options{LogLevel: "debug", LogOutput: &logs})
	require.NoError(t, err)

	sessCtx := From(ctx)
	assert.Equal(t, "from-env", sessCtx.Config.Output)
	assert.Equal(t, "debug", sessCtx.Config.LogLevel)

	sessCtx.Logger.Debug("visible")
	assert.Contains(t, logs.String(), "visible")
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	origDir, _ := os.Getwd()
	defer func() { _ = os.Chdir(origDir) }()
	require.NoError(t, os.Chdir(t.TempDir()))

	_, err := Load(context.Background(), Options{LogLevel: "loud"})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestFrom_NoContextStored(t *testing.T) {
	assert.Nil(t, From(context.Background()))
}
