// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dacolabs/avro-typescript/internal/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_LoadAndSave(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "avrots.yaml")

	cfg := Config{
		Version:  1,
		Format:   "typescript",
		Output:   "src/types",
		Strict:   true,
		Dedupe:   "none",
		LogLevel: "debug",
	}

	err := cfg.Save(cfgPath)
	require.NoError(t, err)

	loaded, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, cfg, *loaded)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: "",
		},
		{
			name:    "unsupported version",
			mutate:  func(c *Config) { c.Version = 99 },
			wantErr: "unsupported config version",
		},
		{
			name:    "bad dedupe policy",
			mutate:  func(c *Config) { c.Dedupe = "sometimes" },
			wantErr: "unknown dedupe policy",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.LogLevel = "loud" },
			wantErr: "unknown log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfig_SaveFormat(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "avrots.yaml")

	cfg := Config{
		Version: 1,
		Output:  "types",
	}

	err := cfg.Save(cfgPath)
	require.NoError(t, err)

	content, err := os.ReadFile(cfgPath) //nolint:gosec // test file path
	require.NoError(t, err)

	output := string(content)
	assert.Contains(t, output, "version: 1")
	assert.Contains(t, output, "output: types")
	assert.NotContains(t, output, "strict")
}

func TestConfig_Load(t *testing.T) {
	cfg, err := Load("testdata/valid.yaml")
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "typescript", cfg.Format)
	assert.Equal(t, "generated", cfg.Output)
	assert.True(t, cfg.Strict)
	// Not in the file, so the defaults survive.
	assert.Equal(t, "name", cfg.Dedupe)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestConfig_Load_NotFound(t *testing.T) {
	_, err := Load("testdata/nonexistent.yaml")
	assert.Error(t, err)
}

func TestConfig_Load_Invalid(t *testing.T) {
	_, err := Load("testdata/invalid.yaml")
	assert.Error(t, err)
}

func TestConfig_Save_InvalidPath(t *testing.T) {
	cfg := Config{Version: 1}

	err := cfg.Save("/nonexistent/directory/config.yaml")
	assert.Error(t, err)
}

func TestConfig_Load_Empty(t *testing.T) {
	tmpDir := t.TempDir()
	emptyFile := filepath.Join(tmpDir, "empty.yaml")
	require.NoError(t, os.WriteFile(emptyFile, []byte(""), 0o600))

	_, err := Load(emptyFile)
	assert.Error(t, err)
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Setenv("AVROTS_FORMAT", "typescript-declarations")
	t.Setenv("AVROTS_STRICT", "true")
	t.Setenv("AVROTS_DEDUPE", "none")
	t.Setenv("AVROTS_LOG_LEVEL", "debug")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "typescript-declarations", cfg.Format)
	assert.True(t, cfg.Strict)
	assert.Equal(t, translate.DedupeNone, cfg.DedupePolicy())
	assert.Equal(t, "debug", cfg.LogLevel)
	// Unset variables leave fields alone.
	assert.Equal(t, "types", cfg.Output)
	assert.Equal(t, CurrentConfigVersion, cfg.Version)
}

func TestConfig_ApplyEnv_Invalid(t *testing.T) {
	t.Setenv("AVROTS_STRICT", "maybe")

	err := Default().ApplyEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to process environment variables")
}
