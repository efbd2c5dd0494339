// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dacolabs/avro-typescript/internal/config"
	"github.com/dacolabs/avro-typescript/internal/logging"
)

var (
	// ErrConfigNotFound indicates an explicitly requested config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ConfigFileName is the name of the avrots configuration file.
const ConfigFileName = "avrots.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved configuration and the logger built from it.
type Context struct {
	// Config is the fully resolved configuration (defaults, file, then environment).
	Config *config.Config

	// ConfigPath is the file the configuration was read from, empty if none.
	ConfigPath string

	// Logger receives warnings and diagnostics.
	Logger *slog.Logger
}

// Options controls how Load resolves the configuration.
type Options struct {
	// ConfigPath overrides the default ./avrots.yaml lookup. It must exist.
	ConfigPath string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string

	// LogOutput is where the logger writes. Defaults to os.Stderr.
	LogOutput io.Writer
}

// Load resolves the configuration and returns a new context.Context with the
// session Context stored in it. A missing ./avrots.yaml is not an error; the
// defaults are used instead.
func Load(ctx context.Context, opts Options) (context.Context, error) {
	configPath := opts.ConfigPath
	explicit := configPath != ""
	if !explicit {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		configPath = filepath.Join(cwd, ConfigFileName)
	}

	cfg := config.Default()
	if _, statErr := os.Stat(configPath); statErr == nil {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		cfg = loaded
	} else if explicit {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
	} else {
		configPath = ""
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}

	sessCtx := &Context{
		Config:     cfg,
		ConfigPath: configPath,
		Logger:     logging.New(out, cfg.LogLevel),
	}

	return context.WithValue(ctx, contextKey{}, sessCtx), nil
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sessCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sessCtx
	}
	return nil
}
