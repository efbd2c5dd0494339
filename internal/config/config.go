// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles avrots project configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/dacolabs/avro-typescript/internal/logging"
	"github.com/dacolabs/avro-typescript/internal/translate"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// EnvPrefix prefixes every environment override, e.g. AVROTS_FORMAT.
const EnvPrefix = "avrots"

// Config represents the avrots.yaml project configuration file.
type Config struct {
	Version  int    `yaml:"version" ignored:"true"`
	Format   string `yaml:"format,omitempty"`
	Output   string `yaml:"output,omitempty"`
	Strict   bool   `yaml:"strict,omitempty"`
	Dedupe   string `yaml:"dedupe,omitempty"`
	LogLevel string `yaml:"log_level,omitempty" split_words:"true"`
}

// Default returns the configuration used when no avrots.yaml exists.
func Default() *Config {
	return &Config{
		Version:  CurrentConfigVersion,
		Output:   "types",
		Dedupe:   "name",
		LogLevel: "warn",
	}
}

// Load reads a Config from a file path. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	cfg := Default()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// ApplyEnv overrides fields from AVROTS_* environment variables.
// Variables that are not set leave the field untouched.
func (c *Config) ApplyEnv() error {
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return fmt.Errorf("failed to process environment variables: %w", err)
	}
	return nil
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if _, err := translate.ParseDedupePolicy(c.Dedupe); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// DedupePolicy returns the parsed dedupe setting. Call Validate first.
func (c *Config) DedupePolicy() translate.DedupePolicy {
	policy, _ := translate.ParseDedupePolicy(c.Dedupe)
	return policy
}
