// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dacolabs/avro-typescript/internal/config"
	"github.com/dacolabs/avro-typescript/internal/prompts"
	"github.com/dacolabs/avro-typescript/internal/session"
	"github.com/dacolabs/avro-typescript/internal/translate"
	"github.com/spf13/cobra"
)

type initOptions struct {
	format         string
	output         string
	dedupe         string
	strict         bool
	nonInteractive bool
}

func newInitCmd(translators translate.Register) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize an avrots project",
		Long: `Initialize an avrots project with an ` + session.ConfigFileName + ` configuration file
in the current directory.`,
		Example: `  # Interactive mode
  avrots init

  # Non-interactive
  avrots init --format typescript --output src/types --non-interactive`,
		// No config exists yet, so skip loading one.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, translators, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Default output format")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "types", "Default output directory")
	cmd.Flags().StringVar(&opts.dedupe, "dedupe", "name", "Duplicate declaration policy (name, none)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Validate schemas with the Avro parser")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(cmd *cobra.Command, translators translate.Register, opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfgPath := filepath.Join(cwd, session.ConfigFileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return errors.New(session.ConfigFileName + " already exists; project already initialized")
	}

	if !opts.nonInteractive {
		if err := prompts.RunInitForm(&opts.format, &opts.output, &opts.dedupe, &opts.strict, translators.Available()); err != nil {
			return err
		}
	}

	if opts.format != "" {
		if _, err := translators.Get(opts.format); err != nil {
			return err
		}
	}

	cfg := config.Default()
	cfg.Format = opts.format
	cfg.Output = opts.output
	cfg.Dedupe = opts.dedupe
	cfg.Strict = opts.strict
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("failed to write %s: %w", session.ConfigFileName, err)
	}

	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Config", Value: session.ConfigFileName},
		{Label: "Format", Value: cfg.Format},
		{Label: "Output", Value: cfg.Output},
		{Label: "Strict", Value: strconv.FormatBool(cfg.Strict)},
	}, "Initialization completed")
	return nil
}
