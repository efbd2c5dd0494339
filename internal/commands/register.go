// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/dacolabs/avro-typescript/internal/session"
	"github.com/dacolabs/avro-typescript/internal/translate"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(translators translate.Register) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "avrots",
		Short: "Generate TypeScript types from Avro schemas",
		Long: `Generate TypeScript interfaces and enums from Avro schema files.

Records and enums nested anywhere in a schema are hoisted to top-level
declarations and referenced by name where they are used.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: session.PreRunLoad,
	}

	rootCmd.PersistentFlags().String(session.ConfigFlag, "", "Path to config file (default ./"+session.ConfigFileName+")")
	rootCmd.PersistentFlags().String(session.LogLevelFlag, "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newInitCmd(translators))
	rootCmd.AddCommand(newTranslateCmd(translators))
	rootCmd.AddCommand(newFormatsCmd(translators))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
