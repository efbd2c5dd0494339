// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/dacolabs/avro-typescript/internal/commands"
	"github.com/dacolabs/avro-typescript/internal/translate"
	"github.com/dacolabs/avro-typescript/internal/translate/typescript"
)

// Translators returns every output format the CLI supports.
func Translators() translate.Register {
	translators := make(translate.Register)
	translators.Add(&typescript.Translator{})
	translators.Add(&typescript.Translator{Declaration: true})
	return translators
}

// Run is the main application logic, extracted for testability.
func Run(ctx context.Context, args []string) error {
	rootCmd := commands.NewRootCmd(Translators())
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
