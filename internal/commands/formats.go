// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/dacolabs/avro-typescript/internal/translate"
	"github.com/spf13/cobra"
)

func newFormatsCmd(translators translate.Register) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List available output formats",
		Example: `  # Show every format accepted by --format
  avrots formats`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range translators.Available() {
				t, _ := translators.Get(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, t.FileExtension())
			}
			return nil
		},
	}
}
