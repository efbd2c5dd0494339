// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import "github.com/charmbracelet/huh"

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(format, output, dedupe *string, strict *bool, formats []string) error {
	return huh.NewForm(
		huh.NewGroup(
			RunTranslateFormatSelect(format, formats),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Output directory").
				Placeholder("types").
				Validate(requiredValidator("output directory")).
				Value(output),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Duplicate declarations").
				Options(
					huh.NewOption("Keep the first declaration of each name (recommended)", "name"),
					huh.NewOption("Emit every declaration", "none"),
				).
				Value(dedupe),
			huh.NewConfirm().
				Title("Validate schemas with the Avro parser?").
				Affirmative("Yes").
				Negative("No").
				Value(strict),
		),
	).WithTheme(Theme()).Run()
}
