// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import "github.com/charmbracelet/huh"

// RunTranslateFormatSelect returns a select field for choosing translation output format.
func RunTranslateFormatSelect(value *string, formats []string) *huh.Select[string] {
	options := make([]huh.Option[string], len(formats))
	for i, f := range formats {
		options[i] = huh.NewOption(f, f)
	}
	return huh.NewSelect[string]().
		Title("Output format").
		Options(options...).
		Value(value)
}

// RunTranslateForm prompts for whichever of format and output is still empty.
// Nothing is shown when both are already set.
func RunTranslateForm(format, output *string, formats []string) error {
	var fields []huh.Field
	if *format == "" {
		fields = append(fields, RunTranslateFormatSelect(format, formats))
	}
	if *output == "" {
		fields = append(fields, huh.NewInput().
			Title("Output directory").
			Placeholder("types").
			Value(output).
			Validate(requiredValidator("output directory")))
	}
	if len(fields) == 0 {
		return nil
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme()).Run()
}
