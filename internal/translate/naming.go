// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToPascalCase converts a snake_case, kebab-case or dotted string to PascalCase
// for type name generation. Existing inner capitals are kept, and the result is
// prefixed with an underscore if it would start with a digit.
func ToPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9')
	})

	// A Caser keeps state between calls, so each conversion gets its own.
	caser := cases.Title(language.Und, cases.NoLower)
	var sb strings.Builder
	for _, part := range parts {
		sb.WriteString(caser.String(part))
	}

	result := sb.String()
	if result != "" && result[0] >= '0' && result[0] <= '9' {
		result = "_" + result
	}
	return result
}

// RootNameFromPath derives a root type name from a schema file path,
// e.g. "schemas/user_event.avsc" -> "UserEvent".
func RootNameFromPath(path string) string {
	base := filepath.Base(path)
	return ToPascalCase(strings.TrimSuffix(base, filepath.Ext(base)))
}
