// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/dacolabs/avro-typescript/internal/avroschema"
	"github.com/dacolabs/avro-typescript/internal/prompts"
	"github.com/dacolabs/avro-typescript/internal/session"
	"github.com/dacolabs/avro-typescript/internal/translate"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type translateOptions struct {
	format   string
	output   string
	stdout   bool
	strict   bool
	dedupe   string
	rootName string
}

// fileResult is the outcome of translating one schema file.
type fileResult struct {
	path    string
	outFile string
	output  *translate.Output
	err     error
}

func newTranslateCmd(translators translate.Register) *cobra.Command {
	opts := &translateOptions{}

	cmd := &cobra.Command{
		Use:   "translate <schema-file>...",
		Short: "Translate Avro schema files to a target format",
		Long: fmt.Sprintf(`Translate Avro schema files (.avsc, .json, .yaml) to a target format.

Each input produces one output file named after it. Nested records and enums
become top-level declarations; unknown schema shapes are emitted as UNKNOWN
and reported as warnings.

Available formats: %s`, strings.Join(translators.Available(), ", ")),
		Example: `  # Translate one schema into ./types/user.ts
  avrots translate schemas/user.avsc --format typescript

  # Translate several schemas into a custom directory
  avrots translate schemas/*.avsc --format typescript --output src/generated

  # Validate with the Avro parser first and print to stdout
  avrots translate user.avsc --format typescript --strict --stdout`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, translators, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", fmt.Sprintf("Output format (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (default from config, \"types\")")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "Write translations to stdout instead of files")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Validate JSON schemas with the Avro parser before translating")
	cmd.Flags().StringVar(&opts.dedupe, "dedupe", "", "Duplicate declaration policy (name, none)")
	cmd.Flags().StringVar(&opts.rootName, "root-name", "", "Name of the root type alias (single input only)")

	return cmd
}

func runTranslate(cmd *cobra.Command, translators translate.Register, opts *translateOptions, args []string) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}
	cfg := ctx.Config

	// Flags win over config
	format := opts.format
	if !cmd.Flags().Changed("format") {
		format = cfg.Format
	}
	output := opts.output
	if !cmd.Flags().Changed("output") {
		output = cfg.Output
	}
	strict := opts.strict
	if !cmd.Flags().Changed("strict") {
		strict = cfg.Strict
	}

	if opts.rootName != "" && len(args) > 1 {
		return errors.New("--root-name requires exactly one schema file")
	}

	if err := resolveFormat(&format, &output, opts.stdout, translators); err != nil {
		return err
	}

	translator, err := translators.Get(format)
	if err != nil {
		return fmt.Errorf("unsupported format %q. Available formats: %s",
			format, strings.Join(translators.Available(), ", "))
	}

	policy := cfg.DedupePolicy()
	if cmd.Flags().Changed("dedupe") {
		if policy, err = translate.ParseDedupePolicy(opts.dedupe); err != nil {
			return err
		}
	}

	if !opts.stdout {
		if err := os.MkdirAll(output, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	results := make([]fileResult, len(args))
	for i, path := range args {
		results[i] = fileResult{path: path}
	}
	if !opts.stdout {
		assignOutputPaths(results, output, translator.FileExtension())
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range results {
		if results[i].err != nil {
			continue
		}
		g.Go(func() error {
			res := &results[i]
			if err := cmd.Context().Err(); err != nil {
				res.err = err
				return nil
			}

			logger := ctx.Logger.With(slog.String("file", res.path))
			res.output, res.err = translateFile(res.path, translator, strict, opts.rootName,
				translate.WithLogger(logger),
				translate.WithDedupe(policy),
			)
			if res.err == nil && !opts.stdout {
				res.err = os.WriteFile(res.outFile, res.output.Data, 0o600)
			}
			return nil
		})
	}
	_ = g.Wait()

	summary := cmd.OutOrStdout()
	if opts.stdout {
		summary = cmd.ErrOrStderr()
	}

	var failures []string
	warnings := 0
	for _, res := range results {
		if res.err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", res.path, res.err))
			continue
		}
		warnings += len(res.output.Result.Diagnostics)
		if opts.stdout {
			if _, err := cmd.OutOrStdout().Write(res.output.Data); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			continue
		}
		fmt.Fprintf(summary, "  %s\n", res.outFile)
	}

	fields := []prompts.ResultField{
		{Label: "Format", Value: format},
		{Label: "Translated", Value: strconv.Itoa(len(args) - len(failures))},
	}
	if warnings > 0 {
		fields = append(fields, prompts.ResultField{Label: "Warnings", Value: strconv.Itoa(warnings)})
	}
	prompts.PrintResult(summary, fields, "")

	if len(failures) > 0 {
		prompts.PrintIssues(cmd.ErrOrStderr(), "\nErrors:", failures)
		return fmt.Errorf("failed to translate %d file(s)", len(failures))
	}

	return nil
}

// resolveFormat fills in a missing format: a lone translator is picked
// directly, otherwise the user is prompted when stdin is a terminal.
func resolveFormat(format, output *string, stdout bool, translators translate.Register) error {
	if *format == "" && len(translators) == 1 {
		*format = translators.Available()[0]
	}
	if stdout && *output == "" {
		*output = "-"
	}
	if *format != "" && *output != "" {
		return nil
	}
	if !isInteractive() {
		if *format == "" {
			return fmt.Errorf("--format is required. Available formats: %s",
				strings.Join(translators.Available(), ", "))
		}
		return errors.New("--output is required")
	}
	return prompts.RunTranslateForm(format, output, translators.Available())
}

func translateFile(path string, translator translate.Translator, strict bool, rootName string, opts ...translate.Option) (*translate.Output, error) {
	loader := avroschema.NewLoader(os.DirFS(filepath.Dir(path)), avroschema.WithStrict(strict))
	node, err := loader.LoadFile(filepath.Base(path))
	if err != nil {
		return nil, err
	}

	if rootName == "" {
		rootName = translate.RootNameFromPath(path)
	}
	return translator.Translate(rootName, node, opts...)
}

// assignOutputPaths sets the output file of every result. An input whose
// output file is already claimed by an earlier argument fails instead of
// overwriting it.
func assignOutputPaths(results []fileResult, dir, ext string) {
	claimed := make(map[string]string, len(results))
	for i := range results {
		res := &results[i]
		res.outFile = outputPath(dir, res.path, ext)
		if first, ok := claimed[res.outFile]; ok {
			res.err = fmt.Errorf("output %s is already written for %s", res.outFile, first)
			continue
		}
		claimed[res.outFile] = res.path
	}
}

// outputPath maps an input schema path to its file in dir,
// e.g. "schemas/user.avsc" -> "<dir>/user.ts".
func outputPath(dir, path, ext string) string {
	base := filepath.Base(path)
	return filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+ext)
}

func isInteractive() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
