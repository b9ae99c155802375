// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"sunder/internal/formatters"
	_ "sunder/internal/formatters/json"
	_ "sunder/internal/formatters/text"
	_ "sunder/internal/formatters/yaml"
	"sunder/internal/preprocessors"
	"sunder/internal/vault"
)

type protectFlags struct {
	format     string
	summary    bool
	showValues bool
	output     string
	rules      []string
}

func newProtectCmd(a *app) *cobra.Command {
	f := &protectFlags{}

	cmd := &cobra.Command{
		Use:   "protect [file]",
		Short: "Replace sensitive values in a file or stdin with tokens",
		Long: `Replace sensitive values with tokens and print the protected text.

Reads the named file, or stdin when no file (or "-") is given. Text files
and PDFs are supported. With --summary the report adds per-category counts
and the identity map; original values stay hidden unless --show-values is set.

Examples:
  sunder protect chat.txt
  sunder protect report.pdf --format json --summary
  echo "ping me at a@b.com" | sunder protect
  sunder protect notes.md --rule ProjectZeus=[CUSTOM_CODE] --rule Atlas`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runProtect(cmd, args, f)
		},
	}

	cmd.Flags().StringVarP(&f.format, "format", "f", "", "output format: text, json, yaml (default from config)")
	cmd.Flags().BoolVarP(&f.summary, "summary", "s", false, "include analytics and the identity map")
	cmd.Flags().BoolVar(&f.showValues, "show-values", false, "show original values in the identity map")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write the result to this file instead of stdout")
	cmd.Flags().StringArrayVarP(&f.rules, "rule", "r", nil, "extra custom rule PATTERN[=REPLACEMENT] (repeatable)")
	return cmd
}

func (a *app) runProtect(cmd *cobra.Command, args []string, f *protectFlags) error {
	v, err := a.newVault()
	if err != nil {
		return err
	}
	defer v.Clear()
	addFlagRules(v, f.rules)

	content, err := a.readInput(cmd, args)
	if err != nil {
		return err
	}

	format := f.format
	if format == "" {
		format = a.cfg.Defaults.Format
	}
	options := formatters.FormatterOptions{
		NoColor:    a.colorDisabled(cmd.OutOrStdout()) || f.output != "",
		ShowValues: f.showValues,
		Summary:    f.summary,
	}

	protected := v.Protect(content.Text)
	report := formatters.NewReport(content.Filename, protected, v, options)
	result, err := formatters.Export(format, report, options)
	if err != nil {
		return err
	}

	if f.output != "" {
		return writeOutput(f.output, result)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), result)
	return err
}

// readInput extracts text from the file argument, or stdin when there is none.
func (a *app) readInput(cmd *cobra.Command, args []string) (*preprocessors.ProcessedContent, error) {
	if len(args) == 0 || args[0] == "-" {
		return preprocessors.ProcessReader("stdin", cmd.InOrStdin())
	}
	return preprocessors.NewDefaultManager(a.observer).ProcessFile(args[0])
}

// addFlagRules adds PATTERN=REPLACEMENT rules. A rule without a replacement
// gets the next free [CUSTOM_n] token.
func addFlagRules(v *vault.Vault, rules []string) {
	for _, r := range rules {
		pattern, replacement, found := strings.Cut(r, "=")
		if !found || replacement == "" {
			replacement = v.NextRuleReplacement("")
		}
		v.AddRule(pattern, replacement)
	}
}

// writeOutput writes result to path with owner-only permissions.
func writeOutput(path, result string) error {
	cleanPath, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("invalid output file path %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0700); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}
	if err := os.WriteFile(cleanPath, []byte(result), 0600); err != nil {
		return fmt.Errorf("error writing to output file: %w", err)
	}
	return nil
}
