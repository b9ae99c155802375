// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"sunder/internal/formatters"

	"github.com/fatih/color"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"header":  color.New(color.FgBlue, color.Bold),
			"token":   color.New(color.FgCyan),
			"value":   color.New(color.FgYellow),
			"percent": color.New(color.FgMagenta),
			"white":   color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Protected text, optionally followed by a colored summary"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

// Format writes the protected text. With options.Summary it appends the
// analytics breakdown and the identity map.
func (f *Formatter) Format(report formatters.Report, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var builder strings.Builder
	builder.WriteString(report.Text)
	if !strings.HasSuffix(report.Text, "\n") {
		builder.WriteString("\n")
	}

	if !options.Summary {
		return builder.String(), nil
	}

	builder.WriteString("\n")
	f.appendAnalytics(&builder, report)
	if len(report.IdentityMap) > 0 {
		builder.WriteString("\n")
		f.appendIdentityMap(&builder, report)
	}

	return builder.String(), nil
}

func (f *Formatter) appendAnalytics(builder *strings.Builder, report formatters.Report) {
	if report.Source != "" {
		fmt.Fprintf(builder, "%s %s\n", f.colors["header"].Sprint("SOURCE:"), report.Source)
	}
	fmt.Fprintf(builder, "%s %s\n", f.colors["header"].Sprint("PROTECTED:"),
		f.colors["white"].Sprintf("%d", report.Analytics.Total))

	if len(report.Breakdown) == 0 {
		return
	}

	w := tabwriter.NewWriter(builder, 0, 0, 2, ' ', 0)
	for _, share := range report.Breakdown {
		fmt.Fprintf(w, "  %s\t%d\t%s\n",
			share.Category,
			share.Count,
			f.colors["percent"].Sprintf("%d%%", share.Percent))
	}
	w.Flush()
}

func (f *Formatter) appendIdentityMap(builder *strings.Builder, report formatters.Report) {
	builder.WriteString(f.colors["header"].Sprint("IDENTITY MAP:") + "\n")

	w := tabwriter.NewWriter(builder, 0, 0, 2, ' ', 0)
	for _, m := range report.IdentityMap {
		fmt.Fprintf(w, "  %s\t%s\n", f.colors["token"].Sprint(m.Token), f.colors["value"].Sprint(m.Value))
	}
	w.Flush()
}

func init() {
	formatters.Register(NewFormatter())
}
