// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// CheckInfo contains standardized information about a check
type CheckInfo struct {
	Name                string   // Category name, also the token prefix (e.g., "EMAIL")
	ShortDescription    string   // Short description for the checks list
	DetailedDescription string   // Detailed description of what the check does
	Group               string   // Configuration switch that enables the check
	Order               int      // Position in the protect pipeline
	Patterns            []string // Patterns the check looks for
	Examples            []string // Input and the token it becomes
}

// Provider defines the interface for help content providers
type Provider interface {
	GetCheckInfo() CheckInfo
}

// System manages help content for the application
type System struct {
	providers map[string]Provider
	noColor   bool
	colors    map[string]*color.Color
}

// NewSystem creates a new help system
func NewSystem(noColor bool) *System {
	if noColor {
		color.NoColor = true
	}

	return &System{
		providers: make(map[string]Provider),
		noColor:   noColor,
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"item":     color.New(color.FgCyan),
			"emphasis": color.New(color.FgWhite, color.Bold),
			"negative": color.New(color.FgRed),
			"example":  color.New(color.FgMagenta),
		},
	}
}

// RegisterProvider adds a help provider to the system
func (h *System) RegisterProvider(provider Provider) {
	info := provider.GetCheckInfo()
	h.providers[strings.ToLower(info.Name)] = provider
}

// sorted returns the registered checks in pipeline order.
func (h *System) sorted() []CheckInfo {
	infos := make([]CheckInfo, 0, len(h.providers))
	for _, p := range h.providers {
		infos = append(infos, p.GetCheckInfo())
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Order != infos[j].Order {
			return infos[i].Order < infos[j].Order
		}
		return infos[i].Name < infos[j].Name
	})
	return infos
}

// ShowChecksHelp writes the list of available checks in the order the
// protect pipeline runs them.
func (h *System) ShowChecksHelp(out io.Writer) {
	h.colors["title"].Fprintln(out, "Available Checks in Sunder")
	fmt.Fprintln(out, "==========================")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Custom rules run first, then these checks in order:")
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	h.colors["header"].Fprintln(w, "  CHECK\tGROUP\tDESCRIPTION")
	h.colors["header"].Fprintln(w, "  -----\t-----\t-----------")
	for _, info := range h.sorted() {
		fmt.Fprint(w, "  ")
		h.colors["emphasis"].Fprint(w, info.Name)
		fmt.Fprintf(w, "\t%s\t%s\n", info.Group, info.ShortDescription)
	}
	w.Flush()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "For detailed information about a specific check, use:")
	h.colors["example"].Fprintln(out, "  sunder checks <check>")
}

// ShowCheckHelp writes detailed help for a specific check
func (h *System) ShowCheckHelp(out io.Writer, checkName string) bool {
	provider, exists := h.providers[strings.ToLower(checkName)]
	if !exists {
		h.colors["negative"].Fprintf(out, "Error: Check '%s' not found.\n", checkName)
		fmt.Fprintln(out, "Use 'sunder checks' to see a list of available checks.")
		return false
	}

	info := provider.GetCheckInfo()

	h.colors["title"].Fprintf(out, "%s Check\n", info.Name)
	fmt.Fprintln(out, strings.Repeat("=", len(info.Name)+6))
	fmt.Fprintln(out)
	fmt.Fprintln(out, info.DetailedDescription)
	fmt.Fprintln(out)

	h.colors["header"].Fprintln(out, "ENABLED BY:")
	fmt.Fprintf(out, "  %s\n\n", info.Group)

	if len(info.Patterns) > 0 {
		h.colors["header"].Fprintln(out, "PATTERNS DETECTED:")
		for _, pattern := range info.Patterns {
			fmt.Fprint(out, "  - ")
			h.colors["item"].Fprintln(out, pattern)
		}
		fmt.Fprintln(out)
	}

	if len(info.Examples) > 0 {
		h.colors["header"].Fprintln(out, "EXAMPLES:")
		for _, example := range info.Examples {
			fmt.Fprint(out, "  ")
			h.colors["example"].Fprintln(out, example)
		}
	}

	return true
}

// Names returns the registered check names in pipeline order.
func (h *System) Names() []string {
	var names []string
	for _, info := range h.sorted() {
		names = append(names, info.Name)
	}
	return names
}
