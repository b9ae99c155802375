// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"sunder/internal/detector"
	"sunder/internal/vault"
)

// HiddenValue replaces original values in reports unless ShowValues is set.
const HiddenValue = "[HIDDEN]"

// FormatterOptions defines configuration options for formatters
type FormatterOptions struct {
	NoColor    bool // Whether to disable colored output
	ShowValues bool // Whether to display original values in the identity map
	Summary    bool // Whether the text format adds analytics and the identity map
}

// Mapping is one token and the value it stands for.
type Mapping struct {
	Token string `json:"token" yaml:"token"`
	Value string `json:"value" yaml:"value"`
}

// Report is the result of one protect run.
type Report struct {
	Source      string          `json:"source,omitempty" yaml:"source,omitempty"`
	Text        string          `json:"text" yaml:"text"`
	Analytics   vault.Analytics `json:"analytics" yaml:"analytics"`
	Breakdown   []vault.Share   `json:"breakdown" yaml:"breakdown"`
	IdentityMap []Mapping       `json:"identity_map" yaml:"identity_map"`
}

// NewReport snapshots the vault after text was produced from source.
// Values are hidden unless options.ShowValues is set.
func NewReport(source, text string, v *vault.Vault, options FormatterOptions) Report {
	analytics := v.Analytics()

	var mappings []Mapping
	for token, value := range v.IdentityMap() {
		if !options.ShowValues {
			value = HiddenValue
		}
		mappings = append(mappings, Mapping{Token: token, Value: value})
	}
	SortMappings(mappings)

	return Report{
		Source:      source,
		Text:        text,
		Analytics:   analytics,
		Breakdown:   analytics.Breakdown(),
		IdentityMap: mappings,
	}
}

// SortMappings orders mappings by category display order, then sequence.
func SortMappings(mappings []Mapping) {
	sort.Slice(mappings, func(i, j int) bool {
		ci, ni := tokenKey(mappings[i].Token)
		cj, nj := tokenKey(mappings[j].Token)
		if ci != cj {
			return ci < cj
		}
		return ni < nj
	})
}

// tokenKey returns the category position and sequence number of a token.
func tokenKey(token string) (int, int) {
	inner := strings.TrimSuffix(strings.TrimPrefix(token, "["), "]")
	i := strings.LastIndex(inner, "_")
	if i < 0 {
		return len(detector.Categories), 0
	}
	n, _ := strconv.Atoi(inner[i+1:])
	position := len(detector.Categories)
	if c, ok := detector.ParseCategory(inner[:i]); ok {
		for p, known := range detector.Categories {
			if known == c {
				position = p
				break
			}
		}
	}
	return position, n
}

// Formatter interface defines methods that all output formatters must implement
type Formatter interface {
	// Format renders a protect report
	Format(report Report, options FormatterOptions) (string, error)

	// Name returns the name of the formatter (e.g., "json", "text", "yaml")
	Name() string

	// Description returns a brief description of what this formatter outputs
	Description() string

	// FileExtension returns the recommended file extension for this format
	FileExtension() string
}

// Registry holds all registered formatters
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates a new formatter registry
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
	}
}

// Register adds a formatter to the registry
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Name()] = formatter
}

// Get retrieves a formatter by name
func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, exists := r.formatters[name]
	return formatter, exists
}

// List returns all registered formatter names, sorted
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry
var DefaultRegistry = NewRegistry()

// Register is a convenience function to register a formatter with the default registry
func Register(formatter Formatter) {
	DefaultRegistry.Register(formatter)
}

// Get is a convenience function to get a formatter from the default registry
func Get(name string) (Formatter, bool) {
	return DefaultRegistry.Get(name)
}

// List is a convenience function to list all formatters in the default registry
func List() []string {
	return DefaultRegistry.List()
}

// Export renders report with the named formatter.
func Export(format string, report Report, options FormatterOptions) (string, error) {
	formatter, exists := Get(format)
	if !exists {
		return "", fmt.Errorf("unsupported format '%s'. Available formats: %s", format, strings.Join(List(), ", "))
	}
	return formatter.Format(report, options)
}
