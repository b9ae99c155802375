// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pathname

import (
	"regexp"

	"sunder/internal/detector"
)

// MinLength is the shortest path that is replaced. Shorter matches such as
// "/usr" or "/home" say little about the user and are kept.
const MinLength = 6

// Validator finds absolute Unix paths. A path must start the text or follow
// whitespace, a quote, a bracket or punctuation, which keeps fractions,
// numeric dates and URL paths out. The last segment never ends in a dot, so
// a sentence-ending period stays in the text.
type Validator struct {
	pattern string
	regex   *regexp.Regexp
}

// NewValidator creates and returns a new Validator instance
func NewValidator() *Validator {
	v := &Validator{
		pattern: `(?:^|[^\w/.~-])((?:/[\w.~@%+-]+)*/[\w.~@%+-]*[\w~@%+-]/?)`,
	}

	v.regex = regexp.MustCompile(v.pattern)

	return v
}

// Category returns the category this validator reports.
func (v *Validator) Category() detector.Category {
	return detector.CategoryPath
}

// FindAll returns every path of at least MinLength bytes, leftmost first.
func (v *Validator) FindAll(text string) []detector.Match {
	var matches []detector.Match
	for _, m := range detector.FindAll(v.regex, text, detector.CategoryPath, 1) {
		if len(m.Text) < MinLength {
			continue
		}
		matches = append(matches, m)
	}
	return matches
}
