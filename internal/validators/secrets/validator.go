// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package secrets

import (
	"regexp"

	"sunder/internal/detector"
)

// Validator finds credential-shaped strings: a well known key prefix
// followed by a run of at least 20 alphanumerics. Hyphen or underscore
// separated segments between the two are allowed, as in "sk-proj-...".
type Validator struct {
	pattern string
	regex   *regexp.Regexp
}

// NewValidator creates and returns a new Validator instance
func NewValidator() *Validator {
	v := &Validator{
		pattern: `\b(?i:sk|pk|api|key|token|secret|aws|gcp)(?:[-_][A-Za-z0-9]+)*[-_]?[A-Za-z0-9]{20,}\b`,
	}

	v.regex = regexp.MustCompile(v.pattern)

	return v
}

// Category returns the category this validator reports.
func (v *Validator) Category() detector.Category {
	return detector.CategorySecret
}

// FindAll returns every credential-shaped string in text, leftmost first.
func (v *Validator) FindAll(text string) []detector.Match {
	return detector.FindAll(v.regex, text, detector.CategorySecret, 0)
}
