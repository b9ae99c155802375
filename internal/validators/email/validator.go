// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package email

import (
	"regexp"

	"sunder/internal/detector"
)

// Validator finds email addresses of the usual local@domain.tld shape.
type Validator struct {
	pattern string
	regex   *regexp.Regexp
}

// NewValidator creates and returns a new Validator instance
func NewValidator() *Validator {
	v := &Validator{
		pattern: `(?i)[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}`,
	}

	// Compile the regex pattern once at initialization
	v.regex = regexp.MustCompile(v.pattern)

	return v
}

// Category returns the category this validator reports.
func (v *Validator) Category() detector.Category {
	return detector.CategoryEmail
}

// FindAll returns every email address in text, leftmost first.
func (v *Validator) FindAll(text string) []detector.Match {
	return detector.FindAll(v.regex, text, detector.CategoryEmail, 0)
}
