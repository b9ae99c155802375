// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phone

import (
	"regexp"

	"sunder/internal/detector"
)

// Validator finds North American phone numbers with an optional +1 country
// code, an optional parenthesized area code and -, . or space separators.
type Validator struct {
	pattern string
	regex   *regexp.Regexp
}

// NewValidator creates and returns a new Validator instance
func NewValidator() *Validator {
	v := &Validator{
		// The country code branch carries its own boundary so that
		// "+15551234567" matches while digits embedded in a longer run do not.
		pattern: `(?:(?:\+|\b)1[-.\s]?(?:\(\d{3}\)|\d{3})|\(\d{3}\)|\b\d{3})[-.\s]?\d{3}[-.\s]?\d{4}\b`,
	}

	v.regex = regexp.MustCompile(v.pattern)

	return v
}

// Category returns the category this validator reports.
func (v *Validator) Category() detector.Category {
	return detector.CategoryPhone
}

// FindAll returns every phone number in text, leftmost first.
func (v *Validator) FindAll(text string) []detector.Match {
	return detector.FindAll(v.regex, text, detector.CategoryPhone, 0)
}
