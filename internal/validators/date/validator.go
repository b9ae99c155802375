// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package date

import (
	"regexp"
	"strings"

	"sunder/internal/detector"
)

var (
	months  = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`
	ordinal = `(?:st|nd|rd|th)?`
	year    = `(?:,?\s+\d{4})?`

	forms = []string{
		// relative
		`(?:today|tomorrow|yesterday|tonight)`,
		`(?:next|last|this)\s+(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday|weekend|week|month|year)`,
		// month name first or day first
		months + `\.?\s+\d{1,2}` + ordinal + year,
		`\d{1,2}` + ordinal + `\s+` + months + year,
		// numeric
		`\d{4}-\d{1,2}-\d{1,2}`,
		`\d{1,2}/\d{1,2}/\d{2,4}`,
	}
)

// Validator finds dates: relative words such as "tomorrow" or "next
// Monday", month-name dates such as "Jan 5th, 2024" or "5 January", and the
// numeric forms YYYY-MM-DD and MM/DD/YYYY.
type Validator struct {
	pattern string
	regex   *regexp.Regexp
}

// NewValidator creates and returns a new Validator instance
func NewValidator() *Validator {
	v := &Validator{
		pattern: `(?i)\b(?:` + strings.Join(forms, "|") + `)\b`,
	}

	v.regex = regexp.MustCompile(v.pattern)

	return v
}

// Category returns the category this validator reports.
func (v *Validator) Category() detector.Category {
	return detector.CategoryDate
}

// FindAll returns every date in text, leftmost first.
func (v *Validator) FindAll(text string) []detector.Match {
	return detector.FindAll(v.regex, text, detector.CategoryDate, 0)
}
