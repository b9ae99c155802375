// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package money

import (
	"regexp"

	"sunder/internal/detector"
)

const (
	amount = `\d+(?:,\d{3})*(?:\.\d+)?`
	scale  = `(?:million|billion|thousand|[kmb])`
	unit   = `(?:usd|eur|gbp|jpy|dollars|euros|pounds)`
)

// Validator finds monetary amounts written either with a leading currency
// symbol ($5,000, €100.50, $2.5 million) or with a trailing currency code or
// name (100 USD, 3k euros).
type Validator struct {
	pattern string
	regex   *regexp.Regexp
}

// NewValidator creates and returns a new Validator instance
func NewValidator() *Validator {
	v := &Validator{
		pattern: `(?i)[$€£¥]\s?` + amount + `(?:\s?` + scale + `\b)?` +
			`|\b` + amount + `(?:\s?` + scale + `)?\s?` + unit + `\b`,
	}

	v.regex = regexp.MustCompile(v.pattern)

	return v
}

// Category returns the category this validator reports.
func (v *Validator) Category() detector.Category {
	return detector.CategoryMoney
}

// FindAll returns every monetary amount in text, leftmost first.
func (v *Validator) FindAll(text string) []detector.Match {
	return detector.FindAll(v.regex, text, detector.CategoryMoney, 0)
}
