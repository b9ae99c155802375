// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ipaddress

import (
	"regexp"

	"sunder/internal/detector"
)

// Validator finds dotted-quad IPv4 addresses. Octet ranges are not checked;
// 999.1.1.1 is treated as an address.
type Validator struct {
	pattern string
	regex   *regexp.Regexp
}

// NewValidator creates and returns a new Validator instance
func NewValidator() *Validator {
	v := &Validator{
		pattern: `\b(?:\d{1,3}\.){3}\d{1,3}\b`,
	}

	v.regex = regexp.MustCompile(v.pattern)

	return v
}

// Category returns the category this validator reports.
func (v *Validator) Category() detector.Category {
	return detector.CategoryIP
}

// FindAll returns every IPv4 address in text, leftmost first.
func (v *Validator) FindAll(text string) []detector.Match {
	return detector.FindAll(v.regex, text, detector.CategoryIP, 0)
}
