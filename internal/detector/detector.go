// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"regexp"
	"strconv"
	"strings"
)

// Category identifies a class of sensitive data. The value doubles as the
// token prefix, so it is part of the wire format and must not change.
type Category string

const (
	CategoryEmail    Category = "EMAIL"
	CategoryPhone    Category = "PHONE"
	CategoryIP       Category = "IP_ADDR"
	CategoryPath     Category = "PATH"
	CategorySecret   Category = "SECRET"
	CategoryMoney    Category = "MONEY"
	CategoryDate     Category = "DATE"
	CategoryPerson   Category = "PERSON"
	CategoryLocation Category = "LOCATION"
	CategoryOrg      Category = "ORG"
	CategoryCustom   Category = "CUSTOM"
)

// Categories lists every category in display order. PERSON, LOCATION and ORG
// are reserved and have no matcher yet.
var Categories = []Category{
	CategoryEmail,
	CategoryPhone,
	CategoryIP,
	CategoryPath,
	CategorySecret,
	CategoryMoney,
	CategoryDate,
	CategoryPerson,
	CategoryLocation,
	CategoryOrg,
	CategoryCustom,
}

// Prefix returns the token prefix for the category.
func (c Category) Prefix() string {
	return string(c)
}

// Token builds the placeholder for the n-th value of the category.
func (c Category) Token(n int) string {
	return "[" + c.Prefix() + "_" + strconv.Itoa(n) + "]"
}

// ParseCategory converts a name such as "email" or "IP_ADDR" to a Category.
func ParseCategory(name string) (Category, bool) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for _, c := range Categories {
		if string(c) == upper {
			return c, true
		}
	}
	return "", false
}

// Group is one of the three configuration switches that gate categories.
type Group string

const (
	GroupIdentity  Group = "identity"
	GroupContact   Group = "contact"
	GroupTechnical Group = "technical"
)

// TokenPattern recognizes placeholder tokens of any category.
var TokenPattern = regexp.MustCompile(`\[[A-Z][A-Z_]*_[1-9][0-9]*\]`)

// Match is one detected occurrence in a piece of text.
type Match struct {
	Text     string
	Category Category
	Start    int // byte offset, inclusive
	End      int // byte offset, exclusive
}

// Matcher finds occurrences of a single category. Matches must be
// non-overlapping and ordered by Start.
type Matcher interface {
	Category() Category
	FindAll(text string) []Match
}

// FindAll runs re over text and converts the leftmost-first, non-overlapping
// results into matches. When group is positive the reported span is that
// submatch instead of the whole match.
func FindAll(re *regexp.Regexp, text string, category Category, group int) []Match {
	var matches []Match
	for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[0], loc[1]
		if group > 0 {
			start, end = loc[2*group], loc[2*group+1]
			if start < 0 {
				continue
			}
		}
		matches = append(matches, Match{
			Text:     text[start:end],
			Category: category,
			Start:    start,
			End:      end,
		})
	}
	return matches
}
