// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package date

import "sunder/internal/help"

// GetCheckInfo returns standardized information about the date check
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "DATE",
		ShortDescription: "Replaces dates and relative day references with [DATE_n] tokens",
		DetailedDescription: `The Date check finds calendar references that can tie text to a person's schedule or history.

Relative words (today, tomorrow, yesterday, tonight) and phrases such as "next Monday" or "last month" are matched without regard to case. Month-name dates are matched in both orders with an optional ordinal suffix and year. Numeric dates are matched in ISO (2024-01-15) and US (01/15/2024) order.`,
		Group: "identity",
		Order: 7,
		Patterns: []string{
			"Relative (e.g., tomorrow, next Friday, last week)",
			"Month name (e.g., Jan 5th, 2024, 5 January 2024)",
			"ISO (e.g., 2024-01-15)",
			"US numeric (e.g., 01/15/2024, 1/5/24)",
		},
		Examples: []string{
			"meet next Monday  ->  meet [DATE_1]",
		},
	}
}
