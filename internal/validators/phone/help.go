// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phone

import "sunder/internal/help"

// GetCheckInfo returns standardized information about the phone check
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "PHONE",
		ShortDescription: "Replaces North American phone numbers with [PHONE_n] tokens",
		DetailedDescription: `The Phone check finds ten digit North American numbers.

A leading country code of 1 or +1 is included in the match when present. The area code may be wrapped in parentheses, and the groups may be separated by a hyphen, a dot, a space or nothing at all. Digits that are part of a longer run of digits are not matched.`,
		Group: "contact",
		Order: 2,
		Patterns: []string{
			"Dashed (e.g., 555-123-4567)",
			"Dotted (e.g., 555.123.4567)",
			"Parenthesized area code (e.g., (555) 123-4567)",
			"Country code (e.g., +1 555 123 4567, 1-555-123-4567)",
			"Unseparated (e.g., 5551234567)",
		},
		Examples: []string{
			"Call (555) 123-4567 now  ->  Call [PHONE_1] now",
		},
	}
}
