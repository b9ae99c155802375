// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package email

import "sunder/internal/help"

// GetCheckInfo returns standardized information about the email check
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "EMAIL",
		ShortDescription: "Replaces email addresses with [EMAIL_n] tokens",
		DetailedDescription: `The Email check finds addresses of the form local@domain.tld without regard to case.

The local part may contain letters, digits, dots, underscores, percent, plus and hyphen. The domain must end in a top-level label of at least two letters. Every distinct address receives its own token, and repeated occurrences of the same address reuse it.`,
		Group: "contact",
		Order: 1,
		Patterns: []string{
			"Standard format (e.g., user@domain.com)",
			"Tagged addresses (e.g., user.name+tag@sub.domain.co.uk)",
			"Mixed case (e.g., John.Doe@Example.COM)",
		},
		Examples: []string{
			"Contact me at jane@corp.io  ->  Contact me at [EMAIL_1]",
		},
	}
}
