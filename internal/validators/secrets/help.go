// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package secrets

import "sunder/internal/help"

// GetCheckInfo returns standardized information about the secrets check
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "SECRET",
		ShortDescription: "Replaces API keys and access tokens with [SECRET_n] tokens",
		DetailedDescription: `The Secrets check finds strings that look like credentials.

A match starts with one of the prefixes sk, pk, api, key, token, secret, aws or gcp (any case) and ends with at least 20 letters or digits. Hyphen or underscore separated segments may appear in between. Short values such as "key_abc" are left alone.`,
		Group: "technical",
		Order: 5,
		Patterns: []string{
			"Provider keys (e.g., sk-abcdefghijklmnopqrstuvwx)",
			"Scoped keys (e.g., sk-proj-abcdefghijklmnopqrstuvwx)",
			"Prefixed tokens (e.g., token_ABCDEFGHIJKLMNOPQRST1234)",
		},
		Examples: []string{
			"export KEY=sk-abcdefghijklmnopqrstuvwx  ->  export KEY=[SECRET_1]",
		},
	}
}
