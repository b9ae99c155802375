// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ipaddress

import "sunder/internal/help"

// GetCheckInfo returns standardized information about the IP address check
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "IP_ADDR",
		ShortDescription: "Replaces IPv4 addresses with [IP_ADDR_n] tokens",
		DetailedDescription: `The IP Address check finds IPv4 addresses written as four dot separated groups of one to three digits.

Octet values are not range checked, so version strings with four numeric parts are also replaced. IPv6 addresses are not detected.`,
		Group: "technical",
		Order: 3,
		Patterns: []string{
			"Private ranges (e.g., 10.0.0.1, 192.168.1.100)",
			"Public addresses (e.g., 8.8.8.8)",
		},
		Examples: []string{
			"ssh to 10.0.0.5  ->  ssh to [IP_ADDR_1]",
		},
	}
}
