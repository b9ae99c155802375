// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package money

import "sunder/internal/help"

// GetCheckInfo returns standardized information about the money check
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "MONEY",
		ShortDescription: "Replaces monetary amounts with [MONEY_n] tokens",
		DetailedDescription: `The Money check finds amounts of money, which can expose salaries, deal sizes and account balances.

Amounts may use thousands separators and decimals. They are recognized either after one of the symbols $, €, £ or ¥, or before a currency code or name (USD, EUR, GBP, JPY, dollars, euros, pounds). A scale word or letter (million, billion, thousand, k, m, b) is kept as part of the amount.`,
		Group: "contact",
		Order: 6,
		Patterns: []string{
			"Symbol prefix (e.g., $5,000, €100.50)",
			"Scaled (e.g., $2.5 million, $40k)",
			"Currency suffix (e.g., 100 USD, 3,000 euros)",
		},
		Examples: []string{
			"budget is $5,000  ->  budget is [MONEY_1]",
		},
	}
}
