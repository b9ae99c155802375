// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package vault

import (
	"math"

	"sunder/internal/detector"
)

// Analytics counts the distinct values tokenized per category and the
// custom rule applications since the vault was created or last cleared.
type Analytics struct {
	Email  int `json:"email" yaml:"email"`
	Phone  int `json:"phone" yaml:"phone"`
	IPAddr int `json:"ip_addr" yaml:"ip_addr"`
	Path   int `json:"path" yaml:"path"`
	Secret int `json:"secret" yaml:"secret"`
	Money  int `json:"money" yaml:"money"`
	Date   int `json:"date" yaml:"date"`
	Custom int `json:"custom" yaml:"custom"`
	Total  int `json:"total" yaml:"total"`
}

// Share is one slice of the breakdown.
type Share struct {
	Category string `json:"category" yaml:"category"`
	Count    int    `json:"count" yaml:"count"`
	Percent  int    `json:"percent" yaml:"percent"`
}

// Analytics returns the current counts.
func (v *Vault) Analytics() Analytics {
	a := Analytics{
		Email:  v.found[detector.CategoryEmail],
		Phone:  v.found[detector.CategoryPhone],
		IPAddr: v.found[detector.CategoryIP],
		Path:   v.found[detector.CategoryPath],
		Secret: v.found[detector.CategorySecret],
		Money:  v.found[detector.CategoryMoney],
		Date:   v.found[detector.CategoryDate],
		Custom: v.rulesHit,
	}
	a.Total = a.Email + a.Phone + a.IPAddr + a.Path + a.Secret + a.Money + a.Date + a.Custom
	return a
}

// Breakdown returns each non-zero category's share of the total, rounded to
// whole percent, in display order.
func (a Analytics) Breakdown() []Share {
	if a.Total == 0 {
		return nil
	}

	counts := []struct {
		category detector.Category
		count    int
	}{
		{detector.CategoryEmail, a.Email},
		{detector.CategoryPhone, a.Phone},
		{detector.CategoryIP, a.IPAddr},
		{detector.CategoryPath, a.Path},
		{detector.CategorySecret, a.Secret},
		{detector.CategoryMoney, a.Money},
		{detector.CategoryDate, a.Date},
		{detector.CategoryCustom, a.Custom},
	}

	var shares []Share
	for _, c := range counts {
		if c.count == 0 {
			continue
		}
		shares = append(shares, Share{
			Category: string(c.category),
			Count:    c.count,
			Percent:  int(math.Round(float64(c.count) * 100 / float64(a.Total))),
		})
	}
	return shares
}
