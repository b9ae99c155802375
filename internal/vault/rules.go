// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package vault

import (
	"context"
	"strconv"
	"strings"

	"sunder/internal/detector"
)

// CustomRule replaces every occurrence of a literal pattern before any
// check runs. Replacements are not stored and are never revealed.
type CustomRule struct {
	Pattern     string `json:"pattern" yaml:"pattern"`
	Replacement string `json:"replacement" yaml:"replacement"`
}

// AddRule appends a rule. Duplicates are allowed and run in order.
func (v *Vault) AddRule(pattern, replacement string) {
	v.rules = append(v.rules, CustomRule{Pattern: pattern, Replacement: replacement})
	emitRuleAdded(context.Background(), len(v.rules))
}

// RemoveRule removes every rule whose pattern equals pattern exactly.
func (v *Vault) RemoveRule(pattern string) {
	kept := v.rules[:0]
	for _, r := range v.rules {
		if r.Pattern != pattern {
			kept = append(kept, r)
		}
	}
	// drop references held past the new length
	for i := len(kept); i < len(v.rules); i++ {
		v.rules[i] = CustomRule{}
	}
	removed := len(v.rules) - len(kept)
	v.rules = kept

	if removed > 0 {
		emitRuleRemoved(context.Background(), len(v.rules))
	}
}

// Rules returns a copy of the rules in application order.
func (v *Vault) Rules() []CustomRule {
	out := make([]CustomRule, len(v.rules))
	copy(out, v.rules)
	return out
}

// NextRuleReplacement suggests a replacement of the form [CATEGORY_n] for a
// new rule, numbering after the rules that already use that category. An
// empty category means CUSTOM. Numbers already taken by a stored token or
// another rule are skipped.
func (v *Vault) NextRuleReplacement(category string) string {
	name := strings.ToUpper(strings.TrimSpace(category))
	if name == "" {
		name = detector.CategoryCustom.Prefix()
	}

	prefix := "[" + name + "_"
	n := 1
	for _, r := range v.rules {
		if strings.HasPrefix(r.Replacement, prefix) {
			n++
		}
	}
	for {
		candidate := prefix + strconv.Itoa(n) + "]"
		if _, stored := v.storage[candidate]; !stored && !v.usedByRule(candidate) {
			return candidate
		}
		n++
	}
}

// usedByRule reports whether any rule replaces its pattern with token.
func (v *Vault) usedByRule(token string) bool {
	for _, r := range v.rules {
		if r.Replacement == token {
			return true
		}
	}
	return false
}

// applyRules runs every rule in order over text and reports how many of
// them fired. Rules with an empty pattern never fire.
func (v *Vault) applyRules(text string) (string, int) {
	hit := 0
	for _, r := range v.rules {
		if r.Pattern == "" || !strings.Contains(text, r.Pattern) {
			continue
		}
		text = strings.ReplaceAll(text, r.Pattern, r.Replacement)
		hit++
	}
	v.rulesHit += hit
	return text, hit
}
