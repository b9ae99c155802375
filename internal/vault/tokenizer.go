// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package vault

import (
	"context"
	"sort"
	"strings"

	"sunder/internal/detector"
	"sunder/internal/security"
)

// tokenize returns the token for value, minting one in category if the
// value has not been seen. A value keeps its first token for the lifetime
// of the vault even when a later stage reports it under another category.
// Sequence numbers whose token is a custom rule replacement are skipped, so
// a rule's output is never revealed as a detected value.
func (v *Vault) tokenize(value string, category detector.Category) (string, bool) {
	if token, ok := v.lookup[value]; ok {
		return token, false
	}

	var n int
	var token string
	for {
		v.counters[category]++
		n = v.counters[category]
		token = category.Token(n)
		if !v.usedByRule(token) {
			break
		}
	}

	v.storage[token] = security.NewSecureString(value)
	v.lookup[value] = token
	v.found[category]++

	emitTokenMinted(context.Background(), category, n)
	return token, true
}

// substitute tokenizes every distinct literal m finds in text and replaces
// every occurrence of each one, including occurrences the pattern itself
// would not match. Longer literals take precedence at a position and
// inserted tokens are never rescanned.
func (v *Vault) substitute(text string, m detector.Matcher) (string, int) {
	matches := m.FindAll(text)
	if len(matches) == 0 {
		return text, 0
	}

	minted := 0
	var literals []string
	tokens := make(map[string]string, len(matches))
	for _, match := range matches {
		if _, seen := tokens[match.Text]; seen || match.Text == "" {
			continue
		}
		token, isNew := v.tokenize(match.Text, match.Category)
		if isNew {
			minted++
		}
		tokens[match.Text] = token
		literals = append(literals, match.Text)
	}

	sort.SliceStable(literals, func(i, j int) bool {
		return len(literals[i]) > len(literals[j])
	})
	pairs := make([]string, 0, 2*len(literals))
	for _, literal := range literals {
		pairs = append(pairs, literal, tokens[literal])
	}

	return strings.NewReplacer(pairs...).Replace(text), minted
}
