// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRules_RunBeforeDetection(t *testing.T) {
	v := New()
	v.AddRule("ProjectZeus", "[CUSTOM_CODE]")

	got := v.Protect("ProjectZeus email john@example.com")

	assert.Equal(t, "[CUSTOM_CODE] email [EMAIL_1]", got)
	assert.Equal(t, "[CUSTOM_CODE] email john@example.com", v.Reveal(got))
}

func TestRules_IgnoreGroupSwitches(t *testing.T) {
	v := New()
	v.Configure(false, false, false)
	v.AddRule("secret-project", "[CODE]")

	assert.Equal(t, "the [CODE] plan", v.Protect("the secret-project plan"))
}

func TestRules_ReplaceAllOccurrencesInOrder(t *testing.T) {
	v := New()
	v.AddRule("alpha", "beta")
	v.AddRule("beta", "gamma")

	assert.Equal(t, "gamma gamma", v.Protect("alpha beta"))
}

func TestRules_ReplacementSeenByChecks(t *testing.T) {
	v := New()
	v.AddRule("the boss", "boss@corp.com")

	got := v.Protect("email the boss")

	assert.Equal(t, "email [EMAIL_1]", got)
	assert.Equal(t, "email boss@corp.com", v.Reveal(got))
}

func TestRules_EmptyPatternIgnored(t *testing.T) {
	v := New()
	v.AddRule("", "[X]")

	assert.Equal(t, "abc", v.Protect("abc"))
	assert.Zero(t, v.Analytics().Custom)
}

func TestRemoveRule(t *testing.T) {
	v := New()
	v.AddRule("a", "[A]")
	v.AddRule("b", "[B]")
	v.AddRule("a", "[A2]")

	v.RemoveRule("a")
	assert.Equal(t, []CustomRule{{Pattern: "b", Replacement: "[B]"}}, v.Rules())

	v.RemoveRule("missing")
	assert.Len(t, v.Rules(), 1)
}

func TestRules_ReturnsCopy(t *testing.T) {
	v := New()
	v.AddRule("a", "[A]")
	rules := v.Rules()
	rules[0].Pattern = "changed"

	assert.Equal(t, "a", v.Rules()[0].Pattern)
}

func TestWithRules(t *testing.T) {
	v := New(WithRules(CustomRule{Pattern: "Acme", Replacement: "[ORG_1]"}))
	assert.Equal(t, "[ORG_1] ships", v.Protect("Acme ships"))
}

func TestNextRuleReplacement(t *testing.T) {
	v := New()
	assert.Equal(t, "[CUSTOM_1]", v.NextRuleReplacement(""))

	v.AddRule("hunter2", v.NextRuleReplacement("secret"))
	assert.Equal(t, "[SECRET_2]", v.NextRuleReplacement("SECRET"))
	assert.Equal(t, "[PERSON_1]", v.NextRuleReplacement(" person "))

	v.AddRule("Alice", v.NextRuleReplacement("person"))
	assert.Equal(t, []CustomRule{
		{Pattern: "hunter2", Replacement: "[SECRET_1]"},
		{Pattern: "Alice", Replacement: "[PERSON_1]"},
	}, v.Rules())
}

func TestNextRuleReplacement_SkipsStoredTokens(t *testing.T) {
	v := New()
	v.Protect("a@b.com and c@d.com")

	assert.Equal(t, "[EMAIL_3]", v.NextRuleReplacement("email"))

	v.AddRule("Zeus", "[CUSTOM_1]")
	assert.Equal(t, "[CUSTOM_2]", v.NextRuleReplacement(""))
}

func TestRuleReplacementNeverRevealsDetectedValue(t *testing.T) {
	const secret = "sk-abcdefghijklmnopqrstuvwx"

	v := New()
	v.AddRule("Zeus", "[SECRET_1]")

	protected := v.Protect("Zeus key " + secret)
	assert.Equal(t, "[SECRET_1] key [SECRET_2]", protected)
	assert.Equal(t, "[SECRET_1] key "+secret, v.Reveal(protected))

	a := v.Analytics()
	assert.Equal(t, 1, a.Secret)
	assert.Equal(t, 1, a.Custom)
	assert.Equal(t, 2, a.Total)
}

func TestSuggestedRuleAndDetectedSecret(t *testing.T) {
	const secret = "token_ABCDEFGHIJKLMNOPQRSTUV12"

	v := New()
	v.AddRule("Atlas", v.NextRuleReplacement(""))

	protected := v.Protect("Atlas uses " + secret)
	assert.Equal(t, "[CUSTOM_1] uses [SECRET_1]", protected)
	assert.Equal(t, "[CUSTOM_1] uses "+secret, v.Reveal(protected))
}

func TestCustomCounter(t *testing.T) {
	v := New()
	v.AddRule("Zeus", "[CODE]")
	v.AddRule("Hera", "[CODE2]")

	v.Protect("Zeus Zeus")
	assert.Equal(t, 1, v.Analytics().Custom)

	v.Protect("nothing")
	assert.Equal(t, 1, v.Analytics().Custom)

	v.Protect("Zeus and Hera")
	a := v.Analytics()
	assert.Equal(t, 3, a.Custom)
	assert.Equal(t, 3, a.Total)
}
