// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package vault

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"

	"sunder/internal/detector"
)

// Signals for vault events. Payloads carry counts and categories only,
// never original values.
var (
	SignalProtectComplete = capitan.NewSignal("vault.protect.complete", "Protect call finished")
	SignalRevealComplete  = capitan.NewSignal("vault.reveal.complete", "Reveal call finished")
	SignalTokenMinted     = capitan.NewSignal("vault.token.minted", "New token assigned to a value")
	SignalCleared         = capitan.NewSignal("vault.cleared", "Vault mappings and counters reset")
	SignalRuleAdded       = capitan.NewSignal("vault.rule.added", "Custom rule appended")
	SignalRuleRemoved     = capitan.NewSignal("vault.rule.removed", "Custom rules removed by pattern")
)

// Keys for typed event data.
var (
	KeyCategory  = capitan.NewStringKey("category")
	KeySequence  = capitan.NewIntKey("sequence")
	KeySize      = capitan.NewIntKey("size")
	KeyMinted    = capitan.NewIntKey("minted")
	KeyRulesHit  = capitan.NewIntKey("rules_hit")
	KeyRestored  = capitan.NewIntKey("restored")
	KeyForgotten = capitan.NewIntKey("forgotten")
	KeyRuleCount = capitan.NewIntKey("rule_count")
	KeyDuration  = capitan.NewDurationKey("duration")
)

func emitProtectComplete(ctx context.Context, size, minted, rulesHit int, duration time.Duration) {
	capitan.Emit(ctx, SignalProtectComplete,
		KeySize.Field(size),
		KeyMinted.Field(minted),
		KeyRulesHit.Field(rulesHit),
		KeyDuration.Field(duration),
	)
}

func emitRevealComplete(ctx context.Context, size, restored int, duration time.Duration) {
	capitan.Emit(ctx, SignalRevealComplete,
		KeySize.Field(size),
		KeyRestored.Field(restored),
		KeyDuration.Field(duration),
	)
}

func emitTokenMinted(ctx context.Context, category detector.Category, sequence int) {
	capitan.Emit(ctx, SignalTokenMinted,
		KeyCategory.Field(string(category)),
		KeySequence.Field(sequence),
	)
}

func emitCleared(ctx context.Context, forgotten int) {
	capitan.Emit(ctx, SignalCleared,
		KeyForgotten.Field(forgotten),
	)
}

func emitRuleAdded(ctx context.Context, ruleCount int) {
	capitan.Emit(ctx, SignalRuleAdded,
		KeyRuleCount.Field(ruleCount),
	)
}

func emitRuleRemoved(ctx context.Context, ruleCount int) {
	capitan.Emit(ctx, SignalRuleRemoved,
		KeyRuleCount.Field(ruleCount),
	)
}
