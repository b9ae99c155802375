// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package vault replaces sensitive substrings with placeholder tokens and
// keeps the mapping needed to put them back.
//
// A Vault is owned by a single caller and does no locking. Hosts that share
// one between goroutines must serialize access themselves.
package vault

import (
	"context"
	"time"

	"sunder/internal/detector"
	"sunder/internal/observability"
	"sunder/internal/security"
	"sunder/internal/validators"
)

// Config holds the switches that enable groups of checks. Custom rules are
// not affected by it.
type Config struct {
	Identity  bool `json:"identity" yaml:"identity"`
	Contact   bool `json:"contact" yaml:"contact"`
	Technical bool `json:"technical" yaml:"technical"`
}

// DefaultConfig enables every group.
func DefaultConfig() Config {
	return Config{Identity: true, Contact: true, Technical: true}
}

// Enabled reports whether checks in group g run.
func (c Config) Enabled(g detector.Group) bool {
	switch g {
	case detector.GroupIdentity:
		return c.Identity
	case detector.GroupContact:
		return c.Contact
	case detector.GroupTechnical:
		return c.Technical
	default:
		return false
	}
}

// Vault maps tokens to original values and back.
type Vault struct {
	storage  map[string]*security.SecureString // token -> value
	lookup   map[string]string                 // value -> token
	counters map[detector.Category]int // last sequence number per category
	found    map[detector.Category]int // stored values per category
	config   Config
	rules    []CustomRule

	// rulesHit counts rule applications since the last Clear.
	rulesHit int

	stages   []validators.Stage
	observer *observability.StandardObserver
}

// Option configures a Vault at construction.
type Option func(*Vault)

// WithObserver logs timings for protect and reveal.
func WithObserver(observer *observability.StandardObserver) Option {
	return func(v *Vault) {
		v.observer = observer
	}
}

// WithConfig sets the initial group switches.
func WithConfig(c Config) Option {
	return func(v *Vault) {
		v.config = c
	}
}

// WithRules appends custom rules in order.
func WithRules(rules ...CustomRule) Option {
	return func(v *Vault) {
		v.rules = append(v.rules, rules...)
	}
}

// New returns an empty vault with every group enabled.
func New(opts ...Option) *Vault {
	v := &Vault{
		storage:  make(map[string]*security.SecureString),
		lookup:   make(map[string]string),
		counters: make(map[detector.Category]int),
		found:    make(map[detector.Category]int),
		config:   DefaultConfig(),
		stages:   validators.Pipeline(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Protect replaces sensitive values in input with tokens. Custom rules run
// first, then each enabled check in pipeline order over the output of the
// previous step.
func (v *Vault) Protect(input string) string {
	done := v.observer.StartTiming("vault", "protect")
	start := time.Now()

	text, hit := v.applyRules(input)

	minted := 0
	for _, stage := range v.stages {
		if !v.config.Enabled(stage.Group) {
			continue
		}
		var n int
		text, n = v.substitute(text, stage.Check)
		minted += n
	}

	done(true, "input_bytes", len(input), "minted", minted, "rules_hit", hit)
	emitProtectComplete(context.Background(), len(input), minted, hit, time.Since(start))
	return text
}

// Reveal replaces every known token in input with its original value.
// Unknown tokens, including those forgotten by Clear, are left in place.
func (v *Vault) Reveal(input string) string {
	done := v.observer.StartTiming("vault", "reveal")
	start := time.Now()

	restored := 0
	output := input
	if len(v.storage) > 0 {
		output = detector.TokenPattern.ReplaceAllStringFunc(input, func(token string) string {
			value, ok := v.storage[token]
			if !ok {
				return token
			}
			restored++
			return value.String()
		})
	}

	done(true, "input_bytes", len(input), "restored", restored)
	emitRevealComplete(context.Background(), len(input), restored, time.Since(start))
	return output
}

// Configure replaces all three group switches. It affects later Protect
// calls only.
func (v *Vault) Configure(identity, contact, technical bool) {
	v.SetConfig(Config{Identity: identity, Contact: contact, Technical: technical})
}

// SetConfig replaces the group switches.
func (v *Vault) SetConfig(c Config) {
	v.config = c
}

// Config returns the current group switches.
func (v *Vault) Config() Config {
	return v.config
}

// IdentityMap returns a copy of the token to value mapping.
func (v *Vault) IdentityMap() map[string]string {
	out := make(map[string]string, len(v.storage))
	for token, value := range v.storage {
		out[token] = value.String()
	}
	return out
}

// Len returns the number of stored tokens.
func (v *Vault) Len() int {
	return len(v.storage)
}

// Clear forgets every mapping and restarts all counters at 1. Rules and
// configuration are kept.
func (v *Vault) Clear() {
	forgotten := len(v.storage)

	security.ClearAll(v.storage)
	v.lookup = make(map[string]string)
	v.counters = make(map[detector.Category]int)
	v.found = make(map[detector.Category]int)
	v.rulesHit = 0

	v.observer.Logger().Debug("vault cleared", "forgotten", forgotten)
	emitCleared(context.Background(), forgotten)
}
