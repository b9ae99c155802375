// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"sunder/internal/detector"
	"sunder/internal/help"
	"sunder/internal/validators/date"
	"sunder/internal/validators/email"
	"sunder/internal/validators/ipaddress"
	"sunder/internal/validators/money"
	"sunder/internal/validators/pathname"
	"sunder/internal/validators/phone"
	"sunder/internal/validators/secrets"
)

// Check is a matcher that can also describe itself.
type Check interface {
	detector.Matcher
	help.Provider
}

// Stage is one step of the protect pipeline: a check and the configuration
// switch that enables it.
type Stage struct {
	Group detector.Group
	Check Check
}

// pipeline is built once; every check compiles its pattern on construction.
var pipeline = []Stage{
	{Group: detector.GroupContact, Check: email.NewValidator()},
	{Group: detector.GroupContact, Check: phone.NewValidator()},
	{Group: detector.GroupTechnical, Check: ipaddress.NewValidator()},
	{Group: detector.GroupTechnical, Check: pathname.NewValidator()},
	{Group: detector.GroupTechnical, Check: secrets.NewValidator()},
	{Group: detector.GroupContact, Check: money.NewValidator()},
	{Group: detector.GroupIdentity, Check: date.NewValidator()},
}

// Pipeline returns the stages in the order protect runs them. The order is
// significant: earlier stages replace text before later ones see it.
func Pipeline() []Stage {
	out := make([]Stage, len(pipeline))
	copy(out, pipeline)
	return out
}

// RegisterHelp adds every check to the help system.
func RegisterHelp(h *help.System) {
	for _, s := range pipeline {
		h.RegisterProvider(s.Check)
	}
}
