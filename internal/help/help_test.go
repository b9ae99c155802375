// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubProvider CheckInfo

func (s stubProvider) GetCheckInfo() CheckInfo { return CheckInfo(s) }

func newTestSystem() *System {
	h := NewSystem(true)
	h.RegisterProvider(stubProvider{Name: "PHONE", Group: "contact", Order: 2, ShortDescription: "phones"})
	h.RegisterProvider(stubProvider{
		Name:                "EMAIL",
		Group:               "contact",
		Order:               1,
		ShortDescription:    "emails",
		DetailedDescription: "Finds email addresses.",
		Patterns:            []string{"user@example.com"},
		Examples:            []string{"a@b.com  ->  [EMAIL_1]"},
	})
	return h
}

func TestNames_PipelineOrder(t *testing.T) {
	assert.Equal(t, []string{"EMAIL", "PHONE"}, newTestSystem().Names())
}

func TestShowChecksHelp(t *testing.T) {
	var buf bytes.Buffer
	newTestSystem().ShowChecksHelp(&buf)
	out := buf.String()

	assert.Contains(t, out, "Available Checks in Sunder")
	assert.Less(t, strings.Index(out, "EMAIL"), strings.Index(out, "PHONE"))
	assert.Contains(t, out, "sunder checks <check>")
}

func TestShowCheckHelp(t *testing.T) {
	h := newTestSystem()

	var buf bytes.Buffer
	assert.True(t, h.ShowCheckHelp(&buf, "email"))
	out := buf.String()
	assert.Contains(t, out, "EMAIL Check")
	assert.Contains(t, out, "Finds email addresses.")
	assert.Contains(t, out, "PATTERNS DETECTED:")
	assert.Contains(t, out, "[EMAIL_1]")

	buf.Reset()
	assert.False(t, h.ShowCheckHelp(&buf, "ssn"))
	assert.Contains(t, buf.String(), "Error: Check 'ssn' not found.")
}
