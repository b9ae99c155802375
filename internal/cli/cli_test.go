// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"sunder/internal/formatters"
	"sunder/internal/version"
)

// isolate keeps config discovery away from the developer's own files.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("SUNDER_CONFIG_DIR", filepath.Join(dir, "config"))
	t.Setenv("HOME", dir)
	return dir
}

func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestProtect_Stdin(t *testing.T) {
	isolate(t)

	out, _, err := executeCommand(t, "Email a@b.com, server 10.0.0.1", "protect")
	require.NoError(t, err)
	assert.Equal(t, "Email [EMAIL_1], server [IP_ADDR_1]\n", out)
}

func TestProtect_FileWithSummary(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "chat.txt")
	require.NoError(t, os.WriteFile(path, []byte("a@b.com and c@d.com"), 0600))

	out, _, err := executeCommand(t, "", "protect", path, "--summary", "--show-values", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "[EMAIL_1] and [EMAIL_2]")
	assert.Contains(t, out, "SOURCE: chat.txt")
	assert.Contains(t, out, "PROTECTED: 2")
	assert.Contains(t, out, "IDENTITY MAP:")
	assert.Contains(t, out, "c@d.com")
}

func TestProtect_JSONHidesValues(t *testing.T) {
	isolate(t)

	out, _, err := executeCommand(t, "call 555-123-4567", "protect", "--format", "json")
	require.NoError(t, err)

	var report formatters.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "call [PHONE_1]", report.Text)
	assert.Equal(t, 1, report.Analytics.Phone)
	require.Len(t, report.IdentityMap, 1)
	assert.Equal(t, formatters.HiddenValue, report.IdentityMap[0].Value)
}

func TestProtect_Rules(t *testing.T) {
	isolate(t)

	out, _, err := executeCommand(t, "ProjectZeus and Atlas, email a@b.com", "protect",
		"--rule", "ProjectZeus=[CUSTOM_CODE]", "--rule", "Atlas")
	require.NoError(t, err)
	assert.Equal(t, "[CUSTOM_CODE] and [CUSTOM_1], email [EMAIL_1]\n", out)
}

func TestProtect_OutputFile(t *testing.T) {
	dir := isolate(t)
	target := filepath.Join(dir, "out", "protected.yaml")

	out, _, err := executeCommand(t, "a@b.com", "protect", "--format", "yaml", "--output", target)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	var report formatters.Report
	require.NoError(t, yaml.Unmarshal(data, &report))
	assert.Equal(t, "[EMAIL_1]", report.Text)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestProtect_ConfigProfile(t *testing.T) {
	dir := isolate(t)
	cfgPath := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
rules:
  - pattern: Zeus
    replacement: "[CUSTOM_1]"
profiles:
  no-contact:
    contact: false
`), 0600))

	out, _, err := executeCommand(t, "Zeus a@b.com 10.0.0.1", "protect", "--config", cfgPath, "--profile", "no-contact")
	require.NoError(t, err)
	assert.Equal(t, "[CUSTOM_1] a@b.com [IP_ADDR_1]\n", out)

	_, _, err = executeCommand(t, "x", "protect", "--config", cfgPath, "--profile", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown profile")
}

func TestProtect_DiscoveredConfig(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sunder.yaml"), []byte("defaults:\n  technical: false\n"), 0600))

	out, _, err := executeCommand(t, "10.0.0.1", "protect")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1\n", out)
}

func TestProtect_UnknownFormat(t *testing.T) {
	isolate(t)

	_, _, err := executeCommand(t, "x", "protect", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestPipe_RevealsCommandOutput(t *testing.T) {
	isolate(t)

	out, _, err := executeCommand(t, "mail a@b.com", "pipe", "--", "sh", "-c", "tr a-z A-Z")
	require.NoError(t, err)
	assert.Equal(t, "MAIL a@b.com", out)
}

func TestPipe_CommandFailure(t *testing.T) {
	isolate(t)

	out, _, err := executeCommand(t, "a@b.com", "pipe", "--", "sh", "-c", "cat; exit 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command sh failed")
	assert.Equal(t, "a@b.com", out)
}

func TestChecks(t *testing.T) {
	isolate(t)

	out, _, err := executeCommand(t, "", "checks", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "EMAIL")
	assert.Contains(t, out, "technical")

	out, _, err = executeCommand(t, "", "checks", "email", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "EMAIL Check")

	_, _, err = executeCommand(t, "", "checks", "ssn", "--no-color")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown check "ssn"`)
}

func TestVersion(t *testing.T) {
	isolate(t)

	out, _, err := executeCommand(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, version.Info()+"\n", out)

	out, _, err = executeCommand(t, "", "version", "--json")
	require.NoError(t, err)
	var full map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &full))
	assert.Equal(t, version.Version, full["version"])
}

func TestInvalidLogLevel(t *testing.T) {
	isolate(t)

	_, _, err := executeCommand(t, "", "version", "--log-level", "loud")
	require.Error(t, err)
}
