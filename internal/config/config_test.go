// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sunder/internal/paths"
	"sunder/internal/vault"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sunder.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.True(t, cfg.Defaults.Identity)
	assert.True(t, cfg.Defaults.Contact)
	assert.True(t, cfg.Defaults.Technical)
	assert.Equal(t, "text", cfg.Defaults.Format)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, int64(1048576), cfg.Server.MaxBodyBytes)
	assert.Equal(t, []string{"contact-only", "technical-only"}, cfg.ListProfiles())
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
defaults:
  technical: false
  format: json
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.False(t, cfg.Defaults.Technical)
	assert.True(t, cfg.Defaults.Identity, "absent switches keep their default")
	assert.Equal(t, "json", cfg.Defaults.Format)
	assert.Equal(t, "info", cfg.Defaults.LogLevel)
}

func TestLoadConfig_RulesAndProfiles(t *testing.T) {
	path := writeConfig(t, `
rules:
  - pattern: ProjectZeus
    replacement: "[CUSTOM_CODE]"
profiles:
  strict:
    description: Everything plus customer names
    rules:
      - pattern: Acme Corp
        replacement: "[ORG_1]"
  dates-off:
    identity: false
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Contains(t, cfg.ListProfiles(), "contact-only", "built-in profiles survive")

	vc, rules, err := cfg.VaultConfig("strict")
	require.NoError(t, err)
	assert.Equal(t, vault.DefaultConfig(), vc)
	assert.Equal(t, []vault.CustomRule{
		{Pattern: "ProjectZeus", Replacement: "[CUSTOM_CODE]"},
		{Pattern: "Acme Corp", Replacement: "[ORG_1]"},
	}, rules)

	vc, _, err = cfg.VaultConfig("dates-off")
	require.NoError(t, err)
	assert.Equal(t, vault.Config{Identity: false, Contact: true, Technical: true}, vc)
}

func TestVaultConfig_BuiltinProfile(t *testing.T) {
	vc, rules, err := Default().VaultConfig("contact-only")
	require.NoError(t, err)
	assert.Equal(t, vault.Config{Contact: true}, vc)
	assert.Empty(t, rules)
}

func TestVaultConfig_UnknownProfile(t *testing.T) {
	_, _, err := Default().VaultConfig("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownProfile))
	assert.Contains(t, err.Error(), "contact-only")
}

func TestVaultOptions(t *testing.T) {
	cfg := Default()
	cfg.Rules = []vault.CustomRule{{Pattern: "Zeus", Replacement: "[CODE]"}}

	opts, err := cfg.VaultOptions("technical-only")
	require.NoError(t, err)

	v := vault.New(opts...)
	assert.Equal(t, "[CODE] at a@b.com", v.Protect("Zeus at a@b.com"))
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{"format", "defaults:\n  format: xml\n", "defaults.format"},
		{"log level", "defaults:\n  log_level: loud\n", "defaults.log_level"},
		{"empty rule", "rules:\n  - replacement: x\n", "rules[0].pattern"},
		{"profile rule", "profiles:\n  p:\n    rules:\n      - pattern: \"\"\n", "profiles.p.rules[0].pattern"},
		{"body size", "server:\n  max_body_bytes: 0\n", "server.max_body_bytes"},
		{"burst", "server:\n  rate_limit: 5\n  rate_burst: 0\n", "server.rate_burst"},
		{"trusted proxy", "server:\n  trusted_proxies: [\"not-an-ip\"]\n", "server.trusted_proxies"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.yaml))
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestLoadConfig_BadYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "defaults: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing config file")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/sunder.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadConfigOrDefault_FallsBack(t *testing.T) {
	cfg, path, err := LoadConfigOrDefault("/nonexistent/path/sunder.yaml")
	require.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "/nonexistent/path/sunder.yaml", path)
	assert.Equal(t, "text", cfg.Defaults.Format)
}

func TestLoadConfigOrDefault_SearchesStandardLocations(t *testing.T) {
	t.Setenv(paths.ConfigDirEnv, t.TempDir())
	work := t.TempDir()
	t.Chdir(work)
	require.NoError(t, os.WriteFile(filepath.Join(work, "sunder.yaml"), []byte("defaults:\n  format: json\n"), 0600))

	cfg, path, err := LoadConfigOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, "sunder.yaml", path)
	assert.Equal(t, "json", cfg.Defaults.Format)
}

func TestFindConfigFile_ConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(paths.ConfigDirEnv, dir)
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	assert.Equal(t, "", FindConfigFile())

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults: {}\n"), 0600))
	assert.Equal(t, path, FindConfigFile())
}

func TestFindConfigFile_CurrentDirWins(t *testing.T) {
	t.Setenv(paths.ConfigDirEnv, t.TempDir())
	work := t.TempDir()
	t.Chdir(work)

	require.NoError(t, os.WriteFile(filepath.Join(work, ".sunder.yaml"), []byte("{}\n"), 0600))
	assert.Equal(t, ".sunder.yaml", FindConfigFile())
}

func TestServerConfig_TrustedPrefixes(t *testing.T) {
	s := ServerConfig{TrustedProxies: []string{"10.0.0.1", "192.168.0.0/16", "::ffff:172.16.0.9"}}

	prefixes, err := s.TrustedPrefixes()
	require.NoError(t, err)
	require.Len(t, prefixes, 3)
	assert.Equal(t, "10.0.0.1/32", prefixes[0].String())
	assert.Equal(t, "192.168.0.0/16", prefixes[1].String())
	assert.Equal(t, "172.16.0.9/32", prefixes[2].String())

	_, err = ServerConfig{TrustedProxies: []string{"10.0.0.0/40"}}.TrustedPrefixes()
	assert.Error(t, err)
}
