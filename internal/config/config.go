// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"net/netip"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"sunder/internal/observability"
	"sunder/internal/paths"
	"sunder/internal/vault"

	"gopkg.in/yaml.v3"
)

// ErrUnknownProfile is returned when a requested profile is not defined.
var ErrUnknownProfile = errors.New("unknown profile")

// Formats accepted by defaults.format.
var Formats = []string{"text", "json", "yaml"}

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Identity  bool   `yaml:"identity"`
		Contact   bool   `yaml:"contact"`
		Technical bool   `yaml:"technical"`
		Format    string `yaml:"format"`
		NoColor   bool   `yaml:"no_color"`
		LogLevel  string `yaml:"log_level"`
	} `yaml:"defaults"`

	// Custom rules applied by every vault, before any profile rules
	Rules []vault.CustomRule `yaml:"rules"`

	// Profiles for different protection scenarios
	Profiles map[string]Profile `yaml:"profiles"`

	// HTTP session API settings
	Server ServerConfig `yaml:"server"`
}

// Profile overrides the default group switches and adds rules. Switches
// left out of the file inherit the defaults.
type Profile struct {
	Description string             `yaml:"description"`
	Identity    *bool              `yaml:"identity"`
	Contact     *bool              `yaml:"contact"`
	Technical   *bool              `yaml:"technical"`
	Rules       []vault.CustomRule `yaml:"rules"`
}

// ServerConfig holds settings for `sunder serve`.
type ServerConfig struct {
	Addr         string  `yaml:"addr"`
	MaxBodyBytes int64   `yaml:"max_body_bytes"`
	RateLimit    float64 `yaml:"rate_limit"` // requests per second per client, 0 disables
	RateBurst    int     `yaml:"rate_burst"`

	// Proxies (IPs or CIDRs) whose X-Forwarded-For header names the client.
	// Requests from anywhere else are keyed by their socket address.
	TrustedProxies []string `yaml:"trusted_proxies"`
}

// TrustedPrefixes parses TrustedProxies. A bare IP becomes a single-address prefix.
func (s ServerConfig) TrustedPrefixes() ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(s.TrustedProxies))
	for _, entry := range s.TrustedProxies {
		if strings.Contains(entry, "/") {
			p, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, err
			}
			prefixes = append(prefixes, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, err
		}
		prefixes = append(prefixes, netip.PrefixFrom(addr.Unmap(), addr.Unmap().BitLen()))
	}
	return prefixes, nil
}

// ValidationError describes one invalid setting.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Default returns the built-in configuration.
func Default() *Config {
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	config.Defaults.Identity = true
	config.Defaults.Contact = true
	config.Defaults.Technical = true
	config.Defaults.Format = "text"
	config.Defaults.NoColor = false
	config.Defaults.LogLevel = "info"

	config.Server = ServerConfig{
		Addr:         "127.0.0.1:8080",
		MaxBodyBytes: 1 << 20,
		RateLimit:    20,
		RateBurst:    40,
	}

	// Built-in profiles for the common cases
	config.Profiles["contact-only"] = Profile{
		Description: "Only contact data: email, phone and money",
		Identity:    boolPtr(false),
		Contact:     boolPtr(true),
		Technical:   boolPtr(false),
	}
	config.Profiles["technical-only"] = Profile{
		Description: "Only technical data: IP addresses, paths and secrets",
		Identity:    boolPtr(false),
		Contact:     boolPtr(false),
		Technical:   boolPtr(true),
	}

	return config
}

// LoadConfig loads configuration from the specified file path. An empty
// path yields the defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := Default()

	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Fields absent from the file keep their defaults; yaml.v3 only
	// assigns what it decodes.
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	if config.Profiles == nil {
		config.Profiles = make(map[string]Profile)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// FindConfigFile looks for a configuration file in the current directory,
// then the sunder config directory, then the home directory.
func FindConfigFile() string {
	for _, name := range []string{"sunder.yaml", "sunder.yml", ".sunder.yaml", ".sunder.yml"} {
		if fileExists(name) {
			return name
		}
	}

	if standardConfig := paths.GetConfigFile(); standardConfig != "" && fileExists(standardConfig) {
		return standardConfig
	}

	if homeConfig := paths.GetHomeConfigFile(); homeConfig != "" && fileExists(homeConfig) {
		return homeConfig
	}

	return ""
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ListProfiles returns the available profile names, sorted.
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	sort.Strings(profiles)
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// VaultConfig resolves the group switches and rules for a new vault. An
// empty profile name selects the defaults.
func (c *Config) VaultConfig(profileName string) (vault.Config, []vault.CustomRule, error) {
	vc := vault.Config{
		Identity:  c.Defaults.Identity,
		Contact:   c.Defaults.Contact,
		Technical: c.Defaults.Technical,
	}
	rules := append([]vault.CustomRule(nil), c.Rules...)

	if profileName == "" {
		return vc, rules, nil
	}

	profile := c.GetProfile(profileName)
	if profile == nil {
		return vault.Config{}, nil, fmt.Errorf("%w: %q (available: %s)",
			ErrUnknownProfile, profileName, strings.Join(c.ListProfiles(), ", "))
	}

	if profile.Identity != nil {
		vc.Identity = *profile.Identity
	}
	if profile.Contact != nil {
		vc.Contact = *profile.Contact
	}
	if profile.Technical != nil {
		vc.Technical = *profile.Technical
	}
	rules = append(rules, profile.Rules...)

	return vc, rules, nil
}

// VaultOptions returns the vault options for a profile.
func (c *Config) VaultOptions(profileName string) ([]vault.Option, error) {
	vc, rules, err := c.VaultConfig(profileName)
	if err != nil {
		return nil, err
	}
	return []vault.Option{vault.WithConfig(vc), vault.WithRules(rules...)}, nil
}

// ValidateConfig checks the configuration for values the rest of the
// program cannot use.
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}

	var errs []error

	if !isKnownFormat(config.Defaults.Format) {
		errs = append(errs, &ValidationError{
			Field:  "defaults.format",
			Reason: fmt.Sprintf("must be one of %s, got %q", strings.Join(Formats, ", "), config.Defaults.Format),
		})
	}
	if _, err := observability.ParseLevel(config.Defaults.LogLevel); err != nil {
		errs = append(errs, &ValidationError{Field: "defaults.log_level", Reason: err.Error()})
	}

	errs = append(errs, validateRules("rules", config.Rules)...)
	for _, name := range config.ListProfiles() {
		errs = append(errs, validateRules("profiles."+name+".rules", config.Profiles[name].Rules)...)
	}

	if config.Server.Addr == "" {
		errs = append(errs, &ValidationError{Field: "server.addr", Reason: "must not be empty"})
	}
	if config.Server.MaxBodyBytes <= 0 {
		errs = append(errs, &ValidationError{Field: "server.max_body_bytes", Reason: "must be positive"})
	}
	if config.Server.RateLimit < 0 {
		errs = append(errs, &ValidationError{Field: "server.rate_limit", Reason: "must not be negative"})
	}
	if _, err := config.Server.TrustedPrefixes(); err != nil {
		errs = append(errs, &ValidationError{Field: "server.trusted_proxies", Reason: err.Error()})
	}
	if config.Server.RateLimit > 0 && config.Server.RateBurst < 1 {
		errs = append(errs, &ValidationError{Field: "server.rate_burst", Reason: "must be at least 1 when rate_limit is set"})
	}

	return errors.Join(errs...)
}

func validateRules(field string, rules []vault.CustomRule) []error {
	var errs []error
	for i, r := range rules {
		if r.Pattern == "" {
			errs = append(errs, &ValidationError{
				Field:  fmt.Sprintf("%s[%d].pattern", field, i),
				Reason: "must not be empty",
			})
		}
	}
	return errs
}

func isKnownFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

func boolPtr(b bool) *bool {
	return &b
}

// LoadConfigOrDefault loads configuration from configFile (or searches standard locations
// when configFile is empty). If loading fails, it returns a default configuration together
// with the path it tried and the load error.
func LoadConfigOrDefault(configFile string) (*Config, string, error) {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return Default(), configPath, err
	}
	return cfg, configPath, nil
}
