// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package paths

import (
	"os"
	"path/filepath"
)

// ConfigDirEnv overrides the configuration directory on every platform.
const ConfigDirEnv = "SUNDER_CONFIG_DIR"

// GetConfigDir returns the sunder configuration directory. The lookup order
// is $SUNDER_CONFIG_DIR, $XDG_CONFIG_HOME/sunder, then ~/.config/sunder.
// An empty string means no candidate could be resolved.
func GetConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "sunder")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "sunder")
}

// GetConfigFile returns the path to the main config file, or "" when the
// config directory is unknown.
func GetConfigFile() string {
	dir := GetConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// GetHomeConfigFile returns ~/.sunder.yaml, the legacy single-file location.
func GetHomeConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sunder.yaml")
}
