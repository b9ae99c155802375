// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cli implements the sunder command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sunder/internal/config"
	"sunder/internal/observability"
	"sunder/internal/vault"
)

// app holds the global flags and the state resolved from them before any
// subcommand runs.
type app struct {
	configFile string
	profile    string
	logLevel   string
	noColor    bool

	cfg      *config.Config
	observer *observability.StandardObserver
}

// NewRootCommand builds the sunder command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "sunder",
		Short: "Reversibly replace sensitive values in text with tokens",
		Long: `sunder replaces emails, phone numbers, IP addresses, file paths, secrets,
money amounts and dates with placeholder tokens such as [EMAIL_1], and can
put the original values back into any text that carries those tokens.

Examples:
  sunder protect notes.txt --summary
  cat prompt.txt | sunder pipe -- llm-client --model small
  sunder checks EMAIL
  sunder serve --addr 127.0.0.1:9090`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "config file (default: search ./sunder.yaml, $SUNDER_CONFIG_DIR, ~/.config/sunder)")
	root.PersistentFlags().StringVarP(&a.profile, "profile", "p", "", "config profile to use")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: off, info, debug (default from config)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newProtectCmd(a),
		newPipeCmd(a),
		newChecksCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// setup loads the configuration and builds the observer.
func (a *app) setup(cmd *cobra.Command) error {
	if a.configFile != "" {
		cfg, err := config.LoadConfig(a.configFile)
		if err != nil {
			return err
		}
		a.cfg = cfg
	} else {
		cfg, path, err := config.LoadConfigOrDefault("")
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Error loading config file %s: %v\n", path, err)
			fmt.Fprintf(cmd.ErrOrStderr(), "Using default configuration\n")
		}
		a.cfg = cfg
	}

	levelName := a.cfg.Defaults.LogLevel
	if a.logLevel != "" {
		levelName = a.logLevel
	}
	level, err := observability.ParseLevel(levelName)
	if err != nil {
		return err
	}
	a.observer = observability.NewStandardObserver(level, cmd.ErrOrStderr())

	if a.colorDisabled(cmd.OutOrStdout()) {
		color.NoColor = true
	}
	return nil
}

// colorDisabled reports whether output to w should be plain.
func (a *app) colorDisabled(w io.Writer) bool {
	if a.noColor || (a.cfg != nil && a.cfg.Defaults.NoColor) {
		return true
	}
	f, ok := w.(*os.File)
	return !ok || !term.IsTerminal(int(f.Fd()))
}

// newVault builds a vault for the selected profile.
func (a *app) newVault() (*vault.Vault, error) {
	options, err := a.cfg.VaultOptions(a.profile)
	if err != nil {
		return nil, err
	}
	options = append(options, vault.WithObserver(a.observer))
	return vault.New(options...), nil
}
