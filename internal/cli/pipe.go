// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"sunder/internal/preprocessors"
)

func newPipeCmd(a *app) *cobra.Command {
	var rules []string

	cmd := &cobra.Command{
		Use:   "pipe -- <command> [args...]",
		Short: "Protect stdin, run a command on it, and reveal its output",
		Long: `Protect stdin, pass the protected text to a command's stdin, and print the
command's stdout with every known token replaced by its original value.

The command never sees the original values. Its stderr is passed through
unchanged.

Examples:
  cat ticket.txt | sunder pipe -- llm-client --prompt summarize
  sunder pipe --rule ProjectZeus -- ./summarize.sh < notes.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.newVault()
			if err != nil {
				return err
			}
			defer v.Clear()
			addFlagRules(v, rules)

			content, err := preprocessors.ProcessReader("stdin", cmd.InOrStdin())
			if err != nil {
				return err
			}
			protected := v.Protect(content.Text)

			finish := a.observer.StartTiming("pipe", "run_command")
			var stdout bytes.Buffer
			child := exec.CommandContext(cmd.Context(), args[0], args[1:]...)
			child.Stdin = strings.NewReader(protected)
			child.Stdout = &stdout
			child.Stderr = cmd.ErrOrStderr()
			runErr := child.Run()
			finish(runErr == nil, "command", args[0], "tokens", v.Len())

			if _, err := fmt.Fprint(cmd.OutOrStdout(), v.Reveal(stdout.String())); err != nil {
				return err
			}
			if runErr != nil {
				return fmt.Errorf("command %s failed: %w", args[0], runErr)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&rules, "rule", "r", nil, "extra custom rule PATTERN[=REPLACEMENT] (repeatable)")
	return cmd
}
