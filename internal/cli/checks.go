// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sunder/internal/help"
	"sunder/internal/validators"
)

func newChecksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checks [NAME]",
		Short: "List the detection checks or describe one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h := help.NewSystem(a.colorDisabled(cmd.OutOrStdout()))
			validators.RegisterHelp(h)

			if len(args) == 0 {
				h.ShowChecksHelp(cmd.OutOrStdout())
				return nil
			}
			if !h.ShowCheckHelp(cmd.OutOrStdout(), args[0]) {
				return fmt.Errorf("unknown check %q (available: %s)", args[0], strings.Join(h.Names(), ", "))
			}
			return nil
		},
	}
}
