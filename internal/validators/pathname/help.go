// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pathname

import "sunder/internal/help"

// GetCheckInfo returns standardized information about the path check
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "PATH",
		ShortDescription: "Replaces absolute Unix file paths with [PATH_n] tokens",
		DetailedDescription: `The Path check finds absolute Unix paths such as /home/alice/notes.txt, which often reveal user names and project layout.

A path is one or more /segment parts and may end with a slash. It must appear at the start of the text or after whitespace, a quote, a bracket or punctuation. Paths of five characters or fewer (/usr, /home) are kept as they are.`,
		Group: "technical",
		Order: 4,
		Patterns: []string{
			"Home directories (e.g., /home/alice/projects/)",
			"Files (e.g., /var/log/app.log)",
			"Quoted and assigned paths (e.g., \"/etc/hosts\", PATH=/opt/bin)",
		},
		Examples: []string{
			"see /home/alice/notes.txt  ->  see [PATH_1]",
		},
	}
}
