// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pathname

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_FindAll(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"start of text", "/home/alice/notes.txt", []string{"/home/alice/notes.txt"}},
		{"after space", "open /var/log/app.log now", []string{"/var/log/app.log"}},
		{"trailing slash", "cd /home/alice/", []string{"/home/alice/"}},
		{"quoted", `path="/etc/hosts"`, []string{"/etc/hosts"}},
		{"assignment", "PATH=/opt/bin", []string{"/opt/bin"}},
		{"two paths", "/a/bcdef /x/yzabc", []string{"/a/bcdef", "/x/yzabc"}},
		{"short discarded", "ls /usr and /home", nil},
		{"exactly six kept", "ls /ab/cd", []string{"/ab/cd"}},
		{"numeric date", "due 01/15/2024", nil},
		{"fraction", "about 3/4 done", nil},
		{"url", "https://example.com/a/b/c", nil},
		{"sentence period", "see /var/log/app.log.", []string{"/var/log/app.log"}},
		{"trailing dots", "tail /var/log/syslog...", []string{"/var/log/syslog"}},
		{"hidden file", "edit /home/u/.bashrc", []string{"/home/u/.bashrc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, m := range v.FindAll(tt.text) {
				assert.Equal(t, tt.text[m.Start:m.End], m.Text)
				got = append(got, m.Text)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
