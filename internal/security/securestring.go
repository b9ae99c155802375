// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package security

// SecureString holds an original value in a mutable buffer so it can be
// zeroed when the vault forgets it.
//
// Scrubbing is best-effort: the garbage collector may copy memory, and every
// String call allocates an immutable copy that Clear cannot reach.
type SecureString struct {
	data []byte
}

// NewSecureString copies s into a new SecureString.
func NewSecureString(s string) *SecureString {
	data := make([]byte, len(s))
	copy(data, s)
	return &SecureString{data: data}
}

// String returns the value, or "" once cleared.
func (ss *SecureString) String() string {
	if ss == nil {
		return ""
	}
	return string(ss.data)
}

// Len returns the length of the value in bytes.
func (ss *SecureString) Len() int {
	if ss == nil {
		return 0
	}
	return len(ss.data)
}

// Cleared reports whether Clear has been called.
func (ss *SecureString) Cleared() bool {
	return ss == nil || ss.data == nil
}

// Clear zeroes the buffer and releases it. Calling Clear twice is safe.
func (ss *SecureString) Clear() {
	if ss == nil || ss.data == nil {
		return
	}
	for i := range ss.data {
		ss.data[i] = 0
	}
	ss.data = nil
}

// ClearAll clears every value in m and empties the map.
func ClearAll[K comparable](m map[K]*SecureString) {
	for k, ss := range m {
		ss.Clear()
		delete(m, k)
	}
}
