// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package vault

import (
	"strings"
	"testing"

	"pgregory.net/rapid"

	"sunder/internal/detector"
)

var fragments = []string{
	"hello", "world", "meeting", "notes", "ok,",
	"a@b.com", "jane.doe@corp.io",
	"555-123-4567", "(555) 987-6543",
	"10.0.0.1", "192.168.1.20",
	"/home/alice/notes.txt", "/var/log/app.log",
	"sk-abcdefghijklmnopqrstuvwx",
	"$5,000", "100 USD",
	"2024-01-15", "tomorrow", "next Monday",
}

func genText() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		words := rapid.SliceOfN(rapid.SampledFrom(fragments), 0, 24).Draw(t, "words")
		return strings.Join(words, " ")
	})
}

func TestProperty_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := New()
		in := genText().Draw(t, "text")
		if got := v.Reveal(v.Protect(in)); got != in {
			t.Fatalf("round trip mismatch:\n in: %q\nout: %q", in, got)
		}
	})
}

func TestProperty_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := New()
		in := genText().Draw(t, "text")
		first := v.Protect(in)
		size := v.Len()
		if second := v.Protect(in); second != first {
			t.Fatalf("second protect differs: %q vs %q", first, second)
		}
		if v.Len() != size {
			t.Fatalf("vault grew from %d to %d on repeat", size, v.Len())
		}
	})
}

func TestProperty_CountersMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := New()
		texts := rapid.SliceOfN(genText(), 1, 5).Draw(t, "texts")

		prev := map[detector.Category]int{}
		for _, in := range texts {
			v.Protect(in)
			for c, n := range v.counters {
				if n < prev[c] {
					t.Fatalf("%s counter went from %d to %d", c, prev[c], n)
				}
				prev[c] = n
			}
			a := v.Analytics()
			if a.Total-a.Custom != v.Len() {
				t.Fatalf("analytics total %d does not match %d stored tokens", a.Total-a.Custom, v.Len())
			}
		}
	})
}

func TestProperty_GatingOff(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := New(WithConfig(Config{}))
		in := genText().Draw(t, "text")
		if got := v.Protect(in); got != in {
			t.Fatalf("text changed with every group disabled: %q", got)
		}
	})
}
