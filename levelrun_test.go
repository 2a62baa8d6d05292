// SPDX-License-Identifier: Unlicense OR MIT

package kastext

import "testing"

func TestRuneRangeLen(t *testing.T) {
	if got := (runeRange{Start: 2, End: 7}).Len(); got != 5 {
		t.Fatalf("Len = %d, want 5", got)
	}
	if got := (runeRange{Start: 3, End: 3}).Len(); got != 0 {
		t.Fatalf("Len (empty) = %d, want 0", got)
	}
}

func TestRunSpecialString(t *testing.T) {
	want := map[RunSpecial]string{
		SpecialNone:      "None",
		SpecialHardBreak: "HardBreak",
		SpecialNoBreak:   "NoBreak",
		SpecialHTab:      "HTab",
	}
	for s, str := range want {
		if got := s.String(); got != str {
			t.Fatalf("%d.String() = %q, want %q", s, got, str)
		}
	}
	if got := RunSpecial(255).String(); got != "RunSpecial(?)" {
		t.Fatalf("RunSpecial(255).String() = %q, want %q", got, "RunSpecial(?)")
	}
}
