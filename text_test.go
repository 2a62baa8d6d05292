// SPDX-License-Identifier: Unlicense OR MIT

package kastext

import "testing"

func TestRangeLen(t *testing.T) {
	if got := (Range{Start: 2, End: 5}).Len(); got != 3 {
		t.Fatalf("Len = %d, want 3", got)
	}
	if got := (Range{Start: 5, End: 5}).Len(); got != 0 {
		t.Fatalf("Len (empty) = %d, want 0", got)
	}
	if got := (Range{Start: 5, End: 2}).Len(); got != 0 {
		t.Fatalf("Len (inverted) = %d, want 0", got)
	}
}

func TestVec2Add(t *testing.T) {
	got := Vec2{X: 1, Y: 2}.Add(Vec2{X: 3, Y: 4})
	if got != (Vec2{X: 4, Y: 6}) {
		t.Fatalf("Add = %+v, want {4 6}", got)
	}
}

func TestLevelIsRTLAndDirection(t *testing.T) {
	if Level(0).IsRTL() {
		t.Fatalf("level 0 should be LTR")
	}
	if !Level(1).IsRTL() {
		t.Fatalf("level 1 should be RTL")
	}
	if Level(0).Direction() != Ltr {
		t.Fatalf("level 0 direction = %v, want Ltr", Level(0).Direction())
	}
	if Level(1).Direction() != Rtl {
		t.Fatalf("level 1 direction = %v, want Rtl", Level(1).Direction())
	}
}

func TestNoFontMatchError(t *testing.T) {
	err := NoFontMatch{Selector: FontSelector{}}
	if err.Error() == "" {
		t.Fatalf("expected a non-empty error message")
	}
}

func TestErrNotReadyError(t *testing.T) {
	err := ErrNotReady{Need: Ready, Have: New}
	msg := err.Error()
	if msg == "" {
		t.Fatalf("expected a non-empty error message")
	}
}
