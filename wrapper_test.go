// SPDX-License-Identifier: Unlicense OR MIT

package kastext

import (
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestWrapLinesSplitsAtLegalBreak(t *testing.T) {
	text := []rune("hello world")
	run := LevelRun{TextRange: runeRange{0, len(text)}, Level: 0, Dpem: 2, Breaks: []int{6}}
	gr, err := fakeShaper{}.Shape(text, run, nil)
	if err != nil {
		t.Fatalf("Shape: %v", err)
	}

	res := wrapLines(text, []GlyphRun{gr}, &fakeLib{}, floatToFixed(8), 0)

	if len(res.Lines) != 2 {
		t.Fatalf("got %d lines, want 2: %+v", len(res.Lines), res.Lines)
	}
	if res.Lines[0].TextRange != (runeRange{0, 6}) {
		t.Fatalf("line 0 text range = %v, want {0 6}", res.Lines[0].TextRange)
	}
	if res.Lines[1].TextRange != (runeRange{6, 11}) {
		t.Fatalf("line 1 text range = %v, want {6 11}", res.Lines[1].TextRange)
	}
}

func TestWrapLinesNoWrapWhenWidthZero(t *testing.T) {
	text := []rune("hello world")
	run := LevelRun{TextRange: runeRange{0, len(text)}, Level: 0, Dpem: 2, Breaks: []int{6}}
	gr, _ := fakeShaper{}.Shape(text, run, nil)

	res := wrapLines(text, []GlyphRun{gr}, &fakeLib{}, 0, 0)
	if len(res.Lines) != 1 {
		t.Fatalf("got %d lines, want 1 (wrapping disabled)", len(res.Lines))
	}
}

func TestWrapLinesHardBreakAlwaysCommits(t *testing.T) {
	text := []rune("hi\nbye")
	runs := []LevelRun{
		{TextRange: runeRange{0, 3}, Level: 0, Dpem: 2, Special: SpecialHardBreak},
		{TextRange: runeRange{3, 6}, Level: 0, Dpem: 2},
	}
	var grs []GlyphRun
	for _, r := range runs {
		gr, _ := fakeShaper{}.Shape(text, r, nil)
		grs = append(grs, gr)
	}

	res := wrapLines(text, grs, &fakeLib{}, floatToFixed(1000), 0)
	if len(res.Lines) != 2 {
		t.Fatalf("got %d lines, want 2 (hard break forces a line)", len(res.Lines))
	}
	if res.Lines[0].TextRange != (runeRange{0, 3}) {
		t.Fatalf("line 0 text range = %v, want {0 3}", res.Lines[0].TextRange)
	}
}

func TestWrapLinesMaxLines(t *testing.T) {
	text := []rune("a b c")
	run := LevelRun{TextRange: runeRange{0, len(text)}, Level: 0, Dpem: 2, Breaks: []int{2, 4}}
	gr, _ := fakeShaper{}.Shape(text, run, nil)

	res := wrapLines(text, []GlyphRun{gr}, &fakeLib{}, floatToFixed(1), 1)
	if len(res.Lines) != 1 {
		t.Fatalf("got %d lines, want 1 (capped by maxLines)", len(res.Lines))
	}
}

func TestTabStopAndAdvance(t *testing.T) {
	stop := fixed.I(8)
	if got := tabAdvance(0, stop); got != stop {
		t.Fatalf("tabAdvance(0, 8) = %v, want 8", got)
	}
	if got := tabAdvance(fixed.I(3), stop); got != fixed.I(5) {
		t.Fatalf("tabAdvance(3, 8) = %v, want 5", got)
	}
	if got := tabAdvance(fixed.I(8), stop); got != stop {
		t.Fatalf("tabAdvance(8, 8) = %v, want 8 (always advances)", got)
	}
}

func TestTabStopWidthIsEightTimesSpaceAdvance(t *testing.T) {
	run := LevelRun{FaceId: 0, Dpem: 10}
	got := tabStopWidth(run, &fakeLib{})
	want := floatToFixed(10 * 0.5 * 8) // fakeLib.Metrics: spaceAdvance = dpem*0.5
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}
