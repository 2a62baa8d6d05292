// SPDX-License-Identifier: Unlicense OR MIT

package kastext

import "testing"

func TestFindLinePrefersNextLineAtBoundary(t *testing.T) {
	lines := []Line{
		{TextRange: runeRange{0, 5}},
		{TextRange: runeRange{5, 10}},
	}
	i, rng, ok := findLine(lines, 5)
	if !ok || i != 1 || rng != lines[1].TextRange {
		t.Fatalf("got (%d, %v, %v), want (1, %v, true)", i, rng, ok, lines[1].TextRange)
	}
}

func TestFindLineFinalLineAcceptsEndInclusive(t *testing.T) {
	lines := []Line{{TextRange: runeRange{0, 5}}}
	i, rng, ok := findLine(lines, 5)
	if !ok || i != 0 || rng != lines[0].TextRange {
		t.Fatalf("got (%d, %v, %v)", i, rng, ok)
	}
}

func TestFindLineEmpty(t *testing.T) {
	if _, _, ok := findLine(nil, 0); ok {
		t.Fatalf("expected not-ok for empty lines")
	}
}

func TestLineIndexNearestLTR(t *testing.T) {
	runs := []GlyphRun{glyphRunOfWidths(10, 10)}
	parts := []RunPart{{GlyphRun: 0, GlyphRange: Range{0, 2}, TextEnd: 2}}
	// Glyph 0 at x=0 (index 0), glyph 1 at x=10 (index 1, via width field
	// set on glyphRunOfWidths's Glyph.Index already matching position).
	runs[0].Glyphs[0].Position = Vec2{X: 0}
	runs[0].Glyphs[1].Position = Vec2{X: 10}

	if got := lineIndexNearest(runs, parts, 0); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
	if got := lineIndexNearest(runs, parts, 9); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

func TestTextGlyphPosAtPartEndLTR(t *testing.T) {
	runs := []GlyphRun{glyphRunOfWidths(10, 10)}
	parts := []RunPart{{GlyphRun: 0, GlyphRange: Range{0, 2}, TextEnd: 2, Offset: Vec2{X: 0}}}
	lines := []Line{{TextRange: runeRange{0, 2}, RunRange: Range{0, 1}}}
	bottoms := []float32{20}
	ascents := []float32{16}
	descents := []float32{-4}

	markers := textGlyphPos(runs, lines, parts, bottoms, ascents, descents, 2)
	if len(markers) != 1 {
		t.Fatalf("got %d markers, want 1", len(markers))
	}
	if markers[0].Pos.X != 20 {
		t.Fatalf("got x=%v, want 20 (trailing edge)", markers[0].Pos.X)
	}
	if markers[0].Ascent != 16 || markers[0].Descent != -4 {
		t.Fatalf("got ascent/descent %v/%v", markers[0].Ascent, markers[0].Descent)
	}
}

func TestHighlightRangeFullLineAndPartial(t *testing.T) {
	runs := []GlyphRun{glyphRunOfWidths(10, 10, 10)}
	runs[0].Glyphs[0].Index = 0
	runs[0].Glyphs[1].Index = 1
	runs[0].Glyphs[2].Index = 2
	parts := []RunPart{
		{GlyphRun: 0, GlyphRange: Range{0, 3}, TextEnd: 3, Offset: Vec2{X: 0}},
	}
	lines := []Line{
		{TextRange: runeRange{0, 3}, RunRange: Range{0, 1}},
	}
	tops := []float32{0}
	bottoms := []float32{20}

	// Wholly-contained range: one full-width rectangle.
	rects := highlightRange(runs, lines, parts, tops, bottoms, 0, 100, 0, 3)
	if len(rects) != 1 || rects[0].Max.X != 100 {
		t.Fatalf("got %v, want one full-width rect", rects)
	}

	// Partial range inside the only line: one RunPart rectangle, not
	// stretched to leftBound/rightBound.
	rects = highlightRange(runs, lines, parts, tops, bottoms, 0, 100, 0, 1)
	if len(rects) != 1 || rects[0].Max.X == 100 {
		t.Fatalf("got %v, want a part-width rect narrower than the bound", rects)
	}
}
