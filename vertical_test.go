// SPDX-License-Identifier: Unlicense OR MIT

package kastext

import (
	"testing"

	gofont "github.com/go-text/typesetting/font"
)

// zeroGapLib is a FontLibrary whose faces report a zero line gap, used to
// check the §8 invariant that adjacent lines abut exactly
// (line[i+1].Top == line[i].Bottom) when there is no gap to separate them.
type zeroGapLib struct{}

func (zeroGapLib) Faces(id FontId) []FaceId                     { return []FaceId{FaceId(id)} }
func (zeroGapLib) ResolveFont(sel FontSelector) (FontId, error) { return 0, nil }
func (zeroGapLib) EmojiFont() (FontId, error)                   { return 0, nil }
func (zeroGapLib) Face(id FaceId) gofont.Face                   { return nil }
func (zeroGapLib) GlyphForChar(id FaceId, r rune) (gofont.GID, bool) {
	return 0, true
}
func (zeroGapLib) Metrics(id FaceId, dpem float32) (ascent, descent, lineGap, spaceAdvance float32) {
	return dpem * 0.8, -dpem * 0.2, 0, dpem * 0.5
}

func TestComputeVerticalSingleLine(t *testing.T) {
	lib := &fakeLib{}
	run := LevelRun{FaceId: 0, Dpem: 10}
	runs := []GlyphRun{{Run: run}}
	parts := []RunPart{{GlyphRun: 0}}
	lines := []Line{{RunRange: Range{0, 1}}}

	tops, bottoms, ascents, descents, height := computeVertical(runs, lines, parts, lib)

	wantAscent := float32(8)   // 10 * 0.8
	wantDescent := float32(-2) // -10 * 0.2
	wantLineGap := float32(1)  // 10 * 0.1
	if ascents[0] != wantAscent {
		t.Fatalf("ascent = %v, want %v", ascents[0], wantAscent)
	}
	if descents[0] != wantDescent {
		t.Fatalf("descent = %v, want %v", descents[0], wantDescent)
	}
	// caret advances by line_gap before ascent/descent are added, even for
	// the first line (computeVertical's prevLineGap starts at zero, so
	// max(0, this line's gap) still contributes); top is captured at that
	// point, before ascent/descent fold in.
	wantTop := wantLineGap
	if tops[0] != wantTop {
		t.Fatalf("top = %v, want %v", tops[0], wantTop)
	}
	wantBottom := wantLineGap + wantAscent - wantDescent
	if bottoms[0] != wantBottom {
		t.Fatalf("bottom = %v, want %v", bottoms[0], wantBottom)
	}
	if height != bottoms[0] {
		t.Fatalf("height = %v, want %v", height, bottoms[0])
	}
}

func TestComputeVerticalStacksLinesByLineGap(t *testing.T) {
	lib := &fakeLib{}
	run := LevelRun{FaceId: 0, Dpem: 10}
	runs := []GlyphRun{{Run: run}}
	parts := []RunPart{{GlyphRun: 0}, {GlyphRun: 0}}
	lines := []Line{
		{RunRange: Range{0, 1}},
		{RunRange: Range{1, 2}},
	}

	tops, bottoms, _, _, height := computeVertical(runs, lines, parts, lib)
	if len(tops) != 2 || len(bottoms) != 2 {
		t.Fatalf("expected 2 lines of metrics")
	}
	if tops[1] <= tops[0] {
		t.Fatalf("second line should start below the first: tops=%v", tops)
	}
	if height != bottoms[1] {
		t.Fatalf("height should equal the last line's bottom")
	}
}

func TestComputeVerticalLinesAbutWithZeroLineGap(t *testing.T) {
	run := LevelRun{FaceId: 0, Dpem: 10}
	runs := []GlyphRun{{Run: run}}
	parts := []RunPart{{GlyphRun: 0}, {GlyphRun: 0}}
	lines := []Line{
		{RunRange: Range{0, 1}},
		{RunRange: Range{1, 2}},
	}

	tops, bottoms, _, _, _ := computeVertical(runs, lines, parts, zeroGapLib{})
	if tops[1] != bottoms[0] {
		t.Fatalf("line[1].top = %v, want line[0].bottom = %v (lines should abut)", tops[1], bottoms[0])
	}
}

func TestApplyVerticalAlignCenter(t *testing.T) {
	tops := []float32{0, 10}
	bottoms := []float32{10, 20}
	applyVerticalAlign(tops, bottoms, 20, Center, 40)
	// (40-20)/2 = 10px shift.
	if tops[0] != 10 || bottoms[1] != 30 {
		t.Fatalf("got tops=%v bottoms=%v, want shift of 10", tops, bottoms)
	}
}

func TestApplyVerticalAlignDefaultNoop(t *testing.T) {
	tops := []float32{0, 10}
	bottoms := []float32{10, 20}
	applyVerticalAlign(tops, bottoms, 20, Default, 40)
	if tops[0] != 0 || bottoms[1] != 20 {
		t.Fatalf("Default must not shift: tops=%v bottoms=%v", tops, bottoms)
	}
}
