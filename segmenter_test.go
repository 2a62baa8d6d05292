// SPDX-License-Identifier: Unlicense OR MIT

package kastext

import (
	"testing"

	gofont "github.com/go-text/typesetting/font"
)

func TestSegmentTextSingleRunForPlainASCII(t *testing.T) {
	text := []rune("hello")
	runs, err := segmentText(text, Ltr, nil, &fakeLib{})
	if err != nil {
		t.Fatalf("segmentText: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1: %+v", len(runs), runs)
	}
	if runs[0].TextRange != (runeRange{0, 5}) {
		t.Fatalf("got range %v, want {0 5}", runs[0].TextRange)
	}
	if runs[0].Dpem != 16 {
		t.Fatalf("got dpem %v, want default 16", runs[0].Dpem)
	}
}

func TestSegmentTextSplitsAtFontTokenBoundary(t *testing.T) {
	text := []rune("hello")
	tokens := []FontToken{
		{Start: 0, Dpem: 10},
		{Start: 3, Dpem: 20},
	}
	runs, err := segmentText(text, Ltr, tokens, &fakeLib{})
	if err != nil {
		t.Fatalf("segmentText: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2: %+v", len(runs), runs)
	}
	if runs[0].TextRange != (runeRange{0, 3}) || runs[0].Dpem != 10 {
		t.Fatalf("run 0 = %+v, want range {0 3} dpem 10", runs[0])
	}
	if runs[1].TextRange != (runeRange{3, 5}) || runs[1].Dpem != 20 {
		t.Fatalf("run 1 = %+v, want range {3 5} dpem 20", runs[1])
	}
}

func TestSegmentTextHardBreakAfterNewline(t *testing.T) {
	text := []rune("hi\nbye")
	runs, err := segmentText(text, Ltr, nil, &fakeLib{})
	if err != nil {
		t.Fatalf("segmentText: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2: %+v", len(runs), runs)
	}
	if runs[0].TextRange != (runeRange{0, 3}) || runs[0].Special != SpecialHardBreak {
		t.Fatalf("run 0 = %+v, want range {0 3} special HardBreak", runs[0])
	}
	if runs[1].TextRange != (runeRange{3, 6}) {
		t.Fatalf("run 1 = %+v, want range {3 6}", runs[1])
	}
}

func TestSegmentTextHTabIsItsOwnRun(t *testing.T) {
	text := []rune("a\tb")
	runs, err := segmentText(text, Ltr, nil, &fakeLib{})
	if err != nil {
		t.Fatalf("segmentText: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3 (a / tab / b): %+v", len(runs), runs)
	}
	if runs[1].TextRange != (runeRange{1, 2}) || runs[1].Special != SpecialHTab {
		t.Fatalf("run 1 = %+v, want range {1 2} special HTab", runs[1])
	}
}

func TestSegmentTextEmptyTextProducesNoRuns(t *testing.T) {
	runs, err := segmentText(nil, Ltr, nil, &fakeLib{})
	if err != nil {
		t.Fatalf("segmentText: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("got %d runs, want 0", len(runs))
	}
}

func TestSegmentTextNoFontMatchPropagates(t *testing.T) {
	lib := &failingLib{}
	_, err := segmentText([]rune("x"), Ltr, nil, lib)
	if err == nil {
		t.Fatalf("expected an error from a library that can't resolve any font")
	}
}

// failingLib resolves a font id but has no faces at all, exercising the
// NoFontMatch path (§7) in resolveFaces.
type failingLib struct{}

func (failingLib) Faces(id FontId) []FaceId                     { return nil }
func (failingLib) ResolveFont(sel FontSelector) (FontId, error) { return 1, nil }
func (failingLib) EmojiFont() (FontId, error)                   { return 1, nil }
func (failingLib) Face(id FaceId) gofont.Face                   { return nil }
func (failingLib) GlyphForChar(id FaceId, r rune) (gofont.GID, bool) {
	return 0, false
}
func (failingLib) Metrics(id FaceId, dpem float32) (ascent, descent, lineGap, spaceAdvance float32) {
	return 0, 0, 0, 0
}
