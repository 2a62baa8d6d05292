// SPDX-License-Identifier: Unlicense OR MIT

package kastext

import (
	"golang.org/x/image/math/fixed"

	gofont "github.com/go-text/typesetting/font"
)

// fakeLib is a minimal FontLibrary test double: every selector resolves to
// the same single face, every face covers every rune, and metrics are
// fixed proportions of dpem. No real font binary is available in this
// sandbox (per the module's own constraints), so all tests exercising
// segmentation/shaping/wrapping/vertical layout run against this double
// rather than FontscanLibrary.
type fakeLib struct {
	emojiCalls int
}

func (l *fakeLib) Faces(id FontId) []FaceId { return []FaceId{FaceId(id)} }

func (l *fakeLib) ResolveFont(sel FontSelector) (FontId, error) {
	return FontId(1), nil
}

func (l *fakeLib) EmojiFont() (FontId, error) {
	l.emojiCalls++
	return FontId(2), nil
}

func (l *fakeLib) Face(id FaceId) gofont.Face { return nil }

func (l *fakeLib) GlyphForChar(id FaceId, r rune) (gofont.GID, bool) {
	return gofont.GID(r), true
}

func (l *fakeLib) Metrics(id FaceId, dpem float32) (ascent, descent, lineGap, spaceAdvance float32) {
	return dpem * 0.8, -dpem * 0.2, dpem * 0.1, dpem * 0.5
}

// fakeShaper produces one monospace glyph per rune, each advancing by
// half the run's dpem, standing in for HarfbuzzShaper so tests don't
// require a real font binary. RTL runs are laid out decreasing-x the same
// way HarfbuzzShaper/toGlyphRun does, so wrapping/reordering/alignment
// tests exercise the same glyph-order invariants the production shaper
// provides.
type fakeShaper struct{}

func (fakeShaper) Shape(text []rune, run LevelRun, face gofont.Face) (GlyphRun, error) {
	if run.Special == SpecialHTab || run.TextRange.Len() == 0 {
		return GlyphRun{Run: run}, nil
	}
	charWidth := floatToFixed(run.Dpem / 2)
	rtl := run.Level.IsRTL()

	n := run.TextRange.Len()
	glyphs := make([]Glyph, n)
	var pos fixed.Int26_6
	for k := 0; k < n; k++ {
		idx := run.TextRange.Start + k
		x := pos
		if rtl {
			x = pos - charWidth
		}
		glyphs[k] = Glyph{
			Index:    idx,
			Id:       GlyphId(text[idx]),
			Position: Vec2{X: fixedToFloat(x)},
			width:    charWidth,
		}
		if rtl {
			pos -= charWidth
		} else {
			pos += charWidth
		}
	}
	if rtl {
		pos = -pos
		// glyphs built above are already in logical (source) order for
		// this fake since it never reorders like HarfBuzz does for real
		// RTL shaping; nothing further to sort.
	}

	gr := GlyphRun{Run: run, Glyphs: glyphs, Caret: pos}
	gr.breakAdvance = make([]fixed.Int26_6, len(run.Breaks))
	bi, gi := 0, 0
	for bi < len(run.Breaks) {
		target := run.Breaks[bi]
		for gi < len(glyphs) && glyphs[gi].Index < target {
			gi++
		}
		gr.breakAdvance[bi] = gr.lenNoSpace(text, 0, gi)
		bi++
	}
	return gr, nil
}
