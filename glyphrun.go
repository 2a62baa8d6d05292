// SPDX-License-Identifier: Unlicense OR MIT

package kastext

import (
	"unicode"

	"golang.org/x/image/math/fixed"
)

// GlyphId is the font-internal glyph index a Glyph refers to (go-text
// calls this a GID; kept distinct here since spec.md §3 names it
// GlyphId at the core's data-model boundary).
type GlyphId uint32

// Glyph is one shaped glyph positioned as if its GlyphRun starts at x=0
// (spec.md §3). Index is the rune offset, into the whole paragraph, of
// the glyph's source cluster; RunPart/navigation code converts to a byte
// offset only when crossing the public API boundary.
type Glyph struct {
	Index    int
	Id       GlyphId
	Position Vec2

	// width is the glyph's own advance, kept internally (not part of the
	// spec's public Glyph fields) so the wrapper can compute
	// trailing-whitespace-excluded line lengths without re-querying the
	// shaper.
	width fixed.Int26_6
}

// GlyphRun is the shaper's output for one LevelRun: its glyphs in logical
// (source) order plus the total advance after the last glyph (spec.md
// §3). For RTL runs the glyphs are still logical-order but x-positions
// decrease with Index, matching the invariant spec.md §3 states.
//
// Grounded on gioui.org/text/gotext.go's runLayout/glyph pair (toLine,
// toGioGlyphs), collapsed into the spec's single public-shaped GlyphRun
// type (gio splits rendering metadata across runLayout and an internal
// glyph struct because it also tracks GPU path caching fields this module
// has no use for).
type GlyphRun struct {
	Run    LevelRun
	Glyphs []Glyph
	Caret  fixed.Int26_6

	// breakAdvance[i] is the "end-without-trailing-space" advance at
	// Run.Breaks[i], computed when the run is shaped (spec.md §4.2). The
	// line wrapper does not read it; it measures each part with lenNoSpace.
	breakAdvance []fixed.Int26_6
}

// lenNoSpace returns the advance of glyphs[from:to] against the paragraph's
// source text, excluding the width of a single trailing space if the last
// glyph's source rune is whitespace (spec.md §4.3's "len_no_space", used to
// measure a candidate line without trailing space affecting justification
// or alignment).
func (g *GlyphRun) lenNoSpace(text []rune, from, to int) fixed.Int26_6 {
	if to <= from || to > len(g.Glyphs) {
		return 0
	}
	var total fixed.Int26_6
	for i := from; i < to; i++ {
		total += g.Glyphs[i].width
	}
	last := g.Glyphs[to-1]
	if isTrailingSpaceGlyph(text, last) {
		total -= last.width
	}
	return total
}

// isTrailingSpaceGlyph reports whether g's source rune is whitespace, so a
// trailing one can be excluded from a line's measured length.
func isTrailingSpaceGlyph(text []rune, g Glyph) bool {
	if g.Index < 0 || g.Index >= len(text) {
		return false
	}
	return unicode.IsSpace(text[g.Index])
}
