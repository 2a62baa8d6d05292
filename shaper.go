// SPDX-License-Identifier: Unlicense OR MIT

package kastext

import (
	"sort"

	"golang.org/x/image/math/fixed"

	gofont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
)

// Shaper is the §4.2 contract: given one LevelRun's text, produce its
// glyphs and the per-break advances the line wrapper needs. A TextDisplay
// is prepared against a Shaper the same way it is prepared against a
// FontLibrary, so tests can substitute a fake that needs no real font
// binary.
type Shaper interface {
	Shape(text []rune, run LevelRun, face gofont.Face) (GlyphRun, error)
}

// HarfbuzzShaper shapes level runs with go-text/typesetting's HarfBuzz
// binding, the production shaping backend.
//
// Grounded on gioui.org/text/gotext.go's shaperImpl.shapeText: that method
// builds one shaping.Input per already-split run and calls
// shaping.HarfbuzzShaper.Shape on it. This adapter does the same for a
// single LevelRun at a time, since segmentText has already done gio's
// splitBidi/splitByFaces/splitByScript work at the paragraph level.
type HarfbuzzShaper struct {
	hb shaping.HarfbuzzShaper
}

// NewHarfbuzzShaper returns a ready-to-use production Shaper.
func NewHarfbuzzShaper() *HarfbuzzShaper {
	return &HarfbuzzShaper{}
}

// Shape implements Shaper. HTab runs are never passed here (§4.2 "the
// shaper is not called"); TextDisplay.PrepareWrap skips them before
// calling in.
func (s *HarfbuzzShaper) Shape(text []rune, run LevelRun, face gofont.Face) (GlyphRun, error) {
	if run.Special == SpecialHTab {
		return GlyphRun{Run: run}, nil
	}
	if run.TextRange.Len() == 0 {
		return GlyphRun{Run: run}, nil
	}

	input := shaping.Input{
		Text:      text,
		RunStart:  run.TextRange.Start,
		RunEnd:    run.TextRange.End,
		Direction: run.Level.Direction().toDi(),
		Face:      face,
		Size:      dpemToSize(run.Dpem),
		Script:    run.Script,
	}

	out := s.hb.Shape(input)
	return toGlyphRun(text, run, out), nil
}

// dpemToSize converts a device-pixels-per-em size into the 26.6 fixed-point
// representation shaping.Input.Size expects.
func dpemToSize(dpem float32) fixed.Int26_6 {
	return fixed.I(int(dpem))
}

// toGlyphRun converts a shaping.Output (one shaped run, in the backend's
// native format) into this module's GlyphRun, keeping glyphs in logical
// order with positions relative to the run's own x=0 (spec.md §4.2),
// and filling breakAdvance for each of run.Breaks.
//
// Grounded on gotext.go's toGioGlyphs/toLine, generalised from gio's
// render-focused glyph struct (which also carries GPU path-cache fields
// this module has no use for) to the spec's plain Glyph{Index, Id,
// Position}.
func toGlyphRun(text []rune, run LevelRun, out shaping.Output) GlyphRun {
	glyphs := make([]Glyph, 0, len(out.Glyphs))

	var pos fixed.Int26_6
	rtl := run.Level.IsRTL()
	n := len(out.Glyphs)
	for k := 0; k < n; k++ {
		g := out.Glyphs[k]
		x := pos
		if rtl {
			// HarfBuzz emits an RTL run's glyphs in visual order; walk them
			// from the right so the logically first glyph is placed
			// rightmost. Reading direction is decreasing x; subtract the
			// advance up front so Position is this glyph's own left edge.
			g = out.Glyphs[n-1-k]
			x = pos - g.XAdvance
		}
		glyphs = append(glyphs, Glyph{
			Index:    run.TextRange.Start + g.ClusterIndex,
			Id:       GlyphId(g.GlyphID),
			Position: Vec2{X: fixedToFloat(x), Y: fixedToFloat(-g.YOffset)},
			width:    g.XAdvance,
		})
		if rtl {
			pos -= g.XAdvance
		} else {
			pos += g.XAdvance
		}
	}
	if rtl {
		pos = -pos
		// The glyphs were collected in reverse visual order; sort them by
		// cluster so GlyphRun.Glyphs is in the logical (source) order
		// spec.md §3 requires, now that each glyph's Position is fixed.
		sort.SliceStable(glyphs, func(i, j int) bool { return glyphs[i].Index < glyphs[j].Index })
	}

	gr := GlyphRun{Run: run, Glyphs: glyphs, Caret: pos}
	gr.breakAdvance = make([]fixed.Int26_6, len(run.Breaks))
	bi := 0
	gi := 0
	var running fixed.Int26_6
	for bi < len(run.Breaks) {
		target := run.Breaks[bi]
		for gi < len(glyphs) && glyphs[gi].Index < target {
			running += glyphs[gi].width
			gi++
		}
		gr.breakAdvance[bi] = gr.lenNoSpace(text, 0, gi)
		bi++
	}
	return gr
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
