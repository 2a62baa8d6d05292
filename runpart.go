// SPDX-License-Identifier: Unlicense OR MIT

package kastext

// RunPart is a slice of a GlyphRun assigned to one wrapped line (spec.md
// §3). GlyphRun indexes wrapped_runs; GlyphRange is a glyph-index range
// within that run. Offset is the translation applied to the run's local
// glyph positions to obtain final on-screen coordinates.
//
// Grounded on gioui.org/text/gotext.go's runLayout (which carries the same
// "shaped run slice plus placement offset" shape as a field of its line
// type); RunPart pulls it out as the spec's own standalone value so a line
// can reference parts of more than one GlyphRun without re-shaping.
type RunPart struct {
	TextEnd    uint32
	GlyphRun   int
	GlyphRange Range
	Offset     Vec2
	// level is kept for L2 reordering (reorder.go) and highlight queries;
	// not part of spec.md §3's RunPart fields, mirrors the run it slices.
	level Level
	// special mirrors the sliced run's RunSpecial, needed by the wrapper's
	// checkpoint/NoBreak logic after a part has been detached from its run.
	special RunSpecial
}
