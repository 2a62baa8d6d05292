// SPDX-License-Identifier: Unlicense OR MIT

package kastext

import "golang.org/x/image/math/fixed"

// alignLines applies spec.md §4.3's horizontal alignment pass in place over
// wr's Parts: Default/TL/Center/BR shift a whole line by a constant, and
// Stretch additionally distributes slack across the line's legal break
// gaps when the line was produced by wrapping (not a hard break) and fits
// within widthBound.
//
// Grounded on gioui.org/text/text.go's align() helper (a per-line constant
// shift), extended with the gap-distribution logic text.go has no
// equivalent of, since gio never implements justified text.
func alignLines(runs []GlyphRun, wr *WrapResult, hAlign Align) {
	for li := range wr.Lines {
		ln := &wr.Lines[li]
		parts := wr.Parts[ln.RunRange.Start:ln.RunRange.End]
		if len(parts) == 0 {
			continue
		}

		lineLevel, lineLen := lineLevelAndLength(runs, parts)
		hardBreakEnded := parts[len(parts)-1].special == SpecialHardBreak

		if hAlign == Stretch && !hardBreakEnded && lineLen <= wr.WidthBound {
			if justifyLine(parts, runs, wr.WidthBound-lineLen) {
				continue
			}
		}

		shift := hAlign.horizontalOffset(lineLevel, lineLen, wr.WidthBound)
		if shift == 0 {
			continue
		}
		for i := range parts {
			parts[i].Offset.X += fixedToFloat(shift)
		}
	}
}

// lineLevelAndLength returns the line's level (the minimum level among its
// parts, per §4.3's `line_level`) and its total visual length (the
// trailing edge of its rightmost-ending part, in visual x).
func lineLevelAndLength(runs []GlyphRun, parts []RunPart) (Level, fixed.Int26_6) {
	lineLevel := parts[0].level
	var farEdge fixed.Int26_6
	for _, p := range parts {
		if p.level < lineLevel {
			lineLevel = p.level
		}
		end := floatToFixed(p.Offset.X) + partAdvance(runs, p)
		if end > farEdge {
			farEdge = end
		}
	}
	return lineLevel, farEdge
}

// partAdvance returns a RunPart's own advance (its glyph range's full
// width, or its HTab advance baked in at wrap time via its width deltas).
func partAdvance(runs []GlyphRun, p RunPart) fixed.Int26_6 {
	if p.special == SpecialHTab {
		// HTab parts carry no glyphs; their width was only ever needed
		// transiently during wrapping to advance the caret, so recompute it
		// isn't possible here without the caret it was measured against.
		// It is treated as zero-width, so when a wrapped line ends with a
		// tab part, the tab's width is not counted in line_len.
		return 0
	}
	gr := &runs[p.GlyphRun]
	var total fixed.Int26_6
	for gi := p.GlyphRange.Start; gi < p.GlyphRange.End; gi++ {
		total += gr.Glyphs[gi].width
	}
	return total
}

// justifyLine distributes slack evenly across a line's legal break gaps
// (spec.md §4.3 "Stretch (justify)"): the gaps between RunParts where a
// break was legal, in the line's visual (post-L2-reordering) order, with a
// one-gap shift for RTL lines so slack lands after each visual word rather
// than before it. Reports whether it applied a distribution; the caller
// falls back to an ordinary alignment shift when there was nothing legal to
// distribute across.
//
// Grounded on the original's wrap_lines.rs is_gap construction: a gap after
// part i is legal if part i does not reach the end of its own shaped run
// (the line wrapped mid-run, at a soft break) or the run it does end does
// not forbid breaking after it (RunSpecial != NoBreak). A gap that falls
// inside a single run — e.g. a word split across two RunParts by
// character-level face fallback, or the boundary after a NoBreak run — is
// never a candidate, so Stretch never injects space inside a word.
func justifyLine(parts []RunPart, runs []GlyphRun, slack fixed.Int26_6) bool {
	if slack <= 0 || len(parts) < 2 {
		return false
	}

	// Recover the line's visual order from each part's assigned Offset.X
	// (already the product of reorder.go's L2 pass at wrap time).
	visual := make([]int, len(parts))
	for i := range visual {
		visual[i] = i
	}
	for i := 1; i < len(visual); i++ {
		for j := i; j > 0 && parts[visual[j]].Offset.X < parts[visual[j-1]].Offset.X; j-- {
			visual[j], visual[j-1] = visual[j-1], visual[j]
		}
	}

	// Shift-by-one for RTL (§4.3): a logical word's trailing gap sits to
	// its visual left rather than its right, so the part that should stay
	// put is the last one in visual order rather than the first.
	order := visual
	if parts[0].level.IsRTL() {
		order = reverseOf(visual)
	}

	gaps := len(order) - 1
	legal := make([]bool, gaps)
	numLegal := 0
	for i := 0; i < gaps; i++ {
		p := parts[order[i]]
		if !partEndsItsRun(runs, p) || p.special != SpecialNoBreak {
			legal[i] = true
			numLegal++
		}
	}
	if numLegal == 0 {
		return false
	}

	per := slack / fixed.Int26_6(numLegal)
	rem := slack - per*fixed.Int26_6(numLegal)

	var shift fixed.Int26_6
	legalSeen := 0
	for i, vi := range order {
		parts[vi].Offset.X += fixedToFloat(shift)
		if i < gaps && legal[i] {
			add := per
			if fixed.Int26_6(legalSeen) < rem {
				add++
			}
			shift += add
			legalSeen++
		}
	}
	return true
}

// partEndsItsRun reports whether p's glyph range reaches the end of its
// source GlyphRun's glyphs, i.e. the line did not wrap in the middle of it.
// An HTab part always occupies its whole (single-run) range.
func partEndsItsRun(runs []GlyphRun, p RunPart) bool {
	if p.special == SpecialHTab {
		return true
	}
	return int(p.GlyphRange.End) >= len(runs[p.GlyphRun].Glyphs)
}

func reverseOf(s []int) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
