// SPDX-License-Identifier: Unlicense OR MIT

package kastext

import "golang.org/x/image/math/fixed"

// lineVMetrics is one line's vertical extent before the caret has been
// placed: the max ascent, min (most negative) descent and max line gap
// among the distinct runs it touches (spec.md §4.4).
type lineVMetrics struct {
	ascent, descent, lineGap fixed.Int26_6
}

// computeVertical implements spec.md §4.4: scans each line's runs for
// ascent/descent/line_gap, advances a running vertical caret by
// max(prevLineGap, thisLineGap) between lines, and records each line's
// top/bottom in device pixels. Returns the total content height (the last
// line's bottom) so the caller can then apply vAlign.verticalOffset.
//
// Grounded on gioui.org/text/gotext.go's calculateYOffsets, generalised
// from gio's single-pass "just add ascent+descent" to the spec's
// line-gap-aware caret advance and explicit top/bottom rounding rule.
func computeVertical(runs []GlyphRun, lines []Line, parts []RunPart, lib FontLibrary) (tops, bottoms, ascents, descents []float32, height float32) {
	tops = make([]float32, len(lines))
	bottoms = make([]float32, len(lines))
	ascents = make([]float32, len(lines))
	descents = make([]float32, len(lines))

	var caret fixed.Int26_6
	var prevLineGap fixed.Int26_6
	for li, ln := range lines {
		m := lineMetrics(runs, parts[ln.RunRange.Start:ln.RunRange.End], lib)

		caret += fixedMax(prevLineGap, m.lineGap)
		top := caret
		caret += m.ascent - m.descent
		bottom := roundFixed(caret)

		tops[li] = fixedToFloat(top)
		bottoms[li] = fixedToFloat(bottom)
		ascents[li] = fixedToFloat(m.ascent)
		descents[li] = fixedToFloat(m.descent)
		caret = bottom

		prevLineGap = m.lineGap
	}
	if len(lines) > 0 {
		height = bottoms[len(lines)-1]
	}
	return tops, bottoms, ascents, descents, height
}

func lineMetrics(runs []GlyphRun, parts []RunPart, lib FontLibrary) lineVMetrics {
	var m lineVMetrics
	seen := make(map[int]bool)
	for _, p := range parts {
		if seen[p.GlyphRun] {
			continue
		}
		seen[p.GlyphRun] = true
		run := runs[p.GlyphRun].Run
		ascent, descent, lineGap, _ := lib.Metrics(run.FaceId, run.Dpem)
		a, d, g := floatToFixed(ascent), floatToFixed(descent), floatToFixed(lineGap)
		if a > m.ascent {
			m.ascent = a
		}
		if d < m.descent {
			m.descent = d
		}
		if g > m.lineGap {
			m.lineGap = g
		}
	}
	return m
}

func fixedMax(a, b fixed.Int26_6) fixed.Int26_6 {
	if a > b {
		return a
	}
	return b
}

func roundFixed(v fixed.Int26_6) fixed.Int26_6 {
	return fixed.I(v.Round())
}

// applyVerticalAlign shifts every top/bottom by the constant vAlign offset
// once total content height is known (spec.md §4.4's last sentence).
func applyVerticalAlign(tops, bottoms []float32, height float32, vAlign Align, heightBound float32) {
	off := vAlign.verticalOffset(floatToFixed(height), floatToFixed(heightBound))
	if off == 0 {
		return
	}
	shift := fixedToFloat(off)
	for i := range tops {
		tops[i] += shift
		bottoms[i] += shift
	}
}
