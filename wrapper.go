// SPDX-License-Identifier: Unlicense OR MIT

package kastext

import "golang.org/x/image/math/fixed"

// wrapPart is one candidate slice considered by the checkpoint line filler:
// either a sub-range of a GlyphRun's glyphs bounded by two of its soft
// breaks (or the run's own ends), or a whole HTab run (exactly one part,
// since an HTab run is always exactly one character, per §4.1 rule vii).
type wrapPart struct {
	glyphRun   int
	glyphRange Range
	text       runeRange
	level      Level
	// special is only meaningful when this part ends its run (isLast);
	// otherwise it is SpecialNone even if the run itself is special.
	special       RunSpecial
	canBreakAfter bool
}

// buildWrapParts flattens the glyph runs of a paragraph into the ordered
// list of candidate parts the checkpoint filler in wrapLines walks,
// splitting each non-HTab run at its recorded soft breaks (spec.md §4.3).
func buildWrapParts(runs []GlyphRun) []wrapPart {
	var parts []wrapPart
	for ri, gr := range runs {
		run := gr.Run
		if run.TextRange.Len() == 0 {
			continue
		}
		if run.Special == SpecialHTab {
			parts = append(parts, wrapPart{
				glyphRun:      ri,
				glyphRange:    Range{0, 0},
				text:          run.TextRange,
				level:         run.Level,
				special:       SpecialHTab,
				canBreakAfter: true,
			})
			continue
		}

		bounds := make([]int, 0, len(run.Breaks)+2)
		bounds = append(bounds, run.TextRange.Start)
		bounds = append(bounds, run.Breaks...)
		bounds = append(bounds, run.TextRange.End)

		gi := 0
		for bi := 0; bi+1 < len(bounds); bi++ {
			start, end := bounds[bi], bounds[bi+1]
			if start == end {
				continue
			}
			for gi < len(gr.Glyphs) && gr.Glyphs[gi].Index < end {
				gi++
			}
			gStart := gi
			for gStart > 0 && gr.Glyphs[gStart-1].Index >= start {
				gStart--
			}
			isLast := end == run.TextRange.End
			special := RunSpecial(SpecialNone)
			if isLast {
				special = run.Special
			}
			parts = append(parts, wrapPart{
				glyphRun:      ri,
				glyphRange:    Range{uint32(gStart), uint32(gi)},
				text:          runeRange{Start: start, End: end},
				level:         run.Level,
				special:       special,
				canBreakAfter: !isLast || run.Special != SpecialNoBreak,
			})
		}
	}
	return parts
}

// WrapResult is the §4.3 output of wrapLines: the committed RunParts (each
// line's parts sorted by TextEnd, per spec.md §3's "Final RunPart
// ordering"), the Lines that index into them, and the width bound actually
// used (returned for convenience since alignment and highlight rectangles
// both need it).
type WrapResult struct {
	Parts      []RunPart
	Lines      []Line
	WidthBound fixed.Int26_6
}

// wrapLines implements spec.md §4.3's checkpoint line-filling algorithm:
// traverse candidate parts maintaining a caret and a checkpoint at the last
// legal break, committing a line either when a candidate would overflow
// wrapWidth (rolling back to the checkpoint) or when a hard break is hit.
// Once a line's logical-order parts are known, §4.3's bidi L2 step
// (reorder.go) assigns each part's visual x Offset; the parts themselves
// stay stored in logical (TextEnd) order as spec.md §3 requires.
//
// Grounded on the general shape of esimov-caire's vendored
// shaping/wrapping.go LineWrapper (checkpoint/restore around a candidate
// line), adapted from operating on shaping.Output/glyph-cluster mapping to
// operating directly on this module's GlyphRun/RunSpecial, since the
// trailing-whitespace, HTab, NoBreak and justification rules here are
// spec-specific rather than the general-purpose policy wrapping.go
// implements.
func wrapLines(text []rune, runs []GlyphRun, lib FontLibrary, wrapWidth fixed.Int26_6, maxLines int) WrapResult {
	parts := buildWrapParts(runs)

	res := WrapResult{WidthBound: wrapWidth}
	if len(parts) == 0 {
		return res
	}

	var tentative []RunPart
	var tentAdvance []fixed.Int26_6
	var tentLevels []Level
	lineTextStart := -1

	checkpoint := -1      // index into tentative
	checkpointPartI := -1 // index into parts: first part of the line that follows on rollback
	var caret fixed.Int26_6

	finishLine := func(upTo int) {
		seg := tentative[:upTo+1]
		advs := tentAdvance[:upTo+1]
		lvls := tentLevels[:upTo+1]

		order := reorderLine(lvls)
		var x fixed.Int26_6
		for _, vi := range order {
			seg[vi].Offset.X = fixedToFloat(x)
			x += advs[vi]
		}

		runRange := Range{uint32(len(res.Parts)), uint32(len(res.Parts) + len(seg))}
		res.Parts = append(res.Parts, seg...)
		res.Lines = append(res.Lines, Line{
			TextRange: runeRange{Start: lineTextStart, End: int(seg[len(seg)-1].TextEnd)},
			RunRange:  runRange,
		})

		tentative = tentative[:0]
		tentAdvance = tentAdvance[:0]
		tentLevels = tentLevels[:0]
		lineTextStart = -1
		caret = 0
		checkpoint = -1
		checkpointPartI = -1
	}

	i := 0
	for i < len(parts) {
		if maxLines > 0 && len(res.Lines) >= maxLines {
			break
		}
		p := parts[i]

		var fullAdvance, measureAdvance fixed.Int26_6
		if p.special == SpecialHTab {
			fullAdvance = tabAdvance(caret, tabStopWidth(runs[p.glyphRun].Run, lib))
			measureAdvance = fullAdvance
		} else {
			gr := &runs[p.glyphRun]
			for gi := p.glyphRange.Start; gi < p.glyphRange.End; gi++ {
				fullAdvance += gr.Glyphs[gi].width
			}
			measureAdvance = gr.lenNoSpace(text, int(p.glyphRange.Start), int(p.glyphRange.End))
		}

		candidateLen := caret + measureAdvance
		if wrapWidth > 0 && candidateLen > wrapWidth && len(tentative) > 0 && checkpoint >= 0 {
			upTo := checkpoint
			nextI := checkpointPartI + 1
			finishLine(upTo)
			i = nextI
			continue
		}

		if len(tentative) == 0 {
			lineTextStart = p.text.Start
		}
		rp := RunPart{
			TextEnd:    uint32(p.text.End),
			GlyphRun:   p.glyphRun,
			GlyphRange: p.glyphRange,
			level:      p.level,
			special:    p.special,
		}
		tentative = append(tentative, rp)
		tentAdvance = append(tentAdvance, fullAdvance)
		tentLevels = append(tentLevels, p.level)
		caret += fullAdvance

		if p.canBreakAfter {
			checkpoint = len(tentative) - 1
			checkpointPartI = i
		}

		if p.special == SpecialHardBreak {
			finishLine(len(tentative) - 1)
			i++
			continue
		}
		i++
	}
	if len(tentative) > 0 {
		finishLine(len(tentative) - 1)
	}

	return res
}

// tabStopWidth returns eight times the space advance of run's face at its
// dpem (spec.md §4.2 "a tab stop equal to eight times the space advance").
func tabStopWidth(run LevelRun, lib FontLibrary) fixed.Int26_6 {
	_, _, _, space := lib.Metrics(run.FaceId, run.Dpem)
	return floatToFixed(space * 8)
}

// tabAdvance returns the advance from caret to the next tab stop of the
// given width, matching a terminal's usual "always move forward" tab
// semantics rather than snapping in place when already on a stop.
func tabAdvance(caret, stop fixed.Int26_6) fixed.Int26_6 {
	if stop <= 0 {
		return 0
	}
	next := (caret/stop + 1) * stop
	return next - caret
}

func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
