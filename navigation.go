// SPDX-License-Identifier: Unlicense OR MIT

package kastext

// MarkerPos describes a caret/highlight anchor position (spec.md §6): a
// device-pixel position plus the line's ascent/descent (so a caller can
// draw a full-height caret) and the bidi level of the text at that
// position (so a caller can pick a caret glyph matching writing direction).
type MarkerPos struct {
	Pos     Vec2
	Ascent  float32
	Descent float32
	Level   uint8
}

// findLine implements spec.md §4.5's find_line: a linear scan over lines
// returning the line containing a byte/rune index, preferring the next
// line when index lands exactly on a (non-final) line's text_range.end, to
// match the convention that a caret at a wrap point belongs to the start
// of the following line.
func findLine(lines []Line, index int) (int, runeRange, bool) {
	for i, ln := range lines {
		if index < ln.TextRange.Start {
			continue
		}
		if index < ln.TextRange.End {
			return i, ln.TextRange, true
		}
		if index == ln.TextRange.End {
			if i+1 < len(lines) {
				continue
			}
			return i, ln.TextRange, true
		}
	}
	if len(lines) > 0 {
		last := len(lines) - 1
		return last, lines[last].TextRange, true
	}
	return 0, runeRange{}, false
}

// lineIndexNearest implements spec.md §4.5's line_index_nearest: for each
// RunPart on the line, walk its glyphs recording the closest candidate
// index to x (measuring from the part's own offset), with RTL parts using
// the next glyph's index (or the part's text_end for the last glyph) since
// a rune's glyph sits to the *left* of its caret position in RTL text.
func lineIndexNearest(runs []GlyphRun, parts []RunPart, x float32) int {
	best := 0
	bestDist := float32(-1)
	consider := func(candidate int, pos float32) {
		d := pos - x
		if d < 0 {
			d = -d
		}
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = candidate
		}
	}

	for _, p := range parts {
		gr := &runs[p.GlyphRun]
		rtl := p.level.IsRTL()
		glyphs := gr.Glyphs[p.GlyphRange.Start:p.GlyphRange.End]
		for gi, g := range glyphs {
			pos := p.Offset.X + g.Position.X
			candidate := g.Index
			if rtl {
				if gi+1 < len(glyphs) {
					candidate = glyphs[gi+1].Index
				} else {
					candidate = int(p.TextEnd)
				}
			}
			consider(candidate, pos)
		}
		// Right edge of the part.
		edgeIdx := int(p.TextEnd)
		if rtl && len(glyphs) > 0 {
			edgeIdx = glyphs[0].Index
		}
		rightEdge := p.Offset.X + fixedToFloat(partAdvance(runs, p))
		consider(edgeIdx, rightEdge)
	}
	return best
}

// textIndexNearest implements spec.md §4.5's text_index_nearest: pick the
// line whose top is the largest not exceeding pos.Y, then delegate to
// lineIndexNearest.
func textIndexNearest(runs []GlyphRun, lines []Line, parts []RunPart, tops []float32, pos Vec2) int {
	if len(lines) == 0 {
		return 0
	}
	li := 0
	for i, top := range tops {
		if top <= pos.Y {
			li = i
		}
	}
	ln := lines[li]
	return lineIndexNearest(runs, parts[ln.RunRange.Start:ln.RunRange.End], pos.X)
}

// textGlyphPos implements spec.md §4.5's text_glyph_pos: for each RunPart
// whose text_end >= index, either report the part's trailing (LTR) /
// leading (RTL) edge when index lands exactly on text_end, or locate the
// glyph whose cluster contains index. Up to two results can arise at a
// line-wrap boundary or bidi direction boundary; they are returned in
// logical order (ascending by line, then by RunPart order).
func textGlyphPos(runs []GlyphRun, lines []Line, parts []RunPart, bottoms, ascents, descents []float32, index int) []MarkerPos {
	var out []MarkerPos
	for li, ln := range lines {
		if index > ln.TextRange.End {
			continue
		}
		for _, p := range parts[ln.RunRange.Start:ln.RunRange.End] {
			if int(p.TextEnd) < index {
				continue
			}
			rtl := p.level.IsRTL()
			marker := MarkerPos{Ascent: ascents[li], Descent: descents[li], Level: uint8(p.level)}
			marker.Pos.Y = bottoms[li]

			if int(p.TextEnd) == index {
				x := p.Offset.X
				if !rtl {
					x += fixedToFloat(partAdvance(runs, p))
				}
				marker.Pos.X = x
				out = append(out, marker)
				continue
			}

			// The cluster containing index is the last one starting at or
			// before index; report the first glyph of that cluster.
			gr := &runs[p.GlyphRun]
			found := false
			clusterStart := -1
			for _, g := range gr.Glyphs[p.GlyphRange.Start:p.GlyphRange.End] {
				if g.Index > index {
					break
				}
				if g.Index != clusterStart {
					clusterStart = g.Index
					marker.Pos.X = p.Offset.X + g.Position.X
					found = true
				}
			}
			if found {
				out = append(out, marker)
			}
		}
		if index < ln.TextRange.End {
			break
		}
	}
	return out
}

// HighlightRect is one rectangle of a highlight_range result (spec.md
// §4.5), in the same device-pixel space as MarkerPos/Vec2.
type HighlightRect struct {
	Min, Max Vec2
}

// highlightRange implements spec.md §4.5's highlight_range: lines wholly
// inside [start, end) get one full-width rectangle; the lines containing
// the range's start and/or end are walked RunPart-by-RunPart in logical
// order, emitting one rectangle per RunPart the range enters or exits. Each
// such rectangle spans the whole RunPart's advance, not only the glyphs
// inside [start, end), and is not clamped to [leftBound, rightBound].
func highlightRange(runs []GlyphRun, lines []Line, parts []RunPart, tops, bottoms []float32, leftBound, rightBound float32, start, end int) []HighlightRect {
	var rects []HighlightRect
	for li, ln := range lines {
		if ln.TextRange.End <= start || ln.TextRange.Start >= end {
			continue
		}
		if ln.TextRange.Start >= start && ln.TextRange.End <= end {
			rects = append(rects, HighlightRect{
				Min: Vec2{X: leftBound, Y: tops[li]},
				Max: Vec2{X: rightBound, Y: bottoms[li]},
			})
			continue
		}
		for _, p := range parts[ln.RunRange.Start:ln.RunRange.End] {
			partStart := partTextStart(runs, p)
			if int(p.TextEnd) <= start || partStart >= end {
				continue
			}
			width := fixedToFloat(partAdvance(runs, p))
			rects = append(rects, HighlightRect{
				Min: Vec2{X: p.Offset.X, Y: tops[li]},
				Max: Vec2{X: p.Offset.X + width, Y: bottoms[li]},
			})
		}
	}
	return rects
}

func partTextStart(runs []GlyphRun, p RunPart) int {
	gr := &runs[p.GlyphRun]
	if p.GlyphRange.Start < p.GlyphRange.End {
		return gr.Glyphs[p.GlyphRange.Start].Index
	}
	return int(p.TextEnd)
}
