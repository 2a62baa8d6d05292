// SPDX-License-Identifier: Unlicense OR MIT

package kastext

import (
	"unicode"

	"golang.org/x/exp/slices"
	"golang.org/x/text/unicode/bidi"

	"github.com/go-text/typesetting/language"
)

// protoRun is a level/script/token/emoji-bounded slice of the paragraph
// before face resolution has split it further (spec.md §4.1: face
// resolution is described as a pass over already-split runs, mirroring
// gioui.org/text/gotext.go's shapeText pipeline, which likewise resolves
// bidi+script splits before calling splitByFaces).
type protoRun struct {
	text    runeRange
	level   Level
	script  language.Script
	sel     FontSelector
	dpem    float32
	special RunSpecial
	isEmoji bool
}

// segmentText runs the single conceptual left-to-right pass described in
// spec.md §4.1, producing the ordered LevelRuns for a whole paragraph.
// Grounded on gioui.org/text/gotext.go's shapeText/splitBidi/splitByScript/
// splitByFaces pipeline, restructured from gio's GUI-oriented []shaping.Input
// slices into the spec's single LevelRun type, and extended with the
// font-token and emoji-cluster boundaries gio's pipeline has no notion of.
//
// tokens must already be rune-indexed (see runeIndexedFontTokens); the
// public []FontToken the caller originally supplied is byte-indexed, and
// TextDisplay converts before calling in here.
func segmentText(text []rune, direction Direction, tokens []FontToken, lib FontLibrary) ([]LevelRun, error) {
	if len(tokens) == 0 {
		tokens = []FontToken{{Start: 0, Dpem: 16, Font: FontSelector{}}}
	}

	levels := resolveLevels(text, direction)
	breaks := scanBreaks(text)

	protos := buildProtoRuns(text, levels, tokens, breaks)

	runs, err := resolveFaces(text, protos, lib)
	if err != nil {
		return nil, err
	}
	attachSoftBreaks(runs, breaks)
	return runs, nil
}

// resolveLevels computes one bidi embedding level per rune of text. The
// bidi package used here (golang.org/x/text/unicode/bidi, the same one
// gotext.go's splitBidi drives) only exposes a binary LTR/RTL direction
// per resolved run rather than the full 0..125 embedding level TR9
// defines; this segmenter therefore represents levels as 0 (LTR) / 1
// (RTL), which is sufficient for the run-splitting and L2 reordering this
// module implements and matches what the teacher's own bidi integration
// exposes. See DESIGN.md.
func resolveLevels(text []rune, direction Direction) []Level {
	levels := make([]Level, len(text))
	if len(text) == 0 {
		return levels
	}
	resolved := direction.resolve(text)

	var p bidi.Paragraph
	def := bidi.LeftToRight
	if resolved == Rtl {
		def = bidi.RightToLeft
	}
	p.SetString(string(text), bidi.DefaultDirection(def))
	order, err := p.Order()
	if err != nil {
		fill := Level(0)
		if resolved == Rtl {
			fill = 1
		}
		for i := range levels {
			levels[i] = fill
		}
		return levels
	}

	pos := 0
	for i := 0; i < order.NumRuns(); i++ {
		run := order.Run(i)
		_, endRune := run.Pos()
		lvl := Level(0)
		if run.Direction() == bidi.RightToLeft {
			lvl = 1
		}
		for pos <= endRune && pos < len(levels) {
			levels[pos] = lvl
			pos++
		}
	}
	for ; pos < len(levels); pos++ {
		levels[pos] = levels[0]
	}
	return levels
}

// emojiBoundaries runs the emoji state machine once across the whole
// paragraph and reports, for each rune index i>0, whether an emoji-cluster
// boundary is required immediately before it: a boundary is marked where
// membership in an emoji sequence changes between text[i-1] and text[i].
// Two emoji sequences that directly follow each other are not separated.
// Because emojiMachine.step already re-evaluates a rune against a reset
// state when it doesn't continue the in-progress sequence, a single forward
// pass here is equivalent to restarting the machine at every proto-run
// boundary, with no extra bookkeeping needed from the caller.
func emojiBoundaries(text []rune) []bool {
	n := len(text)
	boundary := make([]bool, n)
	if n == 0 {
		return boundary
	}
	var m emojiMachine
	prev := m.step(text[0])
	for i := 1; i < n; i++ {
		cur := m.step(text[i])
		boundary[i] = cur != prev
		prev = cur
	}
	return boundary
}

// buildProtoRuns performs the bidi-level/script/font-token/emoji/control-
// character/hard-break/HTab boundary decisions of spec.md §4.1's closing
// rule (i)-(vii), deferring only face resolution to a later pass.
func buildProtoRuns(text []rune, levels []Level, tokens []FontToken, breaks []textBreak) []protoRun {
	var out []protoRun
	n := len(text)
	if n == 0 {
		return out
	}

	cursor := newFontTokenCursor(tokens)
	emojiBoundary := emojiBoundaries(text)
	// A rough heuristic for the typical run count avoids repeated
	// reallocation of out as it's built below, mirroring gio's own
	// scratch-buffer growth (gotext.go's slices.Grow(s.outScratchBuf,...)).
	out = slices.Grow(out, len(breaks)+1)

	breakIdx := 0
	mandatoryAfter := func(pos int) bool {
		for breakIdx < len(breaks) && breaks[breakIdx].at < pos {
			breakIdx++
		}
		return breakIdx < len(breaks) && breaks[breakIdx].at == pos && breaks[breakIdx].kind == breakMandatory
	}

	start := 0
	curLevel := levels[0]
	curScript := language.LookupScript(text[0])
	cursor.advanceTo(0)
	curTok := cursor.current()
	var runIsEmoji bool
	{
		var m emojiMachine
		runIsEmoji = m.step(text[0])
	}

	closeRun := func(end int, special RunSpecial) {
		out = append(out, protoRun{
			text:    runeRange{Start: start, End: end},
			level:   curLevel,
			script:  curScript,
			sel:     curTok.Font,
			dpem:    curTok.Dpem,
			special: special,
			isEmoji: runIsEmoji,
		})
		start = end
	}

	resetRunState := func(i int) {
		curLevel = levels[i]
		curScript = language.LookupScript(text[i])
		cursor.advanceTo(i)
		curTok = cursor.current()
		var m emojiMachine
		runIsEmoji = m.step(text[i])
	}

	for i := 1; i <= n; i++ {
		if i == n {
			if start < n {
				special := RunSpecial(SpecialNone)
				switch {
				case text[n-1] == '\t':
					special = SpecialHTab
				case mandatoryAfter(n):
					special = SpecialHardBreak
				}
				closeRun(n, special)
			}
			break
		}

		prev := text[i-1]
		if prev == '\t' {
			// Rule (vii): HT runs are always exactly one character.
			closeRun(i, SpecialHTab)
			resetRunState(i)
			continue
		}
		if mandatoryAfter(i) {
			closeRun(i, SpecialHardBreak)
			resetRunState(i)
			continue
		}

		r := text[i]
		levelChanged := levels[i] != curLevel
		mergedScript, scriptOk := mergeScript(curScript, language.LookupScript(r))
		tokenBoundary := uint32(i) >= cursor.nextBoundary()
		controlBoundary := unicode.IsControl(r) != unicode.IsControl(prev)
		isHTab := r == '\t'

		if levelChanged || !scriptOk || tokenBoundary || emojiBoundary[i] || controlBoundary || isHTab {
			closeRun(i, SpecialNone)
			resetRunState(i)
			continue
		}
		curScript = mergedScript
	}

	// "After a trailing hard break an empty terminal run is emitted so
	// that an empty last line is representable" (§4.1).
	if k := len(out); k > 0 && out[k-1].special == SpecialHardBreak && out[k-1].text.End == n {
		last := out[k-1]
		out = append(out, protoRun{
			text:   runeRange{Start: n, End: n},
			level:  last.level,
			script: last.script,
			sel:    last.sel,
			dpem:   last.dpem,
		})
	}

	return out
}

// resolveFaces runs the §4.1 "Face resolution and character-level
// fallback" pass: each proto run is resolved against the font library and
// may be split further into sub-runs each with a single FaceId.
func resolveFaces(text []rune, protos []protoRun, lib FontLibrary) ([]LevelRun, error) {
	var runs []LevelRun
	for _, p := range protos {
		if p.text.Len() == 0 {
			runs = append(runs, LevelRun{
				TextRange: p.text,
				Level:     p.level,
				Script:    p.script,
				Special:   p.special,
				Dpem:      p.dpem,
			})
			continue
		}

		var fontId FontId
		var err error
		if p.isEmoji {
			fontId, err = lib.EmojiFont()
		} else {
			fontId, err = lib.ResolveFont(p.sel)
		}
		if err != nil {
			return nil, err
		}
		faces := lib.Faces(fontId)
		if len(faces) == 0 {
			return nil, NoFontMatch{Selector: p.sel}
		}

		if p.special == SpecialHTab {
			runs = append(runs, LevelRun{
				TextRange: p.text,
				Level:     p.level,
				Script:    p.script,
				FaceId:    faces[0],
				Dpem:      p.dpem,
				Special:   p.special,
				fontId:    fontId,
			})
			continue
		}

		subStart := p.text.Start
		faceId := preferredFace(text, p.text, faces, lib)
		for i := p.text.Start + 1; i < p.text.End; i++ {
			r := text[i]
			if isDefaultIgnorable(r) {
				continue
			}
			if _, ok := lib.GlyphForChar(faceId, r); ok {
				continue
			}
			// Current face lacks r; see if another face in the list covers it.
			alt, found := firstFaceFor(faces, lib, r)
			if !found || alt == faceId {
				continue
			}
			runs = append(runs, LevelRun{
				TextRange: runeRange{Start: subStart, End: i},
				Level:     p.level,
				Script:    p.script,
				FaceId:    faceId,
				Dpem:      p.dpem,
				Special:   SpecialNone,
				fontId:    fontId,
			})
			subStart = i
			faceId = alt
		}
		special := p.special
		runs = append(runs, LevelRun{
			TextRange: runeRange{Start: subStart, End: p.text.End},
			Level:     p.level,
			Script:    p.script,
			FaceId:    faceId,
			Dpem:      p.dpem,
			Special:   special,
			fontId:    fontId,
		})
	}
	return runs, nil
}

// preferredFace picks the face to start a run with: the first face in
// faces that covers the run's first non-ignorable character, falling back
// to faces[0] if none does (the .notdef glyph then renders, per §4.1
// "Errors").
func preferredFace(text []rune, rng runeRange, faces []FaceId, lib FontLibrary) FaceId {
	for i := rng.Start; i < rng.End; i++ {
		r := text[i]
		if isDefaultIgnorable(r) {
			continue
		}
		if id, ok := firstFaceFor(faces, lib, r); ok {
			return id
		}
		break
	}
	return faces[0]
}

func firstFaceFor(faces []FaceId, lib FontLibrary, r rune) (FaceId, bool) {
	for _, id := range faces {
		if _, ok := lib.GlyphForChar(id, r); ok {
			return id, true
		}
	}
	return 0, false
}

// attachSoftBreaks fills each run's Breaks with the soft break offsets
// that fall strictly inside it (spec.md §3 "breaks lists soft break
// offsets within the run").
func attachSoftBreaks(runs []LevelRun, breaks []textBreak) {
	bi := 0
	for ri := range runs {
		r := &runs[ri]
		for bi < len(breaks) && breaks[bi].at <= r.TextRange.Start {
			bi++
		}
		j := bi
		for j < len(breaks) && breaks[j].at < r.TextRange.End {
			if breaks[j].kind == breakSoft {
				r.Breaks = append(r.Breaks, breaks[j].at)
			}
			j++
		}
	}
}
