// SPDX-License-Identifier: Unlicense OR MIT

package kastext

import "golang.org/x/image/math/fixed"

// TextDisplay is the spec's single prepared-text type (§3, §4.6): the
// source text plus configuration, the derived level runs / glyph runs /
// wrapped lines, and a Status tracking how much of that derived state is
// still valid. Callers mutate configuration through its setters (which
// dirty Status per §4.6's trigger table) and drive preparation forward with
// Prepare (or the individual PrepareRuns/ResizeRuns/PrepareWrap/
// PrepareVertical stages) before calling the query methods.
//
// Grounded on gioui.org/text/gotext.go's Shaper, which caches a similar
// pipeline (bidi/script split, shape, wrap) keyed on its Parameters and
// invalidates only the affected stage on a parameter change; this module
// generalises that single comparison into the spec's explicit five-state
// Status machine.
type TextDisplay struct {
	text       string
	runes      []rune
	byteOfRune []uint32 // byteOfRune[i] is the byte offset of runes[i]; len == len(runes)+1

	direction Direction
	tokens    []FontToken // rune-indexed, validated

	wrapWidth   fixed.Int26_6
	widthBound  fixed.Int26_6
	hAlign      Align
	vAlign      Align
	heightBound fixed.Int26_6
	maxLines    int

	status Status

	levelRuns []LevelRun
	glyphRuns []GlyphRun
	wrap      WrapResult

	tops, bottoms, ascents, descents []float32
	height                           float32
}

// NewTextDisplay returns a TextDisplay for text with a single default font
// token covering the whole paragraph (16 dpem, the zero FontSelector); use
// SetFontTokens to override. The returned display is at status New.
func NewTextDisplay(text string) *TextDisplay {
	d := &TextDisplay{direction: Auto, hAlign: Default, vAlign: Default}
	d.setText(text)
	return d
}

func (d *TextDisplay) setText(text string) {
	d.text = text
	d.runes = []rune(text)
	d.byteOfRune = make([]uint32, len(d.runes)+1)
	bi := 0
	for i, r := range d.runes {
		d.byteOfRune[i] = uint32(bi)
		bi += runeLen(r)
	}
	d.byteOfRune[len(d.runes)] = uint32(len(text))
}

func runeLen(r rune) int {
	switch {
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 4
	}
}

// dirty lowers Status to at most trigger, per §4.6: "setting a config field
// moves the state to the smallest state that still invalidates that
// field's dependent outputs."
func (d *TextDisplay) dirty(trigger Status) {
	if d.status > trigger {
		d.status = trigger
	}
}

// SetText replaces the paragraph's text, invalidating everything (§4.6).
func (d *TextDisplay) SetText(text string) {
	d.setText(text)
	d.dirty(New)
}

// SetDirection sets the base direction, invalidating everything (§4.6).
func (d *TextDisplay) SetDirection(dir Direction) {
	d.direction = dir
	d.dirty(New)
}

// SetFontTokens replaces the font-token stream (byte-indexed, per
// FontToken's documented contract), invalidating everything (§4.6). An
// empty slice is replaced with a single default token covering the whole
// text.
func (d *TextDisplay) SetFontTokens(tokens []FontToken) {
	d.tokens = runeIndexedFontTokens(d.text, tokens)
	d.dirty(New)
}

// SetWrapWidth sets the width (device pixels) at which lines wrap; zero
// disables wrapping entirely. Invalidates from LevelRuns (§4.6): level runs
// stay valid, lines must be rewrapped.
func (d *TextDisplay) SetWrapWidth(w float32) {
	d.wrapWidth = floatToFixed(w)
	d.dirty(LevelRuns)
}

// SetWidthBound sets the width used for alignment and justification (may
// differ from wrap width, e.g. when wrapping is disabled but alignment
// should still use a fixed box). Invalidates from LevelRuns.
func (d *TextDisplay) SetWidthBound(w float32) {
	d.widthBound = floatToFixed(w)
	d.dirty(LevelRuns)
}

// SetHorizontalAlign sets the line alignment/justification mode.
// Invalidates from LevelRuns.
func (d *TextDisplay) SetHorizontalAlign(a Align) {
	d.hAlign = a
	d.dirty(LevelRuns)
}

// SetMaxLines caps the number of lines produced by wrapping (0 means
// unlimited). Invalidates from LevelRuns.
func (d *TextDisplay) SetMaxLines(n int) {
	d.maxLines = n
	d.dirty(LevelRuns)
}

// SetVerticalAlign sets the vertical alignment within HeightBound.
// Invalidates from Wrapped (§4.6): lines stay valid, only vertical
// placement is redone.
func (d *TextDisplay) SetVerticalAlign(a Align) {
	d.vAlign = a
	d.dirty(Wrapped)
}

// SetHeightBound sets the height used for vertical alignment. Invalidates
// from Wrapped.
func (d *TextDisplay) SetHeightBound(h float32) {
	d.heightBound = floatToFixed(h)
	d.dirty(Wrapped)
}

// SetDpem rescales every font token's size without otherwise touching the
// token structure (§4.6's supplemented "dpem change only" path — a
// SPEC_FULL.md addition letting a caller re-prepare after a DPI change
// without re-running face resolution from scratch). Invalidates from
// ResizeLevelRuns.
func (d *TextDisplay) SetDpem(scale float32) {
	for i := range d.tokens {
		d.tokens[i].Dpem *= scale
	}
	d.dirty(ResizeLevelRuns)
}

// Status reports how much of the preparation pipeline is currently valid.
func (d *TextDisplay) Status() Status { return d.status }

// PrepareRuns runs §4.1 segmentation (bidi/script/font-token/emoji split
// plus face resolution) from scratch, producing level runs. Required
// whenever Status is New.
func (d *TextDisplay) PrepareRuns(lib FontLibrary) error {
	if len(d.tokens) == 0 {
		d.tokens = []FontToken{{Start: 0, Dpem: 16}}
	}
	runs, err := segmentText(d.runes, d.direction, d.tokens, lib)
	if err != nil {
		return err
	}
	d.levelRuns = runs
	d.glyphRuns = nil
	d.wrap = WrapResult{}
	d.status = ResizeLevelRuns
	return nil
}

// ResizeRuns re-derives each level run's per-run Dpem from the current
// token stream without re-running bidi/script/face resolution (§4.6's
// dpem-only fast path). Required when Status is ResizeLevelRuns.
//
// Grounded on the spec's status-machine distinction between New and
// ResizeLevelRuns (§4.6); the teacher has no equivalent split since gio
// always re-measures wholesale on any parameter change.
func (d *TextDisplay) ResizeRuns(lib FontLibrary) error {
	cursor := newFontTokenCursor(d.tokens)
	for i := range d.levelRuns {
		run := &d.levelRuns[i]
		cursor.advanceTo(uint32(run.TextRange.Start))
		run.Dpem = cursor.current().Dpem
	}
	d.glyphRuns = nil
	d.wrap = WrapResult{}
	d.status = LevelRuns
	return nil
}

// PrepareWrap shapes every level run (skipping HTab runs, whose shaper is
// never invoked per §4.2) then wraps and horizontally aligns the resulting
// glyph runs into lines (§4.3). Required when Status is LevelRuns.
func (d *TextDisplay) PrepareWrap(shaper Shaper, lib FontLibrary) error {
	d.glyphRuns = make([]GlyphRun, len(d.levelRuns))
	for i, run := range d.levelRuns {
		if run.Special == SpecialHTab || run.TextRange.Len() == 0 {
			d.glyphRuns[i] = GlyphRun{Run: run}
			continue
		}
		face := lib.Face(run.FaceId)
		gr, err := shaper.Shape(d.runes, run, face)
		if err != nil {
			return err
		}
		d.glyphRuns[i] = gr
	}

	d.wrap = wrapLines(d.runes, d.glyphRuns, lib, d.wrapWidth, d.maxLines)
	if d.widthBound > d.wrap.WidthBound {
		d.wrap.WidthBound = d.widthBound
	}
	alignLines(d.glyphRuns, &d.wrap, d.hAlign)

	d.status = Wrapped
	return nil
}

// PrepareVertical computes each line's vertical extent and applies vertical
// alignment (§4.4). Required when Status is Wrapped.
func (d *TextDisplay) PrepareVertical(lib FontLibrary) {
	tops, bottoms, ascents, descents, height := computeVertical(d.glyphRuns, d.wrap.Lines, d.wrap.Parts, lib)
	applyVerticalAlign(tops, bottoms, height, d.vAlign, fixedToFloat(d.heightBound))
	d.tops, d.bottoms, d.ascents, d.descents, d.height = tops, bottoms, ascents, descents, height
	for i := range d.wrap.Lines {
		d.wrap.Lines[i].Top = tops[i]
		d.wrap.Lines[i].Bottom = bottoms[i]
	}
	d.status = Ready
}

// Prepare drives the TextDisplay forward from its current Status to Ready,
// running only the stages that are actually invalid.
func (d *TextDisplay) Prepare(lib FontLibrary, shaper Shaper) error {
	if d.status == New {
		if err := d.PrepareRuns(lib); err != nil {
			return err
		}
	}
	if d.status == ResizeLevelRuns {
		if err := d.ResizeRuns(lib); err != nil {
			return err
		}
	}
	if d.status == LevelRuns {
		if err := d.PrepareWrap(shaper, lib); err != nil {
			return err
		}
	}
	if d.status == Wrapped {
		d.PrepareVertical(lib)
	}
	return nil
}

// Height returns the total content height once Status is Ready (the height
// is computed by PrepareVertical).
func (d *TextDisplay) Height() (float32, error) {
	if !d.status.atLeast(Ready) {
		return 0, ErrNotReady{Need: Ready, Have: d.status}
	}
	return d.height, nil
}

// Lines returns the wrapped lines once Status is at least Wrapped.
func (d *TextDisplay) Lines() ([]Line, error) {
	if !d.status.atLeast(Wrapped) {
		return nil, ErrNotReady{Need: Wrapped, Have: d.status}
	}
	return d.wrap.Lines, nil
}

func (d *TextDisplay) byteToRune(b uint32) int {
	lo, hi := 0, len(d.byteOfRune)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if d.byteOfRune[mid] <= b {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

func (d *TextDisplay) runeToByte(i int) uint32 {
	if i < 0 {
		return 0
	}
	if i >= len(d.byteOfRune) {
		return d.byteOfRune[len(d.byteOfRune)-1]
	}
	return d.byteOfRune[i]
}

// FindLine implements §4.5's find_line: the line containing byte offset
// index, and its byte-offset text range. Requires Status at least Wrapped.
func (d *TextDisplay) FindLine(index int) (line int, textStart, textEnd int, ok bool, err error) {
	if !d.status.atLeast(Wrapped) {
		return 0, 0, 0, false, ErrNotReady{Need: Wrapped, Have: d.status}
	}
	i, rng, found := findLine(d.wrap.Lines, d.byteToRune(uint32(index)))
	if !found {
		return 0, 0, 0, false, nil
	}
	return i, int(d.runeToByte(rng.Start)), int(d.runeToByte(rng.End)), true, nil
}

// LineIndexNearest implements §4.5's line_index_nearest for line li at
// device-pixel x, returning a byte offset. Requires Status at least Ready.
func (d *TextDisplay) LineIndexNearest(li int, x float32) (int, error) {
	if !d.status.atLeast(Ready) {
		return 0, ErrNotReady{Need: Ready, Have: d.status}
	}
	if li < 0 || li >= len(d.wrap.Lines) {
		return len(d.text), nil
	}
	ln := d.wrap.Lines[li]
	idx := lineIndexNearest(d.glyphRuns, d.wrap.Parts[ln.RunRange.Start:ln.RunRange.End], x)
	return int(d.runeToByte(idx)), nil
}

// TextIndexNearest implements §4.5's text_index_nearest at device-pixel
// position pos, returning a byte offset. Requires Status at least Ready.
func (d *TextDisplay) TextIndexNearest(pos Vec2) (int, error) {
	if !d.status.atLeast(Ready) {
		return 0, ErrNotReady{Need: Ready, Have: d.status}
	}
	idx := textIndexNearest(d.glyphRuns, d.wrap.Lines, d.wrap.Parts, d.tops, pos)
	return int(d.runeToByte(idx)), nil
}

// TextGlyphPos implements §4.5's text_glyph_pos for byte offset index,
// returning up to two MarkerPos (a line-wrap or bidi-boundary ambiguity
// can produce two valid caret positions for one index). Requires Status at
// least Ready.
func (d *TextDisplay) TextGlyphPos(index int) ([]MarkerPos, error) {
	if !d.status.atLeast(Ready) {
		return nil, ErrNotReady{Need: Ready, Have: d.status}
	}
	ri := d.byteToRune(uint32(index))
	return textGlyphPos(d.glyphRuns, d.wrap.Lines, d.wrap.Parts, d.bottoms, d.ascents, d.descents, ri), nil
}

// HighlightRange implements §4.5's highlight_range over byte range
// [start, end). Lines wholly inside the range span [leftBound, rightBound];
// on partially selected lines each rectangle spans a whole RunPart and is
// not clamped to those bounds. Requires Status at least Ready.
func (d *TextDisplay) HighlightRange(start, end int, leftBound, rightBound float32) ([]HighlightRect, error) {
	if !d.status.atLeast(Ready) {
		return nil, ErrNotReady{Need: Ready, Have: d.status}
	}
	rs := d.byteToRune(uint32(start))
	re := d.byteToRune(uint32(end))
	return highlightRange(d.glyphRuns, d.wrap.Lines, d.wrap.Parts, d.tops, d.bottoms, leftBound, rightBound, rs, re), nil
}
