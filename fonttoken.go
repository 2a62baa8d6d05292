// SPDX-License-Identifier: Unlicense OR MIT

package kastext

// FontToken marks the start of a run of text using a particular font and
// size, continuing until the next FontToken or the end of text (spec.md
// §3). Callers supply a sorted, deduplicated-by-Start slice of these
// alongside the raw text; the core never interprets markup itself (font
// selection/markdown parsing is explicitly out of scope, spec.md §1).
type FontToken struct {
	// Start is the byte offset, into the prepared text, where this token's
	// font and size take effect.
	Start uint32
	// Dpem is the font size in device pixels per em.
	Dpem float32
	// Font is the selector to resolve against the FontLibrary.
	Font FontSelector
}

// fontTokenCursor walks a sorted []FontToken alongside an increasing byte
// offset, similar in spirit to gioui.org/text/gotext.go's styledParagraph
// cursor that tracks the active gtext.Style while iterating runes. Unlike
// gio's single style stack, fontTokenCursor only tracks the single active
// (Dpem, FontSelector) pair the spec's flat token list implies.
type fontTokenCursor struct {
	tokens []FontToken
	pos    int // index of the active token, i.e. tokens[pos] applies right now
}

// newFontTokenCursor returns a cursor over tokens with the first token
// active. tokens must be sorted ascending by Start and tokens[0].Start
// must be 0 (validateFontTokens checks this; the cursor does not).
func newFontTokenCursor(tokens []FontToken) *fontTokenCursor {
	return &fontTokenCursor{tokens: tokens, pos: 0}
}

// advanceTo moves the cursor so that current() reflects the token active at
// offset off, consuming tokens in order. off must be non-decreasing across
// calls (the segmenter only scans forward). The segmenter calls this with
// rune indices (see runeIndexedFontTokens), not the byte offsets Start is
// documented in at the public API boundary.
func (c *fontTokenCursor) advanceTo(off uint32) {
	for c.pos+1 < len(c.tokens) && c.tokens[c.pos+1].Start <= off {
		c.pos++
	}
}

// current returns the token active at the most recent advanceTo offset.
func (c *fontTokenCursor) current() FontToken {
	if len(c.tokens) == 0 {
		return FontToken{}
	}
	return c.tokens[c.pos]
}

// nextBoundary returns the offset of the next token boundary strictly after
// the current one, or ^uint32(0) if the current token runs to the end of
// text. The segmenter uses this to cap run length so that a level run never
// straddles a font-token change (§4.1).
func (c *fontTokenCursor) nextBoundary() uint32 {
	if c.pos+1 < len(c.tokens) {
		return c.tokens[c.pos+1].Start
	}
	return ^uint32(0)
}

// restart resets the cursor to the beginning.
func (c *fontTokenCursor) restart() { c.pos = 0 }

// validateFontTokens checks the caller-supplied invariant that tokens is
// sorted ascending by Start, non-empty, and begins at offset 0 (spec.md §3,
// "Edge cases"). An empty slice is rejected. The segmentation path does not
// call this function.
func validateFontTokens(tokens []FontToken) bool {
	if len(tokens) == 0 || tokens[0].Start != 0 {
		return false
	}
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Start <= tokens[i-1].Start {
			return false
		}
	}
	return true
}

// runeIndexedFontTokens converts tokens (whose Start fields are byte
// offsets into text, per the public contract of FontToken) into an
// equivalent slice whose Start fields are rune indices into []rune(text),
// the representation the segmenter works in internally (see DESIGN.md's
// byte-offset-vs-rune-index ledger entry). A byte offset that does not
// land on a rune boundary is rounded up to the index of the next rune.
func runeIndexedFontTokens(text string, tokens []FontToken) []FontToken {
	out := make([]FontToken, len(tokens))
	copy(out, tokens)
	if len(out) == 0 {
		return out
	}
	ti := 0
	runeIdx := 0
	for byteIdx := range text {
		for ti < len(out) && uint32(byteIdx) >= tokens[ti].Start {
			out[ti].Start = uint32(runeIdx)
			ti++
		}
		if ti >= len(out) {
			break
		}
		runeIdx++
	}
	for ; ti < len(out); ti++ {
		out[ti].Start = uint32(runeIdx)
	}
	return out
}
