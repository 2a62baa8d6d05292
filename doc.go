// Package kastext implements the text type-setting core of a rich-text
// display library: given a run of Unicode text with optional per-range
// font/size overrides and a rendering environment (wrap width, alignment,
// base direction), it produces a fully positioned sequence of glyphs ready
// for rastering, plus the mappings required to navigate the result (cursor
// positioning, hit-testing, range highlighting).
//
// The core composes five subsystems behind a single incrementally-prepared
// [TextDisplay]: bidirectional reordering, script/emoji segmentation, font
// face resolution with character-level fallback, glyph shaping, and line
// wrapping with bidi re-ordering and justified alignment. Font discovery,
// glyph rastering, and markdown/plain-text parsing are assumed external
// collaborators; see [FontLibrary] and [Shaper] for the seams.
package kastext
