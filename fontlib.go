// SPDX-License-Identifier: Unlicense OR MIT

package kastext

import (
	gofont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"

	kasfont "github.com/kas-gui/kas-text-sub000/font"
)

// FontSelector is the caller-supplied description of a desired font
// (spec.md §3). It is opaque to the core beyond what FontLibrary does with
// it.
type FontSelector = kasfont.Selector

// FontLibrary is the external collaborator that resolves font selectors
// and characters to actual font faces (spec.md §1, §5). It is a
// process-wide shared resource: the spec requires its read-only methods to
// be safely callable concurrently and its loaded data to be append-only for
// the process lifetime, so that FaceId/FontId references obtained from it
// remain valid forever.
//
// Grounded on cogentcore-typesetting/fontscan's FontMap.ResolveFace: a real
// FontLibrary implementation (FontscanLibrary, in fontlib_fontscan.go) wraps
// exactly that method.
type FontLibrary interface {
	// Faces returns the ordered list of faces a FontId denotes: the
	// preferred face first, followed by fallback faces to try for
	// characters the preferred face does not cover (§4.1 "character-level
	// fallback").
	Faces(id FontId) []FaceId

	// ResolveFont resolves sel to a FontId, the list of faces preferred
	// for text matching sel. NoFontMatch is returned if no face can be
	// found at all (§7).
	ResolveFont(sel FontSelector) (FontId, error)

	// EmojiFont returns the FontId to use for a complete emoji sequence,
	// resolved and cached internally by the library on first use (§4.1).
	EmojiFont() (FontId, error)

	// Face returns the underlying shaping-library face for id, used by
	// the shaper adapter (§4.2) and to query metrics.
	Face(id FaceId) gofont.Face

	// GlyphForChar reports whether face id has a glyph for r.
	// Default-ignorable characters (§4.1) never force a fallback split;
	// callers determine ignorability themselves and should not call this
	// for such characters when deciding whether to split a run.
	GlyphForChar(id FaceId, r rune) (gid gofont.GID, ok bool)

	// Metrics returns the scaled ascent, descent (negative) and line gap
	// of face id at the given dpem (spec §4.4), plus its space-character
	// advance, used to resolve HTab stops (spec §4.2).
	Metrics(id FaceId, dpem float32) (ascent, descent, lineGap, spaceAdvance float32)
}

// ScriptFaceHint lets a FontLibrary implementation take the text's script
// into account when it otherwise has no better signal, mirroring
// fontscan.FontMap.SetScript.
type ScriptFaceHint interface {
	SetScript(language.Script)
}
