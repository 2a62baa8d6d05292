// SPDX-License-Identifier: Unlicense OR MIT

package kastext

import "github.com/go-text/typesetting/language"

// RunSpecial marks a LevelRun as needing special handling by the wrapper
// and shaper, beyond its ordinary text/level/script/face/dpem identity
// (spec.md §3).
type RunSpecial uint8

const (
	// SpecialNone is an ordinary run.
	SpecialNone RunSpecial = iota
	// SpecialHardBreak marks a run that terminates a paragraph.
	SpecialHardBreak
	// SpecialNoBreak forbids a line break between this run and the next.
	SpecialNoBreak
	// SpecialHTab marks a single-character horizontal tab run; the shaper
	// is not invoked for it (§4.2), and its advance is resolved by the
	// wrapper against the current caret (§4.3).
	SpecialHTab
)

func (s RunSpecial) String() string {
	switch s {
	case SpecialNone:
		return "None"
	case SpecialHardBreak:
		return "HardBreak"
	case SpecialNoBreak:
		return "NoBreak"
	case SpecialHTab:
		return "HTab"
	default:
		return "RunSpecial(?)"
	}
}

// runeRange is a half-open [Start, End) range of rune indices into the
// paragraph's rune buffer. Internal types use rune indices, not byte
// offsets, to match go-text/typesetting's native representation; the
// byte-offset conversion table lives on TextDisplay and is applied only at
// the public-API boundary (see DESIGN.md's Open Question ledger entry).
type runeRange struct {
	Start, End int
}

func (r runeRange) Len() int { return r.End - r.Start }

// LevelRun is a maximal run of code points sharing one bidi level, one
// resolved script, one resolved face, and one font size, containing no
// hard line break (spec.md §3).
//
// Grounded on gioui.org/text/gotext.go's internal run representation
// (there called "split" results threaded through splitByScript /
// splitBidi / splitByFaces), unified here into one struct per spec.md's
// single LevelRun type instead of gio's three separate pass outputs.
type LevelRun struct {
	TextRange runeRange
	Level     Level
	Script    language.Script
	FaceId    FaceId
	Dpem      float32

	// Breaks lists soft-break offsets (rune indices, relative to the
	// whole paragraph) within this run, for the wrapper.
	Breaks []int

	Special RunSpecial

	// fontId is the resolved font (list of fallback faces) this run's
	// FaceId was chosen from. It is recorded here but not read by
	// ResizeRuns or any later stage.
	fontId FontId
}
