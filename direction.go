// SPDX-License-Identifier: Unlicense OR MIT

package kastext

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
)

// Direction is the base direction requested for a body of text (§6).
type Direction uint8

const (
	// Ltr forces left-to-right.
	Ltr Direction = iota
	// Rtl forces right-to-left.
	Rtl
	// Auto resolves from the first strong character, defaulting to Ltr.
	Auto
	// AutoRtl resolves from the first strong character, defaulting to Rtl.
	AutoRtl
)

func (d Direction) String() string {
	switch d {
	case Ltr:
		return "Ltr"
	case Rtl:
		return "Rtl"
	case Auto:
		return "Auto"
	case AutoRtl:
		return "AutoRtl"
	default:
		return "Direction(?)"
	}
}

// resolve turns Auto/AutoRtl into a concrete Ltr/Rtl base direction for the
// paragraph, by scanning for the first strong character. Grounded on
// gioui.org/text/gotext.go's use of golang.org/x/text/unicode/bidi to derive
// paragraph direction, generalised to implement spec.md §6's Auto/AutoRtl
// default rule (bidi.Paragraph itself has no notion of "default to RTL").
func (d Direction) resolve(text []rune) Direction {
	switch d {
	case Ltr, Rtl:
		return d
	case Auto, AutoRtl:
		for _, r := range text {
			switch firstStrongLevel(r) {
			case strongLTR:
				return Ltr
			case strongRTL:
				return Rtl
			}
		}
		if d == AutoRtl {
			return Rtl
		}
		return Ltr
	default:
		return Ltr
	}
}

type strongDirection int

const (
	strongNone strongDirection = iota
	strongLTR
	strongRTL
)

// firstStrongLevel classifies a rune as strong-LTR, strong-RTL, or neither,
// using the script property as a coarse proxy for the bidi character type:
// scripts that are inherently right-to-left (Arabic, Hebrew, and friends)
// count as strong-RTL, any other "real" (non-Common/Inherited/Unknown)
// script that contains a letter counts as strong-LTR. This mirrors
// unicode-bidi's P2/P3 rule closely enough for picking a paragraph
// direction, without requiring a full bidi class table import beyond what
// golang.org/x/text/unicode/bidi already gives us for level resolution.
func firstStrongLevel(r rune) strongDirection {
	s := language.LookupScript(r)
	if !s.Strong() {
		return strongNone
	}
	if isRTLScript(s) {
		return strongRTL
	}
	return strongLTR
}

// isRTLScript reports whether script s is conventionally written
// right-to-left.
func isRTLScript(s language.Script) bool {
	switch s {
	case mustScript("Arab"), mustScript("Hebr"), mustScript("Syrc"),
		mustScript("Thaa"), mustScript("Nkoo"), mustScript("Samr"),
		mustScript("Mand"), mustScript("Adlm"), mustScript("Rohg"),
		mustScript("Yezi"):
		return true
	default:
		return false
	}
}

func mustScript(tag string) language.Script {
	s, err := language.ParseScript(tag)
	if err != nil {
		panic(err)
	}
	return s
}

// toDi maps a resolved (Ltr/Rtl) Direction to the typesetting library's
// direction type, used as input to shaping.Input.
func (d Direction) toDi() di.Direction {
	if d == Rtl {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}
