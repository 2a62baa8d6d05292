// SPDX-License-Identifier: Unlicense OR MIT

// Package font provides the font *selector* vocabulary used to query an
// external font library (§3, §4.1 of the type-setting spec). It
// deliberately does not parse or load font files: that remains the job of
// the font library collaborator (e.g. github.com/go-text/typesetting/fontscan),
// which resolves a Selector plus a rune to an opaque face.
//
// Grounded on gioui.org/font (font.go): kept the Typeface/Variant/Style/Weight
// vocabulary, dropped the Face/FontFace types since loading and holding font
// data is explicitly out of scope for this module (spec.md §1).
package font

// Style is the font style.
type Style int

const (
	Regular Style = iota
	Italic
)

func (s Style) String() string {
	switch s {
	case Regular:
		return "Regular"
	case Italic:
		return "Italic"
	default:
		return "Style(?)"
	}
}

// Weight is a font weight, in CSS units subtracted 400 so the zero value is
// normal text weight.
type Weight int

const (
	Thin       Weight = -300
	ExtraLight Weight = -200
	Light      Weight = -100
	Normal     Weight = 0
	Medium     Weight = 100
	SemiBold   Weight = 200
	Bold       Weight = 300
	ExtraBold  Weight = 400
	Black      Weight = 500
)

func (w Weight) String() string {
	switch w {
	case Thin:
		return "Thin"
	case ExtraLight:
		return "ExtraLight"
	case Light:
		return "Light"
	case Normal:
		return "Normal"
	case Medium:
		return "Medium"
	case SemiBold:
		return "SemiBold"
	case Bold:
		return "Bold"
	case ExtraBold:
		return "ExtraBold"
	case Black:
		return "Black"
	default:
		return "Weight(?)"
	}
}

// Typeface identifies a particular typeface design. The empty string
// denotes the default typeface.
type Typeface string

// Variant denotes a typeface variant such as "Mono" or "Smallcaps".
type Variant string

// Selector is the caller-supplied description of a font used by a
// FontToken (spec.md §3). It is opaque to the core beyond equality and
// string rendering: resolving it to actual faces is the font library's job.
type Selector struct {
	Typeface Typeface
	Variant  Variant
	Style    Style
	Weight   Weight
}

func (s Selector) String() string {
	face := string(s.Typeface)
	if face == "" {
		face = "<default>"
	}
	if s.Variant != "" {
		face += " " + string(s.Variant)
	}
	return face + " " + s.Style.String() + " " + s.Weight.String()
}
