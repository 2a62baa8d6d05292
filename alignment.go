// SPDX-License-Identifier: Unlicense OR MIT

package kastext

import "golang.org/x/image/math/fixed"

// Align is the alignment enum shared by horizontal and vertical layout
// (§6). Stretch has the justified semantics described in §4.3 for
// horizontal alignment, and behaves like TL for vertical alignment.
type Align uint8

const (
	// Default aligns LTR lines flush-left and RTL lines flush-right
	// (horizontal), or pins content to the top (vertical).
	Default Align = iota
	// TL aligns flush to the top-left, regardless of line direction.
	TL
	// Center centers content within the available bound.
	Center
	// BR aligns flush to the bottom-right.
	BR
	// Stretch justifies horizontal lines that wrapped and fit within
	// width_bound; vertically it behaves like TL.
	Stretch
)

func (a Align) String() string {
	switch a {
	case Default:
		return "Default"
	case TL:
		return "TL"
	case Center:
		return "Center"
	case BR:
		return "BR"
	case Stretch:
		return "Stretch"
	default:
		return "Align(?)"
	}
}

// horizontalOffset computes the x translation to apply to a line of the
// given level (LTR/RTL) and visual length lineLen so that it lands
// correctly within [0, widthBound) under h-align a.
//
// Grounded on gioui.org/text/text.go's align() function, generalised from
// gio's Start/End/Middle (which only knew about a single dominant writing
// direction) to the spec's direction-aware Default/TL/Center/BR.
func (a Align) horizontalOffset(level Level, lineLen, widthBound fixed.Int26_6) fixed.Int26_6 {
	switch a {
	case TL:
		return 0
	case Center:
		return (widthBound - lineLen) / 2
	case BR:
		return widthBound - lineLen
	case Default, Stretch:
		if level.IsRTL() {
			return widthBound - lineLen
		}
		return 0
	default:
		return 0
	}
}

// verticalOffset computes the constant y shift applied to every line once
// the full block height is known, per spec §4.4.
func (a Align) verticalOffset(contentHeight, heightBound fixed.Int26_6) fixed.Int26_6 {
	switch a {
	case Center:
		off := (heightBound - contentHeight) / 2
		if off < 0 {
			return 0
		}
		return off
	case BR:
		off := heightBound - contentHeight
		if off < 0 {
			return 0
		}
		return off
	default: // Default, TL, Stretch
		return 0
	}
}
