// SPDX-License-Identifier: Unlicense OR MIT

package kastext

// isDefaultIgnorable approximates Unicode's Default_Ignorable_Code_Point
// property: characters that should never force a font-fallback split nor
// count as the "first non-ignorable character" used to pick a run's
// preferred face (spec.md §4.1 "Default-ignorable code points never force
// splits"). Covers the ranges that matter in running text (format
// characters, variation selectors, bidi controls); not exhaustive over
// every singleton in the Unicode database, same scope tradeoff as
// emoji.go since no retrieved source implements this property either.
func isDefaultIgnorable(r rune) bool {
	switch {
	case r == 0x00AD: // soft hyphen
		return true
	case r >= 0x200B && r <= 0x200F: // zero width space/ZWNJ/ZWJ/marks
		return true
	case r >= 0x202A && r <= 0x202E: // bidi embedding/override controls
		return true
	case r >= 0x2060 && r <= 0x206F: // word joiner and friends, deprecated format chars
		return true
	case r >= 0xFE00 && r <= 0xFE0F: // variation selectors
		return true
	case r == 0xFEFF: // zero width no-break space / BOM
		return true
	case r >= 0xE0100 && r <= 0xE01EF: // variation selectors supplement
		return true
	default:
		return false
	}
}
