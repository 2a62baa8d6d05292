// SPDX-License-Identifier: Unlicense OR MIT

package kastext

import "testing"

func TestIsDefaultIgnorable(t *testing.T) {
	ignorable := []rune{0x00AD, 0x200B, 0x200F, 0x202C, 0x2060, 0xFE0F, 0xFEFF, 0xE0100}
	for _, r := range ignorable {
		if !isDefaultIgnorable(r) {
			t.Fatalf("U+%04X should be default-ignorable", r)
		}
	}

	notIgnorable := []rune{'a', ' ', '0', 0x1F600}
	for _, r := range notIgnorable {
		if isDefaultIgnorable(r) {
			t.Fatalf("U+%04X should not be default-ignorable", r)
		}
	}
}
