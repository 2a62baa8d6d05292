// SPDX-License-Identifier: Unlicense OR MIT

package kastext

// emojiState tracks progress through an emoji sequence as defined by
// Unicode Technical Standard #51, one code point at a time, so the
// segmenter (§4.1) can decide whether a boundary between two code points
// falls inside a single emoji cluster.
//
// No file in the retrieved pack implements TR51 sequence matching (the
// fontscan/shaping/segmenter libraries all treat emoji as ordinary code
// points with a presentation property, not as a cluster-forming state
// machine), so this is hand-written directly from the Unicode ranges
// rather than adapted from an example. Kept deliberately small: it only
// needs to answer "does code point r continue the sequence in state s",
// not render or classify emoji for any other purpose.
type emojiState uint8

const (
	emojiNone emojiState = iota
	emojiRegionalFirst
	emojiBase
	emojiBaseZWJ
)

// emojiMachine drives one emoji cluster at a time.
type emojiMachine struct {
	state emojiState
}

// step feeds r into the machine and reports whether r belongs to an emoji
// sequence, either by starting one or by continuing the one in progress.
// It returns false only when r is part of no sequence. When r does not
// continue the sequence in progress, the machine resets and re-evaluates r
// as the possible start of a new one.
//
// Usage: emojiBoundaries calls step for every code point and marks a run
// boundary wherever the result changes from one code point to the next.
func (m *emojiMachine) step(r rune) (continues bool) {
	switch m.state {
	case emojiNone:
		switch {
		case isRegionalIndicator(r):
			m.state = emojiRegionalFirst
			return true
		case isEmojiBase(r):
			m.state = emojiBase
			return true
		default:
			return false
		}
	case emojiRegionalFirst:
		if isRegionalIndicator(r) {
			// Exactly two regional indicators form a flag; the sequence
			// is complete, so the *next* code point always starts fresh.
			m.state = emojiNone
			return true
		}
		m.state = emojiNone
		return m.step(r)
	case emojiBase:
		switch {
		case isEmojiModifier(r), isVariationSelector(r), isTagChar(r):
			return true
		case r == zwj:
			m.state = emojiBaseZWJ
			return true
		default:
			m.state = emojiNone
			return m.step(r)
		}
	case emojiBaseZWJ:
		if isEmojiBase(r) || isEmojiPresentation(r) {
			m.state = emojiBase
			return true
		}
		// Malformed ZWJ sequence: reset, re-evaluate r as a fresh start
		// (spec.md §4.1 "On a malformed sequence the state resets").
		m.state = emojiNone
		return m.step(r)
	default:
		m.state = emojiNone
		return false
	}
}

// active reports whether the machine is mid-sequence (used by the
// segmenter to know whether a "no boundary here" answer is actually
// meaningful, vs. the machine having nothing in progress).
func (m *emojiMachine) active() bool { return m.state != emojiNone }

// reset returns the machine to its initial state.
func (m *emojiMachine) reset() { m.state = emojiNone }

const zwj = 0x200D // ZERO WIDTH JOINER

func isRegionalIndicator(r rune) bool {
	return r >= 0x1F1E6 && r <= 0x1F1FF
}

// isEmojiBase reports whether r can begin or continue (after a ZWJ) an
// emoji sequence: any code point with the Emoji_Presentation property, or
// one of the common Emoji (but not Emoji_Presentation) characters that are
// conventionally rendered as emoji when followed by a presentation
// selector or modifier, approximated here by the same ranges as
// isEmojiPresentation plus the keycap base digits/symbols.
func isEmojiBase(r rune) bool {
	if isEmojiPresentation(r) {
		return true
	}
	switch r {
	case '#', '*', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	}
	return false
}

// isEmojiPresentation covers the bulk of the Unicode Emoji_Presentation
// ranges as of Unicode 15 (symbols & pictographs, transport, supplemental
// symbols, emoticons); not exhaustive over every singleton code point but
// covers every contiguous block large enough to matter for segmentation
// correctness.
func isEmojiPresentation(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1F5FF: // Misc Symbols and Pictographs
		return true
	case r >= 0x1F600 && r <= 0x1F64F: // Emoticons
		return true
	case r >= 0x1F680 && r <= 0x1F6FF: // Transport and Map Symbols
		return true
	case r >= 0x1F900 && r <= 0x1F9FF: // Supplemental Symbols and Pictographs
		return true
	case r >= 0x1FA70 && r <= 0x1FAFF: // Symbols and Pictographs Extended-A
		return true
	case r >= 0x2600 && r <= 0x26FF: // Misc symbols
		return true
	case r >= 0x2700 && r <= 0x27BF: // Dingbats
		return true
	case r == 0x2764 || r == 0x2B50 || r == 0x2B55:
		return true
	default:
		return false
	}
}

func isEmojiModifier(r rune) bool {
	return r >= 0x1F3FB && r <= 0x1F3FF // Fitzpatrick skin tone modifiers
}

func isVariationSelector(r rune) bool {
	return r == 0xFE0E || r == 0xFE0F // text / emoji presentation selectors
}

func isTagChar(r rune) bool {
	return (r >= 0xE0020 && r <= 0xE007F) || r == 0xE0001
}
