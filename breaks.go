// SPDX-License-Identifier: Unlicense OR MIT

package kastext

import "github.com/go-text/typesetting/segmenter"

// breakKind classifies a UAX#14 line-break opportunity.
type breakKind uint8

const (
	breakSoft breakKind = iota
	breakMandatory
)

// textBreak is a single line-break opportunity, at the rune index
// immediately after the break (i.e. a break "after" breakAt-1, "before"
// breakAt), mirroring the breaker.breakAtRune convention the wrapping
// library itself uses.
type textBreak struct {
	at   int
	kind breakKind
}

// scanBreaks walks the whole paragraph once with a UAX#14 line segmenter
// and returns every break opportunity in rune order, terminated by a
// synthetic mandatory break at len(text) so callers never need a separate
// end-of-text special case.
//
// Grounded on esimov-caire's vendored shaping/wrapping.go breaker type,
// which drives github.com/go-text/typesetting/segmenter.Segmenter's
// LineIterator the same way; this is the whole-paragraph up-front version
// the segmenter (§4.1 "Break points") needs, instead of the wrapper's
// lazy one-at-a-time breaker (the wrapper has its own consumption-order
// needs, built later in wrapper.go on top of this list).
func scanBreaks(text []rune) []textBreak {
	var seg segmenter.Segmenter
	seg.Init(text)
	it := seg.LineIterator()

	var breaks []textBreak
	for it.Next() {
		line := it.Line()
		at := line.Offset + len(line.Text)
		kind := breakSoft
		if line.IsMandatoryBreak {
			kind = breakMandatory
		}
		breaks = append(breaks, textBreak{at: at, kind: kind})
	}
	if len(breaks) == 0 || breaks[len(breaks)-1].at != len(text) {
		breaks = append(breaks, textBreak{at: len(text), kind: breakMandatory})
	}
	return breaks
}
