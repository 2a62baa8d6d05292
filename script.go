// SPDX-License-Identifier: Unlicense OR MIT

package kastext

import "github.com/go-text/typesetting/language"

// isWeakScript reports whether s never itself forces a level-run boundary
// and instead extends whatever real script is already active (spec.md
// §4.1 "Script resolution"). Common and Inherited behave this way per
// UAX#24; Unknown is included too since an unrecognised code point
// shouldn't split a run on its own either.
func isWeakScript(s language.Script) bool {
	return s == language.Common || s == language.Inherited || s == language.Unknown
}

// mergeScript folds the script of the next code point into the script
// already accumulated for the current level run, reporting whether the
// boundary between them is permitted to stay inside one run.
//
// Grounded on gioui.org/text/gotext.go's splitByScript, which walks a
// []rune once building runs of matching uax24 script, generalised here to
// also report the (possibly upgraded) resulting script so the segmenter's
// single pass can fold script resolution into the same loop as bidi/face
// splitting instead of a separate pass.
func mergeScript(current, next language.Script) (merged language.Script, ok bool) {
	switch {
	case isWeakScript(next):
		// A weak code point never forces a split and never changes the
		// run's resolved script.
		return current, true
	case isWeakScript(current):
		// The run hasn't seen a real script yet; adopt next's.
		return next, true
	case current == next:
		return current, true
	default:
		// Two different real scripts: must split.
		return current, false
	}
}
