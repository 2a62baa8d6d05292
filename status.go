// SPDX-License-Identifier: Unlicense OR MIT

package kastext

// Status tracks how much of a TextDisplay's preparation pipeline has been
// run, so that partial re-preparation (§4.6) can skip stages unaffected by
// an edit. Values are ordered: a TextDisplay at status s has also completed
// every stage below s.
//
// Grounded on gioui.org/text/gotext.go's Shaper status caching
// (invalidation driven by comparing stored vs requested parameters),
// generalised into the spec's explicit five-state machine.
type Status uint8

const (
	// New means no preparation has happened; the text runs must be
	// rebuilt from scratch (segmentation, bidi, shaping, wrapping).
	New Status = iota
	// ResizeLevelRuns means segmentation (bidi/script/token boundaries) is
	// still valid but dpem changed, so each level run's Dpem must be
	// re-derived (ResizeRuns, which keeps the resolved faces) before
	// shaping and wrapping can proceed.
	ResizeLevelRuns
	// LevelRuns means level runs are fully valid (segmentation and
	// dpem-dependent resolution both current) but a wrapping parameter
	// (wrap_width/width_bound/h_align) changed, so lines must be rewrapped.
	LevelRuns
	// Wrapped means lines have been wrapped but vertical positions have
	// not yet been resolved (or the vertical bound changed).
	Wrapped
	// Ready means the TextDisplay is fully prepared: level runs, line
	// wrapping and vertical positioning are all valid and queryable.
	Ready
)

func (s Status) String() string {
	switch s {
	case New:
		return "New"
	case ResizeLevelRuns:
		return "ResizeLevelRuns"
	case LevelRuns:
		return "LevelRuns"
	case Wrapped:
		return "Wrapped"
	case Ready:
		return "Ready"
	default:
		return "Status(?)"
	}
}

// atLeast reports whether s has completed at least the stage need requires.
func (s Status) atLeast(need Status) bool { return s >= need }
