// SPDX-License-Identifier: Unlicense OR MIT

package kastext

// reorderLine applies the Unicode TR9 L2 step to the logical-order RunParts
// of one line, returning the resulting visual order as a new permutation
// of indices into parts; the input is not modified.
//
// Grounded on gioui.org/text/gotext.go's computeVisualOrder, which performs
// the same "reverse the maximal runs that disagree with the paragraph
// direction" idea at run granularity; this module generalises it to the
// spec's full "reverse contiguous maximal subsequences from max_level down
// to line_level+1" loop (§4.3) operating on RunParts instead of whole
// shaping.Output runs. Because resolveLevels (segmenter.go) only produces
// binary 0/1 levels rather than the full TR9 0..125 range, the loop here
// runs at most once in practice (max_level is never more than 1), but is
// written generally in case Level gains deeper resolution later.
func reorderLine(levels []Level) []int {
	n := len(levels)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if n == 0 {
		return order
	}

	lineLevel, maxLevel := levels[0], levels[0]
	for _, l := range levels {
		if l < lineLevel {
			lineLevel = l
		}
		if l > maxLevel {
			maxLevel = l
		}
	}

	for lvl := maxLevel; lvl > lineLevel; lvl-- {
		i := 0
		for i < n {
			if levels[order[i]] < lvl {
				i++
				continue
			}
			j := i
			for j < n && levels[order[j]] >= lvl {
				j++
			}
			reverseInts(order[i:j])
			i = j
		}
	}
	return order
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
