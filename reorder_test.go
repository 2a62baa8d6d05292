// SPDX-License-Identifier: Unlicense OR MIT

package kastext

import (
	"reflect"
	"testing"
)

func TestReorderLineAllLTR(t *testing.T) {
	order := reorderLine([]Level{0, 0, 0})
	if !reflect.DeepEqual(order, []int{0, 1, 2}) {
		t.Fatalf("got %v, want identity order", order)
	}
}

func TestReorderLineAllRTL(t *testing.T) {
	// A wholly-RTL line has line_level == max_level, so no reversal pass
	// runs and the stored logical order already is the visual order.
	order := reorderLine([]Level{1, 1, 1})
	if !reflect.DeepEqual(order, []int{0, 1, 2}) {
		t.Fatalf("got %v, want identity order", order)
	}
}

func TestReorderLineEmbeddedRTLRun(t *testing.T) {
	// LTR line with one embedded RTL run in the middle: the RTL run
	// reverses in place.
	order := reorderLine([]Level{0, 1, 1, 1, 0})
	want := []int{0, 3, 2, 1, 4}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("got %v, want %v", order, want)
	}
}

func TestReorderLineEmpty(t *testing.T) {
	order := reorderLine(nil)
	if len(order) != 0 {
		t.Fatalf("got %v, want empty", order)
	}
}
