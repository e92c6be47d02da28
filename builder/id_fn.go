package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a 0-based index to a location identifier.
type IDFn func(idx int) string

// SymbolIDFn returns "A"…"Z" for idx in [0,25].
// Panics on out-of-range idx.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// NumberedIDFn returns a generator producing prefix+(first+idx),
// e.g. NumberedIDFn("R", 132) yields "R132", "R133", ...
func NumberedIDFn(prefix string, first int) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("NumberedIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(first+idx)
	}
}

// NumberedNameFn is NumberedIDFn for display names,
// e.g. NumberedNameFn("Room ", 132) yields "Room 132", "Room 133", ...
func NumberedNameFn(prefix string, first int) func(int) string {
	return NumberedIDFn(prefix, first)
}
