package similarity

import (
	"strings"

	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/normalize"
)

// boundaryContains reports whether inner is a proper substring of outer
// sitting at the start or the end of it, with the adjacent character being
// a space or a hyphen. "city of manhattan" contains "manhattan" as a unit;
// "manhattanville" does not.
func boundaryContains(outer, inner string) bool {
	if inner == "" || outer == inner {
		return false
	}
	idx := strings.Index(outer, inner)
	if idx < 0 {
		return false
	}
	if idx == 0 {
		next := outer[len(inner)]
		return next == ' ' || next == '-'
	}
	if idx+len(inner) == len(outer) {
		prev := outer[idx-1]
		return prev == ' ' || prev == '-'
	}
	return false
}

// ContainsAsUnit checks word-bounded containment in both directions.
// Sentinel values never match.
func ContainsAsUnit(a, b string) bool {
	if a == "" || b == "" || a == "-999" || b == "-999" {
		return false
	}
	return boundaryContains(a, b) || boundaryContains(b, a)
}

// ContainsAnyPart decomposes both inputs on slash and backslash and checks
// word-bounded containment across all part pairs. This recognizes the
// border convention "kansas/colorado" against "kansas".
func ContainsAnyPart(a, b string) bool {
	for _, pa := range normalize.SplitParts(a) {
		for _, pb := range normalize.SplitParts(b) {
			if ContainsAsUnit(pa, pb) {
				return true
			}
		}
	}
	return false
}
