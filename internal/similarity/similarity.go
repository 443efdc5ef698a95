package similarity

import (
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/normalize"
)

// Function represents a similarity function interface
type Function interface {
	// Compare returns a similarity score between 0.0 and 1.0,
	// where 0.0 means completely different and 1.0 means identical
	Compare(a, b string) float64
	// Name returns the name of the similarity function
	Name() string
}

// Calibration thresholds. Register-to-register comparisons use the stricter
// value; comparisons against geocoder output (already filtered once by the
// provider) use the more lenient one.
const (
	StrictThreshold  = 6.0 / 7.0
	LenientThreshold = 5.0 / 6.0
)

// Placeholder values that mean "field absent" rather than an actual name.
var sentinels = map[string]struct{}{
	"":     {},
	"-999": {},
	"/":    {},
	"-":    {},
	"..":   {},
	"_":    {},
}

// Prefixes that flag a name as a stand-in for a missing value.
var unknownPrefixes = [...]string{"unknown", "unnamed", "un-name"}

// IsSentinel reports whether a field value is a placeholder that must never
// match anything: empty, the numeric flag value, bare punctuation, or an
// "unknown"/"unnamed" stand-in.
func IsSentinel(s string) bool {
	s = normalize.Clean(s)
	if _, ok := sentinels[s]; ok {
		return true
	}
	if len(s) >= 7 {
		prefix := s[:7]
		for _, p := range unknownPrefixes {
			if prefix == p {
				return true
			}
		}
	}
	return false
}

// Ratio computes the Ratcliff/Obershelp similarity between two strings:
// twice the number of matching characters over the total length, with
// matching characters found by recursively locating the longest common
// substring and matching the pieces on either side of it.
func Ratio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(matchingChars(ra, rb)) / float64(total)
}

func matchingChars(a, b []rune) int {
	ai, bi, size := longestCommonRun(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchingChars(a[:ai], b[:bi]) +
		matchingChars(a[ai+size:], b[bi+size:])
}

// longestCommonRun finds the first longest common substring of a and b,
// returning its start offsets and length.
func longestCommonRun(a, b []rune) (bestA, bestB, bestSize int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}
	// runLengths[j] = length of the common run ending at a[i-1], b[j-1]
	runLengths := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		prev := 0
		for j := 1; j <= len(b); j++ {
			cur := runLengths[j]
			if a[i-1] == b[j-1] {
				runLengths[j] = prev + 1
				if runLengths[j] > bestSize {
					bestSize = runLengths[j]
					bestA = i - bestSize
					bestB = j - bestSize
				}
			} else {
				runLengths[j] = 0
			}
			prev = cur
		}
	}
	return bestA, bestB, bestSize
}

// Score is the guarded scorer used on register fields: inputs are cleaned,
// sentinel values score zero, and multi-valued fields (slash or backslash
// delimited) score as the best pairwise ratio across their parts.
func Score(a, b string) float64 {
	a = normalize.Clean(a)
	b = normalize.Clean(b)
	if IsSentinel(a) || IsSentinel(b) {
		return 0.0
	}
	if normalize.HasDelimiter(a) || normalize.HasDelimiter(b) {
		best := 0.0
		for _, pa := range normalize.SplitParts(a) {
			for _, pb := range normalize.SplitParts(b) {
				if r := Ratio(pa, pb); r > best {
					best = r
				}
			}
		}
		return best
	}
	return Ratio(a, b)
}

// SequenceMatch is the raw ratio as a Function, for already-cleaned inputs.
type SequenceMatch struct{}

func (f SequenceMatch) Compare(a, b string) float64 {
	return Ratio(a, b)
}

func (f SequenceMatch) Name() string {
	return "SequenceMatch"
}

// FieldMatch is the guarded scorer as a Function.
type FieldMatch struct{}

func (f FieldMatch) Compare(a, b string) float64 {
	return Score(a, b)
}

func (f FieldMatch) Name() string {
	return "FieldMatch"
}
