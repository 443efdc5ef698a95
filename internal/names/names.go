// Package names decides whether two dam, reservoir, or river names refer
// to the same feature. Scores are three-valued: 1 for a confident match,
// 0.5 for a plausible shared-token match, 0 for no match.
package names

import (
	"strings"

	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/normalize"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/similarity"
)

// ancillary titles stripped from register and geocoder names before
// comparison. Space-padded so only whole words are removed.
var strictTitles = []string{
	" lake ", " dam ", " reservoir ", " barrage ", " lago ", " shuiku ",
	" lac ", " presa ", " embalse ", " barragem ", " agua ", " stuwal ",
	" weir ", " dike ", " dyke ", " levee ", " structure ", " canal ",
	" tank ",
}

var lenientTitles = []string{
	" lake ", " dam ", " reservoir ", " barrage ", " lago ", " shuiku ",
	" lac ", " presa ", " embalse ",
}

var riverTitles = []string{
	" river ", " creek ", " stream ", " rio ", " brook ", " run ",
	" bay ", " branch ", " slough ", " lake ", " pond ", " canyon ",
	" canal ", " dike ", " dyke ", " gulch ", " tributary ", " drain ",
	" draw ", " channel ", " arroyo ", " ditch ", " offstream ",
	" riv. ", " bayou ", " coulee ", " fork ", " riacho ", " ribeirao ",
	" ribeiro ", " ribeira ", " riviere ",
}

// generic tokens that cannot carry a 0.5 match on their own. "norht" is a
// recurring register typo for "north".
var strictStopTokens = map[string]bool{
	"main": true, "tank": true, "dyke": true, "canal": true,
	"canyon": true, "diversion": true, "city": true, "town": true,
	"fall": true, "falls": true, "west": true, "east": true,
	"south": true, "north": true, "norht": true, "storage": true,
	"river": true, "saint": true, "kloof": true, "berg": true,
	"santa": true, "valley": true, "upper": true, "lower": true,
	"creek": true, "lake": true, "reservoir": true, "lock": true,
	"barrage": true, "lago": true, "shuiku": true, "presa": true,
	"embalse": true, "barragem": true, "agua": true, "stuwal": true,
	"weir": true, "dike": true, "levee": true, "mountain": true,
	"hill": true, "auxiliar": true, "auxiliary": true, "riacho": true,
	"ribeirao": true, "ribeiro": true, "ribeira": true, "riviere": true,
}

var lenientStopTokens = map[string]bool{
	"west": true, "east": true, "south": true, "north": true,
	"norht": true, "storage": true,
}

var riverStopTokens = map[string]bool{
	"river": true, "creek": true, "stream": true, "rio": true,
	"brook": true, "run": true, "bay": true, "branch": true,
	"slough": true, "lake": true, "pond": true, "canyon": true,
	"canal": true, "dike": true, "dyke": true, "gulch": true,
	"tributary": true, "drain": true, "draw": true, "channel": true,
	"arroyo": true, "ditch": true, "offstream": true, "bayou": true,
	"coulee": true, "fork": true, "riacho": true, "ribeirao": true,
	"ribeiro": true, "ribeira": true, "riviere": true,
}

// qualifiers that distinguish sibling structures on the same river. A
// qualifier present on one side but not the other disqualifies the pair.
var directionalTokens = map[string]bool{
	"east": true, "west": true, "north": true, "south": true,
	"upper": true, "lower": true, "a": true, "b": true, "c": true,
	"d": true, "auxiliar": true, "auxiliary": true,
}

var romanNumerals = map[string]int{
	"i": 1, "ii": 2, "iii": 3, "iv": 4, "v": 5, "vi": 6, "vii": 7,
	"viii": 8, "ix": 9, "x": 10, "xi": 11, "xii": 12, "xiii": 13,
	"xiv": 14, "xv": 15, "xvi": 16, "xvii": 17, "xviii": 18,
	"xix": 19, "xx": 20,
}

var spelledNumerals = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11,
	"twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20,
}

// profile parameterizes the per-name gate for the three comparison modes.
type profile struct {
	titles      []string
	stopTokens  map[string]bool
	threshold   float64
	splitParens bool
	numeralGate bool
	qualifyGate bool
	binary      bool
	sentinels   []string
	stripSuffix bool
}

var strictProfile = profile{
	titles:      strictTitles,
	stopTokens:  strictStopTokens,
	threshold:   similarity.StrictThreshold,
	splitParens: true,
	numeralGate: true,
	qualifyGate: true,
	stripSuffix: true,
}

var lenientProfile = profile{
	titles:     lenientTitles,
	stopTokens: lenientStopTokens,
	threshold:  similarity.LenientThreshold,
	binary:     true,
	sentinels:  []string{"", "not found"},
}

var riverProfile = profile{
	titles:     riverTitles,
	stopTokens: riverStopTokens,
	threshold:  similarity.StrictThreshold,
	sentinels:  []string{"", "not found", "sem denominação"},
}

// prepare cleans one name for comparison under a profile. The returned
// string is empty when the name carried no usable content.
func prepare(raw, iso string, p profile) string {
	s := normalize.Clean(raw)
	if p.sentinels != nil {
		for _, sent := range p.sentinels {
			if s == sent {
				return ""
			}
		}
	} else if similarity.IsSentinel(s) || s == "not found" {
		return ""
	}
	s = normalize.StripAccents(s)

	// pad so space-delimited titles match at the boundaries
	s = " " + s + " "
	for i := 0; i < 3; i++ {
		for _, title := range p.titles {
			s = strings.ReplaceAll(s, title, " ")
		}
	}
	s = strings.TrimSpace(s)
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	if p.stripSuffix {
		s = normalize.StripReservoirSuffix(s, iso)
	}
	return s
}

func tokenize(s string, splitParens bool) []string {
	seps := " ,.-/"
	if splitParens {
		seps = " ,.-/()"
	}
	return strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(seps, r)
	})
}

// arabicNumbers returns the set of digit runs in s, parsed as integers.
func arabicNumbers(s string) map[int]bool {
	nums := map[int]bool{}
	n, in := 0, false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
			in = true
		} else if in {
			nums[n] = true
			n, in = 0, false
		}
	}
	if in {
		nums[n] = true
	}
	return nums
}

// wordNumbers returns numbers written as Roman numerals or spelled-out
// words among the tokens.
func wordNumbers(tokens []string) map[int]bool {
	nums := map[int]bool{}
	for _, tok := range tokens {
		if n, ok := romanNumerals[tok]; ok {
			nums[n] = true
		}
		if n, ok := spelledNumerals[tok]; ok {
			nums[n] = true
		}
	}
	return nums
}

func sameNumbers(a, b map[int]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for n := range a {
		if !b[n] {
			return false
		}
	}
	return true
}

// numeralsAgree applies the numeral gate: Arabic numeral sets must be
// equal, except that a single Arabic numeral on one side may correspond
// to the same number written as a Roman numeral or word on the other.
// With no Arabic numerals on either side, Roman and spelled-out numerals
// must still agree: "Tuttle Creek II" is not "Tuttle Creek".
func numeralsAgree(a, b string, ta, tb []string) bool {
	na, nb := arabicNumbers(a), arabicNumbers(b)
	if len(na) == 0 && len(nb) == 0 {
		return sameNumbers(wordNumbers(ta), wordNumbers(tb))
	}
	if sameNumbers(na, nb) {
		return true
	}
	if len(na) == 1 && len(nb) == 0 {
		return sameNumbers(na, wordNumbers(tb))
	}
	if len(nb) == 1 && len(na) == 0 {
		return sameNumbers(nb, wordNumbers(ta))
	}
	return false
}

// qualifiersAgree disqualifies pairs where a directional or letter
// qualifier appears on one side only.
func qualifiersAgree(ta, tb []string) bool {
	sa, sb := map[string]bool{}, map[string]bool{}
	for _, t := range ta {
		if directionalTokens[t] {
			sa[t] = true
		}
	}
	for _, t := range tb {
		if directionalTokens[t] {
			sb[t] = true
		}
	}
	if len(sa) != len(sb) {
		return false
	}
	for t := range sa {
		if !sb[t] {
			return false
		}
	}
	return true
}

// match runs the gate ladder for a single name pair under a profile.
func match(registered, candidate, iso string, p profile) float64 {
	a := prepare(registered, iso, p)
	b := prepare(candidate, iso, p)
	if a == "" || b == "" {
		return 0
	}

	ta := tokenize(a, p.splitParens)
	tb := tokenize(b, p.splitParens)

	if p.numeralGate && !numeralsAgree(a, b, ta, tb) {
		return 0
	}
	if p.qualifyGate && !qualifiersAgree(ta, tb) {
		return 0
	}

	if similarity.Ratio(a, b) >= p.threshold {
		return 1
	}
	if similarity.ContainsAsUnit(a, b) {
		return 1
	}

	// shared-token fallback: one specific token in common is weak but
	// usable evidence
	for _, x := range ta {
		if len(x) <= 3 || p.stopTokens[x] {
			continue
		}
		for _, y := range tb {
			if len(y) <= 3 || p.stopTokens[y] {
				continue
			}
			if similarity.Ratio(x, y) >= p.threshold {
				if p.binary {
					return 1
				}
				return 0.5
			}
		}
	}
	return 0
}

// StrictName scores a register name against a candidate feature name
// with the full gate ladder. Returns 1, 0.5, or 0.
func StrictName(registered, candidate, iso string) float64 {
	return match(registered, candidate, iso, strictProfile)
}

// BestStrict scores a candidate against every name the register carries
// for a record, in order. The first name scoring 1 wins outright; the
// best 0.5 is kept otherwise.
func BestStrict(registered []string, candidate, iso string) float64 {
	best := 0.0
	for _, name := range registered {
		s := StrictName(name, candidate, iso)
		if s == 1 {
			return 1
		}
		if s > best {
			best = s
		}
	}
	return best
}

// LenientName is the binary variant used when ranking geocoder results:
// fewer stripped titles, no numeral or qualifier gates, and a lower
// acceptance threshold. Returns 1 or 0.
func LenientName(registered, candidate string) float64 {
	return match(registered, candidate, "", lenientProfile)
}

// BestLenient applies LenientName over every register name.
func BestLenient(registered []string, candidate string) float64 {
	for _, name := range registered {
		if LenientName(name, candidate) == 1 {
			return 1
		}
	}
	return 0
}

// RiverSimilar scores two river names. Hydronym generics are stripped
// before comparison. Returns 1, 0.5, or 0.
func RiverSimilar(a, b string) float64 {
	return match(a, b, "", riverProfile)
}

// YearSimilar reports whether two completion years are both all-digit
// values within one year of each other. Registers frequently disagree by
// a single year on commissioning versus completion.
func YearSimilar(a, b string) float64 {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	ya, ok := parseYear(a)
	if !ok {
		return 0
	}
	yb, ok := parseYear(b)
	if !ok {
		return 0
	}
	d := ya - yb
	if d < 0 {
		d = -d
	}
	if d <= 1 {
		return 1
	}
	return 0
}

func parseYear(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
