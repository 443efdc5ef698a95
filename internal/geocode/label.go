package geocode

import (
	"strings"

	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/names"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/normalize"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/similarity"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/wrd"
)

// Axis outcomes for the state and town comparisons. The "-2" form marks
// a pass against the secondary comparison set (abbreviations and the
// neighboring admin levels).
const (
	axisIn      = "in"
	axisIn2     = "in-2"
	axisUnknown = "unknown"
	axisOut     = "out"
)

// Bad-candidate labels.
const (
	LabelNoResult   = "bad: no-result"
	LabelNonFeature = "bad: non-feature"
	LabelNoName     = "bad: no-name"
)

// Classify labels every result of a geocoder response against a
// register record. When a result earns the best label the record can
// support and its feature name passes the lenient comparison, it is
// accepted outright and later results are not examined.
func Classify(rec *wrd.SourceRecord, address, encoded string, resp *Response) []Candidate {
	if len(resp.Results) == 0 {
		return []Candidate{{
			RecordID:       rec.ID,
			Address:        address,
			EncodedAddress: encoded,
			Scenario:       LabelNoResult,
		}}
	}

	var out []Candidate
	for i := range resp.Results {
		c := label(rec, address, encoded, &resp.Results[i])
		out = append(out, c)
		if Accepted(rec, &c) {
			break
		}
	}
	return out
}

// Accepted reports whether a candidate carries the best label the
// record's own fields allow with an agreeing feature name. An accepted
// candidate ends the record's query sequence.
func Accepted(rec *wrd.SourceRecord, c *Candidate) bool {
	return c.Scenario == bestPossibleLabel(rec) &&
		names.BestLenient(rec.Names(), c.FeatureName) == 1
}

func label(rec *wrd.SourceRecord, address, encoded string, res *Result) Candidate {
	c := Candidate{
		RecordID:         rec.ID,
		Address:          address,
		EncodedAddress:   encoded,
		Location:         res.Geometry.Location,
		Divisions:        ExtractDivisions(res),
		FormattedAddress: res.FormattedAddress,
		PartialMatch:     res.PartialMatch,
		Types:            res.Types,
	}
	if len(res.AddressComponents) > 0 {
		c.FeatureName = res.AddressComponents[0].LongName
	}
	if !IsFeature(res.Types) {
		c.Scenario = LabelNonFeature
		return c
	}

	quality := "complete-match"
	if res.PartialMatch {
		quality = "partial-match"
	}
	country := countryAxis(rec, &c.Divisions)
	state := stateAxis(rec, &c.Divisions)
	town := townAxis(rec, &c.Divisions)

	c.Scenario = quality + " " + country + " " + state + " " + town
	return c
}

// axisToken renders an axis outcome as its scenario word, e.g.
// "in-state", "in-town-2", "unknown-state".
func axisToken(outcome, axis string) string {
	if outcome == axisIn2 {
		return axisIn + "-" + axis + "-2"
	}
	return outcome + "-" + axis
}

// bestPossibleLabel is the strongest scenario a record's own fields
// allow. A record with no state on file can never earn an in-state
// label.
func bestPossibleLabel(rec *wrd.SourceRecord) string {
	state, town := axisIn, axisIn
	if similarity.IsSentinel(normalize.Clean(rec.StateProvince)) {
		state = axisUnknown
	}
	if similarity.IsSentinel(normalize.Clean(rec.NearestTown)) {
		town = axisUnknown
	}
	return "complete-match in-country " + axisToken(state, "state") + " " + axisToken(town, "town")
}

func countryAxis(rec *wrd.SourceRecord, d *Divisions) string {
	if d.CountryShort == Missing {
		return axisToken(axisUnknown, "country")
	}
	if strings.EqualFold(d.CountryShort, rec.ISO) {
		return axisToken(axisIn, "country")
	}
	return axisToken(axisOut, "country")
}

func allMissing(vals ...[]string) bool {
	for _, set := range vals {
		for _, v := range set {
			if v != Missing {
				return false
			}
		}
	}
	return true
}

// divisionPass reports whether a register value matches any of the
// given geocoder divisions, by similarity score or containment.
func divisionPass(value string, against []string) bool {
	for _, v := range against {
		if v == Missing {
			continue
		}
		if shanxiConflict(value, v) {
			continue
		}
		if similarity.Score(value, v) >= similarity.LenientThreshold {
			return true
		}
		if similarity.ContainsAnyPart(normalize.Clean(value), normalize.Clean(v)) {
			return true
		}
	}
	return false
}

func stateAxis(rec *wrd.SourceRecord, d *Divisions) string {
	if similarity.IsSentinel(normalize.Clean(rec.StateProvince)) {
		return axisToken(axisUnknown, "state")
	}
	primary := []string{d.Admin1Long, d.Admin1Short}
	secondary := []string{
		d.Admin2Long, d.Admin2Short,
		d.Admin3Long, d.Admin3Short,
	}
	if wrd.TerritoryISO[rec.ISO] {
		primary = append(primary, d.CountryLong)
	}
	if divisionPass(rec.StateProvince, primary) {
		return axisToken(axisIn, "state")
	}
	if divisionPass(rec.StateProvince, secondary) {
		return axisToken(axisIn2, "state")
	}
	// the geocoder returned no division to check against
	if allMissing(primary, secondary) {
		return axisToken(axisUnknown, "state")
	}
	return axisToken(axisOut, "state")
}

func townAxis(rec *wrd.SourceRecord, d *Divisions) string {
	town := rec.NearestTown
	if similarity.IsSentinel(normalize.Clean(town)) {
		return axisToken(axisUnknown, "town")
	}
	town = normalize.StripTownSuffix(normalize.Clean(town), rec.ISO)

	primary := []string{
		d.Admin3Long, d.Admin3Short,
		d.Admin4Long, d.Admin4Short,
		d.Admin5Long, d.Admin5Short,
		d.Locality, d.LocalityAbbr,
		d.Sublocality1, d.Sublocality2,
	}
	secondary := []string{d.Admin2Long, d.Admin2Short}
	if wrd.TerritoryISO[rec.ISO] {
		secondary = append(secondary, d.Admin1Long, d.Admin1Short)
	}

	stripped := func(vals []string) []string {
		out := make([]string, len(vals))
		for i, v := range vals {
			if v == Missing {
				out[i] = v
				continue
			}
			out[i] = normalize.StripDivisionSuffix(normalize.Clean(v), rec.ISO)
		}
		return out
	}
	if divisionPass(town, stripped(primary)) {
		return axisToken(axisIn, "town")
	}
	if divisionPass(town, stripped(secondary)) {
		return axisToken(axisIn2, "town")
	}
	if allMissing(primary, secondary) {
		return axisToken(axisUnknown, "town")
	}
	return axisToken(axisOut, "town")
}

// shanxiConflict catches the one pair of Chinese provinces whose names
// differ only by a doubled vowel. String similarity cannot tell them
// apart, so a cross pairing is forced to a miss.
func shanxiConflict(a, b string) bool {
	na := shanxiForm(a)
	nb := shanxiForm(b)
	return na != "" && nb != "" && na != nb
}

func shanxiForm(s string) string {
	s = normalize.StripAccents(normalize.Clean(s))
	s = strings.TrimSuffix(s, " sheng")
	s = strings.TrimSuffix(s, " province")
	if s == "shanxi" || s == "shaanxi" {
		return s
	}
	return ""
}

// axis wildcard for preference entries that do not distinguish a
// dimension
const anyOutcome = "*"

// preferenceTable orders scenario outcomes from strongest to weakest
// for the per-location fallback selection. A complete match with the
// town contradicted still beats any partial in-state variant, and a
// town miss under an unknown state ranks below the fully unknown case.
// Partial in-state variants share one slot, as do the out-state and
// cross-country outcomes.
var preferenceTable = []struct {
	partial bool
	country string
	state   string
	town    string
}{
	{false, axisIn, axisIn, axisIn},
	{false, axisIn, axisIn, axisUnknown},
	{false, axisIn, axisIn, axisOut},
	{true, axisIn, axisIn, anyOutcome},
	{false, axisIn, axisUnknown, axisIn},
	{true, axisIn, axisUnknown, axisIn},
	{false, axisIn, axisUnknown, axisUnknown},
	{true, axisIn, axisUnknown, axisUnknown},
	{false, axisIn, axisUnknown, axisOut},
	{true, axisIn, axisUnknown, axisOut},
	{false, axisIn, axisOut, anyOutcome},
	{true, axisIn, axisOut, anyOutcome},
	{false, axisUnknown, anyOutcome, anyOutcome},
	{true, axisUnknown, anyOutcome, anyOutcome},
	{false, axisOut, anyOutcome, anyOutcome},
	{true, axisOut, anyOutcome, anyOutcome},
}

// preference orders scenario labels from strongest to weakest for the
// per-location fallback selection.
func preference(label string) int {
	switch label {
	case LabelNonFeature:
		return 100
	case LabelNoResult:
		return 101
	case LabelNoName:
		return 102
	}

	partial := false
	rest := strings.TrimPrefix(label, "complete-match ")
	if p := strings.TrimPrefix(label, "partial-match "); p != label {
		partial = true
		rest = p
	}
	fields := strings.Fields(rest)
	if len(fields) != 3 {
		return 99
	}
	country := strings.TrimSuffix(fields[0], "-country")
	state := strings.TrimSuffix(strings.TrimSuffix(fields[1], "-2"), "-state")
	town := strings.TrimSuffix(strings.TrimSuffix(fields[2], "-2"), "-town")

	for i, p := range preferenceTable {
		if p.partial != partial {
			continue
		}
		if p.country != anyOutcome && p.country != country {
			continue
		}
		if p.state != anyOutcome && p.state != state {
			continue
		}
		if p.town != anyOutcome && p.town != town {
			continue
		}
		return i
	}
	return 99
}

// SelectBest reduces labeled candidates to at most one per resolved
// location, keeping the strongest label for each, ordered strongest
// first.
func SelectBest(cands []Candidate) []Candidate {
	type key struct{ lat, lng float64 }
	bestAt := map[key]int{}
	var order []key
	for i := range cands {
		k := key{cands[i].Location.Lat, cands[i].Location.Lng}
		j, seen := bestAt[k]
		if !seen {
			bestAt[k] = i
			order = append(order, k)
			continue
		}
		if preference(cands[i].Scenario) < preference(cands[j].Scenario) {
			bestAt[k] = i
		}
	}

	out := make([]Candidate, 0, len(order))
	for _, k := range order {
		out = append(out, cands[bestAt[k]])
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && preference(out[j].Scenario) < preference(out[j-1].Scenario); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
