// Package rank turns labeled geocoder candidates into a quality tier
// and picks the best candidate for a record. Lower tiers are better;
// tier 1 means the candidate agrees with everything the record states.
package rank

import (
	"strings"

	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/geocode"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/names"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/normalize"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/scenario"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/similarity"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/wrd"
)

// Excluded is the terminal tier for candidates that cannot be used:
// bad labels, or a feature name that fails the lenient comparison.
const Excluded = 9

// partialPenalty separates a partial-match candidate from its
// complete-match counterpart within the same tier.
const partialPenalty = 0.5

// presence constrains a tier rule to records that do or do not carry a
// field.
type presence int

const (
	anyPresence presence = iota
	fieldPresent
	fieldMissing
)

func (p presence) matches(have bool) bool {
	switch p {
	case fieldPresent:
		return have
	case fieldMissing:
		return !have
	}
	return true
}

// axis wildcard for rules that do not constrain a dimension
const anyAxis = "*"

// tierRule matches a scenario label against the record's completeness.
// Rules are evaluated in order; the first match decides the tier.
// completeOnly rules are reserved for complete matches: a partial match
// of an incomplete record's best label is weaker evidence than a
// complete match contradicted on one axis, so partials fall through to
// the generic rows below.
type tierRule struct {
	country      string
	state        string
	town         string
	recState     presence
	recTown      presence
	completeOnly bool
	tier         float64
}

var tierTable = []tierRule{
	// a candidate confirming every stated field
	{"in", "in", "in", fieldPresent, fieldPresent, false, 1},
	// a full match of everything the record was able to state
	{"in", "in", "unknown", fieldPresent, fieldMissing, true, 1.1},
	{"in", "unknown", "in", fieldMissing, fieldPresent, true, 1.1},
	{"in", "unknown", "unknown", fieldMissing, fieldMissing, true, 1.2},
	// state confirmed, town contradicted or unverifiable
	{"in", "in", anyAxis, anyPresence, anyPresence, false, 2},
	// town confirmed with the state unverifiable or contradicted
	{"in", "unknown", "in", anyPresence, anyPresence, false, 3},
	{"in", "out", "in", anyPresence, anyPresence, false, 4},
	// nothing confirmed below the country
	{"in", "unknown", anyAxis, anyPresence, anyPresence, false, 5},
	{"in", "out", anyAxis, anyPresence, anyPresence, false, 6},
	{"unknown", anyAxis, anyAxis, anyPresence, anyPresence, false, 7},
	{"out", anyAxis, anyAxis, anyPresence, anyPresence, false, 8},
}

// parsedLabel is a scenario label split into its dimensions.
type parsedLabel struct {
	partial bool
	country string
	state   string
	town    string
	bad     bool
}

func parseLabel(label string) parsedLabel {
	switch label {
	case geocode.LabelNoResult, geocode.LabelNonFeature, geocode.LabelNoName:
		return parsedLabel{bad: true}
	}
	p := parsedLabel{}
	rest, ok := strings.CutPrefix(label, "complete-match ")
	if !ok {
		rest, ok = strings.CutPrefix(label, "partial-match ")
		if !ok {
			return parsedLabel{bad: true}
		}
		p.partial = true
	}
	fields := strings.Fields(rest)
	if len(fields) != 3 {
		return parsedLabel{bad: true}
	}
	p.country = axisOutcome(fields[0], "-country")
	p.state = axisOutcome(fields[1], "-state")
	p.town = axisOutcome(fields[2], "-town")
	return p
}

// axisOutcome reduces a label token like "in-town-2" to its outcome.
// Secondary-set passes count as confirmations.
func axisOutcome(token, suffix string) string {
	token = strings.TrimSuffix(token, "-2")
	return strings.TrimSuffix(token, suffix)
}

// Tier interprets a scenario label for a record. The record's own
// completeness decides which full-match tier applies.
func Tier(label string, stateOnRecord, townOnRecord bool) float64 {
	p := parseLabel(label)
	if p.bad {
		return Excluded
	}
	for _, r := range tierTable {
		if r.country != anyAxis && r.country != p.country {
			continue
		}
		if r.state != anyAxis && r.state != p.state {
			continue
		}
		if r.town != anyAxis && r.town != p.town {
			continue
		}
		if !r.recState.matches(stateOnRecord) || !r.recTown.matches(townOnRecord) {
			continue
		}
		if r.completeOnly && p.partial {
			continue
		}
		t := r.tier
		if p.partial {
			t += partialPenalty
		}
		return t
	}
	return Excluded
}

// Ranked pairs a candidate with its tier and within-tier order.
type Ranked struct {
	Candidate geocode.Candidate
	Tier      float64
	// order breaks ties inside a tier: the position of the query that
	// produced the candidate, with unrestricted queries pushed after
	// their restricted twins.
	order float64
}

// Rank tiers every candidate for a record. Candidates whose feature
// name fails the lenient comparison are excluded outright.
func Rank(rec *wrd.SourceRecord, queries []scenario.Query, cands []geocode.Candidate) []Ranked {
	stateOnRecord := !similarity.IsSentinel(normalize.Clean(rec.StateProvince))
	townOnRecord := !similarity.IsSentinel(normalize.Clean(rec.NearestTown))

	ranked := make([]Ranked, 0, len(cands))
	for i := range cands {
		c := cands[i]
		r := Ranked{Candidate: c, Tier: Excluded}
		if names.BestLenient(rec.Names(), c.FeatureName) == 1 {
			r.Tier = Tier(c.Scenario, stateOnRecord, townOnRecord)
		}
		r.order = queryOrder(rec, queries, &c)
		ranked = append(ranked, r)
	}
	return ranked
}

// Best returns the strongest usable candidate, or false when every
// candidate is excluded.
func Best(rec *wrd.SourceRecord, queries []scenario.Query, cands []geocode.Candidate) (Ranked, bool) {
	ranked := Rank(rec, queries, cands)
	best, found := Ranked{Tier: Excluded}, false
	for _, r := range ranked {
		if r.Tier >= Excluded {
			continue
		}
		if !found || r.Tier < best.Tier || (r.Tier == best.Tier && r.order < best.order) {
			best, found = r, true
		}
	}
	return best, found
}

// queryOrder positions a candidate among the queries that were issued
// for the record. Chinese records issue the restricted and unrestricted
// lists as one sequence, so plain position is already right; elsewhere
// an unrestricted query is nudged behind restricted ones at the same
// position.
func queryOrder(rec *wrd.SourceRecord, queries []scenario.Query, c *geocode.Candidate) float64 {
	pos := len(queries)
	for i, q := range queries {
		if q.Encoded == c.EncodedAddress {
			pos = i
			break
		}
	}
	order := float64(pos)
	if rec.ISO != "cn" && !c.CountryRestricted() {
		order += 0.1
	}
	return order
}
