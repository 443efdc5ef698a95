// Package registry matches register records against an already
// georeferenced peer registry of reservoirs. Agreement on the town plus
// any of name, river, or completion year places a match in a tier;
// lower tiers carry more corroborating evidence.
package registry

import (
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/names"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/normalize"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/similarity"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/wrd"
)

// Feature is one georeferenced reservoir from the peer registry, with
// the administrative context recovered by reverse geocoding its point.
type Feature struct {
	ID      string
	ISO     string
	Name    string
	AltName string
	River   string
	Year    string
	// State and Towns come from the reverse-geocoded divisions of the
	// feature's point.
	State string
	Towns []string
	Lat   float64
	Lng   float64
}

// Match is a record paired with a registry feature at a tier.
type Match struct {
	Feature Feature
	Tier    float64
}

// tierPrecedence orders the tiers a candidate pairing can land in.
// The first populated tier wins.
var tierPrecedence = []float64{
	1, 1.2, 1.3, 1.4,
	2, 2.2, 2.3, 2.4,
	3, 3.2, 3.3, 3.4,
}

// fieldPass reports agreement between two administrative values by
// similarity score or containment, decomposing slash-delimited lists.
func fieldPass(a, b string) bool {
	ca, cb := normalize.Clean(a), normalize.Clean(b)
	if ca == "" || ca == "-999" || cb == "" || cb == "-999" {
		return false
	}
	if similarity.Score(a, b) >= similarity.StrictThreshold {
		return true
	}
	return similarity.ContainsAnyPart(ca, cb)
}

func townPass(rec *wrd.SourceRecord, f *Feature) bool {
	town := normalize.StripTownSuffix(normalize.Clean(rec.NearestTown), rec.ISO)
	for _, t := range f.Towns {
		if fieldPass(town, normalize.StripDivisionSuffix(normalize.Clean(t), rec.ISO)) {
			return true
		}
	}
	return false
}

// evidence bundles the per-field similarities for one pairing.
type evidence struct {
	name       float64
	river      float64
	year       float64
	town       bool
	state      bool
	riverBlank bool
	yearBlank  bool
}

func gather(rec *wrd.SourceRecord, f *Feature) evidence {
	ev := evidence{
		river:      names.RiverSimilar(rec.RiverName, f.River),
		year:       names.YearSimilar(rec.CompletionYear, f.Year),
		town:       townPass(rec, f),
		state:      fieldPass(rec.StateProvince, f.State),
		riverBlank: normalize.Clean(rec.RiverName) == "" || normalize.Clean(f.River) == "",
		yearBlank:  normalize.Clean(rec.CompletionYear) == "" || normalize.Clean(f.Year) == "",
	}
	featNames := []string{f.Name, f.AltName}
	for _, fn := range featNames {
		s := names.BestStrict(rec.Names(), fn, rec.ISO)
		if s > ev.name {
			ev.name = s
		}
	}
	return ev
}

// tierOf places one pairing in its tier, or 0 when the evidence does
// not support a match.
func tierOf(rec *wrd.SourceRecord, ev evidence) float64 {
	// river and year evidence is absent when either side leaves the
	// field blank
	blankEvidence := ev.riverBlank && ev.yearBlank
	hasState := normalize.Clean(rec.StateProvince) != ""

	if ev.town {
		switch {
		case ev.name == 1 && (ev.river == 1 || ev.year == 1):
			return 1
		case ev.name == 1 && (ev.river == 0.5 || ev.year == 1):
			return 1.2
		case ev.name == 0.5 && (ev.river == 1 || ev.year == 1):
			return 1.3
		case ev.name == 0.5 && (ev.river == 0.5 || ev.year == 1):
			return 1.4
		}
		if blankEvidence {
			switch {
			case ev.name == 1 && hasState:
				return 2
			case ev.name == 1:
				return 3
			case ev.name == 0.5 && hasState:
				return 2.3
			case ev.name == 0.5:
				return 3.3
			}
		}
		return 0
	}

	// no town agreement: river and year have to carry the match
	if ev.river > 0 && ev.year == 1 && ev.state {
		switch {
		case ev.name == 1 && ev.river == 1:
			return 2
		case ev.name == 1:
			return 2.2
		case ev.name == 0.5 && ev.river == 1:
			return 2.3
		case ev.name == 0.5:
			return 2.4
		}
		return 0
	}
	if ev.river > 0 || ev.year == 1 {
		switch {
		case ev.name == 1 && ev.river == 1:
			return 3
		case ev.name == 1:
			return 3.2
		case ev.name == 0.5 && ev.river == 1:
			return 3.3
		case ev.name == 0.5:
			return 3.4
		}
	}
	return 0
}

// MatchRecord pairs a record with the best feature from its country's
// slice of the registry. A tier 1 pairing is accepted immediately;
// otherwise the first populated tier in precedence order wins.
func MatchRecord(rec *wrd.SourceRecord, feats []Feature) (Match, bool) {
	if !rec.Keep {
		return Match{}, false
	}

	buckets := map[float64][]Feature{}
	for i := range feats {
		f := feats[i]
		if !countryPass(rec, &f) {
			continue
		}
		ev := gather(rec, &f)
		// a record that states its province can only match a feature
		// whose reverse-geocoded province agrees
		if normalize.Clean(rec.StateProvince) != "" && !ev.state {
			continue
		}
		tier := tierOf(rec, ev)
		if tier == 0 {
			continue
		}
		if tier == 1 {
			return Match{Feature: f, Tier: 1}, true
		}
		buckets[tier] = append(buckets[tier], f)
	}

	for _, tier := range tierPrecedence {
		if fs := buckets[tier]; len(fs) > 0 {
			return Match{Feature: fs[0], Tier: tier}, true
		}
	}
	return Match{}, false
}

func countryPass(rec *wrd.SourceRecord, f *Feature) bool {
	return rec.ISO != "" && normalize.Clean(f.ISO) == rec.ISO
}
