package registry

import (
	"testing"

	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/wrd"
)

func kansasRecord() *wrd.SourceRecord {
	return &wrd.SourceRecord{
		ID:             "1001",
		Country:        "United States",
		ISO:            "us",
		DamName:        "Tuttle Creek",
		NearestTown:    "Manhattan",
		StateProvince:  "Kansas",
		RiverName:      "Big Blue River",
		CompletionYear: "1962",
		Keep:           true,
	}
}

func tuttleFeature() Feature {
	return Feature{
		ID:    "G-100",
		ISO:   "US",
		Name:  "Tuttle Creek",
		River: "Big Blue",
		Year:  "1962",
		State: "Kansas",
		Towns: []string{"Manhattan", "Riley County"},
		Lat:   39.25,
		Lng:   -96.60,
	}
}

func TestMatchRecordTierOne(t *testing.T) {
	m, ok := MatchRecord(kansasRecord(), []Feature{tuttleFeature()})
	if !ok {
		t.Fatal("MatchRecord found no match")
	}
	if m.Tier != 1 {
		t.Errorf("Tier = %v, expected 1", m.Tier)
	}
	if m.Feature.ID != "G-100" {
		t.Errorf("Feature.ID = %q, expected G-100", m.Feature.ID)
	}
}

func TestMatchRecordTierOneStopsEarly(t *testing.T) {
	weak := tuttleFeature()
	weak.ID = "G-200"
	weak.Name = "Milford"

	// a tier 1 feature wins even when listed after weaker candidates
	m, _ := MatchRecord(kansasRecord(), []Feature{weak, tuttleFeature()})
	if m.Feature.ID != "G-100" || m.Tier != 1 {
		t.Errorf("match = %q at tier %v, expected G-100 at tier 1", m.Feature.ID, m.Tier)
	}
}

func TestMatchRecordCountryGate(t *testing.T) {
	f := tuttleFeature()
	f.ISO = "CA"
	if _, ok := MatchRecord(kansasRecord(), []Feature{f}); ok {
		t.Error("MatchRecord crossed a country boundary")
	}
}

func TestMatchRecordSkipsDuplicates(t *testing.T) {
	rec := kansasRecord()
	rec.Keep = false
	if _, ok := MatchRecord(rec, []Feature{tuttleFeature()}); ok {
		t.Error("MatchRecord matched a record not marked as the unique representative")
	}
}

func TestMatchRecordStateGate(t *testing.T) {
	f := tuttleFeature()
	f.State = "Texas"

	// town, name, river, and year all agree, but a stated province that
	// contradicts the feature's rejects the pairing outright
	if _, ok := MatchRecord(kansasRecord(), []Feature{f}); ok {
		t.Error("MatchRecord crossed a state boundary")
	}

	rec := kansasRecord()
	rec.StateProvince = ""
	if _, ok := MatchRecord(rec, []Feature{f}); !ok {
		t.Error("MatchRecord rejected a record with no province on file")
	}
}

func TestMatchRecordBlankEvidence(t *testing.T) {
	rec := kansasRecord()
	rec.RiverName = ""
	rec.CompletionYear = ""
	f := tuttleFeature()
	f.River = ""
	f.Year = ""

	m, ok := MatchRecord(rec, []Feature{f})
	if !ok {
		t.Fatal("MatchRecord found no match on town and name alone")
	}
	if m.Tier != 2 {
		t.Errorf("Tier = %v, expected 2 with a state on file", m.Tier)
	}

	rec.StateProvince = ""
	m, _ = MatchRecord(rec, []Feature{f})
	if m.Tier != 3 {
		t.Errorf("Tier = %v, expected 3 without a state", m.Tier)
	}
}

func TestMatchRecordBlankEvidenceOneSided(t *testing.T) {
	// the feature leaves river and year blank; the record's values
	// cannot be corroborated, so town and name carry the match
	rec := kansasRecord()
	f := tuttleFeature()
	f.River = ""
	f.Year = ""

	m, ok := MatchRecord(rec, []Feature{f})
	if !ok {
		t.Fatal("MatchRecord found no match on town and name alone")
	}
	if m.Tier != 2 {
		t.Errorf("Tier = %v, expected 2 with a state on file", m.Tier)
	}
}

func TestMatchRecordNoTown(t *testing.T) {
	rec := kansasRecord()
	rec.NearestTown = "Topeka"

	m, ok := MatchRecord(rec, []Feature{tuttleFeature()})
	if !ok {
		t.Fatal("MatchRecord found no match on river and year")
	}
	if m.Tier != 2 {
		t.Errorf("Tier = %v, expected 2 from river, year, and state agreement", m.Tier)
	}
}

func TestMatchRecordPrecedence(t *testing.T) {
	rec := kansasRecord()
	rec.NearestTown = "Topeka"
	rec.StateProvince = ""

	weaker := tuttleFeature()
	weaker.ID = "G-300"
	weaker.Name = "Tuttle Ridge"

	m, ok := MatchRecord(rec, []Feature{weaker, tuttleFeature()})
	if !ok {
		t.Fatal("MatchRecord found no match")
	}
	if m.Feature.ID != "G-100" {
		t.Errorf("match = %q, expected the stronger-named feature G-100", m.Feature.ID)
	}
	if m.Tier != 3 {
		t.Errorf("Tier = %v, expected 3", m.Tier)
	}
}
