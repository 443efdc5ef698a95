// Package wrd models records from the world register of dams and repairs
// the fields that are known to be inconsistent before matching.
package wrd

import (
	"fmt"
	"strings"

	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/lookup"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/normalize"
)

// Column positions in the register export.
const (
	ColID            = 0
	ColCountry       = 10
	ColDamName       = 23
	ColNearestTown   = 24
	ColOtherDamName  = 26
	ColReservoirName = 31
	ColRiverName     = 33
	ColStateProvince = 38
	ColYear          = 41
	ColKeep          = 48
)

// minColumns is the narrowest row FromRow accepts.
const minColumns = ColKeep + 1

// SourceRecord is one register entry with the fields the pipeline reads.
type SourceRecord struct {
	ID            string
	Country       string
	ISO           string
	DamName       string
	OtherDamName  string
	ReservoirName string
	RiverName     string
	NearestTown   string
	StateProvince string
	// StateAddr is the form of the state used when building geocoder
	// addresses. For US records it is the postal abbreviation.
	StateAddr      string
	CompletionYear string
	// Keep marks the record as the unique representative of its dam.
	Keep bool
}

// FromRow builds a record from one row of the register export and
// repairs its fields.
func FromRow(row []string) (SourceRecord, error) {
	if len(row) < minColumns {
		return SourceRecord{}, fmt.Errorf("row has %d columns, need at least %d", len(row), minColumns)
	}
	r := SourceRecord{
		ID:             strings.TrimSpace(row[ColID]),
		Country:        strings.TrimSpace(row[ColCountry]),
		DamName:        strings.TrimSpace(row[ColDamName]),
		NearestTown:    strings.TrimSpace(row[ColNearestTown]),
		OtherDamName:   strings.TrimSpace(row[ColOtherDamName]),
		ReservoirName:  strings.TrimSpace(row[ColReservoirName]),
		RiverName:      strings.TrimSpace(row[ColRiverName]),
		StateProvince:  strings.TrimSpace(row[ColStateProvince]),
		CompletionYear: strings.TrimSpace(row[ColYear]),
		Keep:           strings.TrimSpace(row[ColKeep]) == "1",
	}
	r.Repair()
	return r, nil
}

// Names returns the register names for the dam in matching order:
// primary, alternate, reservoir.
func (r *SourceRecord) Names() []string {
	return []string{r.DamName, r.OtherDamName, r.ReservoirName}
}

// Repair normalizes the country, state, and town fields in place. The
// order matters: territory promotion first, then per-country state
// repairs, then invalidation of states that merely repeat a country.
func (r *SourceRecord) Repair() {
	r.ISO = lookup.ISOForCountry(r.Country)
	r.promoteTerritory()
	r.repairState()
	r.invalidateCountryState()
	r.ISO = lookup.ISOForCountry(r.Country)

	r.StateAddr = r.StateProvince
	if r.ISO == "us" {
		if iso, ok := lookup.USStateISO[normalize.Clean(r.StateProvince)]; ok {
			r.StateAddr = iso
		}
	}
	if r.ISO == "kr" || r.ISO == "kp" {
		if prov, ok := lookup.KoreaProvince[normalize.Clean(r.StateProvince)]; ok {
			r.StateProvince = prov
			r.StateAddr = prov
		}
	}
}

// territoryCountry maps state values that actually name a territory to
// the country the geocoder files them under.
var territoryCountry = map[string]string{
	"taiwan":        "taiwan",
	"hong kong":     "hong kong",
	"faroe islands": "faroe islands",
	"greenland":     "greenland",
	"puerto rico":   "puerto rico",
	"reunion":       "réunion",
	"guadeloupe":    "guadeloupe",
	"martinique":    "martinique",
	"mayotte":       "mayotte",
	"isle of man":   "isle of man",
	"jersey":        "jersey",
	"guernsey":      "guernsey",
	"guam":          "guam",
}

// TerritoryISO lists the ISO codes of territories whose register rows
// carry the parent country. Matching treats territory-level results as
// country-level for these.
var TerritoryISO = map[string]bool{
	"tw": true, "hk": true, "fo": true, "gl": true, "pr": true,
	"re": true, "gp": true, "mq": true, "yt": true, "im": true,
	"je": true, "gg": true, "gu": true,
}

func (r *SourceRecord) promoteTerritory() {
	key := normalize.StripAccents(normalize.Clean(r.StateProvince))
	if country, ok := territoryCountry[key]; ok {
		r.Country = country
		r.StateProvince = ""
	}
}

// blankStates are state values that name a country or a defunct union
// republic and carry no sub-national information.
var blankStates = map[string]bool{
	"former yugoslav rep. of macedonia": true,
	"mold.":                             true,
	"tadjik.":                           true,
	"ukr.":                              true,
	"ukraine":                           true,
	"uzbek.":                            true,
	"argentina / uruguay":               true,
	"argentina/paraguay":                true,
	"zambia / zimbabwe":                 true,
}

var chileRegions = map[string]string{
	"i region":    "tarapaca",
	"ii region":   "antofagasta",
	"iii region":  "atacama",
	"atacama":     "atacama",
	"iv region":   "coquimbo",
	"v region":    "valparaiso",
	"vi region":   "o'higgins",
	"vii region":  "maule",
	"viii region": "biobio",
}

var canadaProvinces = map[string]string{
	"alta":           "ab",
	"man":            "mb",
	"nfld":           "nl",
	"nwt":            "nt",
	"ont":            "on",
	"sask":           "sk",
	"yukon":          "yt",
	"nb, maine, usa": "nb",
}

var sriLankaProvinces = map[string]string{
	"cp":                      "central province",
	"ep":                      "eastern province",
	"ncp":                     "north central province",
	"np":                      "northern province",
	"nwp":                     "north western province",
	"north western  province": "north western province",
	"sab.p":                   "sabaragamuwa province",
	"sp":                      "southern province",
	"up":                      "uva province",
	"uva":                     "uva province",
	"wp":                      "western province",
}

var botswanaDistricts = map[string]string{
	"central":  "central district",
	"kgatleng": "kgatleng district",
	"ne":       "north-east district",
	"se":       "south-east district",
}

var australiaStates = map[string]string{
	"quensland": "queensland",
	"tasmainia": "tasmania",
	"n.s.w.":    "new south wales",
	"vic.":      "victoria",
}

func (r *SourceRecord) repairState() {
	state := normalize.Clean(r.StateProvince)

	if strings.HasSuffix(state, ".ssr") {
		r.StateProvince = ""
		return
	}
	if blankStates[state] {
		r.StateProvince = ""
		return
	}
	if state == "daghest." {
		r.StateProvince = "daghestan"
		return
	}
	if i := strings.IndexByte(state, '/'); i >= 0 {
		state = strings.TrimSpace(state[:i])
		r.StateProvince = state
	}

	switch r.ISO {
	case "ie":
		if strings.HasPrefix(state, "co.") {
			r.StateProvince = strings.TrimSpace(state[3:])
		}
	case "fi":
		r.StateProvince = ""
	case "cl":
		if fixed, ok := chileRegions[normalize.StripAccents(state)]; ok {
			r.StateProvince = fixed
		}
	case "ca":
		if fixed, ok := canadaProvinces[strings.TrimSuffix(state, ".")]; ok {
			r.StateProvince = fixed
		}
	case "lk":
		if fixed, ok := sriLankaProvinces[state]; ok {
			r.StateProvince = fixed
		}
	case "bw":
		if fixed, ok := botswanaDistricts[state]; ok {
			r.StateProvince = fixed
		}
	case "au":
		if fixed, ok := australiaStates[state]; ok {
			r.StateProvince = fixed
		}
	}
}

// stateCountryExceptions are legitimate sub-national divisions that share
// a name with a country.
var stateCountryExceptions = map[string]string{
	"niger":      "ng",
	"luxembourg": "be",
	"georgia":    "us",
}

// invalidateCountryState blanks a state field that just repeats a
// country name, unless the state is a genuine division that happens to
// share one.
func (r *SourceRecord) invalidateCountryState() {
	key := normalize.StripAccents(normalize.Clean(r.StateProvince))
	if key == "" || !lookup.IsCountryName(key) {
		return
	}
	if territoryCountry[key] != "" {
		return
	}
	if iso, ok := stateCountryExceptions[key]; ok && iso == r.ISO {
		return
	}
	r.StateProvince = ""
}
