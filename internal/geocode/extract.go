package geocode

import (
	"sort"
	"strings"
)

// componentFilter marks a query that restricted results to one country.
const componentFilter = "&components=country:"

func containsComponentFilter(encoded string) bool {
	return strings.Contains(encoded, componentFilter)
}

// ExtractDivisions pulls the administrative hierarchy out of a result's
// address components. Levels the geocoder omitted are set to Missing.
func ExtractDivisions(res *Result) Divisions {
	d := Divisions{
		CountryLong: Missing, CountryShort: Missing,
		Admin1Long: Missing, Admin1Short: Missing,
		Admin2Long: Missing, Admin2Short: Missing,
		Admin3Long: Missing, Admin3Short: Missing,
		Admin4Long: Missing, Admin4Short: Missing,
		Admin5Long: Missing, Admin5Short: Missing,
		Locality: Missing, LocalityAbbr: Missing,
		Sublocality1: Missing, Sublocality2: Missing,
	}
	for _, comp := range res.AddressComponents {
		for _, t := range comp.Types {
			switch t {
			case "country":
				d.CountryLong, d.CountryShort = comp.LongName, comp.ShortName
			case "administrative_area_level_1":
				d.Admin1Long, d.Admin1Short = comp.LongName, comp.ShortName
			case "administrative_area_level_2":
				d.Admin2Long, d.Admin2Short = comp.LongName, comp.ShortName
			case "administrative_area_level_3":
				d.Admin3Long, d.Admin3Short = comp.LongName, comp.ShortName
			case "administrative_area_level_4":
				d.Admin4Long, d.Admin4Short = comp.LongName, comp.ShortName
			case "administrative_area_level_5":
				d.Admin5Long, d.Admin5Short = comp.LongName, comp.ShortName
			case "locality":
				d.Locality, d.LocalityAbbr = comp.LongName, comp.ShortName
			case "sublocality_level_1":
				d.Sublocality1 = comp.LongName
			case "sublocality_level_2":
				d.Sublocality2 = comp.LongName
			}
		}
	}
	return d
}

// featureTypeSets are the exact result type combinations accepted as
// water features or dam structures. Anything else is a road, a business,
// or an address and gets a non-feature label.
var featureTypeSets = buildFeatureTypeSets()

func buildFeatureTypeSets() map[string]bool {
	sets := []string{
		"establishment|natural_feature",
		"establishment|park|point_of_interest",
		"premise",
		"establishment|point_of_interest|premise",
		"establishment|point_of_interest",
		"campground|establishment|lodging|park|point_of_interest",
		"establishment|general_contractor|point_of_interest",
	}
	m := make(map[string]bool, len(sets))
	for _, s := range sets {
		m[s] = true
	}
	return m
}

// IsFeature reports whether a result's types identify a physical
// feature rather than an address or area.
func IsFeature(types []string) bool {
	if len(types) == 0 {
		return false
	}
	sorted := make([]string, len(types))
	copy(sorted, types)
	sort.Strings(sorted)
	return featureTypeSets[strings.Join(sorted, "|")]
}

// BestReverseResult picks the reverse-geocoding result carrying the
// richest administrative context.
func BestReverseResult(resp *Response) (Result, bool) {
	if len(resp.Results) == 0 {
		return Result{}, false
	}
	best := 0
	for i := range resp.Results {
		if len(resp.Results[i].AddressComponents) > len(resp.Results[best].AddressComponents) {
			best = i
		}
	}
	return resp.Results[best], true
}
