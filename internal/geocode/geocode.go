// Package geocode models geocoder responses and labels each returned
// candidate with a scenario describing how well its administrative
// context agrees with the register record.
package geocode

import (
	"context"
	"errors"
)

// ErrQuotaExceeded is returned by a Provider when the upstream service
// refuses further requests. Callers checkpoint and stop rather than
// retry.
var ErrQuotaExceeded = errors.New("geocoding quota exceeded")

// Missing is the placeholder stored for an administrative division the
// geocoder did not return.
const Missing = "-999"

// Provider issues forward and reverse geocoding requests.
type Provider interface {
	Geocode(ctx context.Context, address string) (Response, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (Response, error)
}

// Location is a WGS84 point.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// AddressComponent is one administrative element of a geocoder result.
type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

// Geometry carries the resolved point of a result.
type Geometry struct {
	Location Location `json:"location"`
}

// Result is a single geocoder match.
type Result struct {
	AddressComponents []AddressComponent `json:"address_components"`
	FormattedAddress  string             `json:"formatted_address"`
	Geometry          Geometry           `json:"geometry"`
	PartialMatch      bool               `json:"partial_match"`
	Types             []string           `json:"types"`
}

// Response is a full geocoder reply.
type Response struct {
	Results []Result `json:"results"`
	Status  string   `json:"status"`
}

// Divisions holds the administrative hierarchy of a result, long and
// short forms, with Missing for absent levels.
type Divisions struct {
	CountryLong  string
	CountryShort string
	Admin1Long   string
	Admin1Short  string
	Admin2Long   string
	Admin2Short  string
	Admin3Long   string
	Admin3Short  string
	Admin4Long   string
	Admin4Short  string
	Admin5Long   string
	Admin5Short  string
	Locality     string
	LocalityAbbr string
	Sublocality1 string
	Sublocality2 string
}

// Candidate is a labeled geocoder result for one register record.
type Candidate struct {
	RecordID         string
	Address          string
	EncodedAddress   string
	Location         Location
	Divisions        Divisions
	FormattedAddress string
	// FeatureName is the long name of the first address component,
	// which the geocoder uses for the matched feature itself.
	FeatureName  string
	PartialMatch bool
	Types        []string
	Scenario     string
}

// CountryRestricted reports whether the candidate's query carried a
// country component filter.
func (c *Candidate) CountryRestricted() bool {
	return containsComponentFilter(c.EncodedAddress)
}
