// Package scenario builds the geocoding queries for a register record.
// Each record yields a list of address variants, country-restricted
// forms first, ordered from most to least specific.
package scenario

import (
	"net/url"
	"strings"

	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/normalize"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/similarity"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/wrd"
)

// Query is one geocoding request to issue. Encoded is the query-string
// form, including the country component filter when restricted.
type Query struct {
	Address string
	Encoded string
}

// hasNoun reports whether a cleaned name carries the given structure
// noun as a whole word, at either end or inside.
func hasNoun(name, noun string) bool {
	return strings.HasSuffix(name, " "+noun) ||
		strings.HasPrefix(name, noun+" ") ||
		strings.Contains(name, " "+noun+" ")
}

// damCarriesNoun recognizes only an explicit "dam" in a dam-name field;
// a dam named after its lake still gets its suffixed queries.
func damCarriesNoun(name string) bool {
	return len(name) > 4 && hasNoun(name, "dam")
}

// reservoirCarriesNoun accepts "reservoir" or "lake", each with a
// length floor so a bare noun does not count as a name.
func reservoirCarriesNoun(name string) bool {
	if len(name) > 10 && hasNoun(name, "reservoir") {
		return true
	}
	return len(name) > 5 && hasNoun(name, "lake")
}

// usableName trims a register name, dropping sentinels.
func usableName(raw string) string {
	name := strings.TrimSpace(raw)
	if similarity.IsSentinel(normalize.Clean(name)) {
		return ""
	}
	return name
}

// Build assembles the geocoding queries for a record. The returned flag
// is false when the record carries no usable name; callers store a
// no-name marker for such records instead of querying.
//
// Variants are ordered suffix-major: every name leads with its own
// structure noun, then the cross-noun forms interleave across names,
// and the bare names close the list without a state qualifier.
func Build(rec *wrd.SourceRecord) ([]Query, bool) {
	dam := usableName(rec.DamName)
	other := usableName(rec.OtherDamName)
	res := usableName(rec.ReservoirName)
	if dam == "" && other == "" && res == "" {
		return nil, false
	}

	damNoun := dam != "" && damCarriesNoun(normalize.Clean(dam))
	otherNoun := other != "" && damCarriesNoun(normalize.Clean(other))
	resNoun := res != "" && reservoirCarriesNoun(normalize.Clean(res))

	var addrs []string
	add := func(addr string) {
		addrs = appendWithState(addrs, addr, rec.StateAddr)
	}

	if dam != "" {
		if damNoun {
			add(dam)
		} else {
			add(dam + " dam")
		}
	}
	if other != "" {
		if otherNoun {
			add(other)
		} else {
			add(other + " dam")
		}
	}
	if res != "" {
		if resNoun {
			add(res)
		} else {
			add(res + " reservoir")
		}
	}
	if dam != "" && !damNoun {
		add(dam + " reservoir")
	}
	if other != "" && !otherNoun {
		add(other + " reservoir")
	}
	if res != "" && !resNoun {
		add(res + " dam")
		add(res + " lake")
	}
	if dam != "" && !damNoun {
		add(dam + " lake")
	}
	if other != "" && !otherNoun {
		add(other + " lake")
	}
	if dam != "" && !damNoun {
		addrs = append(addrs, dam)
	}
	if other != "" && !otherNoun {
		addrs = append(addrs, other)
	}
	if res != "" && !resNoun {
		addrs = append(addrs, res)
	}

	// country-restricted forms first, then unrestricted, deduplicated
	// on the encoded form with order preserved
	queries := make([]Query, 0, 2*len(addrs))
	seen := map[string]bool{}
	for _, restricted := range []bool{true, false} {
		for _, addr := range addrs {
			encoded := url.QueryEscape(addr)
			if restricted {
				if rec.ISO == "" {
					continue
				}
				encoded += "&components=country:" + rec.ISO
			}
			if seen[encoded] {
				continue
			}
			seen[encoded] = true
			queries = append(queries, Query{Address: addr, Encoded: encoded})
		}
	}
	return queries, true
}

// appendWithState adds the state-qualified form of an address before
// the unqualified form.
func appendWithState(addrs []string, addr, state string) []string {
	if state != "" && !similarity.IsSentinel(normalize.Clean(state)) {
		addrs = append(addrs, addr+", "+state)
	}
	return append(addrs, addr)
}
