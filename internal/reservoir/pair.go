// Package reservoir pairs georeferenced dam points with reservoir
// polygons from a waterbody inventory. Pairing is one-to-one and
// greedy: close pairs are settled before distant ones.
package reservoir

import (
	"math"
	"sort"

	"github.com/tidwall/rtree"
)

const earthRadiusMeters = 6371000.0

// pairing rounds, in meters: leftovers from the first round get a
// second chance at a wider radius
var roundRadii = []float64{500, 1000}

// maxCandidates caps how many nearby waterbodies one dam considers per
// round.
const maxCandidates = 5

// Dam is a georeferenced dam point.
type Dam struct {
	ID  string
	Lat float64
	Lng float64
}

// Waterbody is one candidate reservoir polygon, reduced to its
// representative point and area.
type Waterbody struct {
	ID      string
	Lat     float64
	Lng     float64
	AreaKm2 float64
}

// Pair is a settled dam-waterbody assignment.
type Pair struct {
	DamID       string
	WaterbodyID string
	// Distance between the dam point and the waterbody point, meters.
	Distance float64
}

// Index holds waterbodies in an R-tree keyed on their points.
type Index struct {
	tree rtree.RTree
}

// NewIndex builds the spatial index over a waterbody inventory.
func NewIndex(bodies []Waterbody) *Index {
	ix := &Index{}
	for i := range bodies {
		b := bodies[i]
		pt := [2]float64{b.Lat, b.Lng}
		ix.tree.Insert(pt, pt, b)
	}
	return ix
}

// Haversine returns the great-circle distance between two points in
// meters.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLng := (lng2 - lng1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(a))
}

// searchBox pads a point by a radius in meters, in degrees per axis.
func searchBox(lat, lng, radius float64) (min, max [2]float64) {
	dLat := radius / 111320
	cos := math.Cos(lat * math.Pi / 180)
	if cos < 0.01 {
		cos = 0.01
	}
	dLng := radius / (111320 * cos)
	return [2]float64{lat - dLat, lng - dLng}, [2]float64{lat + dLat, lng + dLng}
}

type candidate struct {
	dam      Dam
	body     Waterbody
	distance float64
}

// Nearest returns up to limit waterbodies within radius meters of the
// dam, closest first.
func (ix *Index) Nearest(d Dam, radius float64, limit int) []Waterbody {
	min, max := searchBox(d.Lat, d.Lng, radius)
	var found []candidate
	ix.tree.Search(min, max, func(_, _ [2]float64, value interface{}) bool {
		b := value.(Waterbody)
		dist := Haversine(d.Lat, d.Lng, b.Lat, b.Lng)
		if dist <= radius {
			found = append(found, candidate{dam: d, body: b, distance: dist})
		}
		return true
	})
	sort.Slice(found, func(i, j int) bool { return found[i].distance < found[j].distance })
	if len(found) > limit {
		found = found[:limit]
	}
	out := make([]Waterbody, len(found))
	for i, c := range found {
		out[i] = c.body
	}
	return out
}

// Options tunes the pairing rounds. Zero values fall back to the
// defaults.
type Options struct {
	RadiiMeters   []float64
	MaxCandidates int
}

// Assign pairs dams with waterbodies one-to-one using the default
// rounds and candidate cap.
func Assign(dams []Dam, bodies []Waterbody) []Pair {
	return AssignWith(dams, bodies, Options{})
}

// AssignWith pairs dams with waterbodies one-to-one. Each round
// collects every dam-waterbody candidate within the round's radius and
// settles them globally: shorter distances first, larger waterbodies
// breaking ties. Dams and waterbodies taken in an earlier round stay
// taken.
func AssignWith(dams []Dam, bodies []Waterbody, opt Options) []Pair {
	radii := opt.RadiiMeters
	if len(radii) == 0 {
		radii = roundRadii
	}
	limit := opt.MaxCandidates
	if limit <= 0 {
		limit = maxCandidates
	}

	ix := NewIndex(bodies)
	damTaken := make(map[string]bool, len(dams))
	bodyTaken := make(map[string]bool, len(bodies))
	var pairs []Pair

	for _, radius := range radii {
		var cands []candidate
		for _, d := range dams {
			if damTaken[d.ID] {
				continue
			}
			min, max := searchBox(d.Lat, d.Lng, radius)
			var near []candidate
			ix.tree.Search(min, max, func(_, _ [2]float64, value interface{}) bool {
				b := value.(Waterbody)
				if bodyTaken[b.ID] {
					return true
				}
				dist := Haversine(d.Lat, d.Lng, b.Lat, b.Lng)
				if dist <= radius {
					near = append(near, candidate{dam: d, body: b, distance: dist})
				}
				return true
			})
			sort.Slice(near, func(i, j int) bool { return near[i].distance < near[j].distance })
			if len(near) > limit {
				near = near[:limit]
			}
			cands = append(cands, near...)
		}

		sort.Slice(cands, func(i, j int) bool {
			if cands[i].distance != cands[j].distance {
				return cands[i].distance < cands[j].distance
			}
			return cands[i].body.AreaKm2 > cands[j].body.AreaKm2
		})
		for _, c := range cands {
			if damTaken[c.dam.ID] || bodyTaken[c.body.ID] {
				continue
			}
			damTaken[c.dam.ID] = true
			bodyTaken[c.body.ID] = true
			pairs = append(pairs, Pair{DamID: c.dam.ID, WaterbodyID: c.body.ID, Distance: c.distance})
		}
	}
	return pairs
}
