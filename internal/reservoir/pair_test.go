package reservoir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversine(t *testing.T) {
	// one degree of latitude is about 111 km
	d := Haversine(39.0, -96.6, 40.0, -96.6)
	assert.InDelta(t, 111195, d, 200)

	assert.Zero(t, Haversine(39.25, -96.6, 39.25, -96.6))
}

func TestNearest(t *testing.T) {
	bodies := []Waterbody{
		{ID: "W1", Lat: 39.2500, Lng: -96.6000, AreaKm2: 50},
		{ID: "W2", Lat: 39.2520, Lng: -96.6000, AreaKm2: 5},
		{ID: "W3", Lat: 39.5000, Lng: -96.6000, AreaKm2: 100},
	}
	ix := NewIndex(bodies)

	near := ix.Nearest(Dam{ID: "D1", Lat: 39.2501, Lng: -96.6000}, 500, 5)
	require.Len(t, near, 2)
	assert.Equal(t, "W1", near[0].ID)
	assert.Equal(t, "W2", near[1].ID)
}

func TestAssignOneToOne(t *testing.T) {
	dams := []Dam{
		{ID: "D1", Lat: 39.2500, Lng: -96.6000},
		{ID: "D2", Lat: 39.2510, Lng: -96.6000},
	}
	bodies := []Waterbody{
		{ID: "W1", Lat: 39.2501, Lng: -96.6000, AreaKm2: 50},
		{ID: "W2", Lat: 39.2511, Lng: -96.6000, AreaKm2: 20},
	}

	pairs := Assign(dams, bodies)
	require.Len(t, pairs, 2)

	byDam := map[string]string{}
	for _, p := range pairs {
		byDam[p.DamID] = p.WaterbodyID
	}
	assert.Equal(t, "W1", byDam["D1"])
	assert.Equal(t, "W2", byDam["D2"])
}

func TestAssignConflictGoesToCloserDam(t *testing.T) {
	dams := []Dam{
		{ID: "far", Lat: 39.2530, Lng: -96.6000},
		{ID: "close", Lat: 39.2501, Lng: -96.6000},
	}
	bodies := []Waterbody{
		{ID: "W1", Lat: 39.2500, Lng: -96.6000, AreaKm2: 50},
	}

	pairs := Assign(dams, bodies)
	require.Len(t, pairs, 1)
	assert.Equal(t, "close", pairs[0].DamID)
}

func TestAssignSecondRound(t *testing.T) {
	// the waterbody is outside the first radius but inside the second
	dams := []Dam{{ID: "D1", Lat: 39.2500, Lng: -96.6000}}
	bodies := []Waterbody{{ID: "W1", Lat: 39.2570, Lng: -96.6000, AreaKm2: 50}}

	pairs := Assign(dams, bodies)
	require.Len(t, pairs, 1)
	assert.Greater(t, pairs[0].Distance, 500.0)
	assert.LessOrEqual(t, pairs[0].Distance, 1000.0)
}

func TestAssignAreaBreaksTies(t *testing.T) {
	dams := []Dam{{ID: "D1", Lat: 39.2500, Lng: -96.6000}}
	bodies := []Waterbody{
		{ID: "small", Lat: 39.2510, Lng: -96.6000, AreaKm2: 2},
		{ID: "large", Lat: 39.2510, Lng: -96.6000, AreaKm2: 80},
	}

	pairs := Assign(dams, bodies)
	require.Len(t, pairs, 1)
	assert.Equal(t, "large", pairs[0].WaterbodyID)
}

func TestAssignWithOptions(t *testing.T) {
	// about 778 m apart: paired by the defaults, out of reach when the
	// configured rounds stop at 300 m
	dams := []Dam{{ID: "D1", Lat: 39.2500, Lng: -96.6000}}
	bodies := []Waterbody{{ID: "W1", Lat: 39.2570, Lng: -96.6000, AreaKm2: 50}}

	pairs := AssignWith(dams, bodies, Options{RadiiMeters: []float64{300}})
	assert.Empty(t, pairs)

	pairs = AssignWith(dams, bodies, Options{RadiiMeters: []float64{300, 800}, MaxCandidates: 1})
	require.Len(t, pairs, 1)
	assert.Equal(t, "W1", pairs[0].WaterbodyID)
}

func TestAssignNothingInRange(t *testing.T) {
	dams := []Dam{{ID: "D1", Lat: 39.25, Lng: -96.60}}
	bodies := []Waterbody{{ID: "W1", Lat: 40.25, Lng: -96.60, AreaKm2: 50}}

	assert.Empty(t, Assign(dams, bodies))
}
