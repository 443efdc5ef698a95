package store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/geocode"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/wrd"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "geodar.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecord() *wrd.SourceRecord {
	return &wrd.SourceRecord{
		ID:             "1001",
		Country:        "United States",
		ISO:            "us",
		DamName:        "Tuttle Creek",
		ReservoirName:  "Tuttle Creek Lake",
		RiverName:      "Big Blue River",
		NearestTown:    "Manhattan",
		StateProvince:  "Kansas",
		StateAddr:      "ks",
		CompletionYear: "1962",
		Keep:           true,
	}
}

func TestSaveAndLoadRecord(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec := testRecord()
	require.NoError(t, s.SaveRecord(ctx, rec))

	got, err := s.Record(ctx, "1001")
	require.NoError(t, err)
	assert.Equal(t, *rec, got)

	// upsert overwrites
	rec.NearestTown = "Riley"
	require.NoError(t, s.SaveRecord(ctx, rec))
	got, err = s.Record(ctx, "1001")
	require.NoError(t, err)
	assert.Equal(t, "Riley", got.NearestTown)
}

func TestRecordsOrdered(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"1003", "1001", "1002"} {
		rec := testRecord()
		rec.ID = id
		require.NoError(t, s.SaveRecord(ctx, rec))
	}

	recs, err := s.Records(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "1001", recs[0].ID)
	assert.Equal(t, "1003", recs[2].ID)
}

func TestSaveCandidatesReplaces(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.SaveRecord(ctx, testRecord()))

	first := []geocode.Candidate{{
		RecordID: "1001", Address: "a", EncodedAddress: "a",
		Location: geocode.Location{Lat: 1, Lng: 2},
		Scenario: geocode.LabelNoResult,
	}}
	require.NoError(t, s.SaveCandidates(ctx, "1001", first))

	second := []geocode.Candidate{{
		RecordID: "1001", Address: "Tuttle Creek dam, ks",
		EncodedAddress: "tuttle", FeatureName: "Tuttle Creek Lake",
		Location: geocode.Location{Lat: 39.25, Lng: -96.6},
		Scenario: "complete-match in-country in-state in-town",
	}}
	require.NoError(t, s.SaveCandidates(ctx, "1001", second))

	got, err := s.Candidates(ctx, "1001")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Tuttle Creek Lake", got[0].FeatureName)
	assert.Equal(t, 39.25, got[0].Location.Lat)
}

func TestSaveAndLoadPlacement(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.SaveRecord(ctx, testRecord()))

	p := &Placement{
		RecordID: "1001", Source: "geocoder", Tier: 1.1,
		Lat: 39.25, Lng: -96.6,
		Scenario: "complete-match in-country in-state unknown-town",
	}
	require.NoError(t, s.SavePlacement(ctx, p))

	got, err := s.Placement(ctx, "1001")
	require.NoError(t, err)
	assert.Equal(t, *p, got)

	_, err = s.Placement(ctx, "missing")
	assert.Error(t, err)
}

func TestImportRecords(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	header := make([]string, 49)
	row := make([]string, 49)
	for i := range header {
		header[i] = "c"
	}
	row[wrd.ColID] = "1001"
	row[wrd.ColCountry] = "United States"
	row[wrd.ColDamName] = "Tuttle Creek"
	row[wrd.ColStateProvince] = "Kansas"
	row[wrd.ColKeep] = "1"

	csvText := strings.Join(header, ",") + "\n" + strings.Join(row, ",") + "\n"
	n, err := ImportRecords(ctx, s, strings.NewReader(csvText))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := s.Record(ctx, "1001")
	require.NoError(t, err)
	assert.Equal(t, "us", got.ISO)
	assert.Equal(t, "ks", got.StateAddr)
	assert.True(t, got.Keep)
}
