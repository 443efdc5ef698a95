// Package store persists register records, labeled geocoder candidates,
// and final placements in a SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/geocode"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/wrd"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	id              TEXT PRIMARY KEY,
	country         TEXT NOT NULL,
	iso             TEXT NOT NULL,
	dam_name        TEXT NOT NULL,
	other_dam_name  TEXT NOT NULL DEFAULT '',
	reservoir_name  TEXT NOT NULL DEFAULT '',
	river_name      TEXT NOT NULL DEFAULT '',
	nearest_town    TEXT NOT NULL DEFAULT '',
	state_province  TEXT NOT NULL DEFAULT '',
	state_addr      TEXT NOT NULL DEFAULT '',
	completion_year TEXT NOT NULL DEFAULT '',
	keep            INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS candidates (
	record_id         TEXT NOT NULL REFERENCES records(id),
	address           TEXT NOT NULL,
	encoded_address   TEXT NOT NULL,
	lat               REAL NOT NULL,
	lng               REAL NOT NULL,
	feature_name      TEXT NOT NULL DEFAULT '',
	formatted_address TEXT NOT NULL DEFAULT '',
	partial_match     INTEGER NOT NULL DEFAULT 0,
	scenario          TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_candidates_record ON candidates(record_id);

CREATE TABLE IF NOT EXISTS placements (
	record_id TEXT PRIMARY KEY REFERENCES records(id),
	source    TEXT NOT NULL,
	tier      REAL NOT NULL,
	lat       REAL NOT NULL,
	lng       REAL NOT NULL,
	scenario  TEXT NOT NULL DEFAULT ''
);
`

// Store wraps the SQLite database holding pipeline state.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and ensures the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRecord upserts one register record.
func (s *Store) SaveRecord(ctx context.Context, rec *wrd.SourceRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (id, country, iso, dam_name, other_dam_name,
			reservoir_name, river_name, nearest_town, state_province,
			state_addr, completion_year, keep)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			country = excluded.country,
			iso = excluded.iso,
			dam_name = excluded.dam_name,
			other_dam_name = excluded.other_dam_name,
			reservoir_name = excluded.reservoir_name,
			river_name = excluded.river_name,
			nearest_town = excluded.nearest_town,
			state_province = excluded.state_province,
			state_addr = excluded.state_addr,
			completion_year = excluded.completion_year,
			keep = excluded.keep`,
		rec.ID, rec.Country, rec.ISO, rec.DamName, rec.OtherDamName,
		rec.ReservoirName, rec.RiverName, rec.NearestTown, rec.StateProvince,
		rec.StateAddr, rec.CompletionYear, boolToInt(rec.Keep))
	if err != nil {
		return fmt.Errorf("saving record %s: %w", rec.ID, err)
	}
	return nil
}

// Record loads one register record by id.
func (s *Store) Record(ctx context.Context, id string) (wrd.SourceRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, country, iso, dam_name, other_dam_name, reservoir_name,
			river_name, nearest_town, state_province, state_addr,
			completion_year, keep
		FROM records WHERE id = ?`, id)
	return scanRecord(row)
}

// Records loads every register record, ordered by id.
func (s *Store) Records(ctx context.Context) ([]wrd.SourceRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, country, iso, dam_name, other_dam_name, reservoir_name,
			river_name, nearest_town, state_province, state_addr,
			completion_year, keep
		FROM records ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	var recs []wrd.SourceRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row scanner) (wrd.SourceRecord, error) {
	var rec wrd.SourceRecord
	var keep int
	err := row.Scan(&rec.ID, &rec.Country, &rec.ISO, &rec.DamName,
		&rec.OtherDamName, &rec.ReservoirName, &rec.RiverName,
		&rec.NearestTown, &rec.StateProvince, &rec.StateAddr,
		&rec.CompletionYear, &keep)
	if err != nil {
		return wrd.SourceRecord{}, fmt.Errorf("scanning record: %w", err)
	}
	rec.Keep = keep != 0
	return rec, nil
}

// SaveCandidates stores the labeled candidates for one record,
// replacing any earlier run.
func (s *Store) SaveCandidates(ctx context.Context, recordID string, cands []geocode.Candidate) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM candidates WHERE record_id = ?`, recordID); err != nil {
		return fmt.Errorf("clearing candidates for %s: %w", recordID, err)
	}
	for i := range cands {
		c := &cands[i]
		_, err := tx.ExecContext(ctx, `
			INSERT INTO candidates (record_id, address, encoded_address,
				lat, lng, feature_name, formatted_address, partial_match, scenario)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			recordID, c.Address, c.EncodedAddress, c.Location.Lat,
			c.Location.Lng, c.FeatureName, c.FormattedAddress,
			boolToInt(c.PartialMatch), c.Scenario)
		if err != nil {
			return fmt.Errorf("saving candidate for %s: %w", recordID, err)
		}
	}
	return tx.Commit()
}

// Candidates loads the stored candidates for one record.
func (s *Store) Candidates(ctx context.Context, recordID string) ([]geocode.Candidate, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT record_id, address, encoded_address, lat, lng,
			feature_name, formatted_address, partial_match, scenario
		FROM candidates WHERE record_id = ?`, recordID)
	if err != nil {
		return nil, fmt.Errorf("listing candidates for %s: %w", recordID, err)
	}
	defer rows.Close()

	var cands []geocode.Candidate
	for rows.Next() {
		var c geocode.Candidate
		var partial int
		err := rows.Scan(&c.RecordID, &c.Address, &c.EncodedAddress,
			&c.Location.Lat, &c.Location.Lng, &c.FeatureName,
			&c.FormattedAddress, &partial, &c.Scenario)
		if err != nil {
			return nil, fmt.Errorf("scanning candidate: %w", err)
		}
		c.PartialMatch = partial != 0
		cands = append(cands, c)
	}
	return cands, rows.Err()
}

// Placement is the final coordinate assignment for a record.
type Placement struct {
	RecordID string
	// Source names the stage that produced the placement, "geocoder"
	// or "registry".
	Source   string
	Tier     float64
	Lat      float64
	Lng      float64
	Scenario string
}

// SavePlacement upserts the final placement for a record.
func (s *Store) SavePlacement(ctx context.Context, p *Placement) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO placements (record_id, source, tier, lat, lng, scenario)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(record_id) DO UPDATE SET
			source = excluded.source,
			tier = excluded.tier,
			lat = excluded.lat,
			lng = excluded.lng,
			scenario = excluded.scenario`,
		p.RecordID, p.Source, p.Tier, p.Lat, p.Lng, p.Scenario)
	if err != nil {
		return fmt.Errorf("saving placement for %s: %w", p.RecordID, err)
	}
	return nil
}

// Placement loads the placement for one record.
func (s *Store) Placement(ctx context.Context, recordID string) (Placement, error) {
	var p Placement
	err := s.db.QueryRowContext(ctx, `
		SELECT record_id, source, tier, lat, lng, scenario
		FROM placements WHERE record_id = ?`, recordID).
		Scan(&p.RecordID, &p.Source, &p.Tier, &p.Lat, &p.Lng, &p.Scenario)
	if err != nil {
		return Placement{}, fmt.Errorf("loading placement for %s: %w", recordID, err)
	}
	return p, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
