package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/wrd"
)

// ImportRecords reads a register export in CSV form, repairs each row,
// and stores it. The first row is taken as the header. Returns the
// number of records imported.
func ImportRecords(ctx context.Context, s *Store, r io.Reader) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	if _, err := cr.Read(); err != nil {
		return 0, fmt.Errorf("reading header: %w", err)
	}

	n := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return n, fmt.Errorf("reading row %d: %w", n+1, err)
		}
		rec, err := wrd.FromRow(row)
		if err != nil {
			return n, fmt.Errorf("row %d: %w", n+1, err)
		}
		if err := s.SaveRecord(ctx, &rec); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
