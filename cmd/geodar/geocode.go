package geodar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/geocode"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/rank"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/scenario"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/store"
)

// geocodeCmd represents the geocode command
var geocodeCmd = &cobra.Command{
	Use:   "geocode [record-id] [fixtures-file]",
	Short: "Geocode a stored record from saved responses",
	Long: `Issue the record's address scenarios against a fixtures file of
saved geocoder responses, stopping at the first accepted result or when
the configured daily quota is spent, then store the labeled candidates
and the best placement.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(cfg.Store.Path)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		rec, err := st.Record(ctx, args[0])
		if err != nil {
			return fmt.Errorf("record %s: %w", args[0], err)
		}

		file, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("failed to open fixtures file: %w", err)
		}
		defer file.Close()

		var fixtures map[string]geocode.Response
		if err := json.NewDecoder(file).Decode(&fixtures); err != nil {
			return fmt.Errorf("failed to parse fixtures: %w", err)
		}
		provider := geocode.NewFixtureProvider(cfg.Geocoder.DailyQuota)
		for encoded, resp := range fixtures {
			provider.AddForward(encoded, resp)
		}

		queries, ok := scenario.Build(&rec)
		if !ok {
			fmt.Printf("Record %s: no usable name\n", rec.ID)
			return nil
		}

		var cands []geocode.Candidate
		for _, q := range queries {
			resp, err := provider.Geocode(ctx, q.Encoded)
			if err != nil {
				if errors.Is(err, geocode.ErrQuotaExceeded) {
					fmt.Println("Daily quota spent, stopping")
					break
				}
				return fmt.Errorf("geocoding %q: %w", q.Address, err)
			}
			batch := geocode.Classify(&rec, q.Address, q.Encoded, &resp)
			cands = append(cands, batch...)
			if len(batch) > 0 && geocode.Accepted(&rec, &batch[len(batch)-1]) {
				break
			}
		}
		if err := st.SaveCandidates(ctx, rec.ID, cands); err != nil {
			return fmt.Errorf("failed to save candidates: %w", err)
		}

		best, found := rank.Best(&rec, queries, cands)
		if !found {
			fmt.Printf("Record %s: no usable candidate\n", rec.ID)
			return nil
		}

		placement := &store.Placement{
			RecordID: rec.ID,
			Source:   "geocoder",
			Tier:     best.Tier,
			Lat:      best.Candidate.Location.Lat,
			Lng:      best.Candidate.Location.Lng,
			Scenario: best.Candidate.Scenario,
		}
		if err := st.SavePlacement(ctx, placement); err != nil {
			return fmt.Errorf("failed to save placement: %w", err)
		}

		fmt.Printf("Record %s: tier %.1f at (%.4f, %.4f) [%s]\n",
			rec.ID, best.Tier, placement.Lat, placement.Lng, best.Candidate.Scenario)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(geocodeCmd)
}
