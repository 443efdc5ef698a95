package geodar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/geocode"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/rank"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/scenario"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/store"
)

var rankAddress string
var rankEncoded string

// rankCmd represents the rank command
var rankCmd = &cobra.Command{
	Use:   "rank [record-id] [response-file]",
	Short: "Rank a geocoder response against a stored record",
	Long: `Label every result in a saved geocoder response against the
record's administrative context, store the candidates, and report the
best tier.`,
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
			return fmt.Errorf("failed to open response file: %w", err)
		}
		defer file.Close()

		var resp geocode.Response
		if err := json.NewDecoder(file).Decode(&resp); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}

		queries, _ := scenario.Build(&rec)
		cands := geocode.Classify(&rec, rankAddress, rankEncoded, &resp)
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
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().StringVar(&rankAddress, "address", "", "Address the response was geocoded from")
	rankCmd.Flags().StringVar(&rankEncoded, "encoded", "", "Encoded form of the geocoding query")
}
