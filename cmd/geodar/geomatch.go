package geodar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/registry"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/store"
)

// geomatchCmd represents the geomatch command
var geomatchCmd = &cobra.Command{
	Use:   "geomatch [record-id] [features-file]",
	Short: "Match a record against a georeferenced registry",
	Long: `Match a stored record against a JSON file of georeferenced
registry features and report the tier of the best pairing.`,
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
			return fmt.Errorf("failed to open features file: %w", err)
		}
		defer file.Close()

		var feats []registry.Feature
		if err := json.NewDecoder(file).Decode(&feats); err != nil {
			return fmt.Errorf("failed to parse features: %w", err)
		}

		m, found := registry.MatchRecord(&rec, feats)
		if !found {
			fmt.Printf("Record %s: no registry match\n", rec.ID)
			return nil
		}

		placement := &store.Placement{
			RecordID: rec.ID,
			Source:   "registry",
			Tier:     m.Tier,
			Lat:      m.Feature.Lat,
			Lng:      m.Feature.Lng,
		}
		if err := st.SavePlacement(ctx, placement); err != nil {
			return fmt.Errorf("failed to save placement: %w", err)
		}

		fmt.Printf("Record %s: matched %s at tier %.1f (%.4f, %.4f)\n",
			rec.ID, m.Feature.ID, m.Tier, m.Feature.Lat, m.Feature.Lng)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(geomatchCmd)
}
