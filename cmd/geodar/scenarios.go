package geodar

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/scenario"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/store"
)

// scenariosCmd represents the scenarios command
var scenariosCmd = &cobra.Command{
	Use:   "scenarios [record-id]",
	Short: "Print the geocoding queries for a record",
	Long: `Print the geocoding query list for a stored record: suffixed
name variants with and without the state, country-restricted forms
first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(cfg.Store.Path)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer st.Close()

		rec, err := st.Record(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("record %s: %w", args[0], err)
		}

		queries, ok := scenario.Build(&rec)
		if !ok {
			fmt.Printf("Record %s has no usable name\n", rec.ID)
			return nil
		}

		for _, q := range queries {
			fmt.Printf("%s\t%s\n", q.Address, q.Encoded)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
}
