package geodar

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/store"
)

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest [file]",
	Short: "Ingest register records from a CSV export",
	Long: `Ingest records from a world register CSV export. Each row is
repaired (territory promotion, state normalization, country-as-state
invalidation) before being stored.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(cfg.Store.Path)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer st.Close()

		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open file: %w", err)
		}
		defer file.Close()

		n, err := store.ImportRecords(context.Background(), st, file)
		if err != nil {
			return fmt.Errorf("import failed after %d records: %w", n, err)
		}

		fmt.Printf("Imported %d records\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}
