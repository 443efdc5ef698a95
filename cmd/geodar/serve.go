package geodar

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/api"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/store"
)

var serverPort int

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP API server exposing record management, name
similarity, candidate ranking, registry matching, and dam-reservoir
pairing over HTTP endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(cfg.Store.Path)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer st.Close()

		if serverPort != 0 {
			cfg.API.Port = serverPort
		}

		server := api.NewServer(cfg, st)
		return server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVar(&serverPort, "port", 0, "Server port (overrides config)")
}
