package geodar

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/config"
)

var cfgFile string
var cfg *config.Config

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "geodar",
	Short: "GeoDAR - georeferencing for world register dam records",
	Long: `GeoDAR georeferences dam and reservoir records from the world
register by generating geocoding queries, ranking geocoder candidates
against the register's administrative context, and cross-matching
records with already georeferenced reservoir registries.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}
}
