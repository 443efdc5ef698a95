// Package config loads pipeline configuration from file and
// environment.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the full pipeline configuration.
type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Store    StoreConfig    `mapstructure:"store"`
	Geocoder GeocoderConfig `mapstructure:"geocoder"`
	Pairing  PairingConfig  `mapstructure:"pairing"`
}

// APIConfig configures the HTTP server.
type APIConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	// Timeout in seconds for request handling and shutdown.
	Timeout int `mapstructure:"timeout"`
}

// StoreConfig configures the SQLite database.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// GeocoderConfig configures the geocoding run.
type GeocoderConfig struct {
	// DailyQuota caps requests per run; 0 means unlimited.
	DailyQuota int `mapstructure:"daily_quota"`
}

// PairingConfig configures dam-waterbody pairing.
type PairingConfig struct {
	// RadiiMeters are the pairing rounds, tried in order.
	RadiiMeters []float64 `mapstructure:"radii_meters"`
	// MaxCandidates caps nearby waterbodies considered per dam.
	MaxCandidates int `mapstructure:"max_candidates"`
}

// Load reads configuration from the given file, falling back to
// defaults and GEODAR_* environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("GEODAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.timeout", 30)

	v.SetDefault("store.path", "geodar.db")

	v.SetDefault("geocoder.daily_quota", 0)

	v.SetDefault("pairing.radii_meters", []float64{500, 1000})
	v.SetDefault("pairing.max_candidates", 5)
}
