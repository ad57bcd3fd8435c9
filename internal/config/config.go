package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Log      LogConfig
	Geo      GeoConfig
	FiveStar FiveStarConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// LogConfig holds log file settings.
type LogConfig struct {
	Path  string
	Level string
}

// GeoConfig holds position lookup settings. When UseIPLookup is false the
// static station coordinates are used instead of calling out to ip-api.com.
type GeoConfig struct {
	UseIPLookup      bool
	StationLatitude  float64
	StationLongitude float64
}

// FiveStarConfig holds the base URL the rating widget assets are served from.
type FiveStarConfig struct {
	AssetBaseURL string
}

// Load reads configuration from file and env. Env var overrides use prefix BOATDASH_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "boatdash", "boatdash.db"))
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "boatdash", "boatdash.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("geo.use_ip_lookup", true)
	// Fallback position, roughly the middle of the demo fleet.
	v.SetDefault("geo.station_latitude", 37.80)
	v.SetDefault("geo.station_longitude", -122.40)
	v.SetDefault("fivestar.asset_base_url", "https://unpkg.com/fivestar-rating@1/dist")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("BOATDASH_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "boatdash"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BOATDASH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
