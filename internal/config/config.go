package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Paths PathsConfig `yaml:"paths" mapstructure:"paths"`
	Land  LandConfig  `yaml:"land" mapstructure:"land"`
	Hull  HullConfig  `yaml:"hull" mapstructure:"hull"`
	Log   LogConfig   `yaml:"log" mapstructure:"log"`
}

// PathsConfig holds the input and output file locations.
type PathsConfig struct {
	Stations string `yaml:"stations" mapstructure:"stations"`
	Land     string `yaml:"land" mapstructure:"land"`
	Out      string `yaml:"out" mapstructure:"out"`
}

// LandConfig configures the reference land-mass input.
type LandConfig struct {
	Format string `yaml:"format" mapstructure:"format"` // "geojson" or "shapefile"
}

// HullConfig holds the boundary-derivation tunables. All distances are in
// degrees, matching the unprojected WGS84 inputs.
type HullConfig struct {
	Alpha             float64 `yaml:"alpha" mapstructure:"alpha"`
	SmoothRadius      float64 `yaml:"smooth_radius" mapstructure:"smooth_radius"`
	SimplifyTolerance float64 `yaml:"simplify_tolerance" mapstructure:"simplify_tolerance"`
	QuadSegments      int     `yaml:"quad_segments" mapstructure:"quad_segments"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("REMITMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("paths.stations", "data/stations.csv")
	v.SetDefault("paths.land", "data/gb.geojson")
	v.SetDefault("paths.out", "out/ltw-remit.geojson")
	v.SetDefault("land.format", "geojson")
	v.SetDefault("hull.alpha", 10.0)
	v.SetDefault("hull.smooth_radius", 0.02)
	v.SetDefault("hull.simplify_tolerance", 0.005)
	v.SetDefault("hull.quad_segments", 16)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
