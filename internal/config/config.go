// Package config loads and merges the engine configuration: indoor design
// conditions, tunable calculation factors, cache settings, and logging.
// Configuration resolves defaults -> YAML file -> environment overrides.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/Masterminds/semver/v3"

	"github.com/hvackit/loadcalc/internal/logging"
)

// SupportedDataConstraint is the semver range of lookup-table data versions
// this build of the engine understands.
const SupportedDataConstraint = "^1.0"

// DefaultDataVersion is the lookup-table data version shipped with the binary.
const DefaultDataVersion = "1.2.0"

// ErrDataVersion is returned when a config declares a lookup-table data
// version outside the supported range.
var ErrDataVersion = errors.New("unsupported data version")

// DesignConfig holds indoor design conditions.
type DesignConfig struct {
	// IndoorHeatingF is the indoor heating design temperature.
	IndoorHeatingF float64 `yaml:"indoor_heating_f"`

	// IndoorCoolingF is the indoor cooling design temperature.
	IndoorCoolingF float64 `yaml:"indoor_cooling_f"`

	// IndoorRH is the indoor design relative humidity (0-1) for latent
	// load calculations.
	IndoorRH float64 `yaml:"indoor_rh"`
}

// FactorsConfig holds the tunable calculation multipliers. Zero values mean
// "use the built-in default"; Normalize fills them in.
type FactorsConfig struct {
	// CornerCooling and CornerHeating multiply corner-room loads.
	CornerCooling float64 `yaml:"corner_cooling"`
	CornerHeating float64 `yaml:"corner_heating"`

	// LowConfidence pads rooms whose detection confidence is poor.
	LowConfidence float64 `yaml:"low_confidence"`

	// InteriorHeating discounts heating for rooms with no exterior wall.
	InteriorHeating float64 `yaml:"interior_heating"`

	// HeatingInfiltration derates design-hour infiltration for heating.
	HeatingInfiltration float64 `yaml:"heating_infiltration"`

	// AreaCorrectionCap bounds the footprint reconciliation multiplier.
	AreaCorrectionCap float64 `yaml:"area_correction_cap"`
}

// CacheConfig holds climate-cache settings.
type CacheConfig struct {
	// Backend selects the cache store: "file" (default) or "redis".
	Backend string `yaml:"backend"`

	// Dir is the file-backend cache directory. Empty means the default
	// under the user cache dir.
	Dir string `yaml:"dir"`

	// RedisAddr is the redis backend address (host:port).
	RedisAddr string `yaml:"redis_addr"`

	// TTLHours is the cache entry lifetime.
	TTLHours int `yaml:"ttl_hours"`
}

// Config is the full engine configuration.
type Config struct {
	// DataVersion declares which lookup-table data version the config was
	// written against. Checked against SupportedDataConstraint on load.
	DataVersion string `yaml:"data_version"`

	Design  DesignConfig   `yaml:"design"`
	Factors FactorsConfig  `yaml:"factors"`
	Cache   CacheConfig    `yaml:"cache"`
	Logging logging.Config `yaml:"logging"`
}

// New returns the built-in default configuration.
func New() *Config {
	return &Config{
		DataVersion: DefaultDataVersion,
		Design: DesignConfig{
			IndoorHeatingF: 70,
			IndoorCoolingF: 75,
			IndoorRH:       0.50,
		},
		Factors: FactorsConfig{
			CornerHeating:       1.15,
			CornerCooling:       1.20,
			LowConfidence:       1.10,
			InteriorHeating:     0.70,
			HeatingInfiltration: 0.85,
			AreaCorrectionCap:   1.20,
		},
		Cache: CacheConfig{
			Backend:  "file",
			TTLHours: 24,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load builds the effective configuration: defaults, overlaid by the YAML
// file at path (when path is non-empty and the file exists), overlaid by
// environment variables. A missing file is not an error; a malformed or
// version-incompatible file is.
func Load(ctx context.Context, path string) (*Config, error) {
	cfg := New()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := ShallowMergeYAML(cfg, path); err != nil {
				return nil, err
			}
		} else {
			log := logging.FromContext(ctx)
			log.Debug().
				Str("component", "config").
				Str("path", path).
				Msg("config file not found, using defaults")
		}
	}

	applyEnvOverrides(cfg)
	cfg.normalize()

	if err := cfg.checkDataVersion(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// checkDataVersion validates DataVersion against SupportedDataConstraint.
func (c *Config) checkDataVersion() error {
	if c.DataVersion == "" {
		c.DataVersion = DefaultDataVersion
		return nil
	}

	v, err := semver.NewVersion(c.DataVersion)
	if err != nil {
		return fmt.Errorf("%w: %q is not valid semver", ErrDataVersion, c.DataVersion)
	}

	constraint, err := semver.NewConstraint(SupportedDataConstraint)
	if err != nil {
		return fmt.Errorf("parsing data version constraint: %w", err)
	}

	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrDataVersion, c.DataVersion, SupportedDataConstraint)
	}

	return nil
}

// normalize fills zero-valued tunables with their built-in defaults so a
// sparse YAML file cannot zero out a multiplier.
func (c *Config) normalize() {
	def := New()

	if c.Design.IndoorHeatingF == 0 {
		c.Design.IndoorHeatingF = def.Design.IndoorHeatingF
	}
	if c.Design.IndoorCoolingF == 0 {
		c.Design.IndoorCoolingF = def.Design.IndoorCoolingF
	}
	if c.Design.IndoorRH == 0 {
		c.Design.IndoorRH = def.Design.IndoorRH
	}

	if c.Factors.CornerCooling == 0 {
		c.Factors.CornerCooling = def.Factors.CornerCooling
	}
	if c.Factors.CornerHeating == 0 {
		c.Factors.CornerHeating = def.Factors.CornerHeating
	}
	if c.Factors.LowConfidence == 0 {
		c.Factors.LowConfidence = def.Factors.LowConfidence
	}
	if c.Factors.InteriorHeating == 0 {
		c.Factors.InteriorHeating = def.Factors.InteriorHeating
	}
	if c.Factors.HeatingInfiltration == 0 {
		c.Factors.HeatingInfiltration = def.Factors.HeatingInfiltration
	}
	if c.Factors.AreaCorrectionCap == 0 {
		c.Factors.AreaCorrectionCap = def.Factors.AreaCorrectionCap
	}

	if c.Cache.Backend == "" {
		c.Cache.Backend = def.Cache.Backend
	}
	if c.Cache.TTLHours <= 0 {
		c.Cache.TTLHours = def.Cache.TTLHours
	}

	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = def.Logging.Format
	}
	if c.Logging.Output == "" {
		c.Logging.Output = def.Logging.Output
	}
}

// applyEnvOverrides maps LOADCALC_* environment variables onto the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOADCALC_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LOADCALC_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("LOADCALC_CACHE_BACKEND"); v != "" {
		cfg.Cache.Backend = v
	}
	if v := os.Getenv("LOADCALC_CACHE_DIR"); v != "" {
		cfg.Cache.Dir = v
	}
	if v := os.Getenv("LOADCALC_REDIS_ADDR"); v != "" {
		cfg.Cache.RedisAddr = v
	}
	if v := os.Getenv("LOADCALC_INDOOR_HEATING_F"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.Design.IndoorHeatingF = f
		}
	}
	if v := os.Getenv("LOADCALC_INDOOR_COOLING_F"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.Design.IndoorCoolingF = f
		}
	}
}
