// Package config holds the runtime overrides (seed, thresholds, stage
// tunables) and the JSON-file-backed catalogs (biomes, culture sets, name
// bases) that the core stages read but never define themselves. Wired
// here with viper so cmd/atlas can merge file + env + flag sources.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// RuntimeConfig is the per-invocation override set.
type RuntimeConfig struct {
	Seed                 uint64  `mapstructure:"seed"`
	Cells                int     `mapstructure:"cells"`
	PrecipitationModifier float64 `mapstructure:"precipitation_modifier"`
	TemperatureEquator   float64 `mapstructure:"temperature_equator"`
	TemperaturePole      float64 `mapstructure:"temperature_pole"`
	HeightExponent       float64 `mapstructure:"height_exponent"`
	LakeElevationLimit   int     `mapstructure:"lake_elevation_limit"`
	MaxPassableElevation int     `mapstructure:"max_passable_elevation"`
	CultureCount         int     `mapstructure:"culture_count"`
	NeutralRate          float64 `mapstructure:"neutral_rate"`
	PowerInput           float64 `mapstructure:"power_input"`
	EstuaryThreshold     float64 `mapstructure:"estuary_threshold"`
	MinFluxToFormRiver   float64 `mapstructure:"min_flux_to_form_river"`
	MaxDowncut           float64 `mapstructure:"max_downcut"`
}

// Defaults returns the out-of-the-box RuntimeConfig, used when no config
// file is supplied and no flags override a field.
func Defaults() RuntimeConfig {
	return RuntimeConfig{
		Seed:                  9543572450198918714,
		Cells:                 10000,
		PrecipitationModifier: 1.0,
		TemperatureEquator:    25,
		TemperaturePole:       -30,
		HeightExponent:        2,
		LakeElevationLimit:    20,
		MaxPassableElevation:  85,
		CultureCount:          12,
		NeutralRate:           1.0,
		PowerInput:            1.0,
		EstuaryThreshold:      20,
		MinFluxToFormRiver:    30,
		MaxDowncut:            5,
	}
}

// Load merges the out-of-the-box defaults with an optional JSON config
// file and environment variables (AUTO_ATLAS_* prefix). path may be
// empty, meaning defaults + env only. CLI flags are not bound here;
// cmd/atlas applies --seed to the result.
func Load(v *viper.Viper, path string) (RuntimeConfig, error) {
	cfg := Defaults()
	v.SetConfigType("json")
	v.SetEnvPrefix("AUTO_ATLAS")
	v.AutomaticEnv()
	setDefaults(v, cfg)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("loading config %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing runtime config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg RuntimeConfig) {
	v.SetDefault("seed", cfg.Seed)
	v.SetDefault("cells", cfg.Cells)
	v.SetDefault("precipitation_modifier", cfg.PrecipitationModifier)
	v.SetDefault("temperature_equator", cfg.TemperatureEquator)
	v.SetDefault("temperature_pole", cfg.TemperaturePole)
	v.SetDefault("height_exponent", cfg.HeightExponent)
	v.SetDefault("lake_elevation_limit", cfg.LakeElevationLimit)
	v.SetDefault("max_passable_elevation", cfg.MaxPassableElevation)
	v.SetDefault("culture_count", cfg.CultureCount)
	v.SetDefault("neutral_rate", cfg.NeutralRate)
	v.SetDefault("power_input", cfg.PowerInput)
	v.SetDefault("estuary_threshold", cfg.EstuaryThreshold)
	v.SetDefault("min_flux_to_form_river", cfg.MinFluxToFormRiver)
	v.SetDefault("max_downcut", cfg.MaxDowncut)
}
