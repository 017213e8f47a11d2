package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// SimConfig holds the simulation defaults shared by the viewer and the batch
// report runner.
type SimConfig struct {
	Coverage string  `json:"coverage" mapstructure:"coverage"`
	Rotation string  `json:"rotation" mapstructure:"rotation"`
	Scenario string  `json:"scenario" mapstructure:"scenario"`
	LOS      float64 `json:"los" mapstructure:"los"`
	Seed     int64   `json:"seed" mapstructure:"seed"`
}

// ViewerConfig holds the field viewer's display settings.
type ViewerConfig struct {
	WindowScale int  `json:"windowScale" mapstructure:"windowScale"`
	ShowZones   bool `json:"showZones" mapstructure:"showZones"`
	ShowRoutes  bool `json:"showRoutes" mapstructure:"showRoutes"`
}

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file. Defaults are
// installed before the file is read, so a failed Load still leaves usable
// settings behind.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("sim.coverage", "cover-3")
	viper.SetDefault("sim.rotation", "")
	viper.SetDefault("sim.scenario", "balanced")
	viper.SetDefault("sim.los", 30.0)
	viper.SetDefault("sim.seed", 1)

	viper.SetDefault("viewer.windowScale", 14)
	viper.SetDefault("viewer.showZones", true)
	viper.SetDefault("viewer.showRoutes", true)

	viper.SetConfigName("coverage_core.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetSimConfig returns the typed simulation settings.
func GetSimConfig() SimConfig {
	return SimConfig{
		Coverage: viper.GetString("sim.coverage"),
		Rotation: viper.GetString("sim.rotation"),
		Scenario: viper.GetString("sim.scenario"),
		LOS:      viper.GetFloat64("sim.los"),
		Seed:     viper.GetInt64("sim.seed"),
	}
}

// GetViewerConfig returns the typed viewer settings.
func GetViewerConfig() ViewerConfig {
	return ViewerConfig{
		WindowScale: viper.GetInt("viewer.windowScale"),
		ShowZones:   viper.GetBool("viewer.showZones"),
		ShowRoutes:  viper.GetBool("viewer.showRoutes"),
	}
}
