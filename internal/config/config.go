// Package config holds the application configuration for the packing
// CLI: engine tunables, logging, and output preferences. Values come
// from an optional config file with sane defaults for everything.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/srinath-46/stability-model/internal/model"
)

// ConfigName is the base name of the optional config file.
const ConfigName = "stability-packer.cfg"

// Load sets defaults and reads the config file from configDir if one
// exists. A missing file is fine; a malformed one is not.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("output", "text")

	defaults := model.DefaultPackSettings()
	viper.SetDefault("pack.gap", defaults.Gap)
	viper.SetDefault("pack.fallbackStep", defaults.FallbackStep)
	viper.SetDefault("pack.volumeTolerance", defaults.VolumeTolerance)
	viper.SetDefault("pack.axisTolerance", defaults.AxisTolerance)
	viper.SetDefault("pack.dedupTolerance", defaults.DedupTolerance)
	viper.SetDefault("pack.consumeTolerance", defaults.ConsumeTolerance)
	viper.SetDefault("pack.fallbackWorkers", defaults.FallbackWorkers)

	viper.SetConfigName(ConfigName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// PackSettings builds engine settings from the loaded configuration.
func PackSettings() model.PackSettings {
	return model.PackSettings{
		Gap:              viper.GetFloat64("pack.gap"),
		FallbackStep:     viper.GetFloat64("pack.fallbackStep"),
		VolumeTolerance:  viper.GetFloat64("pack.volumeTolerance"),
		AxisTolerance:    viper.GetFloat64("pack.axisTolerance"),
		DedupTolerance:   viper.GetFloat64("pack.dedupTolerance"),
		ConsumeTolerance: viper.GetFloat64("pack.consumeTolerance"),
		FallbackWorkers:  viper.GetInt("pack.fallbackWorkers"),
	}.Normalize()
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
