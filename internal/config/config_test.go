package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(t.TempDir()))

	assert.Equal(t, "info", viper.GetString("logLevel"))
	assert.Equal(t, "text", viper.GetString("output"))
	assert.Equal(t, 0.5, viper.GetFloat64("pack.gap"))
	assert.Equal(t, 2.0, viper.GetFloat64("pack.fallbackStep"))
	assert.Equal(t, 10.0, viper.GetFloat64("pack.volumeTolerance"))
	assert.Equal(t, 1, viper.GetInt("pack.fallbackWorkers"))
}

func TestLoad_WithConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := "logLevel: debug\npack:\n  gap: 1.5\n  fallbackStep: 0.5\n  fallbackWorkers: 4\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigName+".yaml"), []byte(cfg), 0644))

	require.NoError(t, Load(dir))

	assert.Equal(t, "debug", GetString("logLevel"))

	settings := PackSettings()
	assert.Equal(t, 1.5, settings.Gap)
	assert.Equal(t, 0.5, settings.FallbackStep)
	assert.Equal(t, 4, settings.FallbackWorkers)
	assert.Equal(t, 10.0, settings.VolumeTolerance, "untouched keys keep their defaults")
}

func TestLoad_MalformedFileFails(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigName+".yaml"), []byte("pack: ["), 0644))

	require.Error(t, Load(dir))
}

func TestPackSettings_DefaultsMatchEngineDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(t.TempDir()))

	settings := PackSettings()
	assert.Equal(t, 0.5, settings.Gap)
	assert.Equal(t, 2.0, settings.FallbackStep)
	assert.Equal(t, 0.1, settings.AxisTolerance)
	assert.Equal(t, 1.0, settings.DedupTolerance)
	assert.Equal(t, 0.5, settings.ConsumeTolerance)
}
