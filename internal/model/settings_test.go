package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPackSettings(t *testing.T) {
	s := DefaultPackSettings()

	assert.Equal(t, 0.5, s.Gap)
	assert.Equal(t, 2.0, s.FallbackStep)
	assert.Equal(t, 10.0, s.VolumeTolerance)
	assert.Equal(t, 0.1, s.AxisTolerance)
	assert.Equal(t, 1, s.FallbackWorkers)
}

func TestPackSettingsNormalize_ZeroValueGetsDefaults(t *testing.T) {
	s := PackSettings{}.Normalize()

	def := DefaultPackSettings()
	assert.Equal(t, 0.0, s.Gap, "zero gap is a valid tight-packing choice")
	assert.Equal(t, def.FallbackStep, s.FallbackStep)
	assert.Equal(t, def.AxisTolerance, s.AxisTolerance)
	assert.Equal(t, def.DedupTolerance, s.DedupTolerance)
	assert.Equal(t, def.ConsumeTolerance, s.ConsumeTolerance)
	assert.Equal(t, 1, s.FallbackWorkers)
}

func TestPackSettingsNormalize_ClampsNegatives(t *testing.T) {
	s := PackSettings{Gap: -1, FallbackStep: -3, FallbackWorkers: -2}.Normalize()

	assert.Equal(t, 0.0, s.Gap)
	assert.Equal(t, DefaultPackSettings().FallbackStep, s.FallbackStep)
	assert.Equal(t, 1, s.FallbackWorkers)
}

func TestPackSettingsNormalize_KeepsExplicitValues(t *testing.T) {
	s := PackSettings{
		Gap:              1.5,
		FallbackStep:     0.5,
		VolumeTolerance:  2,
		AxisTolerance:    0.01,
		DedupTolerance:   0.2,
		ConsumeTolerance: 0.1,
		FallbackWorkers:  8,
	}

	assert.Equal(t, s, s.Normalize())
}
