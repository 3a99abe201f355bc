package model

// PackSettings holds the tunable constants of the placement engine.
type PackSettings struct {
	// Gap is the spacing added to candidate offsets around a placed box,
	// keeping neighbors from touching exactly (avoids visual and
	// numerical overlap in downstream renderers).
	Gap float64 `json:"gap" yaml:"gap"`

	// FallbackStep is the grid step of the exhaustive fallback scan.
	// Smaller steps find tighter spots at higher search cost.
	FallbackStep float64 `json:"fallback_step" yaml:"fallback_step"`

	// VolumeTolerance treats two items whose volumes differ by at most
	// this much as equal-volume during ordering, so weight breaks the tie.
	VolumeTolerance float64 `json:"volume_tolerance" yaml:"volume_tolerance"`

	// AxisTolerance is the per-axis slack used when comparing candidate
	// positions for bottom-left-front iteration order.
	AxisTolerance float64 `json:"axis_tolerance" yaml:"axis_tolerance"`

	// DedupTolerance suppresses a new candidate when an existing one is
	// within this distance on every axis.
	DedupTolerance float64 `json:"dedup_tolerance" yaml:"dedup_tolerance"`

	// ConsumeTolerance removes near-duplicates of a consumed candidate
	// within this distance on every axis.
	ConsumeTolerance float64 `json:"consume_tolerance" yaml:"consume_tolerance"`

	// FallbackWorkers splits the fallback grid scan across this many
	// goroutines when > 1. The result is identical to the sequential
	// scan; this is purely a speedup.
	FallbackWorkers int `json:"fallback_workers" yaml:"fallback_workers"`
}

func DefaultPackSettings() PackSettings {
	return PackSettings{
		Gap:              0.5,
		FallbackStep:     2.0,
		VolumeTolerance:  10.0,
		AxisTolerance:    0.1,
		DedupTolerance:   1.0,
		ConsumeTolerance: 0.5,
		FallbackWorkers:  1,
	}
}

// Normalize replaces non-positive tunables with their defaults so a
// zero-value settings struct behaves sanely. Gap is left alone: zero is
// a valid (tight-packing) choice.
func (s PackSettings) Normalize() PackSettings {
	def := DefaultPackSettings()
	if s.Gap < 0 {
		s.Gap = 0
	}
	if s.FallbackStep <= 0 {
		s.FallbackStep = def.FallbackStep
	}
	if s.VolumeTolerance < 0 {
		s.VolumeTolerance = def.VolumeTolerance
	}
	if s.AxisTolerance <= 0 {
		s.AxisTolerance = def.AxisTolerance
	}
	if s.DedupTolerance <= 0 {
		s.DedupTolerance = def.DedupTolerance
	}
	if s.ConsumeTolerance <= 0 {
		s.ConsumeTolerance = def.ConsumeTolerance
	}
	if s.FallbackWorkers < 1 {
		s.FallbackWorkers = 1
	}
	return s
}
