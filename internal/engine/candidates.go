package engine

import (
	"math"
	"sort"

	"github.com/srinath-46/stability-model/internal/model"
)

// candidateSet maintains the frontier of positions where the next item
// may start. It is seeded with the origin corner and evolves purely as
// a function of placements: consuming the used point, spawning offsets
// around the placed box, and pruning points swallowed by placed volume.
type candidateSet struct {
	points    []model.Position
	container model.Container
	settings  model.PackSettings
}

func newCandidateSet(container model.Container, settings model.PackSettings) *candidateSet {
	return &candidateSet{
		points:    []model.Position{{X: 0, Y: 0, Z: 0}},
		container: container,
		settings:  settings,
	}
}

// sorted returns the candidates in bottom-left-front order: lowest y
// first, then lowest x, then lowest z. Near-equal y or x values (within
// AxisTolerance) count as ties so the next axis decides. This ordering
// is what makes packing gravity-aware: items settle low and toward the
// origin corner.
func (s *candidateSet) sorted() []model.Position {
	tol := s.settings.AxisTolerance
	out := make([]model.Position, len(s.points))
	copy(out, s.points)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if math.Abs(a.Y-b.Y) > tol {
			return a.Y < b.Y
		}
		if math.Abs(a.X-b.X) > tol {
			return a.X < b.X
		}
		return a.Z < b.Z
	})
	return out
}

// add inserts a candidate unless it falls outside the container or an
// existing candidate sits within DedupTolerance on every axis.
func (s *candidateSet) add(pt model.Position) {
	if pt.X < 0 || pt.Y < 0 || pt.Z < 0 {
		return
	}
	if pt.X > s.container.Width || pt.Y > s.container.Height || pt.Z > s.container.Depth {
		return
	}
	dup := s.settings.DedupTolerance
	for _, existing := range s.points {
		if math.Abs(existing.X-pt.X) <= dup &&
			math.Abs(existing.Y-pt.Y) <= dup &&
			math.Abs(existing.Z-pt.Z) <= dup {
			return
		}
	}
	s.points = append(s.points, pt)
}

// consume removes a position just used for a placement, along with any
// near-duplicate within ConsumeTolerance on every axis.
func (s *candidateSet) consume(pt model.Position) {
	tol := s.settings.ConsumeTolerance
	kept := s.points[:0]
	for _, existing := range s.points {
		if math.Abs(existing.X-pt.X) <= tol &&
			math.Abs(existing.Y-pt.Y) <= tol &&
			math.Abs(existing.Z-pt.Z) <= tol {
			continue
		}
		kept = append(kept, existing)
	}
	s.points = kept
}

// extend spawns the frontier points around a box just placed at origin:
// push right, stack up, push back, plus the three pairwise diagonals
// for tighter corner fill. Each offset includes the configured gap.
func (s *candidateSet) extend(origin model.Position, o orientation) {
	dx := o.length + s.settings.Gap
	dy := o.height + s.settings.Gap
	dz := o.width + s.settings.Gap

	s.add(model.Position{X: origin.X + dx, Y: origin.Y, Z: origin.Z})
	s.add(model.Position{X: origin.X, Y: origin.Y + dy, Z: origin.Z})
	s.add(model.Position{X: origin.X, Y: origin.Y, Z: origin.Z + dz})
	s.add(model.Position{X: origin.X + dx, Y: origin.Y, Z: origin.Z + dz})
	s.add(model.Position{X: origin.X + dx, Y: origin.Y + dy, Z: origin.Z})
	s.add(model.Position{X: origin.X, Y: origin.Y + dy, Z: origin.Z + dz})
}

// prune drops every candidate strictly inside any placed box. Surface
// points survive.
func (s *candidateSet) prune(placed []model.PlacedItem) {
	kept := s.points[:0]
	for _, pt := range s.points {
		inside := false
		for i := range placed {
			if pointInsideBox(pt, placed[i]) {
				inside = true
				break
			}
		}
		if !inside {
			kept = append(kept, pt)
		}
	}
	s.points = kept
}
