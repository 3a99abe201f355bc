package engine

import (
	"context"

	"github.com/srinath-46/stability-model/internal/model"
)

// Observer is invoked after each successful placement with the placed
// item, the running placement count, and the cumulative used volume.
// The surrounding system uses it to animate and report loading
// progress; the engine never depends on it and tolerates nil.
type Observer func(placed model.PlacedItem, count int, usedVolume float64)

// Packer runs the 3D container-packing algorithm: a greedy first-fit
// over frontier candidate positions, with an exhaustive grid fallback
// for items the frontier cannot accommodate. One Packer owns one
// packing job; instances are single-use and not safe for concurrent
// calls.
type Packer struct {
	container  model.Container
	settings   model.PackSettings
	candidates *candidateSet
	placed     []model.PlacedItem
	usedVolume float64
}

// New creates a Packer for one load. The container must have positive
// extents; settings are normalized so a zero value gets the defaults.
func New(container model.Container, settings model.PackSettings) (*Packer, error) {
	if err := container.Validate(); err != nil {
		return nil, err
	}
	settings = settings.Normalize()
	return &Packer{
		container:  container,
		settings:   settings,
		candidates: newCandidateSet(container, settings),
	}, nil
}

// Pack places the items into the container and returns the resulting
// layout. Items that cannot be placed anywhere are returned in
// PackResult.Unplaced rather than failing the call; only structurally
// invalid input (a non-positive extent or negative weight) rejects the
// whole batch. The context is consulted between fallback grid rows; a
// cancellation returns the partial result together with the context
// error.
func (p *Packer) Pack(ctx context.Context, items []model.Item, observer Observer) (model.PackResult, error) {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return model.PackResult{}, err
		}
	}

	var unplaced []model.Item
	for _, item := range orderItems(items, p.settings.VolumeTolerance) {
		if pos, o, ok := p.placeGreedy(item); ok {
			p.commit(item, pos, o, observer)
			continue
		}

		pos, o, ok, err := p.placeFallback(ctx, item)
		if err != nil {
			return p.result(unplaced), err
		}
		if ok {
			p.commit(item, pos, o, observer)
			continue
		}

		unplaced = append(unplaced, item)
	}

	return p.result(unplaced), nil
}

// placeGreedy tries candidate positions in bottom-left-front order and
// the 6 orientations in generator order, accepting the first pair that
// fits.
func (p *Packer) placeGreedy(item model.Item) (model.Position, orientation, bool) {
	for _, pos := range p.candidates.sorted() {
		for _, o := range orientationsOf(item.Dimensions) {
			if p.fits(pos, o) {
				return pos, o, true
			}
		}
	}
	return model.Position{}, orientation{}, false
}

// commit records a placement and does all the shared bookkeeping: used
// volume, candidate consumption and regeneration, pruning, and the
// observer call. Fallback placements go through here too, so later
// items still benefit from frontier tracking.
func (p *Packer) commit(item model.Item, pos model.Position, o orientation, observer Observer) {
	placed := model.PlacedItem{
		Item:      item,
		Position:  pos,
		Length:    o.length,
		Width:     o.width,
		Height:    o.height,
		Stability: stabilityFor(pos),
	}

	p.placed = append(p.placed, placed)
	p.usedVolume += placed.Volume()

	p.candidates.consume(pos)
	p.candidates.extend(pos, o)
	p.candidates.prune(p.placed)

	if observer != nil {
		observer(placed, len(p.placed), p.usedVolume)
	}
}

// stabilityFor tags floor-resting items 1.0 and raised items a flat
// 0.85. This is a coarse placeholder, not a support-area measure.
func stabilityFor(pos model.Position) float64 {
	if pos.Y <= geomEps {
		return 1.0
	}
	return 0.85
}

func (p *Packer) result(unplaced []model.Item) model.PackResult {
	return model.PackResult{
		Placed:     p.placed,
		Unplaced:   unplaced,
		UsedVolume: p.usedVolume,
	}
}
