package engine

import (
	"context"
	"sync"

	"github.com/srinath-46/stability-model/internal/model"
)

// placeFallback exhaustively scans the container on a fixed grid for an
// item the greedy phase could not place. Orientations are tried in
// generator order, skipping any whose extents cannot fit the container
// at all. Within an orientation the scan runs y outermost (still
// gravity-preferring), then x, then z, and accepts the first feasible
// point in that canonical order.
func (p *Packer) placeFallback(ctx context.Context, item model.Item) (model.Position, orientation, bool, error) {
	for _, o := range orientationsOf(item.Dimensions) {
		if o.length > p.container.Width+geomEps ||
			o.height > p.container.Height+geomEps ||
			o.width > p.container.Depth+geomEps {
			continue
		}

		var (
			pos model.Position
			ok  bool
			err error
		)
		if p.settings.FallbackWorkers > 1 {
			pos, ok, err = p.scanGridParallel(ctx, o)
		} else {
			pos, ok, err = p.scanGrid(ctx, o)
		}
		if err != nil {
			return model.Position{}, orientation{}, false, err
		}
		if ok {
			return pos, o, true, nil
		}
	}
	return model.Position{}, orientation{}, false, nil
}

// scanGrid is the sequential scan. Cancellation is checked once per
// grid row.
func (p *Packer) scanGrid(ctx context.Context, o orientation) (model.Position, bool, error) {
	step := p.settings.FallbackStep
	maxY := p.container.Height - o.height

	for y := 0.0; y <= maxY+geomEps; y += step {
		if err := ctx.Err(); err != nil {
			return model.Position{}, false, err
		}
		if pos, ok := p.scanRow(y, o); ok {
			return pos, true, nil
		}
	}
	return model.Position{}, false, nil
}

// scanRow scans one horizontal slice at height y, x before z, and
// returns the first feasible position in it.
func (p *Packer) scanRow(y float64, o orientation) (model.Position, bool) {
	step := p.settings.FallbackStep
	maxX := p.container.Width - o.length
	maxZ := p.container.Depth - o.width

	for x := 0.0; x <= maxX+geomEps; x += step {
		for z := 0.0; z <= maxZ+geomEps; z += step {
			pos := model.Position{X: x, Y: y, Z: z}
			if p.fits(pos, o) {
				return pos, true
			}
		}
	}
	return model.Position{}, false
}

// scanGridParallel distributes grid rows round-robin across workers.
// Feasibility checks per grid point are independent, so the search
// space parallelizes cleanly; determinism is preserved by having each
// worker scan its rows in increasing y and then picking the winner
// minimal in canonical (y, x, z) order. The globally lowest feasible
// row belongs to exactly one worker, and that worker's first hit is in
// it, so the reduced result always matches the sequential scan.
func (p *Packer) scanGridParallel(ctx context.Context, o orientation) (model.Position, bool, error) {
	step := p.settings.FallbackStep
	maxY := p.container.Height - o.height

	var rows []float64
	for y := 0.0; y <= maxY+geomEps; y += step {
		rows = append(rows, y)
	}
	if len(rows) == 0 {
		return model.Position{}, false, nil
	}

	workers := p.settings.FallbackWorkers
	if workers > len(rows) {
		workers = len(rows)
	}

	type hit struct {
		pos model.Position
		ok  bool
		err error
	}
	hits := make([]hit, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < len(rows); i += workers {
				if err := ctx.Err(); err != nil {
					hits[w].err = err
					return
				}
				if pos, ok := p.scanRow(rows[i], o); ok {
					hits[w] = hit{pos: pos, ok: true}
					return
				}
			}
		}(w)
	}
	wg.Wait()

	best := hit{}
	for _, h := range hits {
		if h.err != nil {
			return model.Position{}, false, h.err
		}
		if !h.ok {
			continue
		}
		if !best.ok || canonicalLess(h.pos, best.pos) {
			best = h
		}
	}
	return best.pos, best.ok, nil
}

// canonicalLess orders grid points the way the sequential scan visits
// them: y, then x, then z.
func canonicalLess(a, b model.Position) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Z < b.Z
}
