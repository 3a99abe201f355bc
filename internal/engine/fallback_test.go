package engine

import (
	"context"
	"testing"

	"github.com/srinath-46/stability-model/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallback_FindsSpotGreedyMisses(t *testing.T) {
	// The base slab fills the floor and leaves one frontier candidate
	// at y=6.5, where the 4-high lid no longer fits under the ceiling.
	// Only the grid scan discovers the y=6 shelf right on top of it.
	p := mustPacker(t, model.Container{Width: 20, Height: 10, Depth: 10})
	items := []model.Item{
		model.NewItem("Base", 20, 10, 6, 30),
		model.NewItem("Lid", 20, 10, 4, 10),
	}

	result, err := p.Pack(context.Background(), items, nil)

	require.NoError(t, err)
	require.Len(t, result.Placed, 2)
	assert.True(t, result.FullyPlaced())
	assert.Equal(t, model.Position{X: 0, Y: 6, Z: 0}, result.Placed[1].Position)
}

func TestFallback_SkipsImpossibleOrientations(t *testing.T) {
	p := mustPacker(t, model.Container{Width: 10, Height: 10, Depth: 10})
	item := model.NewItem("Pole", 30, 2, 2, 1)

	result, err := p.Pack(context.Background(), []model.Item{item}, nil)

	require.NoError(t, err)
	assert.Empty(t, result.Placed, "no orientation fits a 30-long pole in a 10-cube")
	assert.Len(t, result.Unplaced, 1)
}

func TestFallback_ParallelMatchesSequential(t *testing.T) {
	// The slab leaves a 20-wide slot against the right wall that no
	// gapped frontier candidate can reach (the 40.5 candidate pushes
	// the wall piece out of bounds); only the grid scan finds x=40.
	// The plank fits nowhere and exercises the full multi-row scan.
	container := model.Container{Width: 60, Height: 40, Depth: 40}
	items := []model.Item{
		model.NewItem("Slab", 40, 40, 24, 80),
		model.NewItem("Wall", 20, 40, 40, 30),
		model.NewItem("Plank", 50, 30, 15, 10),
		model.NewItem("Filler", 20, 20, 6, 5),
	}

	run := func(workers int) model.PackResult {
		settings := testSettings()
		settings.FallbackWorkers = workers
		p, err := New(container, settings)
		require.NoError(t, err)
		result, err := p.Pack(context.Background(), items, nil)
		require.NoError(t, err)
		return result
	}

	sequential := run(1)
	require.Len(t, sequential.Placed, 3)
	require.Len(t, sequential.Unplaced, 1)
	assert.Equal(t, "Wall", sequential.Placed[1].Item.Label)
	assert.Equal(t, model.Position{X: 40, Y: 0, Z: 0}, sequential.Placed[1].Position,
		"the wall piece comes from the fallback scan")
	assert.Equal(t, "Plank", sequential.Unplaced[0].Label)
	for _, workers := range []int{2, 4, 13} {
		assert.Equal(t, sequential, run(workers),
			"parallel scan with %d workers must be bit-identical", workers)
	}
}

func TestFallback_CancellationReturnsPartialResult(t *testing.T) {
	p := mustPacker(t, model.Container{Width: 20, Height: 10, Depth: 10})
	items := []model.Item{
		model.NewItem("Base", 20, 10, 6, 30),
		model.NewItem("Lid", 20, 10, 4, 10),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The base still lands via the greedy phase, which never consults
	// the context; the lid needs the fallback scan, which does.
	result, err := p.Pack(ctx, items, nil)

	require.ErrorIs(t, err, context.Canceled)
	assert.Len(t, result.Placed, 1)
}

func TestFallback_CancellationInParallelScan(t *testing.T) {
	settings := testSettings()
	settings.FallbackWorkers = 4
	p, err := New(model.Container{Width: 20, Height: 10, Depth: 10}, settings)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = p.Pack(ctx, []model.Item{
		model.NewItem("Base", 20, 10, 6, 30),
		model.NewItem("Lid", 20, 10, 4, 10),
	}, nil)

	require.ErrorIs(t, err, context.Canceled)
}

func TestCanonicalLess(t *testing.T) {
	assert.True(t, canonicalLess(model.Position{Y: 1}, model.Position{Y: 2}))
	assert.True(t, canonicalLess(model.Position{Y: 1, X: 3}, model.Position{Y: 1, X: 4}))
	assert.True(t, canonicalLess(model.Position{Y: 1, X: 3, Z: 0}, model.Position{Y: 1, X: 3, Z: 2}))
	assert.False(t, canonicalLess(model.Position{Y: 2}, model.Position{Y: 1}))
}
