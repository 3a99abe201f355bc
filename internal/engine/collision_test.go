package engine

import (
	"context"
	"testing"

	"github.com/srinath-46/stability-model/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func packerWithPlaced(t *testing.T, placed ...model.PlacedItem) *Packer {
	t.Helper()
	p := mustPacker(t, model.Container{Width: 100, Height: 100, Depth: 100})
	p.placed = placed
	return p
}

func box(x, y, z, l, w, h float64) model.PlacedItem {
	return model.PlacedItem{
		Position: model.Position{X: x, Y: y, Z: z},
		Length:   l, Width: w, Height: h,
	}
}

func TestFits_BoundsAreStrict(t *testing.T) {
	p := mustPacker(t, model.Container{Width: 100, Height: 100, Depth: 100})
	o := orientation{length: 50, width: 50, height: 50}

	assert.True(t, p.fits(model.Position{X: 50, Y: 50, Z: 50}, o),
		"touching the far walls is allowed")
	assert.False(t, p.fits(model.Position{X: 51, Y: 0, Z: 0}, o))
	assert.False(t, p.fits(model.Position{X: 0, Y: 50.5, Z: 0}, o))
	assert.False(t, p.fits(model.Position{X: -1, Y: 0, Z: 0}, o))
}

func TestFits_InteriorOverlapRejected(t *testing.T) {
	p := packerWithPlaced(t, box(0, 0, 0, 20, 20, 20))
	o := orientation{length: 20, width: 20, height: 20}

	assert.False(t, p.fits(model.Position{X: 10, Y: 10, Z: 10}, o))
	assert.False(t, p.fits(model.Position{X: 19, Y: 0, Z: 0}, o))
}

func TestFits_SharedFaceAllowed(t *testing.T) {
	p := packerWithPlaced(t, box(0, 0, 0, 20, 20, 20))
	o := orientation{length: 20, width: 20, height: 20}

	assert.True(t, p.fits(model.Position{X: 20, Y: 0, Z: 0}, o), "face contact on x")
	assert.True(t, p.fits(model.Position{X: 0, Y: 20, Z: 0}, o), "stacked on top")
	assert.True(t, p.fits(model.Position{X: 0, Y: 0, Z: 20}, o), "face contact on z")
}

func TestFits_SeparationOnOneAxisSuffices(t *testing.T) {
	// Overlaps on x and z, but disjoint on y: no collision.
	p := packerWithPlaced(t, box(0, 0, 0, 20, 20, 10))
	o := orientation{length: 20, width: 20, height: 10}

	assert.True(t, p.fits(model.Position{X: 5, Y: 10, Z: 5}, o))
}

func TestPointInsideBox(t *testing.T) {
	b := box(10, 10, 10, 20, 20, 20)

	assert.True(t, pointInsideBox(model.Position{X: 20, Y: 20, Z: 20}, b))
	assert.False(t, pointInsideBox(model.Position{X: 10, Y: 20, Z: 20}, b), "surface point")
	assert.False(t, pointInsideBox(model.Position{X: 30, Y: 20, Z: 20}, b), "far surface point")
	assert.False(t, pointInsideBox(model.Position{X: 5, Y: 5, Z: 5}, b))
}

func TestPack_StackedItemsShareFaceWithoutCollision(t *testing.T) {
	// Two flat slabs that only fit stacked: the second rests exactly on
	// top of the first.
	p := mustPacker(t, model.Container{Width: 20, Height: 10, Depth: 10})
	items := []model.Item{
		model.NewItem("Base", 20, 10, 6, 30),
		model.NewItem("Lid", 20, 10, 4, 10),
	}

	result, err := p.Pack(context.Background(), items, nil)

	require.NoError(t, err)
	require.Len(t, result.Placed, 2)
	assert.Equal(t, model.Position{X: 0, Y: 6, Z: 0}, result.Placed[1].Position)
	assert.Equal(t, 0.85, result.Placed[1].Stability, "raised items get the flat raised tag")
}
