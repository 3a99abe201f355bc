package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Input validation errors. Structurally invalid input rejects the whole
// packing call; a cargo item the engine merely fails to place is not an
// error (it is reported in PackResult.Unplaced).
var (
	ErrInvalidContainer = errors.New("invalid container")
	ErrInvalidItem      = errors.New("invalid item")
)

// Category classifies cargo for display and reporting. It is opaque
// metadata to the packing engine and is carried through unchanged.
type Category string

const (
	CategoryNone      Category = ""
	CategoryHeavyLoad Category = "Heavy Load"
	CategoryFragile   Category = "Fragile"
	CategoryCommon    Category = "Common"
)

// Dimensions describes an unrotated cargo box in cm.
type Dimensions struct {
	Length float64 `json:"length" yaml:"length"` // along container x
	Width  float64 `json:"width" yaml:"width"`   // along container z
	Height float64 `json:"height" yaml:"height"` // along container y
}

// Volume returns the box volume in cubic cm.
func (d Dimensions) Volume() float64 {
	return d.Length * d.Width * d.Height
}

// Item represents a single piece of cargo to be loaded.
type Item struct {
	ID         string     `json:"id" yaml:"id"`
	Label      string     `json:"label" yaml:"label"`
	Dimensions Dimensions `json:"dimensions" yaml:"dimensions"`
	Weight     float64    `json:"weight" yaml:"weight"` // kg
	Fragile    bool       `json:"fragile" yaml:"fragile"`
	Category   Category   `json:"category,omitempty" yaml:"category,omitempty"`
	Color      string     `json:"color,omitempty" yaml:"color,omitempty"` // display color, passed through
}

func NewItem(label string, l, w, h, weight float64) Item {
	return Item{
		ID:         uuid.New().String()[:8],
		Label:      label,
		Dimensions: Dimensions{Length: l, Width: w, Height: h},
		Weight:     weight,
	}
}

// Volume returns the unrotated volume of the item.
func (i Item) Volume() float64 {
	return i.Dimensions.Volume()
}

// Validate checks the caller contract: all extents positive, weight
// non-negative. A violation poisons the whole batch, since silently
// skipping bad items would skew volume statistics downstream.
func (i Item) Validate() error {
	if i.Dimensions.Length <= 0 || i.Dimensions.Width <= 0 || i.Dimensions.Height <= 0 {
		return fmt.Errorf("%w: %q has non-positive extent %.2fx%.2fx%.2f",
			ErrInvalidItem, i.Label, i.Dimensions.Length, i.Dimensions.Width, i.Dimensions.Height)
	}
	if i.Weight < 0 {
		return fmt.Errorf("%w: %q has negative weight %.2f", ErrInvalidItem, i.Label, i.Weight)
	}
	return nil
}

// Container is the cargo hold of a vehicle: width W along x, height H
// along y (the stacking axis), depth D along z. Extents are in cm.
type Container struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Depth  float64 `json:"depth" yaml:"depth"`
}

// Volume returns the container volume in cubic cm.
func (c Container) Volume() float64 {
	return c.Width * c.Height * c.Depth
}

func (c Container) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.Depth <= 0 {
		return fmt.Errorf("%w: extents %.2fx%.2fx%.2f must be positive",
			ErrInvalidContainer, c.Width, c.Height, c.Depth)
	}
	return nil
}

// Position is a point in container-local coordinates. Y is the vertical
// (gravity) axis; an item at Y=0 rests on the container floor.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// PlacedItem is an item that has been assigned a position and an
// orientation inside the container. Length/Width/Height are the oriented
// extents along x/z/y, which may be any permutation of the item's own.
type PlacedItem struct {
	Item     Item     `json:"item"`
	Position Position `json:"position"`
	Length   float64  `json:"length"` // oriented extent along x
	Width    float64  `json:"width"`  // oriented extent along z
	Height   float64  `json:"height"` // oriented extent along y

	// Stability is a coarse placeholder score: 1.0 for floor-resting
	// items, 0.85 for anything raised. It does not measure actual
	// support area.
	Stability float64 `json:"stability"`
}

// Volume returns the oriented volume, which equals the item volume.
func (p PlacedItem) Volume() float64 {
	return p.Length * p.Width * p.Height
}

// Max returns the far corner of the placed box, opposite Position.
func (p PlacedItem) Max() Position {
	return Position{
		X: p.Position.X + p.Length,
		Y: p.Position.Y + p.Height,
		Z: p.Position.Z + p.Width,
	}
}

// PackResult is the outcome of one packing run. Placed preserves
// placement order; Unplaced holds the items no feasible spot was found
// for, in processing order. Partial results are normal: compare
// len(Placed) against the input count to detect them.
type PackResult struct {
	Placed     []PlacedItem `json:"placed"`
	Unplaced   []Item       `json:"unplaced,omitempty"`
	UsedVolume float64      `json:"used_volume"`
}

// FullyPlaced reports whether every requested item found a spot.
func (r PackResult) FullyPlaced() bool {
	return len(r.Unplaced) == 0
}

// Utilization returns the used fraction of the container volume as a
// percentage (0-100).
func (r PackResult) Utilization(c Container) float64 {
	cv := c.Volume()
	if cv <= 0 {
		return 0
	}
	return r.UsedVolume / cv * 100.0
}
