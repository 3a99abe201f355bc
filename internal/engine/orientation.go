package engine

import "github.com/srinath-46/stability-model/internal/model"

// orientation is one assignment of an item's extents to the container
// axes: length along x, width along z, height along y.
type orientation struct {
	length float64
	width  float64
	height float64
}

func (o orientation) volume() float64 {
	return o.length * o.width * o.height
}

// orientationsOf returns the 6 axis permutations of an item's box, in a
// fixed order. The placement loop is first-fit over this order, so the
// order must never change between calls. Permutations that coincide for
// items with equal extents are deliberately not deduplicated.
func orientationsOf(d model.Dimensions) [6]orientation {
	l, w, h := d.Length, d.Width, d.Height
	return [6]orientation{
		{l, w, h},
		{w, l, h},
		{h, w, l},
		{l, h, w},
		{w, h, l},
		{h, l, w},
	}
}
