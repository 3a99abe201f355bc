package engine

import "github.com/srinath-46/stability-model/internal/model"

// geomEps absorbs float drift in bounds and overlap comparisons, so
// boxes that share a face after a 0.5 gap offset never register as
// colliding.
const geomEps = 0.001

// fits reports whether an oriented box at pos lies fully inside the
// container and does not cut into any already-placed box.
func (p *Packer) fits(pos model.Position, o orientation) bool {
	c := p.container
	if pos.X < -geomEps || pos.Y < -geomEps || pos.Z < -geomEps {
		return false
	}
	if pos.X+o.length > c.Width+geomEps ||
		pos.Y+o.height > c.Height+geomEps ||
		pos.Z+o.width > c.Depth+geomEps {
		return false
	}
	for i := range p.placed {
		if boxesIntersect(pos, o, p.placed[i]) {
			return false
		}
	}
	return true
}

// boxesIntersect is a separating-axis AABB test: the boxes collide only
// if their interiors overlap on all three axes at once. Shared faces
// and edges do not count as collisions.
func boxesIntersect(pos model.Position, o orientation, placed model.PlacedItem) bool {
	pMin := placed.Position
	pMax := placed.Max()
	return pos.X < pMax.X-geomEps && pos.X+o.length > pMin.X+geomEps &&
		pos.Y < pMax.Y-geomEps && pos.Y+o.height > pMin.Y+geomEps &&
		pos.Z < pMax.Z-geomEps && pos.Z+o.width > pMin.Z+geomEps
}

// pointInsideBox reports whether pt lies strictly inside a placed box.
// Points on the box surface are not inside; they stay usable as
// candidate positions.
func pointInsideBox(pt model.Position, placed model.PlacedItem) bool {
	pMin := placed.Position
	pMax := placed.Max()
	return pt.X > pMin.X+geomEps && pt.X < pMax.X-geomEps &&
		pt.Y > pMin.Y+geomEps && pt.Y < pMax.Y-geomEps &&
		pt.Z > pMin.Z+geomEps && pt.Z < pMax.Z-geomEps
}
