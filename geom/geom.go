// Package geom provides the small coordinate value types shared by the
// cursor and grid packages.
//
// All types are plain fixed-size arrays or structs intended to live on the
// stack. The grid is at most three-dimensional; lower-dimensional grids
// simply leave the trailing axes at zero.
package geom

// Coord is a spatial coordinate or per-axis size tuple.
type Coord [3]float64

// Add returns the component-wise sum of c and other.
func (c Coord) Add(other Coord) Coord {
	return Coord{c[0] + other[0], c[1] + other[1], c[2] + other[2]}
}

// Scale returns c with every component multiplied by f.
func (c Coord) Scale(f float64) Coord {
	return Coord{c[0] * f, c[1] * f, c[2] * f}
}

// Div returns c with every component divided by f.
func (c Coord) Div(f float64) Coord {
	return Coord{c[0] / f, c[1] / f, c[2] / f}
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min Coord
	Max Coord
}

// NewBounds builds the bounding box anchored at origin with the given
// per-axis size.
func NewBounds(origin, size Coord) Bounds {
	return Bounds{Min: origin, Max: origin.Add(size)}
}

// Center returns the midpoint of the box.
func (b Bounds) Center() Coord {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Contains reports whether p lies inside the box, boundaries included.
func (b Bounds) Contains(p Coord) bool {
	for axis := 0; axis < 3; axis++ {
		if p[axis] < b.Min[axis] || p[axis] > b.Max[axis] {
			return false
		}
	}

	return true
}

// ContainsBounds reports whether inner lies entirely within b,
// boundaries included.
func (b Bounds) ContainsBounds(inner Bounds) bool {
	return b.Contains(inner.Min) && b.Contains(inner.Max)
}
