package cursor

import (
	"fmt"

	"github.com/gridforge/htg/geom"
)

// GeometryEntry caches the spatial origin of the current cell on top of
// Entry. The origin is maintained incrementally on each descent, so
// bounding-box and center queries never re-derive geometry from the root.
//
// The entry does not track its depth; the caller supplies the child cell
// size on descent, typically from Grid.CellSizeAtLevel.
type GeometryEntry struct {
	Entry

	origin geom.Coord
}

// NewGeometryEntry returns an entry positioned at the given local index and
// spatial origin.
func NewGeometryEntry(index int64, origin geom.Coord) GeometryEntry {
	return GeometryEntry{Entry: NewEntry(index), origin: origin}
}

// Initialize positions the entry at the root of the tree at treeIndex in g
// and anchors the origin at that tree's grid position. It returns the
// resolved tree handle, or nil when no tree exists there and create is
// false.
func (e *GeometryEntry) Initialize(g Grid, treeIndex int, create bool) Tree {
	t := e.Entry.Initialize(g, treeIndex, create)
	if t != nil {
		e.origin = g.TreeOrigin(treeIndex)
	}

	return t
}

// Reset re-points the entry at localIndex with the given origin, without
// touching any tree.
func (e *GeometryEntry) Reset(localIndex int64, origin geom.Coord) {
	e.Entry.Reset(localIndex)
	e.origin = origin
}

// Copy makes e a copy of other.
func (e *GeometryEntry) Copy(other *GeometryEntry) {
	e.Entry.Copy(&other.Entry)
	e.origin = other.origin
}

// Origin returns the spatial anchor of the current cell's bounding region.
func (e *GeometryEntry) Origin() geom.Coord {
	return e.origin
}

// Bounds returns the current cell's bounding box given its per-axis size.
func (e *GeometryEntry) Bounds(size geom.Coord) geom.Bounds {
	return geom.NewBounds(e.origin, size)
}

// Center returns the midpoint of the current cell given its per-axis size.
func (e *GeometryEntry) Center(size geom.Coord) geom.Coord {
	return e.Bounds(size).Center()
}

// ToChild moves the entry to the ichild-th child of the current cell and
// advances the origin by the child's offset within the parent. childSize is
// the per-axis cell size at the child's depth.
//
// Same preconditions as Entry.ToChild.
func (e *GeometryEntry) ToChild(t Tree, ichild int, childSize geom.Coord) {
	e.Entry.ToChild(t, ichild)
	e.origin = childOrigin(e.origin, t.BranchFactor(), ichild, childSize)
}

// String describes the entry for diagnostics.
func (e *GeometryEntry) String() string {
	return fmt.Sprintf("GeometryEntry{index: %d, origin: %v}", e.VertexID(), e.origin)
}

// childOrigin offsets a parent origin to the ichild-th child's origin. The
// child's per-axis position is the base-f decomposition of ichild, with the
// x axis varying fastest.
func childOrigin(parent geom.Coord, f, ichild int, childSize geom.Coord) geom.Coord {
	return geom.Coord{
		parent[0] + childSize[0]*float64(ichild%f),
		parent[1] + childSize[1]*float64((ichild/f)%f),
		parent[2] + childSize[2]*float64(ichild/(f*f)),
	}
}
