package cursor

import (
	"fmt"

	"github.com/gridforge/htg/geom"
)

// GeometryLevelEntry combines LevelEntry and GeometryEntry: it maintains the
// tree handle, the depth and the spatial origin together, updated in the
// same descent. It adds no semantics beyond the union; it exists so that a
// consumer needing both geometry and self-contained tree context holds one
// value instead of two. Neighbor stencils, which keep many simultaneous
// positions, are the motivating consumer.
type GeometryLevelEntry struct {
	LevelEntry

	origin geom.Coord
}

// NewGeometryLevelEntry returns an entry bound to t, positioned at the
// given local index, depth and origin.
func NewGeometryLevelEntry(t Tree, level uint32, index int64, origin geom.Coord) GeometryLevelEntry {
	return GeometryLevelEntry{LevelEntry: NewLevelEntry(t, level, index), origin: origin}
}

// Initialize binds the entry to the tree at treeIndex in g, positioned at
// its root with depth 0 and the origin anchored at that tree's grid
// position. It returns the resolved tree handle, or nil when no tree exists
// there and create is false.
func (e *GeometryLevelEntry) Initialize(g Grid, treeIndex int, create bool) Tree {
	t := e.LevelEntry.Initialize(g, treeIndex, create)
	if t != nil {
		e.origin = g.TreeOrigin(treeIndex)
	}

	return t
}

// Reset re-points the entry at localIndex, depth level and the given origin
// within t.
func (e *GeometryLevelEntry) Reset(t Tree, level uint32, localIndex int64, origin geom.Coord) {
	e.LevelEntry.Reset(t, level, localIndex)
	e.origin = origin
}

// Copy makes e a copy of other, sharing the same borrowed tree handle.
func (e *GeometryLevelEntry) Copy(other *GeometryLevelEntry) {
	e.LevelEntry.Copy(&other.LevelEntry)
	e.origin = other.origin
}

// Origin returns the spatial anchor of the current cell's bounding region.
func (e *GeometryLevelEntry) Origin() geom.Coord {
	return e.origin
}

// Bounds returns the current cell's bounding box, sized from the grid's
// per-level size table at the current depth.
func (e *GeometryLevelEntry) Bounds(g Grid) geom.Bounds {
	return geom.NewBounds(e.origin, g.CellSizeAtLevel(e.Level()))
}

// Center returns the midpoint of the current cell.
func (e *GeometryLevelEntry) Center(g Grid) geom.Coord {
	return e.Bounds(g).Center()
}

// ToChild moves the entry to the ichild-th child of the current cell,
// incrementing the depth and advancing the origin by the child's offset
// within the parent. The child cell size comes from the grid's per-level
// size table.
//
// Same preconditions as Entry.ToChild.
func (e *GeometryLevelEntry) ToChild(g Grid, ichild int) {
	childSize := g.CellSizeAtLevel(e.Level() + 1)
	f := e.Tree().BranchFactor()
	e.LevelEntry.ToChild(ichild)
	e.origin = childOrigin(e.origin, f, ichild, childSize)
}

// String describes the entry for diagnostics.
func (e *GeometryLevelEntry) String() string {
	return fmt.Sprintf("GeometryLevelEntry{index: %d, level: %d, origin: %v}",
		e.VertexID(), e.Level(), e.origin)
}
