package cursor

import "github.com/gridforge/htg/geom"

// Tree is the per-tree storage contract an entry navigates against.
//
// A tree stores the cells of one refinable structure in its own linear
// addressing: the root is local index 0 and every subdivision appends a
// fixed number of children. The tree also owns the mapping from local
// indices to forest-wide global indices used to address field data.
//
// The concrete implementation lives in the tree package.
type Tree interface {
	// BranchFactor returns the per-axis subdivision factor (2 or 3).
	BranchFactor() int

	// NumberOfChildren returns the number of children created by one
	// subdivision: BranchFactor raised to the grid's dimension.
	NumberOfChildren() int

	// IsLeafAt reports whether the cell at localIndex has no children.
	IsLeafAt(localIndex int64) bool

	// ChildLocalIndex returns the local index of the ichild-th child of the
	// coarse cell at localIndex.
	ChildLocalIndex(localIndex int64, ichild int) int64

	// GlobalIndex returns the forest-wide index of the cell at localIndex.
	GlobalIndex(localIndex int64) int64

	// SetGlobalIndex assigns an explicit global index to the cell at
	// localIndex.
	SetGlobalIndex(localIndex, global int64)

	// SetGlobalIndexStart seeds implicit numbering: the cell at local index
	// i maps to start+i unless an explicit assignment overrides it.
	SetGlobalIndexStart(start int64)

	// Subdivide turns the leaf at localIndex into a coarse cell with
	// NumberOfChildren fresh leaf children. level is the depth of the cell
	// being subdivided, used by the tree's level bookkeeping.
	Subdivide(localIndex int64, level uint32)
}

// Grid is the forest container contract entries initialize against.
//
// The grid owns the sparse array of trees and the dimensional metadata the
// geometry entries need. The concrete implementation lives in the grid
// package.
type Grid interface {
	// Tree returns the tree at treeIndex, creating it first when create is
	// true. Returns nil when the index is out of range, or when no tree
	// exists there and create is false.
	Tree(treeIndex int, create bool) Tree

	// CellSizeAtLevel returns the per-axis cell size at the given depth.
	CellSizeAtLevel(level uint32) geom.Coord

	// TreeOrigin returns the spatial anchor of the root cell of the tree at
	// treeIndex.
	TreeOrigin(treeIndex int) geom.Coord
}
