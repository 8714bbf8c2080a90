// Package cursor provides the entry types used to traverse one tree of a
// hypertree grid.
//
// An entry is a small value type that locates a cell within a single tree of
// the forest. Entries are the cache a traversal carries from cell to cell:
// which variant to pick decides the performance and memory cost of the
// traversal, which matters most for consumers that hold many positions at
// once (neighbor stencils hold 6 or 26 of them per visited cell).
//
// # Variants
//
// Four variants trade footprint against cached context:
//
//   - Entry: caches only the current cell index within one tree. The owning
//     tree must be supplied by the caller on every operation. Smallest
//     footprint, cheapest to copy.
//   - GeometryEntry: Entry plus the spatial origin of the current cell, with
//     bounding box and cell center services.
//   - LevelEntry: Entry plus the owning tree handle and the current depth.
//     Navigation is self-contained; the caller never re-supplies the tree.
//   - GeometryLevelEntry: the union of GeometryEntry and LevelEntry. Full
//     context, highest footprint.
//
// # Usage
//
// A traversal initializes an entry at the root of a tree, then descends:
//
//	var e cursor.LevelEntry
//	t := e.Initialize(g, treeIndex, false)
//	if t == nil {
//	    return // no tree at this grid position
//	}
//	for !e.IsLeaf() {
//	    e.ToChild(0)
//	}
//
// Entries are plain values: duplicating a traversal position is a struct
// copy, never a heap allocation. Depth-first stacks and stencil positions
// copy entries freely.
//
// # Contracts
//
// The Tree and Grid interfaces declared here are the external collaborators
// an entry navigates against. The concrete implementations live in the tree
// and grid packages; any implementation satisfying the contracts works.
//
// # Concurrency
//
// Entries are not safe for concurrent use. Each goroutine of a parallel
// forest traversal must own its entry values, and two goroutines must not
// subdivide or renumber the same tree concurrently; the tree handle is the
// synchronization boundary, owned by the grid, not by this package.
// Entries holding a tree handle must not outlive the owning grid operation.
package cursor
