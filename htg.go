// Package htg implements hypertree grids: forests of refinable
// octree/quadtree-like trees with lightweight value-type cursors for
// traversal.
//
// A hypertree grid arranges trees on a rectilinear grid of root cells and
// refines each tree independently, so resolution concentrates where the
// data needs it. Traversal is built on the cursor package's entry types:
// small stack-friendly values that locate a cell within one tree and come
// in four variants trading cached context (geometry, tree handle, depth)
// against footprint.
//
// # Basic Usage
//
// Building a refined grid and visiting its leaves:
//
//	g, _ := htg.NewGrid(
//	    grid.WithDimensions(2),
//	    grid.WithBranchFactor(2),
//	    grid.WithExtent(4, 4, 1),
//	)
//
//	var e cursor.LevelEntry
//	if t := e.Initialize(g, 0, true); t != nil {
//	    e.SetGlobalIndexStart(0)
//	    e.SubdivideLeaf()
//	}
//
//	walk.Leaves(g, 0, func(e *cursor.GeometryLevelEntry) {
//	    fmt.Println(e.GlobalNodeIndex(), e.Origin())
//	})
//
// Cell data lives in field arrays addressed by the global indices the
// cursors expose:
//
//	density := field.NewFloat64Field("density", 0)
//	density.Set(e.GlobalNodeIndex(), 1.25)
//
// # Snapshots
//
// Save and Load serialize a grid with the default codec; the persist
// package offers explicit control over compression and byte order.
//
// # Package Structure
//
// This package provides thin conveniences over the focused packages:
// cursor (entry types), tree and grid (storage), field (cell data), walk
// (traversal) and persist (snapshots).
package htg

import (
	"github.com/gridforge/htg/field"
	"github.com/gridforge/htg/format"
	"github.com/gridforge/htg/grid"
	"github.com/gridforge/htg/persist"
)

// defaultSnapshotOptions compresses snapshots with Zstd, the ratio-first
// default for grids written to storage.
var defaultSnapshotOptions = []persist.EncoderOption{
	persist.WithLittleEndian(),
	persist.WithCompression(format.CompressionZstd),
}

// NewGrid creates a hypertree grid with the given options.
func NewGrid(opts ...grid.Option) (*grid.Grid, error) {
	return grid.New(opts...)
}

// FieldID computes the hashed identifier of a field name.
func FieldID(name string) field.ID {
	return field.NameID(name)
}

// Save serializes g into a Zstd-compressed little-endian snapshot.
func Save(g *grid.Grid) ([]byte, error) {
	return persist.Encode(g, defaultSnapshotOptions...)
}

// Load reconstructs a grid from a snapshot produced by Save or by the
// persist package.
func Load(data []byte) (*grid.Grid, error) {
	return persist.Decode(data)
}
