package cursor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridforge/htg/cursor"
	"github.com/gridforge/htg/geom"
)

func TestGeometryEntry_Initialize(t *testing.T) {
	g := newQuadGrid(t)

	var e cursor.GeometryEntry
	tr := e.Initialize(g, 3, true)

	require.NotNil(t, tr)
	require.True(t, e.IsRoot())
	require.Equal(t, g.TreeOrigin(3), e.Origin())
	require.Equal(t, geom.Coord{1, 1, 0}, e.Origin(), "tree 3 sits at grid position (1,1)")
}

func TestGeometryEntry_Initialize_AbsentKeepsOrigin(t *testing.T) {
	g := newQuadGrid(t)

	e := cursor.NewGeometryEntry(0, geom.Coord{9, 9, 9})
	require.Nil(t, e.Initialize(g, 2, false))
	require.Equal(t, geom.Coord{9, 9, 9}, e.Origin(), "origin untouched when no tree resolves")
}

func TestGeometryEntry_ToChild_OriginWithinParent(t *testing.T) {
	g := newQuadGrid(t)

	var e cursor.GeometryEntry
	tr := e.Initialize(g, 0, true)

	for level := uint32(0); level < 4; level++ {
		parentBounds := e.Bounds(g.CellSizeAtLevel(level))
		e.SubdivideLeaf(tr, level)
		e.ToChild(tr, 3, g.CellSizeAtLevel(level+1))

		childBounds := e.Bounds(g.CellSizeAtLevel(level + 1))
		require.True(t, parentBounds.ContainsBounds(childBounds),
			"level %d: child %v outside parent %v", level, childBounds, parentBounds)
	}
}

func TestGeometryEntry_ToChild_ChildOffsets(t *testing.T) {
	g := newQuadGrid(t)

	// quad children: x varies fastest
	wantOrigins := []geom.Coord{
		{0, 0, 0},
		{0.5, 0, 0},
		{0, 0.5, 0},
		{0.5, 0.5, 0},
	}
	childSize := g.CellSizeAtLevel(1)
	for ichild, want := range wantOrigins {
		var e cursor.GeometryEntry
		tr := e.Initialize(g, 0, true)
		e.SubdivideLeaf(tr, 0)
		e.ToChild(tr, ichild, childSize)
		require.Equal(t, want, e.Origin(), "child %d", ichild)
	}
}

func TestGeometryEntry_BoundsAndCenter(t *testing.T) {
	g := newQuadGrid(t)

	var e cursor.GeometryEntry
	e.Initialize(g, 0, true)

	size := g.CellSizeAtLevel(0)
	bounds := e.Bounds(size)
	require.Equal(t, geom.Coord{0, 0, 0}, bounds.Min)
	require.Equal(t, geom.Coord{1, 1, 0}, bounds.Max)
	require.Equal(t, geom.Coord{0.5, 0.5, 0}, e.Center(size))
}

func TestGeometryEntry_Copy(t *testing.T) {
	g := newQuadGrid(t)

	var a cursor.GeometryEntry
	tr := a.Initialize(g, 0, true)
	a.SubdivideLeaf(tr, 0)
	a.ToChild(tr, 1, g.CellSizeAtLevel(1))

	var b cursor.GeometryEntry
	b.Copy(&a)
	require.Equal(t, a.VertexID(), b.VertexID())
	require.Equal(t, a.Origin(), b.Origin())
}

func TestGeometryEntry_Reset(t *testing.T) {
	var e cursor.GeometryEntry
	e.Reset(3, geom.Coord{1, 2, 3})
	require.Equal(t, int64(3), e.VertexID())
	require.Equal(t, geom.Coord{1, 2, 3}, e.Origin())
}
