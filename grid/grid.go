// Package grid implements the forest container of a hypertree grid.
//
// A Grid owns a sparse array of trees laid out on a rectilinear arrangement
// of root cells, plus the dimensional metadata traversals need: the per-axis
// branch factor, the world origin, the root cell size and the memoized
// per-level cell size table. Trees are created on demand; grid positions
// without refinement stay unallocated and cost nothing.
//
// The Grid satisfies the cursor.Grid contract, and the trees it hands out
// satisfy cursor.Tree.
package grid

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gridforge/htg/cursor"
	"github.com/gridforge/htg/geom"
	"github.com/gridforge/htg/tree"
)

var (
	// ErrExtent indicates a grid extent with a non-positive axis.
	ErrExtent = errors.New("grid extent must be positive on every used axis")

	// ErrRootSize indicates a non-positive root cell size.
	ErrRootSize = errors.New("root cell size must be positive on every used axis")
)

// Grid is the forest container. Construct with New; the zero value is not
// usable.
//
// A Grid is not safe for concurrent mutation. Concurrent traversals of
// distinct trees are safe as long as no goroutine creates trees or
// subdivides concurrently with another goroutine using the same tree.
type Grid struct {
	dimension    int
	branchFactor int
	extent       [3]int
	origin       geom.Coord
	rootSize     geom.Coord

	trees map[int]*tree.HyperTree

	// scales[l] is the per-axis cell size at depth l, extended on demand.
	// Guarded by scalesMu so concurrent per-tree traversals can share the
	// table; all other grid mutation stays caller-serialized.
	scalesMu sync.Mutex
	scales   []geom.Coord
}

// New creates an empty grid with the given options. Defaults: dimension 2,
// branch factor 2, a single tree, unit root cells anchored at the world
// origin.
func New(opts ...Option) (*Grid, error) {
	g := &Grid{
		dimension:    2,
		branchFactor: 2,
		extent:       [3]int{1, 1, 1},
		rootSize:     geom.Coord{1, 1, 1},
		trees:        make(map[int]*tree.HyperTree),
	}
	if err := applyOptions(g, opts...); err != nil {
		return nil, err
	}

	for axis := 0; axis < g.dimension; axis++ {
		if g.extent[axis] < 1 {
			return nil, fmt.Errorf("%w: axis %d has %d", ErrExtent, axis, g.extent[axis])
		}
		if g.rootSize[axis] <= 0 {
			return nil, fmt.Errorf("%w: axis %d has %g", ErrRootSize, axis, g.rootSize[axis])
		}
	}
	// unused axes are flattened so geometry stays well defined in 1D and 2D
	for axis := g.dimension; axis < 3; axis++ {
		g.extent[axis] = 1
		g.rootSize[axis] = 0
	}
	g.scales = append(g.scales, g.rootSize)

	return g, nil
}

// Dimension returns the grid's dimensionality (1 to 3).
func (g *Grid) Dimension() int { return g.dimension }

// BranchFactor returns the per-axis subdivision factor of every tree.
func (g *Grid) BranchFactor() int { return g.branchFactor }

// Extent returns the number of trees along each axis.
func (g *Grid) Extent() [3]int { return g.extent }

// Origin returns the world coordinate of the grid's first tree anchor.
func (g *Grid) Origin() geom.Coord { return g.origin }

// NumberOfTrees returns the number of addressable tree positions, allocated
// or not.
func (g *Grid) NumberOfTrees() int {
	return g.extent[0] * g.extent[1] * g.extent[2]
}

// NumberOfAllocatedTrees returns the number of positions holding a tree.
func (g *Grid) NumberOfAllocatedTrees() int { return len(g.trees) }

// IsTreeNull reports whether no tree is allocated at treeIndex.
func (g *Grid) IsTreeNull(treeIndex int) bool {
	_, ok := g.trees[treeIndex]

	return !ok
}

// Tree returns the tree at treeIndex, creating it first when create is
// true. Returns nil when treeIndex is out of range, or when the position is
// unallocated and create is false.
//
// Tree satisfies the cursor.Grid contract; HyperTreeAt returns the concrete
// type.
func (g *Grid) Tree(treeIndex int, create bool) cursor.Tree {
	t := g.HyperTreeAt(treeIndex, create)
	if t == nil {
		// a typed nil inside the interface would not compare equal to nil
		return nil
	}

	return t
}

// HyperTreeAt returns the concrete tree at treeIndex, creating it first
// when create is true. Returns nil when treeIndex is out of range, or when
// the position is unallocated and create is false.
func (g *Grid) HyperTreeAt(treeIndex int, create bool) *tree.HyperTree {
	if treeIndex < 0 || treeIndex >= g.NumberOfTrees() {
		return nil
	}
	if t, ok := g.trees[treeIndex]; ok {
		return t
	}
	if !create {
		return nil
	}

	// extent and branch factor were validated in New, tree.New cannot fail
	t, err := tree.New(g.branchFactor, g.dimension)
	if err != nil {
		panic(err)
	}
	g.trees[treeIndex] = t

	return t
}

// SetTree installs t at treeIndex, replacing any tree already there. Used
// when restoring a grid from a snapshot. Out-of-range indices are rejected.
func (g *Grid) SetTree(treeIndex int, t *tree.HyperTree) error {
	if treeIndex < 0 || treeIndex >= g.NumberOfTrees() {
		return fmt.Errorf("tree index %d out of range [0,%d)", treeIndex, g.NumberOfTrees())
	}
	g.trees[treeIndex] = t

	return nil
}

// AllocatedTrees returns the indices of all allocated trees in ascending
// order.
func (g *Grid) AllocatedTrees() []int {
	indices := make([]int, 0, len(g.trees))
	for i := range g.trees {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	return indices
}

// CellSizeAtLevel returns the per-axis cell size at the given depth: the
// root size divided by branchfactor^level on every used axis. The table is
// memoized so repeated descents never recompute sizes, and is safe to share
// between concurrent traversals of distinct trees.
func (g *Grid) CellSizeAtLevel(level uint32) geom.Coord {
	g.scalesMu.Lock()
	defer g.scalesMu.Unlock()

	for uint32(len(g.scales)) <= level {
		prev := g.scales[len(g.scales)-1]
		g.scales = append(g.scales, prev.Div(float64(g.branchFactor)))
	}

	return g.scales[level]
}

// TreeOrigin returns the spatial anchor of the root cell of the tree at
// treeIndex. The x index varies fastest in the linear tree numbering.
func (g *Grid) TreeOrigin(treeIndex int) geom.Coord {
	i := treeIndex % g.extent[0]
	j := (treeIndex / g.extent[0]) % g.extent[1]
	k := treeIndex / (g.extent[0] * g.extent[1])

	return geom.Coord{
		g.origin[0] + g.rootSize[0]*float64(i),
		g.origin[1] + g.rootSize[1]*float64(j),
		g.origin[2] + g.rootSize[2]*float64(k),
	}
}

// TreeIndex returns the linear tree index of the grid position (i, j, k).
func (g *Grid) TreeIndex(i, j, k int) int {
	return i + g.extent[0]*(j+g.extent[1]*k)
}
