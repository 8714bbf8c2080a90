// Package tree implements the compact per-tree cell storage of a hypertree
// grid.
//
// A HyperTree stores one refinable structure of the forest: a root cell that
// subdivision grows in place. Cells live in a linear addressing where the
// root is local index 0 and every subdivision appends a contiguous run of
// branchfactor^dimension children, so a coarse cell needs only its
// elder-child index to locate all of its children. Per-cell state is a
// packed coarse/leaf bit plus that elder-child index; there are no per-cell
// node objects and no pointers to chase.
//
// The tree also owns the mapping from local indices to forest-wide global
// indices. Numbering is implicit by default (global = start + local, seeded
// by SetGlobalIndexStart) with explicit per-cell overrides for grids whose
// numbering policy compacts or masks refined-away regions.
package tree

import (
	"errors"
	"fmt"
)

var (
	// ErrBranchFactor indicates a branch factor other than 2 or 3.
	ErrBranchFactor = errors.New("branch factor must be 2 or 3")

	// ErrDimension indicates a dimension outside 1..3.
	ErrDimension = errors.New("dimension must be 1, 2 or 3")

	// ErrCorruptSnapshot indicates a snapshot whose fields are inconsistent.
	ErrCorruptSnapshot = errors.New("corrupt tree snapshot")
)

// noChild marks the elder-child slot of a leaf cell.
const noChild int64 = -1

// globalUnset marks an explicit global-index slot that has no assignment,
// falling back to implicit numbering.
const globalUnset int64 = -1

// HyperTree is one refinable tree of the forest.
//
// The zero value is not usable; construct with New. A HyperTree is not safe
// for concurrent mutation: subdivision and global-index assignment must be
// serialized by the caller, per-tree.
type HyperTree struct {
	branchFactor int
	dimension    int
	numChildren  int

	// coarse[i] is set when cell i has been subdivided.
	coarse bitset

	// elderChild[i] is the local index of cell i's first child; children of
	// one subdivision are contiguous, child k lives at elderChild[i]+k.
	elderChild []int64

	levels    uint32
	leafCount int64

	globalIndexStart int64
	// globals holds explicit global-index assignments; slots at globalUnset
	// defer to implicit numbering. Grown lazily on first explicit Set.
	globals []int64
}

// New creates a tree holding a single leaf root cell.
//
// branchFactor is the per-axis subdivision factor (2 or 3); dimension is the
// grid's dimensionality (1 to 3). One subdivision therefore creates
// branchFactor^dimension children.
func New(branchFactor, dimension int) (*HyperTree, error) {
	if branchFactor != 2 && branchFactor != 3 {
		return nil, fmt.Errorf("%w: got %d", ErrBranchFactor, branchFactor)
	}
	if dimension < 1 || dimension > 3 {
		return nil, fmt.Errorf("%w: got %d", ErrDimension, dimension)
	}

	numChildren := 1
	for i := 0; i < dimension; i++ {
		numChildren *= branchFactor
	}

	t := &HyperTree{
		branchFactor: branchFactor,
		dimension:    dimension,
		numChildren:  numChildren,
		levels:       1,
		leafCount:    1,
	}
	t.coarse.append(false)
	t.elderChild = append(t.elderChild, noChild)

	return t, nil
}

// BranchFactor returns the per-axis subdivision factor.
func (t *HyperTree) BranchFactor() int { return t.branchFactor }

// Dimension returns the dimensionality the tree subdivides in.
func (t *HyperTree) Dimension() int { return t.dimension }

// NumberOfChildren returns the number of children one subdivision creates.
func (t *HyperTree) NumberOfChildren() int { return t.numChildren }

// NumberOfCells returns the total number of cells, coarse and leaf.
func (t *HyperTree) NumberOfCells() int64 { return t.coarse.len() }

// NumberOfLeaves returns the number of leaf cells.
func (t *HyperTree) NumberOfLeaves() int64 { return t.leafCount }

// NumberOfLevels returns the depth of the tree: 1 for a lone root.
func (t *HyperTree) NumberOfLevels() uint32 { return t.levels }

// IsLeafAt reports whether the cell at localIndex has no children.
func (t *HyperTree) IsLeafAt(localIndex int64) bool {
	return !t.coarse.get(localIndex)
}

// ChildLocalIndex returns the local index of the ichild-th child of the
// coarse cell at localIndex.
func (t *HyperTree) ChildLocalIndex(localIndex int64, ichild int) int64 {
	return t.elderChild[localIndex] + int64(ichild)
}

// IsTerminalAt reports whether the cell at localIndex is coarse with every
// direct child a leaf.
func (t *HyperTree) IsTerminalAt(localIndex int64) bool {
	if t.IsLeafAt(localIndex) {
		return false
	}
	elder := t.elderChild[localIndex]
	for k := int64(0); k < int64(t.numChildren); k++ {
		if t.coarse.get(elder + k) {
			return false
		}
	}

	return true
}

// GlobalIndex returns the forest-wide index of the cell at localIndex:
// the explicit assignment when one exists, start+localIndex otherwise.
func (t *HyperTree) GlobalIndex(localIndex int64) int64 {
	if localIndex < int64(len(t.globals)) && t.globals[localIndex] != globalUnset {
		return t.globals[localIndex]
	}

	return t.globalIndexStart + localIndex
}

// SetGlobalIndex assigns an explicit global index to the cell at localIndex,
// overriding implicit numbering for that cell.
func (t *HyperTree) SetGlobalIndex(localIndex, global int64) {
	for int64(len(t.globals)) <= localIndex {
		t.globals = append(t.globals, globalUnset)
	}
	t.globals[localIndex] = global
}

// SetGlobalIndexStart seeds implicit numbering for the whole tree. Called
// once per tree at forest construction; newly created children are numbered
// by it automatically.
func (t *HyperTree) SetGlobalIndexStart(start int64) {
	t.globalIndexStart = start
}

// Subdivide turns the leaf at localIndex into a coarse cell with
// NumberOfChildren fresh leaf children appended at the end of the cell
// array. level is the depth of the subdivided cell. Subdividing a coarse
// cell is a programming error and panics.
func (t *HyperTree) Subdivide(localIndex int64, level uint32) {
	if t.coarse.get(localIndex) {
		panic(fmt.Sprintf("tree: Subdivide called on coarse cell %d", localIndex))
	}

	elder := t.coarse.len()
	t.coarse.set(localIndex, true)
	t.elderChild[localIndex] = elder
	t.coarse.appendN(int64(t.numChildren))
	for k := 0; k < t.numChildren; k++ {
		t.elderChild = append(t.elderChild, noChild)
	}
	t.leafCount += int64(t.numChildren) - 1

	if level+2 > t.levels {
		t.levels = level + 2
	}
}

// String summarizes the tree for diagnostics.
func (t *HyperTree) String() string {
	return fmt.Sprintf("HyperTree{f: %d, dim: %d, cells: %d, leaves: %d, levels: %d}",
		t.branchFactor, t.dimension, t.coarse.len(), t.leafCount, t.levels)
}
