package cursor

import "fmt"

// Entry caches only the local index of the current cell within one tree.
//
// Every operation that needs tree context takes the tree handle as a
// parameter; the entry itself never references the tree. This makes Entry
// the cheapest variant to hold and copy, at the cost of the caller
// re-supplying the tree on each call.
type Entry struct {
	index int64
}

// NewEntry returns an entry positioned at the given local index.
func NewEntry(index int64) Entry {
	return Entry{index: index}
}

// Initialize positions the entry at the root of the tree at treeIndex in g,
// creating the tree first when create is true. It returns the resolved tree
// handle, or nil when no tree exists there and create is false; callers must
// check for nil before navigating.
func (e *Entry) Initialize(g Grid, treeIndex int, create bool) Tree {
	e.index = 0
	if g == nil {
		return nil
	}

	return g.Tree(treeIndex, create)
}

// Reset re-points the entry at localIndex without touching any tree. Used
// when the caller manages the tree externally.
func (e *Entry) Reset(localIndex int64) {
	e.index = localIndex
}

// Copy makes e a copy of other.
func (e *Entry) Copy(other *Entry) {
	e.index = other.index
}

// VertexID returns the local index of the current cell.
func (e *Entry) VertexID() int64 {
	return e.index
}

// GlobalNodeIndex returns the forest-wide index of the current cell,
// resolved through the tree's local-to-global mapping.
func (e *Entry) GlobalNodeIndex(t Tree) int64 {
	return t.GlobalIndex(e.index)
}

// SetGlobalIndexStart seeds the tree's implicit global numbering with the
// root cell's global index. Called once per tree at forest construction.
func (e *Entry) SetGlobalIndexStart(t Tree, index int64) {
	t.SetGlobalIndexStart(index)
}

// SetGlobalIndexFromLocal assigns a global index to the current cell.
func (e *Entry) SetGlobalIndexFromLocal(t Tree, index int64) {
	t.SetGlobalIndex(e.index, index)
}

// IsLeaf reports whether the current cell has no children.
func (e *Entry) IsLeaf(t Tree) bool {
	return t.IsLeafAt(e.index)
}

// SubdivideLeaf turns the current leaf cell into a coarse cell with freshly
// created leaf children. level is the depth of the current cell. A cell that
// is already coarse is left unchanged.
func (e *Entry) SubdivideLeaf(t Tree, level uint32) {
	if e.IsLeaf(t) {
		t.Subdivide(e.index, level)
	}
}

// IsTerminalNode reports whether the current cell is coarse with every
// direct child a leaf. It is false for a leaf.
func (e *Entry) IsTerminalNode(t Tree) bool {
	if t.IsLeafAt(e.index) {
		return false
	}

	n := t.NumberOfChildren()
	for ichild := 0; ichild < n; ichild++ {
		if !t.IsLeafAt(t.ChildLocalIndex(e.index, ichild)) {
			return false
		}
	}

	return true
}

// IsRoot reports whether the entry sits at the tree root. This is the
// positional convention that the root is always local index 0; it says
// nothing about which tree the entry belongs to.
func (e *Entry) IsRoot() bool {
	return e.index == 0
}

// ToChild moves the entry to the ichild-th child of the current cell.
//
// The current cell must be coarse and ichild must lie in
// [0, t.NumberOfChildren()); violating either is a programming error and
// panics.
func (e *Entry) ToChild(t Tree, ichild int) {
	if t.IsLeafAt(e.index) {
		panic("cursor: ToChild called on a leaf cell")
	}
	if ichild < 0 || ichild >= t.NumberOfChildren() {
		panic(fmt.Sprintf("cursor: child index %d out of range [0,%d)", ichild, t.NumberOfChildren()))
	}

	e.index = t.ChildLocalIndex(e.index, ichild)
}

// String describes the entry for diagnostics.
func (e *Entry) String() string {
	return fmt.Sprintf("Entry{index: %d}", e.index)
}
