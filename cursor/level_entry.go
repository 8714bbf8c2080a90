package cursor

import "fmt"

// LevelEntry caches the owning tree handle and the current depth on top of
// Entry. Navigation is self-contained: the base operations that take a tree
// parameter have tree-free forms here that use the held handle, so callers
// never re-supply the tree during a descent.
//
// The tree handle is a borrowed reference, never reassigned between
// Initialize calls and never owned: the entry must not outlive the grid
// operation that produced the tree.
type LevelEntry struct {
	Entry

	tree  Tree
	level uint32
}

// NewLevelEntry returns an entry bound to t, positioned at the given local
// index and depth.
func NewLevelEntry(t Tree, level uint32, index int64) LevelEntry {
	return LevelEntry{Entry: NewEntry(index), tree: t, level: level}
}

// Initialize binds the entry to the tree at treeIndex in g, positioned at
// its root with depth 0, creating the tree first when create is true. It
// returns the resolved tree handle, or nil when no tree exists there and
// create is false; the entry is left unbound in that case.
func (e *LevelEntry) Initialize(g Grid, treeIndex int, create bool) Tree {
	e.Entry.Reset(0)
	e.level = 0
	if g == nil {
		e.tree = nil
		return nil
	}
	e.tree = g.Tree(treeIndex, create)

	return e.tree
}

// Reset re-points the entry at localIndex and depth level within t.
func (e *LevelEntry) Reset(t Tree, level uint32, localIndex int64) {
	e.Entry.Reset(localIndex)
	e.tree = t
	e.level = level
}

// Copy makes e a copy of other, sharing the same borrowed tree handle.
func (e *LevelEntry) Copy(other *LevelEntry) {
	e.Entry.Copy(&other.Entry)
	e.tree = other.tree
	e.level = other.level
}

// Tree returns the held tree handle, nil when the entry is unbound.
func (e *LevelEntry) Tree() Tree {
	return e.tree
}

// Level returns the depth of the current cell, 0 at the tree root.
func (e *LevelEntry) Level() uint32 {
	return e.level
}

// GlobalNodeIndex returns the forest-wide index of the current cell.
func (e *LevelEntry) GlobalNodeIndex() int64 {
	return e.Entry.GlobalNodeIndex(e.tree)
}

// SetGlobalIndexStart seeds the held tree's implicit global numbering with
// the root cell's global index.
func (e *LevelEntry) SetGlobalIndexStart(index int64) {
	e.Entry.SetGlobalIndexStart(e.tree, index)
}

// SetGlobalIndexFromLocal assigns a global index to the current cell.
func (e *LevelEntry) SetGlobalIndexFromLocal(index int64) {
	e.Entry.SetGlobalIndexFromLocal(e.tree, index)
}

// IsLeaf reports whether the current cell has no children.
func (e *LevelEntry) IsLeaf() bool {
	return e.Entry.IsLeaf(e.tree)
}

// SubdivideLeaf turns the current leaf cell into a coarse cell with freshly
// created leaf children at depth Level()+1.
func (e *LevelEntry) SubdivideLeaf() {
	e.Entry.SubdivideLeaf(e.tree, e.level)
}

// IsTerminalNode reports whether the current cell is coarse with every
// direct child a leaf.
func (e *LevelEntry) IsTerminalNode() bool {
	return e.Entry.IsTerminalNode(e.tree)
}

// ToChild moves the entry to the ichild-th child of the current cell and
// increments the depth. The held tree is unchanged: a descent never leaves
// its tree.
//
// Same preconditions as Entry.ToChild.
func (e *LevelEntry) ToChild(ichild int) {
	e.Entry.ToChild(e.tree, ichild)
	e.level++
}

// String describes the entry for diagnostics.
func (e *LevelEntry) String() string {
	return fmt.Sprintf("LevelEntry{index: %d, level: %d}", e.VertexID(), e.level)
}
