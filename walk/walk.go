// Package walk provides depth-first traversal over the trees of a hypertree
// grid, built on the cursor entry types.
//
// Traversals carry GeometryLevelEntry values on an explicit stack: branching
// duplicates a position with a struct copy, never an allocation, which is
// the whole point of the entry design. The parallel forest walk hands each
// tree to its own goroutine; that is safe because every goroutine owns its
// entry values and no goroutine mutates a tree (visitors must not
// subdivide during a parallel walk).
package walk

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/gridforge/htg/cursor"
)

// ErrNoTree indicates a walk over a tree index with no allocated tree.
var ErrNoTree = errors.New("no tree at index")

// Grid is the forest contract a walk needs: the cursor contract plus the
// number of addressable trees. The grid package's Grid satisfies it.
type Grid interface {
	cursor.Grid

	NumberOfTrees() int
}

// Visitor is called once per visited cell, parents before children.
// Returning false prunes the descent below the current cell.
type Visitor func(e *cursor.GeometryLevelEntry) bool

// Tree walks the tree at treeIndex depth-first, children in child-index
// order. Returns ErrNoTree when the index holds no tree.
func Tree(g Grid, treeIndex int, visit Visitor) error {
	var root cursor.GeometryLevelEntry
	if root.Initialize(g, treeIndex, false) == nil {
		return fmt.Errorf("%w: %d", ErrNoTree, treeIndex)
	}

	stack := []cursor.GeometryLevelEntry{root}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(&e) || e.IsLeaf() {
			continue
		}

		// push children in reverse so child 0 pops first
		for ichild := e.Tree().NumberOfChildren() - 1; ichild >= 0; ichild-- {
			child := e
			child.ToChild(g, ichild)
			stack = append(stack, child)
		}
	}

	return nil
}

// Leaves walks the tree at treeIndex and calls visit for leaf cells only.
func Leaves(g Grid, treeIndex int, visit func(e *cursor.GeometryLevelEntry)) error {
	return Tree(g, treeIndex, func(e *cursor.GeometryLevelEntry) bool {
		if e.IsLeaf() {
			visit(e)
		}

		return true
	})
}

// Forest walks every allocated tree of the grid in tree-index order.
func Forest(g Grid, visit Visitor) error {
	for treeIndex := 0; treeIndex < g.NumberOfTrees(); treeIndex++ {
		err := Tree(g, treeIndex, visit)
		if err != nil && !errors.Is(err, ErrNoTree) {
			return err
		}
	}

	return nil
}

// ForestParallel walks every allocated tree of the grid, one goroutine per
// tree, at most limit trees in flight (unlimited when limit <= 0).
//
// The visitor runs concurrently for different trees and must be safe for
// that: it must not subdivide, renumber, or create trees, and any shared
// state it touches needs its own synchronization. Within one tree the usual
// parent-before-children order still holds.
func ForestParallel(g Grid, limit int, visit Visitor) error {
	var eg errgroup.Group
	if limit > 0 {
		eg.SetLimit(limit)
	}

	for treeIndex := 0; treeIndex < g.NumberOfTrees(); treeIndex++ {
		eg.Go(func() error {
			err := Tree(g, treeIndex, visit)
			if errors.Is(err, ErrNoTree) {
				return nil
			}

			return err
		})
	}

	return eg.Wait()
}
