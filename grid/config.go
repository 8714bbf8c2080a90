package grid

import (
	"fmt"

	"github.com/gridforge/htg/geom"
	"github.com/gridforge/htg/internal/options"
	"github.com/gridforge/htg/tree"
)

// Option represents a functional option for configuring a Grid.
type Option = options.Option[*Grid]

func applyOptions(g *Grid, opts ...Option) error {
	return options.Apply(g, opts...)
}

// WithDimensions sets the grid's dimensionality (1 to 3).
func WithDimensions(dimension int) Option {
	return options.New(func(g *Grid) error {
		if dimension < 1 || dimension > 3 {
			return fmt.Errorf("%w: got %d", tree.ErrDimension, dimension)
		}
		g.dimension = dimension

		return nil
	})
}

// WithBranchFactor sets the per-axis subdivision factor (2 or 3).
func WithBranchFactor(factor int) Option {
	return options.New(func(g *Grid) error {
		if factor != 2 && factor != 3 {
			return fmt.Errorf("%w: got %d", tree.ErrBranchFactor, factor)
		}
		g.branchFactor = factor

		return nil
	})
}

// WithExtent sets the number of trees along each axis. Axes beyond the
// grid's dimension are ignored.
func WithExtent(nx, ny, nz int) Option {
	return options.NoError(func(g *Grid) {
		g.extent = [3]int{nx, ny, nz}
	})
}

// WithOrigin sets the world coordinate of the grid's first tree anchor.
func WithOrigin(origin geom.Coord) Option {
	return options.NoError(func(g *Grid) {
		g.origin = origin
	})
}

// WithRootSize sets the per-axis size of every root cell, which is also the
// spacing between neighboring tree anchors.
func WithRootSize(size geom.Coord) Option {
	return options.NoError(func(g *Grid) {
		g.rootSize = size
	})
}
