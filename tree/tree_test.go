package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name         string
		branchFactor int
		dimension    int
		wantChildren int
		wantErr      error
	}{
		{"binary 1D", 2, 1, 2, nil},
		{"quad", 2, 2, 4, nil},
		{"octree", 2, 3, 8, nil},
		{"ternary 2D", 3, 2, 9, nil},
		{"ternary 3D", 3, 3, 27, nil},
		{"bad branch factor", 4, 2, 0, ErrBranchFactor},
		{"zero branch factor", 0, 2, 0, ErrBranchFactor},
		{"bad dimension", 2, 4, 0, ErrDimension},
		{"zero dimension", 2, 0, 0, ErrDimension},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ht, err := New(tt.branchFactor, tt.dimension)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantChildren, ht.NumberOfChildren())
			require.Equal(t, int64(1), ht.NumberOfCells())
			require.Equal(t, int64(1), ht.NumberOfLeaves())
			require.Equal(t, uint32(1), ht.NumberOfLevels())
			require.True(t, ht.IsLeafAt(0))
		})
	}
}

func TestHyperTree_Subdivide(t *testing.T) {
	ht, err := New(2, 2)
	require.NoError(t, err)

	ht.Subdivide(0, 0)

	require.False(t, ht.IsLeafAt(0))
	require.Equal(t, int64(5), ht.NumberOfCells())
	require.Equal(t, int64(4), ht.NumberOfLeaves())
	require.Equal(t, uint32(2), ht.NumberOfLevels())
	for k := 0; k < 4; k++ {
		child := ht.ChildLocalIndex(0, k)
		require.Equal(t, int64(1+k), child)
		require.True(t, ht.IsLeafAt(child))
	}
}

func TestHyperTree_Subdivide_Nested(t *testing.T) {
	ht, err := New(2, 2)
	require.NoError(t, err)

	ht.Subdivide(0, 0)
	// refine the third child of the root
	child := ht.ChildLocalIndex(0, 2)
	ht.Subdivide(child, 1)

	require.Equal(t, int64(9), ht.NumberOfCells())
	require.Equal(t, int64(7), ht.NumberOfLeaves())
	require.Equal(t, uint32(3), ht.NumberOfLevels())
	require.False(t, ht.IsLeafAt(child))
	for k := 0; k < 4; k++ {
		require.True(t, ht.IsLeafAt(ht.ChildLocalIndex(child, k)))
	}
}

func TestHyperTree_Subdivide_CoarsePanics(t *testing.T) {
	ht, err := New(2, 2)
	require.NoError(t, err)

	ht.Subdivide(0, 0)
	require.Panics(t, func() { ht.Subdivide(0, 0) })
}

func TestHyperTree_IsTerminalAt(t *testing.T) {
	ht, err := New(2, 2)
	require.NoError(t, err)

	require.False(t, ht.IsTerminalAt(0), "a leaf is never terminal")

	ht.Subdivide(0, 0)
	require.True(t, ht.IsTerminalAt(0), "all children are leaves")

	ht.Subdivide(ht.ChildLocalIndex(0, 1), 1)
	require.False(t, ht.IsTerminalAt(0), "one child is now coarse")
	require.True(t, ht.IsTerminalAt(ht.ChildLocalIndex(0, 1)))
}

func TestHyperTree_GlobalIndex_Implicit(t *testing.T) {
	ht, err := New(2, 2)
	require.NoError(t, err)

	ht.SetGlobalIndexStart(100)
	require.Equal(t, int64(100), ht.GlobalIndex(0))

	ht.Subdivide(0, 0)
	for k := 0; k < 4; k++ {
		require.Equal(t, int64(101+k), ht.GlobalIndex(ht.ChildLocalIndex(0, k)))
	}
}

func TestHyperTree_GlobalIndex_ExplicitOverride(t *testing.T) {
	ht, err := New(2, 2)
	require.NoError(t, err)

	ht.SetGlobalIndexStart(10)
	ht.Subdivide(0, 0)

	ht.SetGlobalIndex(2, 999)
	require.Equal(t, int64(999), ht.GlobalIndex(2))
	// cells without an explicit assignment keep implicit numbering
	require.Equal(t, int64(10), ht.GlobalIndex(0))
	require.Equal(t, int64(11), ht.GlobalIndex(1))
	require.Equal(t, int64(13), ht.GlobalIndex(3))
}

func TestHyperTree_GlobalIndex_UniqueAfterRefinement(t *testing.T) {
	ht, err := New(3, 2)
	require.NoError(t, err)

	ht.SetGlobalIndexStart(0)
	ht.Subdivide(0, 0)
	ht.Subdivide(ht.ChildLocalIndex(0, 4), 1)
	ht.Subdivide(ht.ChildLocalIndex(0, 8), 1)

	seen := make(map[int64]struct{}, ht.NumberOfCells())
	for i := int64(0); i < ht.NumberOfCells(); i++ {
		g := ht.GlobalIndex(i)
		_, dup := seen[g]
		require.False(t, dup, "global index %d assigned twice", g)
		seen[g] = struct{}{}
	}
}

func TestBitset(t *testing.T) {
	var b bitset
	for i := 0; i < 130; i++ {
		b.append(i%3 == 0)
	}
	require.Equal(t, int64(130), b.len())
	for i := int64(0); i < 130; i++ {
		require.Equal(t, i%3 == 0, b.get(i), "bit %d", i)
	}

	b.set(1, true)
	require.True(t, b.get(1))
	b.set(129, false)
	require.False(t, b.get(129))

	b.appendN(70)
	require.Equal(t, int64(200), b.len())
	for i := int64(130); i < 200; i++ {
		require.False(t, b.get(i), "bit %d", i)
	}
}
