package persist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridforge/htg/cursor"
	"github.com/gridforge/htg/format"
	"github.com/gridforge/htg/geom"
	"github.com/gridforge/htg/grid"
	"github.com/gridforge/htg/persist"
	"github.com/gridforge/htg/walk"
)

// buildGrid makes a 2x2-tree quad grid with two refined trees, explicit
// global numbering on one of them.
func buildGrid(t *testing.T) *grid.Grid {
	t.Helper()

	g, err := grid.New(
		grid.WithDimensions(2),
		grid.WithBranchFactor(2),
		grid.WithExtent(2, 2, 1),
		grid.WithOrigin(geom.Coord{-1, -1, 0}),
		grid.WithRootSize(geom.Coord{2, 2, 1}),
	)
	require.NoError(t, err)

	var e cursor.LevelEntry
	require.NotNil(t, e.Initialize(g, 0, true))
	e.SetGlobalIndexStart(0)
	e.SubdivideLeaf()
	e.ToChild(2)
	e.SubdivideLeaf()

	var e2 cursor.LevelEntry
	require.NotNil(t, e2.Initialize(g, 3, true))
	e2.SetGlobalIndexStart(9)
	e2.SubdivideLeaf()
	e2.SetGlobalIndexFromLocal(1234)

	return g
}

// requireEquivalent asserts that two grids expose the same forest to
// cursors.
func requireEquivalent(t *testing.T, want, got *grid.Grid) {
	t.Helper()

	require.Equal(t, want.Dimension(), got.Dimension())
	require.Equal(t, want.BranchFactor(), got.BranchFactor())
	require.Equal(t, want.Extent(), got.Extent())
	require.Equal(t, want.Origin(), got.Origin())
	require.Equal(t, want.CellSizeAtLevel(0), got.CellSizeAtLevel(0))
	require.Equal(t, want.AllocatedTrees(), got.AllocatedTrees())

	for _, treeIndex := range want.AllocatedTrees() {
		type cell struct {
			local  int64
			global int64
			level  uint32
			origin geom.Coord
			leaf   bool
		}
		collect := func(g *grid.Grid) []cell {
			var cells []cell
			err := walk.Tree(g, treeIndex, func(e *cursor.GeometryLevelEntry) bool {
				cells = append(cells, cell{
					local:  e.VertexID(),
					global: e.GlobalNodeIndex(),
					level:  e.Level(),
					origin: e.Origin(),
					leaf:   e.IsLeaf(),
				})
				return true
			})
			require.NoError(t, err)

			return cells
		}
		require.Equal(t, collect(want), collect(got), "tree %d", treeIndex)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}
	for _, compression := range compressions {
		t.Run(compression.String(), func(t *testing.T) {
			g := buildGrid(t)

			data, err := persist.Encode(g, persist.WithCompression(compression))
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(data), format.SnapshotHeaderSize)

			restored, err := persist.Decode(data)
			require.NoError(t, err)
			requireEquivalent(t, g, restored)
		})
	}
}

func TestEncodeDecode_BigEndian(t *testing.T) {
	g := buildGrid(t)

	data, err := persist.Encode(g,
		persist.WithBigEndian(),
		persist.WithCompression(format.CompressionS2),
	)
	require.NoError(t, err)

	restored, err := persist.Decode(data)
	require.NoError(t, err)
	requireEquivalent(t, g, restored)
}

func TestEncodeDecode_EmptyGrid(t *testing.T) {
	g, err := grid.New(grid.WithExtent(3, 3, 1))
	require.NoError(t, err)

	data, err := persist.Encode(g)
	require.NoError(t, err)
	require.Equal(t, format.SnapshotHeaderSize, len(data))

	restored, err := persist.Decode(data)
	require.NoError(t, err)
	require.Equal(t, 0, restored.NumberOfAllocatedTrees())
	require.Equal(t, 9, restored.NumberOfTrees())
}

func TestEncode_MagicBytes(t *testing.T) {
	g, err := grid.New(grid.WithExtent(1, 1, 1))
	require.NoError(t, err)

	// "4HTG" in byte order, the low byte of SnapshotMagic first. The magic
	// must come out identical for both engines so a decoder can read it
	// before choosing one.
	want := []byte{0x34, 0x48, 0x54, 0x47}

	for name, opt := range map[string]persist.EncoderOption{
		"little endian": persist.WithLittleEndian(),
		"big endian":    persist.WithBigEndian(),
	} {
		t.Run(name, func(t *testing.T) {
			data, err := persist.Encode(g, opt)
			require.NoError(t, err)
			require.Equal(t, want, data[:4])
		})
	}
}

func TestNewEncoder_InvalidCompression(t *testing.T) {
	_, err := persist.NewEncoder(persist.WithCompression(format.CompressionType(0x55)))
	require.Error(t, err)
}

func TestDecode_Corrupt(t *testing.T) {
	g := buildGrid(t)

	tests := []struct {
		name   string
		mutate func([]byte) []byte
		want   error
	}{
		{"short input", func(b []byte) []byte { return b[:10] }, persist.ErrInvalidSnapshot},
		{"bad magic", func(b []byte) []byte { b[0] ^= 0xff; return b }, persist.ErrInvalidSnapshot},
		{"future version", func(b []byte) []byte { b[4] = 200; return b }, persist.ErrUnsupportedVersion},
		{"bad compression", func(b []byte) []byte { b[6] = 0x9; return b }, persist.ErrInvalidSnapshot},
		{"truncated payload", func(b []byte) []byte { return b[:len(b)-8] }, persist.ErrInvalidSnapshot},
		{"trailing bytes", func(b []byte) []byte { return append(b, 0, 0, 0, 0, 0, 0, 0, 0) }, persist.ErrInvalidSnapshot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fresh, err := persist.Encode(g)
			require.NoError(t, err)
			_, err = persist.Decode(tt.mutate(fresh))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func BenchmarkEncode(b *testing.B) {
	g, _ := grid.New(grid.WithExtent(4, 4, 1))
	for i := 0; i < 16; i++ {
		var e cursor.LevelEntry
		e.Initialize(g, i, true)
		for l := uint32(0); l < 4; l++ {
			e.SubdivideLeaf()
			e.ToChild(0)
		}
	}
	encoder, _ := persist.NewEncoder(persist.WithCompression(format.CompressionZstd))
	b.ResetTimer()
	for b.Loop() {
		_, _ = encoder.Encode(g)
	}
}
