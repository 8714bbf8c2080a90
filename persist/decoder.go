package persist

import (
	"errors"
	"fmt"
	"math"

	"github.com/gridforge/htg/compress"
	"github.com/gridforge/htg/endian"
	"github.com/gridforge/htg/format"
	"github.com/gridforge/htg/geom"
	"github.com/gridforge/htg/grid"
	"github.com/gridforge/htg/tree"
)

var (
	// ErrInvalidSnapshot indicates data that is not a snapshot or is
	// structurally truncated or inconsistent.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrUnsupportedVersion indicates a snapshot from a newer layout
	// version.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
)

// Decode reconstructs a grid from a snapshot produced by Encode.
func Decode(data []byte) (*grid.Grid, error) {
	if len(data) < format.SnapshotHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrInvalidSnapshot, len(data))
	}

	magic := uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16 | uint32(data[3])<<24
	if magic != format.SnapshotMagic {
		return nil, fmt.Errorf("%w: bad magic %#x", ErrInvalidSnapshot, magic)
	}
	if version := data[4]; version != format.SnapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	flags := data[5]
	engine := endian.GetLittleEndianEngine()
	if flags&format.FlagBigEndian != 0 {
		engine = endian.GetBigEndianEngine()
	}

	compression := format.CompressionType(data[6])
	if !compression.IsValid() {
		return nil, fmt.Errorf("%w: unknown compression %#x", ErrInvalidSnapshot, data[6])
	}
	dimension := int(data[7])
	branchFactor := int(data[8])

	var extent [3]int
	for axis := 0; axis < 3; axis++ {
		extent[axis] = int(engine.Uint32(data[12+4*axis:]))
	}
	var origin, rootSize geom.Coord
	for axis := 0; axis < 3; axis++ {
		origin[axis] = math.Float64frombits(engine.Uint64(data[24+8*axis:]))
		rootSize[axis] = math.Float64frombits(engine.Uint64(data[48+8*axis:]))
	}
	treeCount := int(engine.Uint32(data[72:]))
	payloadLen := int(engine.Uint32(data[76:]))

	codec, err := compress.CreateCodec(compression, "snapshot")
	if err != nil {
		return nil, err
	}
	payload, err := codec.Decompress(data[format.SnapshotHeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("decompressing snapshot payload: %w", err)
	}
	if len(payload) != payloadLen {
		return nil, fmt.Errorf("%w: payload is %d bytes, header says %d", ErrInvalidSnapshot, len(payload), payloadLen)
	}

	// unused axes were flattened at encode time; grid.New would reject their
	// zero sizes, so restore positive placeholders it will flatten again
	for axis := dimension; axis < 3; axis++ {
		rootSize[axis] = 1
		if extent[axis] < 1 {
			extent[axis] = 1
		}
	}

	g, err := grid.New(
		grid.WithDimensions(dimension),
		grid.WithBranchFactor(branchFactor),
		grid.WithExtent(extent[0], extent[1], extent[2]),
		grid.WithOrigin(origin),
		grid.WithRootSize(rootSize),
	)
	if err != nil {
		return nil, fmt.Errorf("restoring grid shape: %w", err)
	}

	r := payloadReader{payload: payload, engine: engine}
	for i := 0; i < treeCount; i++ {
		treeIndex, snap, err := r.readTreeSection(branchFactor, dimension)
		if err != nil {
			return nil, err
		}
		ht, err := tree.FromSnapshot(snap)
		if err != nil {
			return nil, fmt.Errorf("restoring tree %d: %w", treeIndex, err)
		}
		if err := g.SetTree(treeIndex, ht); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
		}
	}
	if r.off != len(payload) {
		return nil, fmt.Errorf("%w: %d trailing payload bytes", ErrInvalidSnapshot, len(payload)-r.off)
	}

	return g, nil
}

// payloadReader consumes the decompressed payload section by section.
type payloadReader struct {
	payload []byte
	engine  endian.EndianEngine
	off     int
}

func (r *payloadReader) remaining() int {
	return len(r.payload) - r.off
}

func (r *payloadReader) uint32() (uint32, error) {
	if r.remaining() < 4 {
		return 0, fmt.Errorf("%w: truncated payload at offset %d", ErrInvalidSnapshot, r.off)
	}
	v := r.engine.Uint32(r.payload[r.off:])
	r.off += 4

	return v, nil
}

func (r *payloadReader) uint64() (uint64, error) {
	if r.remaining() < 8 {
		return 0, fmt.Errorf("%w: truncated payload at offset %d", ErrInvalidSnapshot, r.off)
	}
	v := r.engine.Uint64(r.payload[r.off:])
	r.off += 8

	return v, nil
}

func (r *payloadReader) uint64Slice(n int64) ([]uint64, error) {
	if n < 0 || int64(r.remaining()) < n*8 {
		return nil, fmt.Errorf("%w: truncated payload at offset %d", ErrInvalidSnapshot, r.off)
	}
	out := make([]uint64, n)
	for i := range out {
		out[i] = r.engine.Uint64(r.payload[r.off:])
		r.off += 8
	}

	return out, nil
}

func (r *payloadReader) int64Slice(n int64) ([]int64, error) {
	words, err := r.uint64Slice(n)
	if err != nil {
		return nil, err
	}
	out := make([]int64, n)
	for i, w := range words {
		out[i] = int64(w)
	}

	return out, nil
}

func (r *payloadReader) readTreeSection(branchFactor, dimension int) (int, tree.Snapshot, error) {
	var snap tree.Snapshot

	treeIndex, err := r.uint32()
	if err != nil {
		return 0, snap, err
	}
	cells, err := r.uint64()
	if err != nil {
		return 0, snap, err
	}
	levels, err := r.uint32()
	if err != nil {
		return 0, snap, err
	}
	start, err := r.uint64()
	if err != nil {
		return 0, snap, err
	}

	const maxCells = 1 << 40 // refuse absurd counts before allocating
	if cells == 0 || cells > maxCells {
		return 0, snap, fmt.Errorf("%w: tree %d claims %d cells", ErrInvalidSnapshot, treeIndex, cells)
	}

	coarseBits, err := r.uint64Slice((int64(cells) + 63) / 64)
	if err != nil {
		return 0, snap, err
	}
	elderChild, err := r.int64Slice(int64(cells))
	if err != nil {
		return 0, snap, err
	}
	globalsCount, err := r.uint64()
	if err != nil {
		return 0, snap, err
	}
	if globalsCount > cells {
		return 0, snap, fmt.Errorf("%w: tree %d has %d explicit globals for %d cells", ErrInvalidSnapshot, treeIndex, globalsCount, cells)
	}
	var globals []int64
	if globalsCount > 0 {
		globals, err = r.int64Slice(int64(globalsCount))
		if err != nil {
			return 0, snap, err
		}
	}

	snap = tree.Snapshot{
		BranchFactor:     branchFactor,
		Dimension:        dimension,
		Cells:            int64(cells),
		Levels:           levels,
		CoarseBits:       coarseBits,
		ElderChild:       elderChild,
		GlobalIndexStart: int64(start),
		Globals:          globals,
	}

	return int(treeIndex), snap, nil
}
