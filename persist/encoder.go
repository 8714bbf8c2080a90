package persist

import (
	"fmt"
	"math"

	"github.com/gridforge/htg/compress"
	"github.com/gridforge/htg/endian"
	"github.com/gridforge/htg/format"
	"github.com/gridforge/htg/grid"
	"github.com/gridforge/htg/internal/options"
	"github.com/gridforge/htg/internal/pool"
)

// Encoder turns grids into snapshots. A zero-option encoder writes
// uncompressed little-endian snapshots; construct with NewEncoder and reuse
// freely, the encoder itself is stateless between Encode calls.
type Encoder struct {
	compression format.CompressionType
	engine      endian.EndianEngine
	bigEndian   bool
}

// EncoderOption represents a functional option for configuring an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithCompression selects the payload codec.
func WithCompression(c format.CompressionType) EncoderOption {
	return options.New(func(e *Encoder) error {
		if !c.IsValid() {
			return fmt.Errorf("invalid snapshot compression: %s", c)
		}
		e.compression = c

		return nil
	})
}

// WithLittleEndian writes the snapshot in little-endian byte order, the
// default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.engine = endian.GetLittleEndianEngine()
		e.bigEndian = false
	})
}

// WithBigEndian writes the snapshot in big-endian byte order. Rarely needed
// outside interoperability with big-endian consumers.
func WithBigEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.engine = endian.GetBigEndianEngine()
		e.bigEndian = true
	})
}

// NewEncoder creates an encoder with the given options.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{
		compression: format.CompressionNone,
		engine:      endian.GetLittleEndianEngine(),
	}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Encode serializes g into a self-contained snapshot.
func (e *Encoder) Encode(g *grid.Grid) ([]byte, error) {
	codec, err := compress.CreateCodec(e.compression, "snapshot")
	if err != nil {
		return nil, err
	}

	bb := pool.SnapshotBufferPool.Get()
	defer pool.SnapshotBufferPool.Put(bb)

	treeIndices := g.AllocatedTrees()
	for _, treeIndex := range treeIndices {
		bb.B = appendTreeSection(bb.B, e.engine, treeIndex, g)
	}

	payload, err := codec.Compress(bb.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compressing snapshot payload: %w", err)
	}

	out := make([]byte, 0, format.SnapshotHeaderSize+len(payload))
	out = e.appendHeader(out, g, len(treeIndices), bb.Len())
	out = append(out, payload...)

	return out, nil
}

// appendHeader writes the fixed header. The magic and everything before the
// flags byte are byte-order independent so a decoder can pick its engine
// before reading multi-byte fields.
func (e *Encoder) appendHeader(buf []byte, g *grid.Grid, treeCount, payloadLen int) []byte {
	var flags uint8
	if e.bigEndian {
		flags |= format.FlagBigEndian
	}

	buf = append(buf,
		byte(format.SnapshotMagic&0xff), byte(format.SnapshotMagic>>8&0xff),
		byte(format.SnapshotMagic>>16&0xff), byte(format.SnapshotMagic>>24),
	)
	buf = append(buf, format.SnapshotVersion, flags, byte(e.compression),
		byte(g.Dimension()), byte(g.BranchFactor()), 0, 0, 0)

	extent := g.Extent()
	for axis := 0; axis < 3; axis++ {
		buf = e.engine.AppendUint32(buf, uint32(extent[axis]))
	}
	origin := g.Origin()
	for axis := 0; axis < 3; axis++ {
		buf = e.engine.AppendUint64(buf, math.Float64bits(origin[axis]))
	}
	rootSize := g.CellSizeAtLevel(0)
	for axis := 0; axis < 3; axis++ {
		buf = e.engine.AppendUint64(buf, math.Float64bits(rootSize[axis]))
	}
	buf = e.engine.AppendUint32(buf, uint32(treeCount))
	buf = e.engine.AppendUint32(buf, uint32(payloadLen))

	return buf
}

// appendTreeSection writes one tree's storage: index, shape counters, the
// packed coarse bits, the elder-child array and the global numbering.
func appendTreeSection(buf []byte, engine endian.EndianEngine, treeIndex int, g *grid.Grid) []byte {
	snap := g.HyperTreeAt(treeIndex, false).Snapshot()

	buf = engine.AppendUint32(buf, uint32(treeIndex))
	buf = engine.AppendUint64(buf, uint64(snap.Cells))
	buf = engine.AppendUint32(buf, snap.Levels)
	buf = engine.AppendUint64(buf, uint64(snap.GlobalIndexStart))

	for _, word := range snap.CoarseBits {
		buf = engine.AppendUint64(buf, word)
	}
	for _, elder := range snap.ElderChild {
		buf = engine.AppendUint64(buf, uint64(elder))
	}
	buf = engine.AppendUint64(buf, uint64(len(snap.Globals)))
	for _, global := range snap.Globals {
		buf = engine.AppendUint64(buf, uint64(global))
	}

	return buf
}

// Encode serializes g with a one-shot encoder.
func Encode(g *grid.Grid, opts ...EncoderOption) ([]byte, error) {
	e, err := NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return e.Encode(g)
}
