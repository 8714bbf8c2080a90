// Package pool provides pooled byte buffers for snapshot encoding, keeping
// per-snapshot allocations off the hot path.
package pool

import (
	"io"
	"sync"
)

const (
	// SnapshotBufferDefaultSize is the initial capacity of pooled buffers.
	// One tree section of a moderately refined tree fits without growth.
	SnapshotBufferDefaultSize = 1024 * 16 // 16KiB

	// SnapshotBufferMaxThreshold is the largest buffer the pool retains;
	// anything bigger is dropped for the garbage collector instead of
	// pinning memory between snapshots.
	SnapshotBufferMaxThreshold = 1024 * 128 // 128KiB
)

// ByteBuffer is a reusable append buffer.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a buffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int { return cap(bb.B) }

// Reset empties the buffer while keeping its allocation for reuse.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Write appends data to the buffer, growing it as needed. It never fails;
// the error return satisfies io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the buffer's contents to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

var _ io.Writer = (*ByteBuffer)(nil)

// ByteBufferPool pools ByteBuffers, dropping buffers that grew past the
// retention threshold.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool producing buffers of defaultSize capacity
// and retaining buffers up to maxThreshold bytes.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get returns an empty buffer from the pool.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// Put returns a buffer to the pool unless it outgrew the retention
// threshold.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil || bb.Cap() > p.maxThreshold {
		return
	}
	p.pool.Put(bb)
}

// SnapshotBufferPool is the shared pool used by the persist encoder.
var SnapshotBufferPool = NewByteBufferPool(SnapshotBufferDefaultSize, SnapshotBufferMaxThreshold)
