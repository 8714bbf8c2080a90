// Package compress provides the codecs applied to grid snapshot payloads.
//
// Snapshot payloads compress well: the coarse/leaf bitmaps are sparse, the
// elder-child arrays are near-monotonic and the explicit global-index
// tables are mostly the unset sentinel. Zstd gives the best ratio for
// archival; S2 and LZ4 trade ratio for speed when snapshots move between
// processes; None exists for debugging and baselines.
package compress

import (
	"fmt"

	"github.com/gridforge/htg/format"
)

// Compressor compresses a complete snapshot payload.
//
// The returned slice is newly allocated and owned by the caller; the input
// is never modified. Implementations may reuse internal buffers.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compress. It returns an error when the input is
// corrupted or was produced by a different codec.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec returns the codec for the given compression type. target
// names the caller's usage for error messages.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCodec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(), nil
	case format.CompressionS2:
		return NewS2Codec(), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}
