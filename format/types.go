// Package format declares the enums and constants of the grid snapshot
// format shared by the compress and persist packages.
package format

// CompressionType selects the codec applied to snapshot payloads.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // no compression
	CompressionZstd CompressionType = 0x2 // Zstandard
	CompressionS2   CompressionType = 0x3 // S2 (Snappy-compatible)
	CompressionLZ4  CompressionType = 0x4 // LZ4 block format
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c names a known codec.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

// Snapshot format constants. A snapshot is a fixed header followed by a
// compressed payload of per-tree sections.
const (
	// SnapshotMagic opens every snapshot ("HTG" + version-independent tag).
	SnapshotMagic uint32 = 0x47544834 // "4HTG" little-endian

	// SnapshotVersion is the current payload layout version.
	SnapshotVersion uint8 = 1

	// SnapshotHeaderSize is the byte length of the fixed header.
	SnapshotHeaderSize = 80
)

// Flag bits stored in the snapshot header.
const (
	// FlagBigEndian marks a payload written with the big-endian engine.
	FlagBigEndian uint8 = 1 << 0
)
