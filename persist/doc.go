// Package persist serializes a hypertree grid to a compact binary snapshot
// and back.
//
// A snapshot is a fixed 80-byte header followed by one compressed payload
// holding a section per allocated tree. The header records the grid shape
// (dimension, branch factor, extent, origin, root size), the payload codec
// and the byte order; per-tree sections carry the packed coarse/leaf bit
// words, the elder-child array and the global-index numbering, which is all
// a tree's storage amounts to.
//
// # Encoding
//
//	data, err := persist.Encode(g,
//	    persist.WithCompression(format.CompressionZstd),
//	)
//
// # Decoding
//
//	g, err := persist.Decode(data)
//
// Decoding reconstructs an equivalent grid: same shape, same trees, same
// local and global indexing, so cursors resumed on the restored grid see
// the forest the encoder saw.
package persist
