// Package endian provides the byte-order engine used by snapshot encoding.
//
// It combines the ByteOrder and AppendByteOrder interfaces of
// encoding/binary into a single EndianEngine so encoders can both read
// fixed-width fields and append them without an intermediate scratch
// buffer. binary.LittleEndian and binary.BigEndian satisfy the interface
// directly; the returned engines are immutable and safe for concurrent use.
//
// Snapshots default to little endian; big endian exists for
// interoperability with consumers on big-endian hosts.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the snapshot
// default.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
