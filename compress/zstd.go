package compress

// ZstdCodec compresses snapshot payloads with Zstandard, the ratio-first
// choice for archived grids. The implementation is selected at build time:
// the cgo build binds libzstd through gozstd, the pure-Go build uses
// klauspost/compress with pooled encoders.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
