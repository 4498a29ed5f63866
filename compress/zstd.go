package compress

// ZstdCodec provides Zstandard compression for dataset payloads.
//
// Zstd offers the best compression ratio of the supported algorithms and is
// the right choice for archived curve tables and reports that are written
// once and read rarely.
//
// Two implementations exist behind the same type: the default pure-Go
// implementation (klauspost/compress/zstd) and a cgo implementation
// (valyala/gozstd) selected by building with the "czstd" tag. Payloads are
// interchangeable between the two.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
