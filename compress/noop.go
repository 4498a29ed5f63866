package compress

// NoopCodec passes payloads through without compression.
//
// It backs plain dataset files (".csv", ".json") so callers can treat every
// path uniformly: resolve a codec, then compress or decompress, whether or
// not the file name carries a compression extension.
type NoopCodec struct{}

var _ Codec = (*NoopCodec)(nil)

// NewNoopCodec creates a new no-op codec.
func NewNoopCodec() NoopCodec {
	return NoopCodec{}
}

// Compress returns the input data as-is without copying.
//
// The returned slice shares memory with the input; callers must not modify
// the input afterwards if they use the result.
func (c NoopCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input data as-is without copying.
//
// The returned slice shares memory with the input; callers must not modify
// the input afterwards if they use the result.
func (c NoopCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
