package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"

	"github.com/arloliu/breakscan/internal/pool"
)

// gzipWriterPool pools gzip writers for reuse; Reset rebinds a pooled
// writer to a fresh output buffer.
var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(io.Discard)
	},
}

// gzipReaderPool pools gzip readers; a zero reader is initialized on its
// first Reset.
var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// GzipCodec provides gzip compression for dataset payloads.
//
// Gzip is the interchange format of published statistical datasets, so it
// is the codec most commonly selected by extension when ingesting CSV files.
type GzipCodec struct{}

var _ Codec = (*GzipCodec)(nil)

// NewGzipCodec creates a new gzip codec with default settings.
func NewGzipCodec() GzipCodec {
	return GzipCodec{}
}

// Compress compresses the input data into a gzip stream.
func (c GzipCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	writer, _ := gzipWriterPool.Get().(*gzip.Writer)
	defer gzipWriterPool.Put(writer)

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	buf.Grow(len(data) / 2)
	writer.Reset(buf)

	if _, err := writer.Write(data); err != nil {
		return nil, fmt.Errorf("gzip compression failed: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("gzip compression failed: %w", err)
	}

	return buf.CopyBytes(), nil
}

// Decompress decompresses a gzip stream.
func (c GzipCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	reader, _ := gzipReaderPool.Get().(*gzip.Reader)
	defer gzipReaderPool.Put(reader)

	if err := reader.Reset(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}
	if err := reader.Close(); err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}

	return decompressed, nil
}
