// Package compress provides compression and decompression codecs for
// dataset payloads: the CSV files break detection reads and the curve and
// report files it writes.
//
// Codecs operate on whole payloads ([]byte in, []byte out), which fits the
// dataset package's slurp-parse-emit flow: economic time series are small
// enough that streaming buys nothing, while whole-payload codecs keep
// encoder and decoder reuse trivial.
//
// # Interfaces
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
//   - Gzip (TypeGzip, ".gz"): the interchange default; published datasets
//     are routinely gzipped
//   - Zstandard (TypeZstd, ".zst"): best ratio; pure-Go by default, with a
//     cgo implementation selected by the "czstd" build tag
//   - S2 (TypeS2, ".s2"): Snappy-compatible, fastest
//   - LZ4 (TypeLZ4, ".lz4"): fast decompression, moderate ratio
//   - Noop (TypeNone): passthrough for already-plain payloads
//
// # Choosing a Codec
//
// Callers normally never pick an algorithm by hand: ByExtension maps a file
// name extension to its codec, so "data.csv.zst" decompresses with Zstd and
// "curve.csv.gz" compresses with Gzip. ForType serves callers that carry a
// Type value instead of a file name.
//
//	codec, ok := compress.ByExtension(filepath.Ext("data.csv.gz"))
//	if !ok {
//	    codec = compress.NewNoopCodec()
//	}
//	plain, err := codec.Decompress(raw)
//
// All codecs are safe for concurrent use; the Gzip and Zstd implementations
// reuse pooled encoder and decoder state across calls.
package compress
