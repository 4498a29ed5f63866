package compress

import (
	"fmt"
	"strings"
)

// Compressor compresses a whole payload in one call.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a whole payload in one call.
//
// Implementations validate the input format and return an error when the
// data is corrupted or was produced by a different algorithm.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Type]Codec{
	TypeNone: NewNoopCodec(),
	TypeGzip: NewGzipCodec(),
	TypeZstd: NewZstdCodec(),
	TypeS2:   NewS2Codec(),
	TypeLZ4:  NewLZ4Codec(),
}

// codecExtensions maps lowercased file name extensions (without the dot) to
// their codec type.
var codecExtensions = map[string]Type{
	"gz":   TypeGzip,
	"gzip": TypeGzip,
	"zst":  TypeZstd,
	"zstd": TypeZstd,
	"s2":   TypeS2,
	"lz4":  TypeLZ4,
}

// ForType returns the built-in Codec for the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Gzip, Zstd, S2 or LZ4)
//
// Returns:
//   - Codec: Codec instance for the specified type.
//   - error: Unsupported compression type error.
func ForType(compressionType Type) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// ByExtension returns the Codec associated with a file name extension.
//
// The extension may carry a leading dot and any casing, so both ".zst" (as
// returned by filepath.Ext) and "GZ" resolve. The second return value is
// false for extensions that do not name a compression format, such as
// ".csv".
func ByExtension(ext string) (Codec, bool) {
	name := strings.ToLower(strings.TrimPrefix(ext, "."))
	t, ok := codecExtensions[name]
	if !ok {
		return nil, false
	}

	return builtinCodecs[t], true
}

// TypeByExtension returns the compression Type associated with a file name
// extension, or TypeNone when the extension names no compression format.
func TypeByExtension(ext string) Type {
	name := strings.ToLower(strings.TrimPrefix(ext, "."))
	if t, ok := codecExtensions[name]; ok {
		return t
	}

	return TypeNone
}
