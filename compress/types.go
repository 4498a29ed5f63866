package compress

// Type identifies a compression algorithm.
type Type uint8

const (
	TypeNone Type = 0x1 // TypeNone represents no compression.
	TypeGzip Type = 0x2 // TypeGzip represents gzip compression.
	TypeZstd Type = 0x3 // TypeZstd represents Zstandard compression.
	TypeS2   Type = 0x4 // TypeS2 represents S2 compression.
	TypeLZ4  Type = 0x5 // TypeLZ4 represents LZ4 compression.
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeGzip:
		return "Gzip"
	case TypeZstd:
		return "Zstd"
	case TypeS2:
		return "S2"
	case TypeLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
