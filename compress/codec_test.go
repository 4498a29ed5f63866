package compress

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// samplePayload builds a CSV-like payload with enough repetition for every
// codec to actually shrink it.
func samplePayload() []byte {
	var buf bytes.Buffer
	buf.WriteString("date,value\n")
	for i := 0; i < 500; i++ {
		fmt.Fprintf(&buf, "2020-%02d-01,%0.4f\n", i%12+1, 100.0+float64(i)*0.25)
	}

	return buf.Bytes()
}

func roundtripCodecs() map[string]Codec {
	return map[string]Codec{
		"gzip": NewGzipCodec(),
		"zstd": NewZstdCodec(),
		"s2":   NewS2Codec(),
		"lz4":  NewLZ4Codec(),
	}
}

func TestCodecRoundtrip(t *testing.T) {
	payload := samplePayload()

	for name, codec := range roundtripCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.NotEmpty(t, compressed)
			assert.Less(t, len(compressed), len(payload), "repetitive payload should shrink")

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, restored)
		})
	}
}

func TestCodecEmptyInput(t *testing.T) {
	codecs := roundtripCodecs()
	codecs["noop"] = NewNoopCodec()

	for name, codec := range codecs {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Empty(t, compressed)

			restored, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Empty(t, restored)
		})
	}
}

func TestCodecCorruptInput(t *testing.T) {
	garbage := []byte("definitely not a compressed stream")

	for name, codec := range map[string]Codec{
		"gzip": NewGzipCodec(),
		"zstd": NewZstdCodec(),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := codec.Decompress(garbage)
			require.Error(t, err)
		})
	}
}

func TestNoopCodecPassthrough(t *testing.T) {
	codec := NewNoopCodec()
	payload := samplePayload()

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, compressed)

	restored, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, restored)
}

func TestForType(t *testing.T) {
	for _, tt := range []Type{TypeNone, TypeGzip, TypeZstd, TypeS2, TypeLZ4} {
		codec, err := ForType(tt)
		require.NoError(t, err, "type %s", tt)
		require.NotNil(t, codec)
	}

	_, err := ForType(Type(0xFF))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported compression type")
}

func TestByExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want Type
		ok   bool
	}{
		{".gz", TypeGzip, true},
		{"gz", TypeGzip, true},
		{".GZ", TypeGzip, true},
		{".gzip", TypeGzip, true},
		{".zst", TypeZstd, true},
		{".zstd", TypeZstd, true},
		{".s2", TypeS2, true},
		{".lz4", TypeLZ4, true},
		{".csv", 0, false},
		{".json", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run("ext "+tt.ext, func(t *testing.T) {
			codec, ok := ByExtension(tt.ext)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.NotNil(t, codec)
				assert.Equal(t, tt.want, TypeByExtension(tt.ext))
			} else {
				assert.Equal(t, TypeNone, TypeByExtension(tt.ext))
			}
		})
	}
}

func TestCodecExtensionRoundtrip(t *testing.T) {
	payload := samplePayload()

	for _, ext := range []string{".gz", ".zst", ".s2", ".lz4"} {
		t.Run(ext, func(t *testing.T) {
			codec, ok := ByExtension(ext)
			require.True(t, ok)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, restored)
		})
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		cType    Type
		expected string
	}{
		{TypeNone, "None"},
		{TypeGzip, "Gzip"},
		{TypeZstd, "Zstd"},
		{TypeS2, "S2"},
		{TypeLZ4, "LZ4"},
		{Type(0xFF), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cType.String())
		})
	}
}
