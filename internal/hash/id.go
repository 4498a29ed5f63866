package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Fingerprint computes the xxHash64 digest of a float64 series.
//
// Values are hashed as their IEEE-754 bit patterns in little-endian order,
// so the fingerprint is stable across runs and platforms and changes
// whenever any observation changes.
func Fingerprint(values []float64) uint64 {
	digest := xxhash.New()

	var buf [8]byte
	for _, v := range values {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = digest.Write(buf[:])
	}

	return digest.Sum64()
}
