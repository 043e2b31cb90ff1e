// Package entropy derives seeds from the OS entropy pool for random sources
// that are not explicitly seeded.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
)

// Seed returns a non-negative int64 read from crypto/rand. Reads from the
// pool do not fail on supported platforms; should one ever fail, a fixed
// nonzero seed comes back so callers that reserve 0 for "derive one" keep
// working.
func Seed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 1
	}
	return int64(binary.LittleEndian.Uint64(buf[:]) &^ (1 << 63))
}
