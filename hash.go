package tally

import (
	"encoding/binary"
	"encoding/hex"
	"hash"
	"math"
	"time"

	"github.com/cespare/xxhash/v2"
)

// HashFunc defines a function that creates a new hash.Hash instance.
type HashFunc func() hash.Hash

// NowFunc defines a function that returns the current time.
type NowFunc func() time.Time

// defaultHashFunc returns the default hash function (xxHash64).
func defaultHashFunc() hash.Hash {
	return xxhash.New()
}

// fingerprint computes the content-addressed key of one calculation.
// It hashes the operation symbol followed by each operand's IEEE-754 bits
// in big-endian order, so the key is deterministic across runs and
// platforms. Returns the hash as a hex string.
func fingerprint(h hash.Hash, symbol string, operands []float64) string {
	h.Reset()
	h.Write([]byte(symbol))

	var buf [8]byte
	for _, v := range operands {
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}

	return hex.EncodeToString(h.Sum(nil))
}
