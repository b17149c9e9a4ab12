package core

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
)

// Hash represents a cryptographic hash
type Hash string

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// Short returns the first 12 hex characters, enough to tell runs apart on a console.
func (h Hash) Short() string {
	if len(h) <= 12 {
		return string(h)
	}
	return string(h[:12])
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// HashFloatSeries hashes the IEEE-754 bit patterns of each series in order.
// Each series is prefixed with its length so that ([1,2],[3]) and ([1],[2,3]) differ.
func HashFloatSeries(series ...[]float64) Hash {
	h := sha256.New()
	var buf [8]byte
	for _, s := range series {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(s)))
		h.Write(buf[:])
		for _, v := range s {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			h.Write(buf[:])
		}
	}
	return Hash(hex.EncodeToString(h.Sum(nil)))
}
