// Package hash derives stable 64-bit identities for numeric samples.
//
// Fingerprints are computed with xxHash64 over the little-endian
// IEEE-754 bit patterns of the values, so two samples fingerprint
// equal exactly when they are bit-identical in the same order.
// In particular +0.0 and -0.0 and distinct NaN payloads produce
// different fingerprints, matching the bit-pattern equality used for
// cluster deduplication.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Sample computes the xxHash64 fingerprint of a flat value sequence.
func Sample(values []float64) uint64 {
	var (
		d   xxhash.Digest
		buf [8]byte
	)
	d.Reset()
	for _, v := range values {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}

// Weighted computes the xxHash64 fingerprint of a weighted sequence.
// Each (value, count) pair contributes 16 bytes: the value's bit
// pattern followed by the count, both little-endian.
func Weighted(values []float64, counts []int) uint64 {
	var (
		d   xxhash.Digest
		buf [16]byte
	)
	d.Reset()
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(v))
		binary.LittleEndian.PutUint64(buf[8:], uint64(counts[i]))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
