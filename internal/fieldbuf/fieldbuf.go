// Package fieldbuf provides the canonical-trim and wire-padding helpers
// that back the "key value objects" component: every big-integer field
// of an RSA or DSA key is stored as a trimmed big-endian byte slice and
// only padded back out when a wire format demands a fixed width.
package fieldbuf

import "crypto/subtle"

// Trim strips leading zero bytes from b, returning a new slice. A nil
// or all-zero input trims to an empty slice, the canonical zero.
func Trim(b []byte) []byte {
	i := 0
	for i < len(b) && b[i] == 0 {
		i++
	}
	out := make([]byte, len(b)-i)
	copy(out, b[i:])
	return out
}

// Pad left-pads b with zero bytes to exactly size bytes. It panics if b
// is already longer than size; callers only pad canonically-trimmed
// values into a width known to be sufficient (q-size, n-size, ...).
func Pad(b []byte, size int) []byte {
	if len(b) > size {
		panic("fieldbuf: value does not fit in requested width")
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out
}

// Equal performs a constant-time, fixed-length byte comparison. Both
// slices must already be the same length; a length mismatch is itself
// a non-secret structural fact and is reported as unequal without
// touching subtle.ConstantTimeCompare.
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// ByteSize returns the number of bytes needed to hold bitLen bits.
func ByteSize(bitLen int) int {
	return (bitLen + 7) / 8
}
