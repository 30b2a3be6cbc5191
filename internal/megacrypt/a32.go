// Package megacrypt implements the MEGA password authentication primitives:
// the word/byte codec the protocol computes over, URL-safe Base64, AES-ECB
// block encryption, the password key-derivation function, and the login hash.
//
// All routines are deterministic and perform no I/O. The derivation must be
// bit-exact: the server rejects any deviation with a bare "login failed",
// so the constants and block handling here are not negotiable.
package megacrypt

import "encoding/binary"

// BytesToA32 converts a byte sequence into big-endian 32-bit words,
// zero-padding on the right to the next multiple of 4 bytes.
// Empty input yields an empty (non-nil) slice.
func BytesToA32(b []byte) []uint32 {
	words := make([]uint32, (len(b)+3)/4)

	for i := range words {
		var chunk [4]byte
		copy(chunk[:], b[i*4:])
		words[i] = binary.BigEndian.Uint32(chunk[:])
	}

	return words
}

// A32ToBytes converts 32-bit words back into bytes, 4 big-endian bytes
// per word, in order.
func A32ToBytes(words []uint32) []byte {
	b := make([]byte, len(words)*4)

	for i, w := range words {
		binary.BigEndian.PutUint32(b[i*4:], w)
	}

	return b
}
