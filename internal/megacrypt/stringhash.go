package megacrypt

import (
	"crypto/aes"
	"encoding/binary"
	"fmt"
	"strings"
)

// StringHash derives the login verifier ("uh") from an email address and the
// master key. The verifier, not the password, is what crosses the network.
//
// The email is lower-cased and split into 16-byte zero-padded blocks. Each
// block is XOR-folded word-wise into a 4-word accumulator that starts at
// zero, and the accumulator is encrypted under the master key after every
// block. The full 16-byte final state, Base64URL-encoded without padding,
// is the verifier.
func StringHash(email string, key []uint32) (string, error) {
	if len(key) != keyWords {
		return "", fmt.Errorf("megacrypt: key must be %d words, got %d", keyWords, len(key))
	}

	block, err := aes.NewCipher(A32ToBytes(key))
	if err != nil {
		return "", fmt.Errorf("megacrypt: creating cipher: %w", err)
	}

	eb := []byte(strings.ToLower(email))
	if rem := len(eb) % aes.BlockSize; rem != 0 {
		eb = append(eb, make([]byte, aes.BlockSize-rem)...)
	}

	var h [keyWords]uint32
	buf := make([]byte, aes.BlockSize)

	for i := 0; i < len(eb); i += aes.BlockSize {
		for j := range keyWords {
			h[j] ^= binary.BigEndian.Uint32(eb[i+j*4:])
		}

		for j := range keyWords {
			binary.BigEndian.PutUint32(buf[j*4:], h[j])
		}

		block.Encrypt(buf, buf)

		for j := range keyWords {
			h[j] = binary.BigEndian.Uint32(buf[j*4:])
		}
	}

	return EncodeBase64URL(A32ToBytes(h[:])), nil
}
