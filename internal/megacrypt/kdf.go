package megacrypt

import (
	"crypto/aes"
	"encoding/binary"
	"fmt"
)

// kdfRounds is the fixed outer iteration count of the password KDF.
// The cost is the point: 65536 rounds make offline guessing of the
// password from the transmitted verifier expensive.
const kdfRounds = 65536

// kdfInit is the protocol's published 128-bit initial key. It is a protocol
// constant, not a secret.
var kdfInit = [keyWords]uint32{0x93c467e3, 0x7db0c7a4, 0xd1be3f81, 0x0152cb56}

// PrepareKey derives the 128-bit master key from a UTF-8 password.
//
// The password is split into 16-byte blocks with the final block
// zero-padded. A running key starts at kdfInit; for each of 65536 rounds,
// every password block is XOR-folded into the running key, which is then
// encrypted under the all-zero AES key. The running key after the final
// round is the master key.
//
// Identical passwords always yield identical keys; the key never leaves
// process memory.
func PrepareKey(password string) ([]uint32, error) {
	pw := []byte(password)
	if rem := len(pw) % aes.BlockSize; rem != 0 {
		pw = append(pw, make([]byte, aes.BlockSize-rem)...)
	}

	zero, err := aes.NewCipher(make([]byte, aes.BlockSize))
	if err != nil {
		return nil, fmt.Errorf("megacrypt: creating cipher: %w", err)
	}

	key := kdfInit
	buf := make([]byte, aes.BlockSize)

	for range kdfRounds {
		for i := 0; i < len(pw); i += aes.BlockSize {
			for j := range keyWords {
				key[j] ^= binary.BigEndian.Uint32(pw[i+j*4:])
			}

			for j := range keyWords {
				binary.BigEndian.PutUint32(buf[j*4:], key[j])
			}

			zero.Encrypt(buf, buf)

			for j := range keyWords {
				key[j] = binary.BigEndian.Uint32(buf[j*4:])
			}
		}
	}

	return key[:], nil
}
