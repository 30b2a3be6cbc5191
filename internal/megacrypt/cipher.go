package megacrypt

import (
	"crypto/aes"
	"fmt"
)

// keyWords is the fixed key width: 4 words, a 128-bit AES key.
const keyWords = 4

// EncryptBlocks encrypts plaintext under a 128-bit key given as 4 big-endian
// words, using AES in ECB mode (each 16-byte block independently, no IV).
// The plaintext length must already be a multiple of the AES block size;
// callers pad per-block because the padding rules differ between the key
// derivation and the login hash.
func EncryptBlocks(plaintext []byte, key []uint32) ([]byte, error) {
	if len(key) != keyWords {
		return nil, fmt.Errorf("megacrypt: key must be %d words, got %d", keyWords, len(key))
	}

	if len(plaintext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("megacrypt: plaintext length %d is not a multiple of the block size", len(plaintext))
	}

	block, err := aes.NewCipher(A32ToBytes(key))
	if err != nil {
		return nil, fmt.Errorf("megacrypt: creating cipher: %w", err)
	}

	out := make([]byte, len(plaintext))
	for i := 0; i < len(plaintext); i += aes.BlockSize {
		block.Encrypt(out[i:i+aes.BlockSize], plaintext[i:i+aes.BlockSize])
	}

	return out, nil
}
