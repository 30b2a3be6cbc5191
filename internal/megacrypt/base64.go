package megacrypt

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeBase64URL encodes bytes with the URL-safe Base64 alphabet and no
// trailing padding characters, the framing MEGA uses for all binary fields.
func EncodeBase64URL(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeBase64URL decodes a URL-safe Base64 string. Trailing "=" padding is
// accepted but not required, matching the tolerant decoder on the wire.
func DecodeBase64URL(s string) ([]byte, error) {
	b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		return nil, fmt.Errorf("megacrypt: decoding base64url: %w", err)
	}

	return b, nil
}
