package megacrypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Golden master keys captured from the reference derivation. A mismatch here
// means the server will reject every login this build produces.
func TestPrepareKey_GoldenVectors(t *testing.T) {
	tests := []struct {
		password string
		want     []uint32
	}{
		{"correct-horse!!!", []uint32{0x140ee444, 0x8988a446, 0x5d8a1e4d, 0xea4385b8}},
		{"hunter2", []uint32{0x90ab7391, 0xdb8865ac, 0x52116edb, 0x1efd9ac9}},
		{"password123", []uint32{0xabe518c6, 0x9d897942, 0xfafca9fe, 0x27a38504}},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			got, err := PrepareKey(tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrepareKey_Deterministic(t *testing.T) {
	a, err := PrepareKey("hunter2")
	require.NoError(t, err)

	b, err := PrepareKey("hunter2")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestPrepareKey_DistinctPasswords(t *testing.T) {
	a, err := PrepareKey("hunter2")
	require.NoError(t, err)

	b, err := PrepareKey("hunter3")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestPrepareKey_EmptyPassword(t *testing.T) {
	// An empty password has no blocks to fold, so the running key never
	// leaves the protocol's initial constant. Matches the reference.
	got, err := PrepareKey("")
	require.NoError(t, err)
	assert.Equal(t, []uint32{0x93c467e3, 0x7db0c7a4, 0xd1be3f81, 0x0152cb56}, got)
}
