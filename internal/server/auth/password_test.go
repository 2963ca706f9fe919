package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(4) // minimal cost to keep the test fast

	hash, err := h.Hash("pass123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, h.Verify("pass123", hash))
	assert.False(t, h.Verify("pass124", hash))
}

func TestPasswordHasher_SamePasswordDifferentHashes(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(4)

	first, err := h.Hash("pass123")
	require.NoError(t, err)
	second, err := h.Hash("pass123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "salt must randomize the hash")
	assert.True(t, h.Verify("pass123", first))
	assert.True(t, h.Verify("pass123", second))
}

func TestPasswordHasher_MalformedHashFailsClosed(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(4)

	assert.False(t, h.Verify("pass123", ""))
	assert.False(t, h.Verify("pass123", "not-a-bcrypt-hash"))
}

func TestNewPasswordHasher_CostOutOfRangeFallsBack(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(99)

	hash, err := h.Hash("pass123")
	require.NoError(t, err)
	assert.True(t, h.Verify("pass123", hash))
}
