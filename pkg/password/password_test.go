package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test hashing and verifying a password
func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, Verify(hash, "correct horse battery staple"))
	assert.False(t, Verify(hash, "wrong password"))
	assert.False(t, Verify(hash, ""))
}

// Test that hashes are salted (two hashes of the same input differ)
func TestHashIsSalted(t *testing.T) {
	first, err := Hash("secret")
	require.NoError(t, err)

	second, err := Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, Verify(first, "secret"))
	assert.True(t, Verify(second, "secret"))
}

// Test that a malformed stored hash never verifies
func TestVerifyMalformedHash(t *testing.T) {
	assert.False(t, Verify("not-a-bcrypt-hash", "secret"))
	assert.False(t, Verify("", "secret"))
}
