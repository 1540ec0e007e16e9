package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA256Hasher_KnownVector(t *testing.T) {
	hasher := NewSHA256Hasher()

	// sha256("password") — совместимость с уже сохраненными хешами
	hashed, err := hasher.Hash("password")
	require.NoError(t, err)
	assert.Equal(t, "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8", hashed)
}

func TestSHA256Hasher_Verify(t *testing.T) {
	hasher := NewSHA256Hasher()

	hashed, err := hasher.Hash("secret123")
	require.NoError(t, err)

	assert.True(t, hasher.Verify("secret123", hashed))
	assert.False(t, hasher.Verify("secret124", hashed))
	assert.False(t, hasher.Verify("", hashed))
}

func TestBcryptHasher_RoundTrip(t *testing.T) {
	hasher := NewBcryptHasher()

	hashed, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hashed)

	assert.True(t, hasher.Verify("secret123", hashed))
	assert.False(t, hasher.Verify("wrong", hashed))
}

func TestNewHasher_SchemeSelection(t *testing.T) {
	assert.IsType(t, &SHA256Hasher{}, NewHasher("sha256"))
	assert.IsType(t, &SHA256Hasher{}, NewHasher(""))
	assert.IsType(t, &BcryptHasher{}, NewHasher("bcrypt"))
}
