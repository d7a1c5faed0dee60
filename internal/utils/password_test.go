package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher(1000)

	encoded, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(encoded, "pbkdf2:sha256:1000$"), encoded)

	parts := strings.Split(encoded, "$")
	require.Len(t, parts, 3)
	assert.Len(t, parts[1], saltLength)
	assert.Len(t, parts[2], keyLength*2)

	assert.True(t, h.Verify(encoded, "s3cret-pass"))
	assert.False(t, h.Verify(encoded, "s3cret-pasS"))
	assert.False(t, h.Verify(encoded, ""))
}

func TestPasswordHasher_SaltIsPerCredential(t *testing.T) {
	h := NewPasswordHasher(1000)

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, h.Verify(a, "same"))
	assert.True(t, h.Verify(b, "same"))
}

func TestPasswordHasher_VerifyUsesStoredIterations(t *testing.T) {
	encoded, err := NewPasswordHasher(1200).Hash("pw")
	require.NoError(t, err)

	assert.True(t, NewPasswordHasher(5000).Verify(encoded, "pw"))
}

func TestPasswordHasher_VerifyKnownVector(t *testing.T) {
	// PBKDF2-HMAC-SHA256("passwd", "salt", 1), first 32 bytes
	encoded := "pbkdf2:sha256:1$salt$55ac046e56e3089fec1691c22544b605f94185216dde0465e68b9d57c20dacbc"

	h := NewPasswordHasher(0)
	assert.True(t, h.Verify(encoded, "passwd"))
	assert.False(t, h.Verify(encoded, "password"))
}

func TestPasswordHasher_VerifyMalformed(t *testing.T) {
	h := NewPasswordHasher(1000)
	for _, encoded := range []string{
		"",
		"plaintext",
		"pbkdf2:sha256$salt$abcd",
		"pbkdf2:sha512:1000$salt$abcd",
		"scrypt:32768:8:1$salt$abcd",
		"pbkdf2:sha256:zero$salt$abcd",
		"pbkdf2:sha256:-5$salt$abcd",
	} {
		assert.False(t, h.Verify(encoded, "pw"), encoded)
	}
}

func TestNewPasswordHasher_Default(t *testing.T) {
	assert.Equal(t, DefaultHashIterations, NewPasswordHasher(0).Iterations)
	assert.Equal(t, DefaultHashIterations, NewPasswordHasher(-1).Iterations)
	assert.Equal(t, 10, NewPasswordHasher(10).Iterations)
}
