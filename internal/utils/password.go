package utils

import (
	"crypto/rand"   // Secure random salt
	"crypto/sha256" // PBKDF2 PRF
	"crypto/subtle" // Constant time comparison
	"encoding/hex"  // Digest encoding
	"errors"        // Error values
	"fmt"           // String formatting
	"math/big"      // Uniform random index
	"strconv"       // Iteration parsing
	"strings"       // Hash splitting

	"golang.org/x/crypto/pbkdf2" // PBKDF2 key derivation
)

const (
	DefaultHashIterations = 600000                                                           // Same default as werkzeug
	saltLength            = 16                                                               // Salt characters per credential
	keyLength             = 32                                                               // SHA-256 digest size
	saltChars             = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" // Salt alphabet
)

// ErrMalformedHash is returned when a stored credential cannot be parsed
var ErrMalformedHash = errors.New("malformed password hash")

// PasswordHasher derives and checks salted PBKDF2-SHA256 password hashes.
// Encoded hashes look like "pbkdf2:sha256:<iterations>$<salt>$<hex digest>",
// which is the format werkzeug's generate_password_hash writes.
type PasswordHasher struct {
	Iterations int // PBKDF2 rounds for new hashes
}

// NewPasswordHasher returns a hasher, falling back to DefaultHashIterations for non-positive values
func NewPasswordHasher(iterations int) *PasswordHasher {
	if iterations <= 0 {
		iterations = DefaultHashIterations
	}
	return &PasswordHasher{Iterations: iterations}
}

// Hash derives a new encoded hash with a fresh random salt
func (h *PasswordHasher) Hash(password string) (string, error) {
	salt, err := randomSalt(saltLength)
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	digest := derive(password, salt, h.Iterations)
	return fmt.Sprintf("pbkdf2:sha256:%d$%s$%s", h.Iterations, salt, digest), nil
}

// Verify recomputes the digest using the salt and iterations stored in encoded
func (h *PasswordHasher) Verify(encoded, password string) bool {
	iterations, salt, digest, err := parseHash(encoded)
	if err != nil {
		return false
	}
	candidate := derive(password, salt, iterations)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(digest)) == 1
}

func derive(password, salt string, iterations int) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLength, sha256.New)
	return hex.EncodeToString(key)
}

func parseHash(encoded string) (int, string, string, error) {
	parts := strings.SplitN(encoded, "$", 3)
	if len(parts) != 3 {
		return 0, "", "", ErrMalformedHash
	}
	method := strings.Split(parts[0], ":")
	if len(method) != 3 || method[0] != "pbkdf2" || method[1] != "sha256" {
		return 0, "", "", ErrMalformedHash
	}
	iterations, err := strconv.Atoi(method[2])
	if err != nil || iterations <= 0 {
		return 0, "", "", ErrMalformedHash
	}
	return iterations, parts[1], parts[2], nil
}

func randomSalt(n int) (string, error) {
	var sb strings.Builder
	limit := big.NewInt(int64(len(saltChars)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		sb.WriteByte(saltChars[idx.Int64()])
	}
	return sb.String(), nil
}
