// Package credential derives and verifies password hashes.
//
// A stored hash has the form
//
//	pbkdf2_sha256$<iterations>$<salt hex>$<derived key hex>
//
// and carries everything needed to verify a candidate secret later. The
// salt is fresh on every call, so two hashes of the same secret never
// compare equal; use Verify, not string equality.
package credential

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	Algorithm         = "pbkdf2_sha256"
	DefaultIterations = 200000
	SaltSize          = 16
	KeySize           = 32

	separator = "$"
)

var ErrMalformedHash = errors.New("malformed credential hash")

// Encoded is the parsed form of a stored hash.
type Encoded struct {
	Algorithm  string
	Iterations int
	Salt       []byte
	Key        []byte
}

// String renders e in the stored format.
func (e *Encoded) String() string {
	return strings.Join([]string{
		e.Algorithm,
		strconv.Itoa(e.Iterations),
		hex.EncodeToString(e.Salt),
		hex.EncodeToString(e.Key),
	}, separator)
}

// Hasher derives new hashes at a fixed iteration count. Existing hashes are
// always verified with the count stored inside them.
type Hasher struct {
	Iterations int
}

// NewHasher returns a Hasher using iterations, or DefaultIterations when
// iterations is not positive.
func NewHasher(iterations int) *Hasher {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return &Hasher{Iterations: iterations}
}

// Hash derives a salted hash of secret.
func (h *Hasher) Hash(secret string) (string, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	enc := &Encoded{
		Algorithm:  Algorithm,
		Iterations: h.Iterations,
		Salt:       salt,
		Key:        derive(secret, salt, h.Iterations, KeySize),
	}
	return enc.String(), nil
}

// Hash derives a hash with DefaultIterations.
func Hash(secret string) (string, error) {
	return NewHasher(DefaultIterations).Hash(secret)
}

// Parse splits a stored hash into its parts.
func Parse(encoded string) (*Encoded, error) {
	parts := strings.Split(encoded, separator)
	if len(parts) != 4 {
		return nil, fmt.Errorf("%w: expected 4 fields, got %d", ErrMalformedHash, len(parts))
	}
	if parts[0] != Algorithm {
		return nil, fmt.Errorf("%w: unsupported algorithm %q", ErrMalformedHash, parts[0])
	}
	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations <= 0 {
		return nil, fmt.Errorf("%w: invalid iteration count %q", ErrMalformedHash, parts[1])
	}
	salt, err := hex.DecodeString(parts[2])
	if err != nil || len(salt) == 0 {
		return nil, fmt.Errorf("%w: invalid salt", ErrMalformedHash)
	}
	key, err := hex.DecodeString(parts[3])
	if err != nil || len(key) == 0 {
		return nil, fmt.Errorf("%w: invalid derived key", ErrMalformedHash)
	}
	return &Encoded{Algorithm: parts[0], Iterations: iterations, Salt: salt, Key: key}, nil
}

// Verify reports whether secret matches the stored hash. An error is
// returned only when encoded cannot be parsed.
func Verify(secret, encoded string) (bool, error) {
	enc, err := Parse(encoded)
	if err != nil {
		return false, err
	}
	candidate := derive(secret, enc.Salt, enc.Iterations, len(enc.Key))
	return subtle.ConstantTimeCompare(candidate, enc.Key) == 1, nil
}

func derive(secret string, salt []byte, iterations, keyLen int) []byte {
	return pbkdf2.Key([]byte(secret), salt, iterations, keyLen, sha256.New)
}
