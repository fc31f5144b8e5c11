// Package cryptox provides password hashing and verification using the
// argon2id key-derivation function.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"

	"golang.org/x/crypto/argon2"
)

// argon2id parameters.
const (
	saltLen = 16
	keyLen  = 32
	timeArg = 1
	memory  = 64 * 1024
	threads = 4
)

// ErrMalformedHash is returned when a stored hash cannot be decoded.
var ErrMalformedHash = errors.New("malformed password hash")

func deriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, timeArg, memory, threads, keyLen)
}

// HashPassword derives an argon2id digest of password under a fresh random
// salt and returns it encoded as "base64(salt)$base64(digest)".
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	digest := deriveKey([]byte(password), salt)

	encoded := base64.RawStdEncoding.EncodeToString(salt) +
		"$" + base64.RawStdEncoding.EncodeToString(digest)
	return encoded, nil
}

// VerifyPassword re-derives the digest of password under the salt packed
// into encoded and compares it in constant time.
func VerifyPassword(password, encoded string) (bool, error) {
	saltPart, digestPart, ok := strings.Cut(encoded, "$")
	if !ok {
		return false, ErrMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(saltPart)
	if err != nil {
		return false, ErrMalformedHash
	}
	digest, err := base64.RawStdEncoding.DecodeString(digestPart)
	if err != nil {
		return false, ErrMalformedHash
	}

	candidate := deriveKey([]byte(password), salt)
	return subtle.ConstantTimeCompare(candidate, digest) == 1, nil
}
