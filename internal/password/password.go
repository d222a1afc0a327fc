// Package password derives and verifies salted password hashes.
package password

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes  = 16
	iterations = 1000
	keyBytes   = 64
)

// NewSalt produces a fresh random salt, hex-encoded.
func NewSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Hash derives a hex-encoded PBKDF2-SHA512 hash of password under salt.
// Same inputs always yield the same output.
func Hash(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyBytes, sha512.New)
	return hex.EncodeToString(key)
}

// Verify recomputes the hash for password under salt and compares it to
// hash in constant time.
func Verify(password, salt, hash string) bool {
	computed := Hash(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}
