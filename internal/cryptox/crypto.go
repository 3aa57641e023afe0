// Package cryptox derives and checks password verifiers for the optional
// hashed credential mode.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const SaltSize = 32

// argon2id parameters: 1 pass, 64 MiB, 4 lanes, 32-byte key.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// NewSalt returns SaltSize random bytes.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// HashPassword derives a verifier for password with a fresh salt.
func HashPassword(password string) (verifier, salt []byte, err error) {
	salt, err = NewSalt()
	if err != nil {
		return nil, nil, err
	}
	return MakeVerifier(DeriveKey([]byte(password), salt)), salt, nil
}

// VerifyPassword reports whether password produces verifier under salt.
func VerifyPassword(password string, verifier, salt []byte) bool {
	candidate := MakeVerifier(DeriveKey([]byte(password), salt))
	return subtle.ConstantTimeCompare(candidate, verifier) == 1
}
