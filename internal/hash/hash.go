// Package hash abstracts password hashing so the application can run
// either as a faithful training target (unsalted SHA-256, matching the
// reference implementation byte for byte) or hardened (bcrypt).
package hash

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

type Hasher interface {
	Hash(password string) (string, error)
	Verify(storedHash, password string) bool
}

// ForMode returns the hasher matching the deployment mode.
func ForMode(hardened bool) Hasher {
	if hardened {
		return Bcrypt{}
	}
	return SHA256{}
}

// SHA256 hashes the cleartext with a single unsalted SHA-256 pass and
// stores the hex digest. Deliberately weak; see the hardened mode.
type SHA256 struct{}

func (SHA256) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

func (SHA256) Verify(storedHash, password string) bool {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]) == storedHash
}

// Bcrypt is the salted, slow hasher used in hardened mode.
type Bcrypt struct{}

func (Bcrypt) Hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(h), err
}

func (Bcrypt) Verify(storedHash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}
