package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/pbkdf2"
)

//go:generate mockgen -source=hash.go -destination=mock_hash.go -package=auth

const (
	saltSize   = 16
	keySize    = 32
	iterations = 100_000
)

type HashServiceInterface interface {
	GenerateSalt() (string, error)
	HashPassword(password, salt string) (string, error)
	ComparePassword(hashedPassword, salt, password string) bool
}

// HashService derives password hashes with PBKDF2-HMAC-SHA256 and a
// per-user salt.
type HashService struct{}

func (b *HashService) GenerateSalt() (string, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	return hex.EncodeToString(salt), nil
}

func (b *HashService) HashPassword(password, salt string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	if salt == "" {
		return "", errors.New("salt cannot be empty")
	}

	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keySize, sha256.New)
	return hex.EncodeToString(key), nil
}

func (b *HashService) ComparePassword(hashedPassword, salt, password string) bool {
	hash, err := b.HashPassword(password, salt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(hash), []byte(hashedPassword)) == 1
}
