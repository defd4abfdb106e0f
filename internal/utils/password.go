package utils

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// saltBytes is the length of a generated password salt before hex encoding.
const saltBytes = 16

// GenerateSalt returns a fresh hex encoded salt for a stored password.
func GenerateSalt() (string, error) {
	return GenerateSecureRandomString(saltBytes)
}

// preHash folds the salt into the password and keeps the bcrypt input under its 72 byte limit.
func preHash(password, salt string) []byte {
	sum := sha256.Sum256([]byte(salt + password))
	return []byte(hex.EncodeToString(sum[:]))
}

// HashPassword hashes a salted plaintext password using bcrypt.
func HashPassword(password, salt string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(preHash(password, salt), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash compares a salted plaintext password with a bcrypt hash.
func CheckPasswordHash(password, salt, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), preHash(password, salt)) == nil
}
