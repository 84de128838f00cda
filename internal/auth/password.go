package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the moderate work factor the service has always hashed with.
const bcryptCost = 6

// HashPassword returns a salted bcrypt hash of the plaintext. Output differs
// per call; verification is deterministic.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored bcrypt hash.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
