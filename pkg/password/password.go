// Package password wraps bcrypt hashing for the admin credential.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hash computes a salted bcrypt hash of the given plaintext password
func Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// Verify reports whether the plaintext password matches the stored hash.
// bcrypt performs the comparison in constant time.
func Verify(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
