package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt cost is pinned so hashes stay comparable across deployments.
const passwordHashCost = 10

func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored hash. A malformed
// or empty hash compares as false rather than erroring.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
