package auth

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt only considers the first 72 bytes of a password
const maxPasswordBytes = 72

// PasswordHasher hashes and verifies passwords with bcrypt
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a new password hasher using the default bcrypt cost
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: bcrypt.DefaultCost}
}

// Hash returns the bcrypt hash of a password
func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(truncatePassword(password)), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches the stored hash
func (h *PasswordHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(truncatePassword(password))) == nil
}

// RandomPassword returns an unguessable password for accounts that sign in through a provider
func RandomPassword() (string, error) {
	return generateRandomString(32)
}

// truncatePassword cuts a password to the bcrypt limit on a rune boundary
func truncatePassword(password string) string {
	if len(password) <= maxPasswordBytes {
		return password
	}
	cut := password[:maxPasswordBytes]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}
