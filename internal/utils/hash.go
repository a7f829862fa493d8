package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordHashCost is the bcrypt work factor used when none is configured.
const DefaultPasswordHashCost = bcrypt.DefaultCost

// PasswordHasher hashes and verifies passwords with bcrypt.
// Every hash carries its own random salt.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher using the given bcrypt cost.
// A cost outside bcrypt's bounds falls back to [DefaultPasswordHashCost].
//
// Example usage:
//
//	hasher := utils.NewPasswordHasher(10)
//	hash, err := hasher.Hash("secret")
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultPasswordHashCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns the salted bcrypt hash of password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hashed), nil
}

// Compare reports whether password matches hashed.
//
// A mismatch is not an error: it returns false, nil. Any other failure
// (for example a malformed hash) is returned as an error.
func (h *PasswordHasher) Compare(hashed, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("error comparing password hash: %w", err)
}
