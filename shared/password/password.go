package password

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default cost for bcrypt hashing
	DefaultCost = bcrypt.DefaultCost

	// Symbols lists the characters accepted as a password's special character.
	Symbols = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`
)

var (
	ErrInvalidPassword   = errors.New("invalid password")
	ErrEmptyPassword     = errors.New("password is required")
	ErrMissingLowercase  = errors.New("password must contain a lowercase letter")
	ErrMissingSpecial    = errors.New("password must contain a special character")
	ErrHashingPassword   = errors.New("error hashing password")
	ErrVerifyingPassword = errors.New("error verifying password")
)

// CheckPolicy returns the first rule a plaintext password breaks, in the order
// presence, lowercase letter, special character.
func CheckPolicy(password string) error {
	if strings.TrimSpace(password) == "" {
		return ErrEmptyPassword
	}

	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		return ErrMissingLowercase
	}

	if !strings.ContainsAny(password, Symbols) {
		return ErrMissingSpecial
	}

	return nil
}

// Hash generates a bcrypt hash of the password
func Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	return string(bytes), nil
}

// Verify checks if the provided password matches the hash
func Verify(password, hash string) error {
	if password == "" || hash == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidPassword
		}
		return fmt.Errorf("%w: %w", ErrVerifyingPassword, err)
	}

	return nil
}
