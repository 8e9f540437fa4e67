package bcrypt

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordLength is the number of bytes bcrypt takes into account.
// Longer passwords are refused instead of being silently truncated
const MaxPasswordLength = 72

const DefaultCost = bcrypt.DefaultCost

var ErrPasswordTooLong = errors.New("password is too long to be hashed with bcrypt")
var ErrInvalidCost = errors.New("bcrypt cost is out of range")

type Hasher struct {
	cost int
}

// New configures a bcrypt hasher with the given cost.
// The cost must be within [bcrypt.MinCost, bcrypt.MaxCost]
func New(cost int) (Hasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return Hasher{}, fmt.Errorf("%w: %d", ErrInvalidCost, cost)
	}
	return Hasher{cost: cost}, nil
}

// Hash hashes a plaintext password using the Go's bcrypt package with the configured cost
func (h Hasher) Hash(plainPassword string) (string, error) {
	if len(plainPassword) > MaxPasswordLength {
		return "", ErrPasswordTooLong
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(plainPassword), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// Check compares a plaintext password with its possible hashed equivalent
// Returns the result of the comparison
func (h Hasher) Check(plainPassword, hashedPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
