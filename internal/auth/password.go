package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

// PasswordHasher hashes with bcrypt. Digests left by the old deployment
// (unsalted hex SHA-256) still verify and are flagged for rehashing.
type PasswordHasher struct {
	Cost int

	once  sync.Once
	dummy []byte
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{Cost: cost}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether password matches stored, and whether stored should
// be replaced with a fresh Hash.
func (h *PasswordHasher) Verify(stored, password string) (ok bool, rehash bool) {
	if isLegacyDigest(stored) {
		sum := sha256.Sum256([]byte(password))
		want, _ := hex.DecodeString(stored)
		ok = subtle.ConstantTimeCompare(sum[:], want) == 1
		return ok, ok
	}

	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
	if err != nil {
		return false, false
	}
	cost, err := bcrypt.Cost([]byte(stored))
	return true, err == nil && cost < h.Cost
}

// Burn runs a comparison against a throwaway hash so that a login for an
// unknown user costs about as much as one for a known user.
func (h *PasswordHasher) Burn(password string) {
	h.once.Do(func() {
		h.dummy, _ = bcrypt.GenerateFromPassword([]byte("inko-timing-equalizer"), h.Cost)
	})
	_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(password))
}

func isLegacyDigest(s string) bool {
	if len(s) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

func IsTooLong(err error) bool {
	return errors.Is(err, ErrPasswordTooLong)
}
