// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"log/slog"

	domainerrors "credgate/internal/domain/errors"
	"credgate/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	logger *slog.Logger
}

// NewBcryptHasher returns a bcrypt PasswordHasher with the default cost.
func NewBcryptHasher(logger *slog.Logger) service.PasswordHasher {
	return NewBcryptHasherWithCost(bcrypt.DefaultCost, logger)
}

// NewBcryptHasherWithCost returns a bcrypt PasswordHasher. Costs outside
// bcrypt's range are clamped to it.
func NewBcryptHasherWithCost(cost int, logger *slog.Logger) service.PasswordHasher {
	cost = max(bcrypt.MinCost, min(cost, bcrypt.MaxCost))

	return &bcryptHasher{cost: cost, logger: logger}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed.WithDetails(err.Error()), "bcrypt")
	}

	return hash, nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password string, hash []byte) bool {
	err := bcrypt.CompareHashAndPassword(hash, []byte(password))
	if err == nil {
		return true
	}
	if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		reportMalformedHash(h.logger, "bcrypt", err)
	}

	return false
}

func reportMalformedHash(logger *slog.Logger, algorithm string, cause error) {
	if logger == nil {
		return
	}
	logger.Warn("Stored password hash is malformed",
		slog.String("algorithm", algorithm),
		slog.Any("error", domainerrors.ErrMalformedHash.WithDetails(cause.Error())),
	)
}
