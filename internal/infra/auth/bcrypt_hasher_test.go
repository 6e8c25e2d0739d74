package auth

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	domainerrors "credgate/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost, newDiscardLogger())

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, []byte(password), hash)

	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_FreshSaltPerCall(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost, newDiscardLogger())

	first, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)
	second, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("StrongPass123!", first))
	assert.True(t, hasher.Check("StrongPass123!", second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost, newDiscardLogger())
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, []byte("invalid_hash")))
	assert.False(t, hasher.Check(password, nil))
}

func TestBcryptHasher_MalformedHashIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost, logger)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	// A plain mismatch is not a data-integrity problem.
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.Empty(t, buf.String())

	assert.False(t, hasher.Check("StrongPass123!", []byte("$2a$xx$garbage")))
	assert.Contains(t, buf.String(), "Stored password hash is malformed")
	assert.Contains(t, buf.String(), "algorithm=bcrypt")
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6
	hasher := NewBcryptHasherWithCost(customCost, newDiscardLogger())

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	cost, err := bcrypt.Cost(hash)
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)

	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_CostIsClamped(t *testing.T) {
	hasher := NewBcryptHasherWithCost(1, newDiscardLogger()).(*bcryptHasher)
	assert.Equal(t, bcrypt.MinCost, hasher.cost)

	hasher = NewBcryptHasherWithCost(99, newDiscardLogger()).(*bcryptHasher)
	assert.Equal(t, bcrypt.MaxCost, hasher.cost)

	hasher = NewBcryptHasher(nil).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestBcryptHasher_PasswordTooLong(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost, newDiscardLogger())

	_, err := hasher.Hash("Aa1!" + strings.Repeat("x", 80))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}
