package errors

import (
	"testing"

	"credgate/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrPasswordHashFailed.WithDetails("bcrypt: password length exceeds 72 bytes")

	assert.True(t, errors.Is(detailed, ErrPasswordHashFailed))
	assert.False(t, errors.Is(detailed, ErrInternalError))
	assert.Contains(t, detailed.Error(), "72 bytes")
	assert.Equal(t, ErrPasswordHashFailed.Message(), detailed.Message())
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrUsernameTaken.WrapMessage("enrollment failed")

	assert.True(t, errors.Is(err, ErrUsernameTaken))
	assert.Equal(t, "enrollment failed: username is already enrolled", err.Error())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "username", err: errors.Wrap(ErrInvalidCharacters, "rejected"), want: KindUsername},
		{name: "forbidden term", err: ErrContainsForbiddenTerm, want: KindUsername},
		{name: "password", err: errors.Wrap(errors.Wrap(ErrReused, "inner"), "outer"), want: KindPassword},
		{name: "enroll", err: ErrUsernameTaken, want: KindEnroll},
		{name: "auth", err: errors.Wrap(ErrPasswordMismatch, "verify"), want: KindAuth},
		{name: "internal", err: ErrMalformedHash, want: KindInternal},
		{name: "foreign", err: errors.New("boom"), want: KindUnknown},
		{name: "nil", err: nil, want: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}
