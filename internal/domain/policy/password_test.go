package policy

import (
	"testing"

	domainerrors "credgate/internal/domain/errors"
	mockSvc "credgate/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPasswordValidator(t *testing.T) (*PasswordValidator, *mockSvc.MockPasswordHasher) {
	t.Helper()
	hasher := mockSvc.NewMockPasswordHasher(t)
	store := NewStore(nil, []string{"password123", "qwerty"})

	return NewPasswordValidator(store, hasher, DefaultMinLength), hasher
}

func TestPasswordValidator_Rules(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		wantErr   error
	}{
		{name: "too short", candidate: "short1!", wantErr: domainerrors.ErrTooShort},
		{name: "eleven characters", candidate: "Abcdefgh1!x", wantErr: domainerrors.ErrTooShort},
		{name: "no uppercase", candidate: "nouppercase123!", wantErr: domainerrors.ErrInsufficientComplexity},
		{name: "no lowercase", candidate: "NOLOWERCASE123!", wantErr: domainerrors.ErrInsufficientComplexity},
		{name: "no digit", candidate: "NoDigitsHere!!", wantErr: domainerrors.ErrInsufficientComplexity},
		{name: "no special", candidate: "NoSpecials1234", wantErr: domainerrors.ErrInsufficientComplexity},
		{name: "breached substring", candidate: "Xpassword123!Q", wantErr: domainerrors.ErrBreachedOrCommon},
		{name: "eleven runes above twelve bytes", candidate: "Äb1!Äb1!Äb1", wantErr: domainerrors.ErrTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator, _ := newTestPasswordValidator(t)

			err := validator.Validate(tt.candidate, [][]byte{[]byte("stored")})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPasswordValidator_RuleOrder(t *testing.T) {
	validator, _ := newTestPasswordValidator(t)
	hashes := [][]byte{[]byte("h1")}

	// Short, simple and breached: length wins.
	assert.ErrorIs(t, validator.Validate("qwerty", hashes), domainerrors.ErrTooShort)

	// Long enough, simple and breached: complexity wins.
	assert.ErrorIs(t, validator.Validate("qwertyqwertyqwerty", hashes), domainerrors.ErrInsufficientComplexity)

	// Strong but breached: the reuse check never runs, so the hasher is not called.
	assert.ErrorIs(t, validator.Validate("Qwerty!qwerty9", hashes), domainerrors.ErrBreachedOrCommon)
}

func TestPasswordValidator_Reused(t *testing.T) {
	validator, hasher := newTestPasswordValidator(t)
	candidate := "C0rrect-Horse!"
	hashes := [][]byte{[]byte("h1"), []byte("h2"), []byte("h3")}

	hasher.EXPECT().Check(candidate, []byte("h1")).Return(false).Once()
	hasher.EXPECT().Check(candidate, []byte("h2")).Return(true).Once()
	hasher.EXPECT().Check(candidate, []byte("h3")).Return(false).Once()

	err := validator.Validate(candidate, hashes)
	assert.ErrorIs(t, err, domainerrors.ErrReused)
}

func TestPasswordValidator_Accepts(t *testing.T) {
	validator, hasher := newTestPasswordValidator(t)

	hasher.EXPECT().Check(mock.Anything, mock.Anything).Return(false).Times(2)

	for _, candidate := range []string{"C0rrect-Horse!", "Äb1!Äb1!Äb1!"} {
		require.NoError(t, validator.Validate(candidate, [][]byte{[]byte("h1")}))
	}

	// No stored hashes: nothing to compare against.
	require.NoError(t, validator.Validate("Tr0ub4dor&3xyz", nil))
}

func TestPasswordValidator_SpecialCharacterSet(t *testing.T) {
	validator, _ := newTestPasswordValidator(t)

	for _, r := range SpecialCharacters {
		candidate := "Abcdefghij1" + string(r)
		require.NoError(t, validator.Validate(candidate, nil), "special %q", r)
	}
}

func TestNewPasswordValidator_MinLength(t *testing.T) {
	store := NewStore(nil, nil)

	assert.Equal(t, DefaultMinLength, NewPasswordValidator(store, nil, 0).MinLength())
	assert.Equal(t, 16, NewPasswordValidator(store, nil, 16).MinLength())

	validator := NewPasswordValidator(store, nil, 16)
	assert.ErrorIs(t, validator.Validate("C0rrect-Horse!", nil), domainerrors.ErrTooShort)
}
