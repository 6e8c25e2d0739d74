package policy

import (
	"regexp"

	domainerrors "credgate/internal/domain/errors"
)

// usernamePattern allows the empty string.
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]*$`)

// UsernameValidator applies the character-set and forbidden-term rules.
// Uniqueness is not its concern; the repository enforces it on insert.
type UsernameValidator struct {
	store *Store
}

func NewUsernameValidator(store *Store) *UsernameValidator {
	return &UsernameValidator{store: store}
}

// Validate returns the normalized form of raw, or ErrInvalidCharacters /
// ErrContainsForbiddenTerm. Both rules run on the normalized form.
func (v *UsernameValidator) Validate(raw string) (string, error) {
	normalized := Normalize(raw)

	if !usernamePattern.MatchString(normalized) {
		return "", domainerrors.ErrInvalidCharacters
	}

	if v.store.ContainsProfaneTerm(normalized) {
		return "", domainerrors.ErrContainsForbiddenTerm
	}

	return normalized, nil
}
