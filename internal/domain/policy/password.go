package policy

import (
	"strings"
	"unicode"
	"unicode/utf8"

	domainerrors "credgate/internal/domain/errors"
	"credgate/internal/domain/service"
)

const (
	// DefaultMinLength is the NIST-style minimum password length, in characters.
	DefaultMinLength = 12

	// SpecialCharacters is the set a password must draw at least one character from.
	SpecialCharacters = "!@#$%^&*()-_=+{}[]|;:'\",.<>/?`~"
)

// PasswordValidator applies the strength, breach and reuse rules.
type PasswordValidator struct {
	store     *Store
	hasher    service.PasswordHasher
	minLength int
}

func NewPasswordValidator(store *Store, hasher service.PasswordHasher, minLength int) *PasswordValidator {
	if minLength <= 0 {
		minLength = DefaultMinLength
	}

	return &PasswordValidator{
		store:     store,
		hasher:    hasher,
		minLength: minLength,
	}
}

// MinLength returns the configured minimum length.
func (v *PasswordValidator) MinLength() int {
	return v.minLength
}

// Validate checks candidate against the rules in this order and returns the
// first failure: ErrTooShort, ErrInsufficientComplexity, ErrBreachedOrCommon, ErrReused.
func (v *PasswordValidator) Validate(candidate string, existingHashes [][]byte) error {
	if utf8.RuneCountInString(candidate) < v.minLength {
		return domainerrors.ErrTooShort
	}

	if !hasRequiredClasses(candidate) {
		return domainerrors.ErrInsufficientComplexity
	}

	if v.store.ContainsBreachedPassword(candidate) {
		return domainerrors.ErrBreachedOrCommon
	}

	if v.matchesAny(candidate, existingHashes) {
		return domainerrors.ErrReused
	}

	return nil
}

// matchesAny checks every hash even after a match.
func (v *PasswordValidator) matchesAny(candidate string, hashes [][]byte) bool {
	matched := false
	for _, hash := range hashes {
		if v.hasher.Check(candidate, hash) {
			matched = true
		}
	}

	return matched
}

func hasRequiredClasses(s string) bool {
	var upper, lower, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(SpecialCharacters, r):
			special = true
		}
	}

	return upper && lower && digit && special
}
