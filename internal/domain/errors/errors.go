package errors

import (
	"credgate/internal/errors"
)

// Kind groups domain errors by the step of the flow that produced them.
type Kind string

const (
	KindUsername Kind = "username" // username rejected by policy
	KindPassword Kind = "password" // password rejected by policy
	KindEnroll   Kind = "enroll"   // enrollment conflict
	KindAuth     Kind = "auth"     // verification failure
	KindInternal Kind = "internal"
	KindUnknown  Kind = ""
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Flow step the error belongs to
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches on the error code, so copies made by WithDetails still match their sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the flow step the error belongs to
func (e *BaseError) Kind() Kind {
	return e.kind
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// KindOf returns the Kind of the first AppError in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindUnknown
}

// Predefined error types
var (
	// Username policy errors
	ErrInvalidCharacters = NewBaseError(
		KindUsername,
		"INVALID_CHARACTERS",
		"username may only contain letters, numbers and underscore",
		"",
	)

	ErrContainsForbiddenTerm = NewBaseError(
		KindUsername,
		"CONTAINS_FORBIDDEN_TERM",
		"username contains a forbidden term",
		"",
	)

	// Password policy errors
	ErrTooShort = NewBaseError(
		KindPassword,
		"TOO_SHORT",
		"password is too short",
		"",
	)

	ErrInsufficientComplexity = NewBaseError(
		KindPassword,
		"INSUFFICIENT_COMPLEXITY",
		"password needs an uppercase letter, a lowercase letter, a digit and a special character",
		"",
	)

	ErrBreachedOrCommon = NewBaseError(
		KindPassword,
		"BREACHED_OR_COMMON",
		"password contains a breached or common password",
		"",
	)

	ErrReused = NewBaseError(
		KindPassword,
		"REUSED",
		"password is already in use",
		"",
	)

	// Enrollment errors
	ErrUsernameTaken = NewBaseError(
		KindEnroll,
		"USERNAME_TAKEN",
		"username is already enrolled",
		"",
	)

	// Verification errors
	ErrCredentialNotFound = NewBaseError(
		KindAuth,
		"CREDENTIAL_NOT_FOUND",
		"no credential enrolled for username",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		KindAuth,
		"PASSWORD_MISMATCH",
		"password does not match",
		"",
	)

	// Internal errors
	ErrMalformedHash = NewBaseError(
		KindInternal,
		"MALFORMED_HASH",
		"stored password hash is malformed",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		KindInternal,
		"PASSWORD_HASH_FAILED",
		"failed to hash password",
		"",
	)

	ErrInternalError = NewBaseError(
		KindInternal,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)
