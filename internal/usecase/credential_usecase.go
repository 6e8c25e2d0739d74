// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// EnrollInput defines the data required to enroll a new credential.
type EnrollInput struct {
	Username string
	Password string
}

// VerifyInput defines the presented username/password pair.
type VerifyInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// EnrollOutput returns the key the credential was stored under.
type EnrollOutput struct {
	Username     string
	CredentialID uuid.UUID
}

// VerifyOutput returns the username that was authenticated.
type VerifyOutput struct {
	Username string
}

// CredentialUsecase defines enrollment and verification.
// This is the contract that the delivery layer (e.g., the console) depends on.
type CredentialUsecase interface {
	// CheckUsername runs the username rules only, so a delivery can re-prompt
	// before asking for a password. Enroll runs them again.
	CheckUsername(ctx context.Context, username string) error
	Enroll(ctx context.Context, input *EnrollInput) (*EnrollOutput, error)
	Verify(ctx context.Context, input *VerifyInput) (*VerifyOutput, error)
}
