// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"credgate/internal/domain/entity"
)

var (
	// ErrCredentialNotFound is returned when no credential exists for a username.
	ErrCredentialNotFound = errors.New("credential not found")
	// ErrUsernameTaken is returned by Create when the username is already enrolled.
	ErrUsernameTaken = errors.New("username already taken")
)

// CredentialRepository owns every enrolled credential.
// Usernames are compared case-insensitively.
type CredentialRepository interface {
	// FindByUsername retrieves the credential enrolled under username.
	FindByUsername(ctx context.Context, username string) (*entity.Credential, error)

	// ListPasswordHashes returns the password hash of every credential, in no particular order.
	ListPasswordHashes(ctx context.Context) ([][]byte, error)

	// Create stores a new credential. The uniqueness check and the insert are one atomic step.
	Create(ctx context.Context, credential *entity.Credential) error

	// Count returns the number of stored credentials.
	Count(ctx context.Context) (int, error)
}
