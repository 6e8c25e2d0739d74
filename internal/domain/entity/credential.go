// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential is one enrolled account: a username and the hash of its password.
// A Credential is never modified after enrollment.
type Credential struct {
	ID           uuid.UUID // The unique ID for this credential record.
	Username     string    // Lower-cased username exactly as enrolled; the lookup key.
	PasswordHash []byte    // Self-describing hash (algorithm, cost and salt embedded).
	CreatedAt    time.Time // Timestamp of the enrollment.
}

// Clone returns a deep copy so callers never share the stored hash slice.
func (c *Credential) Clone() *Credential {
	clone := *c
	clone.PasswordHash = append([]byte(nil), c.PasswordHash...)

	return &clone
}
