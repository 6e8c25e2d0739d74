// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	// Every call uses a fresh salt, so equal passwords give different hashes.
	Hash(password string) ([]byte, error)

	// Check compares a plaintext password with a hash in constant time.
	// A malformed hash never matches.
	Check(password string, hash []byte) bool
}
