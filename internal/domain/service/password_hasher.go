// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (Argon2id), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Every call
	// uses a fresh random salt, so two hashes of the same input differ.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash. A malformed
	// stored hash and a digest mismatch both report false.
	Check(password, hash string) bool
}
