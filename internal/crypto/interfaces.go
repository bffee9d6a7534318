// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the server-side credential primitives.
//
// It knows nothing about HTTP, storage or accounts: its single job is to turn
// a plaintext password into a salted one-way hash and to check a plaintext
// password against such a hash.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_manager_mock.go -package=mock

// CredentialManager derives and verifies password hashes.
//
// Scheme:
//
//	hash  = Hash(password)          // "$2a$10$<22-char salt><31-char digest>"
//	match = Verify(password, hash)  // constant-time comparison
type CredentialManager interface {
	// Hash generates a fresh random salt and returns a self-describing hash
	// string encoding algorithm, cost, salt and digest. Two calls with the
	// same input return different strings.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches storedHash. A malformed
	// storedHash is a non-match, never an error.
	Verify(plaintext, storedHash string) bool
}
