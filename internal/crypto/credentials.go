// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used for stored credentials (2^10 rounds).
const DefaultCost = bcrypt.DefaultCost

// bcryptCredentialManager is the bcrypt implementation of [CredentialManager].
type bcryptCredentialManager struct {
	cost int
}

// Option tunes a [CredentialManager] at construction time.
type Option func(*bcryptCredentialManager)

// WithCost overrides the bcrypt cost. Values outside
// [bcrypt.MinCost, bcrypt.MaxCost] are ignored.
func WithCost(cost int) Option {
	return func(m *bcryptCredentialManager) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			m.cost = cost
		}
	}
}

// NewCredentialManager constructs a bcrypt [CredentialManager] with
// [DefaultCost] unless overridden.
func NewCredentialManager(opts ...Option) CredentialManager {
	m := &bcryptCredentialManager{cost: DefaultCost}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// maxPasswordBytes is the longest input bcrypt consumes.
const maxPasswordBytes = 72

// passwordBytes returns at most the first [maxPasswordBytes] of plaintext.
func passwordBytes(plaintext string) []byte {
	b := []byte(plaintext)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

// Hash implements [CredentialManager]. Only the first 72 bytes of plaintext
// are hashed, so any well-formed password succeeds.
func (m *bcryptCredentialManager) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(passwordBytes(plaintext), m.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// Verify implements [CredentialManager]. It truncates plaintext the same way
// [bcryptCredentialManager.Hash] does.
func (m *bcryptCredentialManager) Verify(plaintext, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), passwordBytes(plaintext)) == nil
}
