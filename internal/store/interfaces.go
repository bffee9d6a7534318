// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/account_repository_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-cred-keeper/models"
)

// AccountRepository persists accounts keyed by their email address.
//
// Implementations must guarantee that at most one account exists per email:
// a second Create with an already stored email fails with
// [ErrEmailAlreadyExists] and leaves the stored account untouched.
type AccountRepository interface {
	// FindByEmail returns the account whose email matches exactly, or
	// [ErrNoAccountWasFound].
	FindByEmail(ctx context.Context, email string) (models.Account, error)

	// Create stores account and returns it as persisted.
	Create(ctx context.Context, account models.Account) (models.Account, error)
}

// ErrorClassificator decides how a driver error should be treated by the
// store layer.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification
	// IsUniqueViolation reports whether err is a unique constraint failure.
	IsUniqueViolation(err error) bool
}
