// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account is a registered user of the service.
// The password hash is a bcrypt string and never leaves the server.
type Account struct {
	// ID is the application-generated unique identifier (UUIDv7 string).
	ID string `json:"id"`

	// Name is the display name given at signup.
	Name string `json:"name"`

	// Email is unique across all accounts and is compared as stored,
	// without case folding.
	Email string `json:"email"`

	// PasswordHash is the self-describing bcrypt output for the account password.
	PasswordHash string `json:"-"`

	// CreatedAt is stamped in UTC when the account is created at signup.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// Claims returns the identity claims that are embedded into a token
// issued for this account.
func (a Account) Claims() Claims {
	return Claims{
		Name:  a.Name,
		Email: a.Email,
		ID:    a.ID,
	}
}
