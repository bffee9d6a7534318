package service

import "errors"

// Token errors. Every verification failure maps onto exactly one of these.
var (
	// ErrTokenSecretNotConfigured is a configuration error: tokens can be
	// neither issued nor verified without a signing secret.
	ErrTokenSecretNotConfigured = errors.New("token secret is not configured")

	ErrTokenInvalidSignature = errors.New("invalid signature")
	ErrTokenExpired          = errors.New("expired")
	ErrTokenMalformed        = errors.New("malformed token")

	ErrTokenCreationFailed = errors.New("token creation failed")
)

// Auth errors.
var (
	// ErrInvalidCredentials is returned by Login both for an unknown email
	// and for a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountNotCreated wraps any non-duplicate failure during signup.
	ErrAccountNotCreated = errors.New("account was not created")
)
