// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"regexp"
	"unicode/utf8"

	"github.com/MKhiriev/go-cred-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// MinPasswordLength is the minimal number of characters in a password.
const MinPasswordLength = 8

// emailPattern accepts word segments joined by single dots or hyphens on both
// sides of '@', followed by one or more 2–3 character top-level segments.
// Go's RE2 \w is ASCII-only, matching [A-Za-z0-9_].
var emailPattern = regexp.MustCompile(`^\w+([\.-]?\w+)*@\w+([\.-]?\w+)*(\.\w{2,3})+$`)

// AuthValidator validates signup and login requests. It is stateless and
// safe for concurrent use.
type AuthValidator struct{}

// NewAuthValidator returns a [Validator] for [models.SignupRequest] and
// [models.LoginRequest] values.
func NewAuthValidator() Validator {
	return &AuthValidator{}
}

// Validate dispatches on the request type. Every failure is a
// [*ValidationError] wrapping ErrMissingField, ErrBadEmail or ErrWeakPassword.
func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(ctx, value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLogin(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateSignup checks presence of every requested field first, and only
// then the email format and password strength.
func (v *AuthValidator) validateSignup(_ context.Context, req models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if req.Name == "" {
				return fieldError(f, ErrMissingField)
			}
		case FieldEmail:
			if req.Email == "" {
				return fieldError(f, ErrMissingField)
			}
		case FieldPassword:
			if req.Password == "" {
				return fieldError(f, ErrMissingField)
			}
		default:
			return ErrUnknownField
		}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !IsValidEmail(req.Email) {
				return fieldError(f, ErrBadEmail)
			}
		case FieldPassword:
			if !IsStrongPassword(req.Password) {
				return fieldError(f, ErrWeakPassword)
			}
		}
	}

	return nil
}

// validateLogin only checks presence; format and strength are signup rules.
func (v *AuthValidator) validateLogin(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if req.Email == "" {
				return fieldError(f, ErrMissingField)
			}
		case FieldPassword:
			if req.Password == "" {
				return fieldError(f, ErrMissingField)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// IsValidEmail reports whether email matches the accepted email pattern.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsStrongPassword reports whether password has at least
// [MinPasswordLength] characters, one ASCII lowercase and one ASCII
// uppercase letter.
func IsStrongPassword(password string) bool {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return false
	}

	var hasLower, hasUpper bool
	for i := 0; i < len(password); i++ {
		switch c := password[i]; {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		}
	}

	return hasLower && hasUpper
}
