// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// credential keeper server handlers and the terminal client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies ({"message": ...} or {"err": ...}) to describe the
// outcome of an operation. Keeping them in one place ensures consistent
// wording throughout the API.
package app

// Signup outcomes.
const (
	// MsgUserCreated confirms a successful signup.
	MsgUserCreated = "User has been created"

	// MsgSignupMissingField is returned when name, email or password is empty.
	MsgSignupMissingField = "Please enter a name, email, and password"

	// MsgInvalidEmail is returned when the email does not match the accepted pattern.
	MsgInvalidEmail = "Please enter a valid email"

	// MsgWeakPassword is returned when the password fails the strength rule.
	MsgWeakPassword = "Password must be at least 8 characters long and have at least one uppercase and one lowercase letter"

	// MsgUserAlreadyExists is returned when the email is already registered.
	MsgUserAlreadyExists = "User already exists"

	// MsgUserNotCreated is returned when the store fails to persist the account.
	MsgUserNotCreated = "User could not be created"
)

// Login outcomes.
const (
	// MsgLoginMissingField is returned when email or password is empty.
	MsgLoginMissingField = "Please enter an email and password"

	// MsgInvalidCredentials is returned both for an unknown email and for a
	// wrong password.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgSomethingWentWrong is returned when login fails for a reason the
	// client cannot resolve.
	MsgSomethingWentWrong = "Something went wrong"
)

// Token verification outcomes.
const (
	// MsgNoTokenProvided is returned when the Authorization header is absent.
	MsgNoTokenProvided = "No token provided"

	// MsgInvalidToken is returned for a malformed header, a malformed token
	// or a signature mismatch.
	MsgInvalidToken = "Invalid token"

	// MsgTokenExpired is returned when the token is past its expiry.
	MsgTokenExpired = "Token expired"
)

// MsgInvalidJSON is returned when a request body cannot be decoded.
const MsgInvalidJSON = "Invalid JSON was passed"
