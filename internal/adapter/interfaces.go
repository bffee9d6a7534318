// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport the terminal client uses to talk to
// the credential keeper server.
//
// The primary abstraction is [AuthAdapter], which hides the HTTP/REST details
// of signup, login and token verification from the UI. Non-2xx responses are
// mapped by mapHTTPError onto a [*ResponseError] that unwraps to one of the
// sentinels in errors.go, so callers can use [errors.Is] (e.g. [ErrBadRequest]
// for 400, [ErrUnauthorized] for 401) and still show the server's own reason.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cred-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/auth_adapter_mock.go -package=mock

// AuthAdapter defines client-side communication with the credential keeper
// server.
type AuthAdapter interface {
	// SetToken stores the bearer token used by Verify when it is called with
	// an empty token.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Signup registers a new account and returns the server's confirmation
	// message.
	Signup(ctx context.Context, req models.SignupRequest) (string, error)

	// Login exchanges credentials for a bearer token. On success the token is
	// also stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	// Verify asks the server to validate token and returns its claims. An
	// empty token means the stored one.
	Verify(ctx context.Context, token string) (models.Claims, error)

	// Version fetches the server's build metadata.
	Version(ctx context.Context) (models.AppBuildInfo, error)
}
