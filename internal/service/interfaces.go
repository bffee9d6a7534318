package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-cred-keeper/models"
)

// AuthService orchestrates signup, login and token verification.
type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.Account, error)
	Login(ctx context.Context, req models.LoginRequest) (string, error)
	Verify(ctx context.Context, token string) (models.Claims, error)
}

// TokenService issues and verifies HS256 bearer tokens.
type TokenService interface {
	// Issue signs claims with a one hour lifetime.
	Issue(ctx context.Context, claims models.Claims) (string, error)
	// Verify checks signature and expiry and returns the embedded claims.
	Verify(ctx context.Context, token string) (models.Claims, error)
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}

// IDGenerator produces identifiers for new accounts.
type IDGenerator interface {
	Generate() string
}
