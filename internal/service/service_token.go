// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-cred-keeper/internal/config"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/utils"
	"github.com/MKhiriev/go-cred-keeper/models"
)

// TokenLifetime is how long an issued token stays valid. There is no leeway
// on verification.
const TokenLifetime = time.Hour

// tokenService is the HS256 implementation of [TokenService].
// All state is read-only after construction.
type tokenService struct {
	// signKey is the HMAC secret used to sign and verify tokens.
	signKey []byte

	// issuer, when non-empty, is written to "iss" and required on verify.
	issuer string

	// now is the clock used for iat, exp and expiry checks.
	now func() time.Time
}

// TokenOption customises a [TokenService] at construction.
type TokenOption func(*tokenService)

// WithClock replaces time.Now as the source of the current time.
func WithClock(now func() time.Time) TokenOption {
	return func(s *tokenService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewTokenService builds a [TokenService] around cfg.TokenSignKey.
// It fails with [ErrTokenSecretNotConfigured] when the secret is empty.
func NewTokenService(cfg config.App, opts ...TokenOption) (TokenService, error) {
	if cfg.TokenSignKey == "" {
		return nil, ErrTokenSecretNotConfigured
	}

	s := &tokenService{
		signKey: []byte(cfg.TokenSignKey),
		issuer:  cfg.TokenIssuer,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *tokenService) Issue(ctx context.Context, claims models.Claims) (string, error) {
	if len(s.signKey) == 0 {
		return "", ErrTokenSecretNotConfigured
	}

	now := s.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
	}

	signed, err := utils.SignHS256(&claims, s.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.Issue").Msg("error signing token")
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return signed, nil
}

func (s *tokenService) Verify(ctx context.Context, token string) (models.Claims, error) {
	if len(s.signKey) == 0 {
		return models.Claims{}, ErrTokenSecretNotConfigured
	}

	opts := []jwt.ParserOption{jwt.WithTimeFunc(s.now)}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	var claims models.Claims
	_, err := utils.ParseHS256(token, &claims, s.signKey, opts...)
	if err == nil {
		return claims, nil
	}

	logger.FromContext(ctx).Debug().Err(err).Str("func", "*tokenService.Verify").Msg("token rejected")

	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return models.Claims{}, ErrTokenInvalidSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return models.Claims{}, ErrTokenExpired
	default:
		return models.Claims{}, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
}
