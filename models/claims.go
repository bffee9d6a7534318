// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// Claims is the identity payload carried by a bearer token.
//
// Name, Email and ID are copied from the [Account] at login time. The
// embedded [jwt.RegisteredClaims] carries exp and iat (and iss when the
// server is configured with an issuer). Claims are never persisted.
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	ID    string `json:"id"`

	jwt.RegisteredClaims
}
