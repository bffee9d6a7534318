package utils

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cred-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// errUnexpectedSigningMethod is returned from the key function when a token
// header names anything other than an HMAC algorithm.
var errUnexpectedSigningMethod = errors.New("unexpected signing method")

// SignHS256 serializes claims into a compact JWS signed with HMAC-SHA256.
//
// Parameters:
//
//	claims  - any jwt.Claims implementation (e.g. *models.Claims)
//	signKey - secret key used to sign the token; must not be empty
//
// Example usage:
//
//	signed, err := utils.SignHS256(&claims, []byte("secret"))
func SignHS256(claims jwt.Claims, signKey []byte) (string, error) {
	if len(signKey) == 0 {
		return "", errors.New("empty sign key for JWT token")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(signKey)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return signed, nil
}

// ParseHS256 validates tokenString and decodes it into claims.
//
// Validation includes:
//   - the header alg must be exactly HS256 (any other HMAC size, RSA, EC or
//     "none" is rejected with jwt.ErrTokenSignatureInvalid)
//   - signature verification using signKey
//   - the exp claim must be present and in the future
//   - any extra checks passed in opts (issuer, time func, ...)
//
// Errors are returned as produced by jwt so callers can match them with
// errors.Is against jwt.ErrTokenExpired, jwt.ErrTokenSignatureInvalid, etc.
func ParseHS256(tokenString string, claims jwt.Claims, signKey []byte, opts ...jwt.ParserOption) (*jwt.Token, error) {
	opts = append([]jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}, opts...)

	return jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", errUnexpectedSigningMethod, token.Header["alg"])
		}
		return signKey, nil
	}, opts...)
}

// ParseUnverifiedClaims decodes the claims of tokenString WITHOUT checking the
// signature or expiry. It is meant for clients that only display what a
// token they already hold says about them; never use it for authorization.
func ParseUnverifiedClaims(tokenString string) (models.Claims, error) {
	var claims models.Claims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return models.Claims{}, fmt.Errorf("error decoding token claims: %w", err)
	}

	return claims, nil
}
