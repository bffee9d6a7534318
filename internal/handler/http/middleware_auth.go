package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-cred-keeper/internal/app"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization" header, verifies it via
// [service.AuthService.Verify] and stores the resulting claims in the request
// context with [utils.WithClaims] before delegating to the next handler.
//
// Every rejection is answered with 401 Unauthorized and an {"err": ...} body:
//   - "No token provided" when the header is absent.
//   - "Token expired" when the token is past its expiry.
//   - "Invalid token" for a malformed header or non-Bearer scheme, a
//     malformed token or a signature mismatch.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Msg("bad authorization header")
			utils.WriteError(w, messageFromError(err, verifyMessages, app.MsgInvalidToken), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.Verify(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token rejected")
			utils.WriteError(w, messageFromError(err, verifyMessages, app.MsgInvalidToken), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithClaims(ctx, claims)))
	})
}

// getTokenFromAuthHeader extracts the token from a raw "Authorization"
// header value of the form "Bearer <token>". The scheme is matched
// case-insensitively and runs of whitespace separate the parts.
//
// It returns [ErrEmptyAuthorizationHeader] for a blank value, [ErrEmptyToken]
// for a bare "Bearer" and [ErrInvalidAuthorizationHeader] for any other scheme
// or extra parts.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Fields(authHeader)
	if len(parts) == 0 {
		return "", ErrEmptyAuthorizationHeader
	}

	if !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	switch len(parts) {
	case 1:
		return "", ErrEmptyToken
	case 2:
		return parts[1], nil
	default:
		return "", ErrInvalidAuthorizationHeader
	}
}
