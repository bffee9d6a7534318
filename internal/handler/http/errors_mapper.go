package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-cred-keeper/internal/app"
	"github.com/MKhiriev/go-cred-keeper/internal/service"
	"github.com/MKhiriev/go-cred-keeper/internal/store"
	"github.com/MKhiriev/go-cred-keeper/internal/validators"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses is ordered like the message tables: the first sentinel a
// wrapped error matches decides the status.
var errorStatuses = []errorStatus{
	{service.ErrTokenSecretNotConfigured, http.StatusInternalServerError},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},

	{service.ErrTokenInvalidSignature, http.StatusUnauthorized},
	{service.ErrTokenExpired, http.StatusUnauthorized},
	{service.ErrTokenMalformed, http.StatusUnauthorized},

	{validators.ErrMissingField, http.StatusBadRequest},
	{validators.ErrBadEmail, http.StatusBadRequest},
	{validators.ErrWeakPassword, http.StatusBadRequest},

	{store.ErrEmailAlreadyExists, http.StatusBadRequest},
	{store.ErrStoreUnavailable, http.StatusBadRequest},

	{service.ErrInvalidCredentials, http.StatusBadRequest},
	{service.ErrAccountNotCreated, http.StatusBadRequest},
}

// statusFromError returns the status of the first entry in [errorStatuses]
// that err wraps, or fallback when none matches.
func statusFromError(err error, fallback int) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return fallback
}

type errorMessage struct {
	target  error
	message string
}

// Message tables are ordered: a wrapped error may match several sentinels
// and the first entry wins.
var (
	signupMessages = []errorMessage{
		{validators.ErrMissingField, app.MsgSignupMissingField},
		{validators.ErrBadEmail, app.MsgInvalidEmail},
		{validators.ErrWeakPassword, app.MsgWeakPassword},
		{store.ErrEmailAlreadyExists, app.MsgUserAlreadyExists},
	}

	loginMessages = []errorMessage{
		{validators.ErrMissingField, app.MsgLoginMissingField},
		{service.ErrInvalidCredentials, app.MsgInvalidCredentials},
	}

	verifyMessages = []errorMessage{
		{ErrEmptyAuthorizationHeader, app.MsgNoTokenProvided},
		{service.ErrTokenExpired, app.MsgTokenExpired},
	}
)

func messageFromError(err error, table []errorMessage, fallback string) string {
	for _, m := range table {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return fallback
}
