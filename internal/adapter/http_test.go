// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cred-keeper/internal/config"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/utils"
	"github.com/MKhiriev/go-cred-keeper/models"
)

func newTestAdapter(t *testing.T, serverURL, hashKey string) *httpAuthAdapter {
	t.Helper()
	a, err := NewHTTPAuthAdapter(
		config.Adapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second},
		config.App{HashKey: hashKey},
		logger.Nop(),
	)
	require.NoError(t, err)
	return a.(*httpAuthAdapter)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "https://keeper.example.com/", want: "https://keeper.example.com"},
		{raw: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSignup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/signup", r.URL.Path)

		var req models.SignupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Ann", req.Name)

		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "User has been created"})
	}))
	defer srv.Close()

	msg, err := newTestAdapter(t, srv.URL, "").Signup(context.Background(),
		models.SignupRequest{Name: "Ann", Email: "ann@x.com", Password: "Abcdefgh"})

	require.NoError(t, err)
	assert.Equal(t, "User has been created", msg)
}

func TestSignup_BadRequestCarriesServerReason(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Err: "User already exists"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "").Signup(context.Background(), models.SignupRequest{})

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "User already exists", err.Error())

	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, http.StatusBadRequest, respErr.StatusCode)
}

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		writeJSON(w, http.StatusOK, models.TokenResponse{Token: "jwt-token"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	token, err := a.Login(context.Background(), models.LoginRequest{Email: "ann@x.com", Password: "Abcdefgh"})

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, "jwt-token", a.Token())
}

func TestLogin_EmptyTokenRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, models.TokenResponse{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Login(context.Background(), models.LoginRequest{})

	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Empty(t, a.Token())
}

func TestVerify_UsesStoredTokenByDefault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/verify", r.URL.Path)
		assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, models.Claims{Name: "Ann", Email: "ann@x.com", ID: "id-1"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	a.SetToken("  stored-token ")

	claims, err := a.Verify(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "Ann", claims.Name)
	assert.Equal(t, "id-1", claims.ID)
}

func TestVerify_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer explicit", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Err: "Token expired"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "").Verify(context.Background(), "explicit")

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Token expired", err.Error())
}

func TestMapHTTPError_Statuses(t *testing.T) {
	tests := []struct {
		status int
		body   string
		want   error
		msg    string
	}{
		{status: http.StatusNotFound, body: `{"err":"Not Found"}`, want: ErrNotFound, msg: "Not Found"},
		{status: http.StatusInternalServerError, body: "boom\n", want: ErrInternalServerError, msg: "boom"},
		{status: http.StatusServiceUnavailable, body: "", want: ErrUnexpectedStatus, msg: "unexpected status (http 503)"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL, "").Version(context.Background())

			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.msg, err.Error())
		})
	}
}

func TestVersion_SignatureVerification(t *testing.T) {
	signer := utils.NewHMACSigner("shared-key")
	body := `{"version":"v1","date":"N/A","commit":"N/A"}`

	tests := []struct {
		name      string
		signature string
		wantErr   error
	}{
		{name: "valid signature", signature: signer.Sign([]byte(body))},
		{name: "wrong signature", signature: utils.NewHMACSigner("other").Sign([]byte(body)), wantErr: ErrIntegrityCheckFailed},
		{name: "missing signature", signature: "", wantErr: ErrIntegrityCheckFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if tt.signature != "" {
					w.Header().Set(hashHeader, tt.signature)
				}
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(body))
			}))
			defer srv.Close()

			info, err := newTestAdapter(t, srv.URL, "shared-key").Version(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "v1", info.Version)
		})
	}
}
