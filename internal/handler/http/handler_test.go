package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/service"
	"github.com/MKhiriev/go-cred-keeper/models"
)

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svcs, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, log, h.logger)
	assert.Nil(t, h.signer)

	assert.NotNil(t, NewHandler(svcs, log, WithHashKey("k")).signer)
}

func newRouterHandler() *Handler {
	return newHandlerWithAuthService(&mockAuthService{
		signupFn: func(context.Context, models.SignupRequest) (models.Account, error) {
			return models.Account{ID: "id-1"}, nil
		},
		loginFn: func(context.Context, models.LoginRequest) (string, error) {
			return "tok", nil
		},
		verifyFn: func(context.Context, string) (models.Claims, error) {
			return models.Claims{ID: "id-1"}, nil
		},
	})
}

func TestInit_Routes(t *testing.T) {
	tests := []struct {
		method     string
		path       string
		body       string
		auth       string
		wantStatus int
	}{
		{http.MethodPost, "/signup", `{"name":"Ann","email":"ann@x.com","password":"Abcdefgh"}`, "", http.StatusOK},
		{http.MethodPost, "/login", `{"email":"ann@x.com","password":"Abcdefgh"}`, "", http.StatusOK},
		{http.MethodGet, "/verify", "", "Bearer tok", http.StatusOK},
		{http.MethodGet, "/verify", "", "", http.StatusUnauthorized},
		{http.MethodGet, "/version", "", "", http.StatusOK},
		{http.MethodGet, "/signup", "", "", http.StatusNotFound},
		{http.MethodPost, "/version", "", "", http.StatusNotFound},
		{http.MethodGet, "/nonexistent", "", "", http.StatusNotFound},
	}

	router := newRouterHandler().Init()
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, stringsReader(tt.body))
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
		})
	}
}

func TestInit_RecoversFromPanic(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{
		loginFn: func(context.Context, models.LoginRequest) (string, error) {
			panic("unexpected")
		},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", stringsReader(`{"email":"a@b.co","password":"x"}`))
	assert.NotPanics(t, func() { h.Init().ServeHTTP(rec, req) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestInit_TraceIDEchoed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set(traceIDHeader, "fixed-trace")
	rec := httptest.NewRecorder()

	newRouterHandler().Init().ServeHTTP(rec, req)

	assert.Equal(t, "fixed-trace", rec.Header().Get(traceIDHeader))
}
