package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/service"
	"github.com/MKhiriev/go-cred-keeper/models"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signupFn func(ctx context.Context, req models.SignupRequest) (models.Account, error)
	loginFn  func(ctx context.Context, req models.LoginRequest) (string, error)
	verifyFn func(ctx context.Context, token string) (models.Claims, error)
}

func (m *mockAuthService) Signup(ctx context.Context, req models.SignupRequest) (models.Account, error) {
	return m.signupFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) Verify(ctx context.Context, token string) (models.Claims, error) {
	return m.verifyFn(ctx, token)
}

// mockAppInfoService implements service.AppInfoService.
type mockAppInfoService struct {
	info models.AppBuildInfo
}

func (m *mockAppInfoService) GetAppInfo(_ context.Context) models.AppBuildInfo {
	return m.info
}

func newHandlerWithAuthService(authSvc service.AuthService, opts ...HandlerOption) *Handler {
	svcs := &service.Services{
		AuthService:    authSvc,
		AppInfoService: &mockAppInfoService{info: models.NewAppBuildInfo("v1.0.0", "2026-03-01", "abc123")},
	}
	return NewHandler(svcs, logger.Nop(), opts...)
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return strings.NewReader(string(b))
}

func stringsReader(s string) io.Reader {
	return strings.NewReader(s)
}

func decodeErr(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Err
}
