package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-cred-keeper/internal/config"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/utils"
	"github.com/MKhiriev/go-cred-keeper/models"
)

const hashHeader = "HashSHA256"

type httpAuthAdapter struct {
	client *utils.HTTPClient

	// signer is nil when no hash key is configured.
	signer *utils.HMACSigner

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAuthAdapter constructs an HTTP/REST implementation of [AuthAdapter].
// It normalises adapterCfg.HTTPAddress into a base URL and applies the
// request timeout. When appCfg.HashKey is set every response must carry a
// valid HashSHA256 header.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPAuthAdapter(adapterCfg config.Adapter, appCfg config.App, logger *logger.Logger) (AuthAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpAuthAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	if appCfg.HashKey != "" {
		a.signer = utils.NewHMACSigner(appCfg.HashKey)
	}

	logger.Debug().Str("base_url", baseURL).Bool("verify_signature", a.signer != nil).Msg("http auth adapter created")
	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAuthAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAuthAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Signup POSTs req to /signup and returns the confirmation message.
func (h *httpAuthAdapter) Signup(ctx context.Context, req models.SignupRequest) (string, error) {
	var out models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		Post("/signup")
	if err != nil {
		return "", fmt.Errorf("signup request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return "", err
	}

	return out.Message, nil
}

// Login POSTs req to /login, stores the returned token and returns it.
func (h *httpAuthAdapter) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	var out models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		Post("/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", fmt.Errorf("login response: %w: empty token", ErrUnexpectedStatus)
	}

	h.SetToken(out.Token)
	return out.Token, nil
}

// Verify GETs /verify with token as bearer and returns the decoded claims.
func (h *httpAuthAdapter) Verify(ctx context.Context, token string) (models.Claims, error) {
	if token = strings.TrimSpace(token); token == "" {
		token = h.Token()
	}

	var claims models.Claims

	r := h.client.R().
		SetContext(ctx).
		SetResult(&claims)
	if token != "" {
		r.SetAuthToken(token)
	}

	resp, err := r.Get("/verify")
	if err != nil {
		return models.Claims{}, fmt.Errorf("verify request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.Claims{}, err
	}

	return claims, nil
}

// Version GETs /version.
func (h *httpAuthAdapter) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/version")
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.AppBuildInfo{}, err
	}

	return info, nil
}

// checkResponse maps non-2xx statuses and, when a hash key is configured,
// verifies the response signature.
func (h *httpAuthAdapter) checkResponse(resp *resty.Response) error {
	if err := mapHTTPError(resp); err != nil {
		h.logger.Debug().Int("status", resp.StatusCode()).Err(err).Msg("server rejected request")
		return err
	}

	if h.signer == nil {
		return nil
	}

	if !h.signer.Verify(resp.Body(), resp.Header().Get(hashHeader)) {
		h.logger.Error().Str("url", resp.Request.URL).Msg("response signature mismatch")
		return ErrIntegrityCheckFailed
	}

	return nil
}
