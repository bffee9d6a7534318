package http

import (
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/service"
	"github.com/MKhiriev/go-cred-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	// signer is nil when no hash key is configured; responses are then
	// sent unsigned.
	signer *utils.HMACSigner

	logger *logger.Logger
}

// HandlerOption customises a [Handler] at construction time.
type HandlerOption func(*Handler)

// WithHashKey enables the HashSHA256 response signature header.
// An empty key leaves signing disabled.
func WithHashKey(hashKey string) HandlerOption {
	return func(h *Handler) {
		if hashKey != "" {
			h.signer = utils.NewHMACSigner(hashKey)
		}
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...HandlerOption) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Bool("response_signing", h.signer != nil).Msg("http handler created")
	return h
}
