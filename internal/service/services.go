package service

import (
	"fmt"

	"github.com/MKhiriev/go-cred-keeper/internal/config"
	"github.com/MKhiriev/go-cred-keeper/internal/crypto"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/store"
	"github.com/MKhiriev/go-cred-keeper/models"
)

type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	tokenService, err := NewTokenService(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("error creating token service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(storages.AccountRepository, crypto.NewCredentialManager(), tokenService, logger),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}, nil
}
