package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/models"
)

// ─────────────────────────────────────────────
// GetAppInfo
// ─────────────────────────────────────────────

func TestGetAppInfo_ReturnsBuildInfo(t *testing.T) {
	info := models.NewAppBuildInfo("1.2.3", "2026-03-01", "abc123")
	svc := NewAppInfoService(info, logger.Nop())

	got := svc.GetAppInfo(context.Background())

	assert.Equal(t, "1.2.3", got.Version)
	assert.Equal(t, "2026-03-01", got.Date)
	assert.Equal(t, "abc123", got.Commit)
}

func TestGetAppInfo_MissingValuesAreNotAvailable(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("", "", ""), logger.Nop())

	got := svc.GetAppInfo(context.Background())

	assert.Equal(t, models.AppBuildInfo{Version: "N/A", Date: "N/A", Commit: "N/A"}, got)
}

func TestGetAppInfo_CancelledContext_StillReturnsInfo(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// GetAppInfo does not use ctx, so it must still return the info
	assert.Equal(t, "1.0.0", svc.GetAppInfo(ctx).Version)
}
