package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-cred-keeper/internal/config"
	"github.com/MKhiriev/go-cred-keeper/internal/handler"
	myGRPC "github.com/MKhiriev/go-cred-keeper/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/go-cred-keeper/internal/handler/http"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/service"
	"github.com/MKhiriev/go-cred-keeper/models"
)

type stubAppInfo struct{}

func (stubAppInfo) GetAppInfo(context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo("v-test", "", "")
}

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer_NoServers(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_GRPCListenError(t *testing.T) {
	handlers := &handler.Handlers{GRPC: myGRPC.NewHandler(nil, logger.Nop())}
	_, err := NewServer(handlers, config.Server{GRPCAddress: "256.0.0.1:bad"}, logger.Nop())
	assert.Error(t, err)
}

func TestServer_RunAndShutdown(t *testing.T) {
	services := &service.Services{AppInfoService: stubAppInfo{}}
	cfg := config.Server{
		HTTPAddress:    freeAddr(t),
		GRPCAddress:    freeAddr(t),
		RequestTimeout: 5 * time.Second,
	}
	handlers := &handler.Handlers{
		HTTP: myHTTP.NewHandler(services, logger.Nop()),
		GRPC: myGRPC.NewHandler(services, logger.Nop()),
	}

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.HTTPAddress + "/version")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	conn, err := grpc.NewClient(cfg.GRPCAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(),
		&healthpb.HealthCheckRequest{Service: myGRPC.AuthServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = http.Get("http://" + cfg.HTTPAddress + "/version")
	assert.Error(t, err)
}
