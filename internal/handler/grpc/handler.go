package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/service"
)

// AuthServiceName is the health-check name under which the signup, login
// and verify operations are reported.
const AuthServiceName = "credkeeper.Auth"

// Handler is the root gRPC transport handler.
//
// It exposes the standard grpc.health.v1.Health service. Both the overall
// server ("") and [AuthServiceName] report SERVING from construction until
// [Handler.Shutdown] is called.
type Handler struct {
	services *service.Services

	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose health service already reports
// SERVING.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(AuthServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   healthServer,
		logger:   logger,
	}
}

// Register attaches every service of the handler to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Shutdown flips every registered name to NOT_SERVING. Later status
// updates are ignored.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("gRPC health switched to NOT_SERVING")
	h.health.Shutdown()
}
