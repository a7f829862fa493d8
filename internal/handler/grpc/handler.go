package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

// ServiceName is the health service name reported for the notes backend,
// next to the server-wide "" entry.
const ServiceName = "notes.v1.NotesKeeper"

// Handler is the root gRPC transport handler.
//
// It exposes the standard grpc.health.v1.Health service and server
// reflection. The reported status follows the storage: SERVING while it
// answers pings, NOT_SERVING once it does not or after Shutdown.
type Handler struct {
	health *health.Server
	pinger store.Pinger

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. A nil pinger is treated as always
// reachable.
func NewHandler(pinger store.Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		health: health.NewServer(),
		pinger: pinger,
		logger: logger,
	}
}

// Register attaches the health and reflection services to server and
// publishes the current storage status.
func (h *Handler) Register(ctx context.Context, server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
	reflection.Register(server)
	h.Refresh(ctx)
}

// Refresh pings the storage and updates the served status accordingly.
func (h *Handler) Refresh(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	st := healthpb.HealthCheckResponse_SERVING
	if h.pinger != nil {
		if err := h.pinger.Ping(ctx); err != nil {
			h.logger.Err(err).Msg("storage ping failed")
			st = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}

	h.health.SetServingStatus("", st)
	h.health.SetServingStatus(ServiceName, st)
	return st
}

// Shutdown marks every service NOT_SERVING. Later Refresh calls are
// ignored.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// UnaryLogging writes one log entry per unary call.
func (h *Handler) UnaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := next(ctx, req)

	h.logger.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
