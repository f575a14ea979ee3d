package transport

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/cosign-orchestrator/internal/clock"
)

// MonitorServiceName is the health service name reported next to the overall "" entry.
const MonitorServiceName = "cosign.orchestrator.Monitor"

const defaultHealthInterval = 5 * time.Second

// HealthReporter mirrors stream connectivity into the gRPC health service.
type HealthReporter struct {
	server    *health.Server
	connected func() bool
	logger    *zap.Logger
	interval  time.Duration
	sleep     clock.SleepFunc
	last      healthpb.HealthCheckResponse_ServingStatus
}

// NewHealthReporter starts in NOT_SERVING until the first update.
func NewHealthReporter(connected func() bool, logger *zap.Logger) *HealthReporter {
	r := &HealthReporter{
		server:    health.NewServer(),
		connected: connected,
		logger:    logger.Named("health"),
		interval:  defaultHealthInterval,
		sleep:     clock.SleepWithContext,
		last:      healthpb.HealthCheckResponse_UNKNOWN,
	}
	r.set(healthpb.HealthCheckResponse_NOT_SERVING)
	return r
}

// Server returns the health server to register on a grpc.Server.
func (r *HealthReporter) Server() *health.Server {
	return r.server
}

// Run refreshes the status every interval until ctx is done, then marks
// everything NOT_SERVING.
func (r *HealthReporter) Run(ctx context.Context) error {
	defer r.server.Shutdown()
	for {
		r.update()
		if err := r.sleep(ctx, r.interval); err != nil {
			return err
		}
	}
}

func (r *HealthReporter) update() {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if r.connected() {
		status = healthpb.HealthCheckResponse_SERVING
	}
	r.set(status)
}

func (r *HealthReporter) set(status healthpb.HealthCheckResponse_ServingStatus) {
	if status == r.last {
		return
	}
	r.server.SetServingStatus("", status)
	r.server.SetServingStatus(MonitorServiceName, status)
	r.logger.Info("health status changed", zap.String("status", status.String()))
	r.last = status
}
