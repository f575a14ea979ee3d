package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/cosign-orchestrator/internal/aggregate"
	journalClickhouse "github.com/goodnatureofminers/cosign-orchestrator/internal/journal/clickhouse"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/lock"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/metrics"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/network"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/service"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/status"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/stream"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/transport"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/wallet"
	"github.com/goodnatureofminers/cosign-orchestrator/pkg/symbol"
)

var config struct {
	NodeURL       string        `long:"node-url" env:"MONITOR_NODE_URL" description:"Symbol REST node URL" default:"http://localhost:3000"`
	Network       string        `long:"network" env:"MONITOR_NETWORK" description:"network name (mainnet or testnet)" default:"testnet"`
	PrivateKey    string        `long:"private-key" env:"MONITOR_PRIVATE_KEY" description:"hex private key of the wallet to watch; a throwaway key is used when empty"`
	WatchList     string        `long:"watch-list" env:"MONITOR_WATCH_LIST" description:"path to a YAML watch list"`
	Addresses     []string      `long:"address" env:"MONITOR_ADDRESSES" env-delim:"," description:"extra address to watch on every channel"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"MONITOR_CLICKHOUSE_DSN" description:"ClickHouse DSN for the notification journal; journaling is off when empty"`
	GRPCAddr      string        `long:"grpc-addr" env:"MONITOR_GRPC_ADDR" description:"gRPC health addr" default:":8000"`
	HTTPAddr      string        `long:"http-addr" env:"MONITOR_HTTP_ADDR" description:"HTTP query API addr" default:":8001"`
	MetricsAddr   string        `long:"metrics-addr" env:"MONITOR_METRICS_ADDR" description:"prometheus metrics addr" default:":9090"`
	RateLimit     int           `long:"rate-limit" env:"MONITOR_RATE_LIMIT" description:"max node REST requests per second, 0 for unlimited" default:"0"`
	Fallback      time.Duration `long:"fallback-interval" env:"MONITOR_FALLBACK_INTERVAL" description:"partial polling interval while the stream is down" default:"30s"`
	Workers       int           `long:"fallback-workers" env:"MONITOR_FALLBACK_WORKERS" description:"concurrent partial polls" default:"4"`
	Reconnect     time.Duration `long:"reconnect-delay" env:"MONITOR_RECONNECT_DELAY" description:"initial stream reconnect delay" default:"5s"`
	MaxReconnect  time.Duration `long:"max-reconnect-delay" env:"MONITOR_MAX_RECONNECT_DELAY" description:"stream reconnect delay cap" default:"60s"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)
	if _, err := flags.Parse(&config); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	nodeMetrics := metrics.NewNodeClient(config.Network)
	netCfg := network.DefaultConfig()
	netCfg.RateLimit = config.RateLimit
	netCfg.OnRetry = nodeMetrics.ObserveRetry
	client, err := network.NewClient(config.NodeURL, netCfg, nodeMetrics, logger.Named("node"))
	if err != nil {
		logger.Fatal("Init node client", zap.Error(err))
	}

	key, err := privateKey(config.PrivateKey)
	if err != nil {
		logger.Fatal("Parse private key", zap.Error(err))
	}
	w, err := wallet.New(key, config.Network, client, logger.Named("wallet"))
	if err != nil {
		logger.Fatal("Init wallet", zap.Error(err))
	}

	poller, err := status.NewPoller(client, metrics.NewStatusPoller(), logger)
	if err != nil {
		logger.Fatal("Init status poller", zap.Error(err))
	}
	locks, err := lock.NewService(w, client, poller, logger)
	if err != nil {
		logger.Fatal("Init lock service", zap.Error(err))
	}
	aggregates, err := aggregate.NewService(w, client, poller, locks, logger)
	if err != nil {
		logger.Fatal("Init aggregate service", zap.Error(err))
	}

	streamCfg := stream.DefaultConfig()
	streamCfg.ReconnectDelay = config.Reconnect
	streamCfg.MaxReconnectDelay = config.MaxReconnect
	events, err := stream.NewClient(config.NodeURL, streamCfg, metrics.NewStream(), logger)
	if err != nil {
		logger.Fatal("Init stream client", zap.Error(err))
	}

	watch, err := service.LoadWatchList(config.WatchList)
	if err != nil {
		logger.Fatal("Load watch list", zap.Error(err))
	}
	if config.PrivateKey != "" {
		watch = append(watch, service.WatchAll(w.Address())...)
	}
	watch = service.MergeWatchList(watch, service.WatchAll(config.Addresses...))

	monitorMetrics := metrics.NewMonitor(config.Network)
	var (
		writer service.NotificationWriter
		store  transport.NotificationStore
	)
	if config.ClickhouseDSN != "" {
		repo, err := journalClickhouse.NewRepository(config.ClickhouseDSN, metrics.NewJournalRepository())
		if err != nil {
			logger.Fatal("Init journal repository", zap.Error(err))
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Error("Close journal repository", zap.Error(err))
			}
		}()
		writer, err = service.NewJournalWriter(repo, monitorMetrics, logger)
		if err != nil {
			logger.Fatal("Init journal writer", zap.Error(err))
		}
		store = repo
	}

	monitor, err := service.NewMonitor(events, aggregates, writer, monitorMetrics, watch, service.MonitorConfig{
		FallbackInterval: config.Fallback,
		FallbackWorkers:  config.Workers,
	}, logger)
	if err != nil {
		logger.Fatal("Init monitor", zap.Error(err))
	}

	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	streamChain := []grpc.StreamServerInterceptor{
		grpcRecovery.StreamServerInterceptor(),
		grpcCtxTags.StreamServerInterceptor(),
		grpcPrometheus.StreamServerInterceptor,
		grpcZap.StreamServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
		grpc.StreamInterceptor(grpcMiddleware.ChainStreamServer(streamChain...)),
	)
	reporter := transport.NewHealthReporter(events.IsConnected, logger)
	healthpb.RegisterHealthServer(grpcServer, reporter.Server())
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", config.GRPCAddr)
	if err != nil {
		logger.Fatal("net.Listen error", zap.Error(err))
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Fatal("Start GRPC server", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		grpcServer.GracefulStop()
	}()
	go func() {
		_ = reporter.Run(ctx)
	}()

	handler, err := transport.NewHTTPHandler(aggregates, locks, store, monitor, client, w.Network(), logger)
	if err != nil {
		logger.Fatal("Init HTTP handler", zap.Error(err))
	}
	apiServer := newServer(config.HTTPAddr, cors.Default().Handler(handler))

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsServer := newServer(config.MetricsAddr, metricsMux)

	for _, s := range []*http.Server{apiServer, metricsServer} {
		go func() {
			logger.Info("Starting HTTP server", zap.String("addr", s.Addr))
			if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Failed to listen and serve", zap.String("addr", s.Addr), zap.Error(err))
				stop()
			}
		}()
	}

	if health, err := client.TestConnection(ctx); err != nil {
		logger.Warn("Node not reachable, relying on reconnects", zap.Error(err))
	} else if !health.Healthy {
		logger.Warn("Node reports unhealthy", zap.String("apiNode", health.APINode), zap.String("dbNode", health.DBNode))
	}

	if err := monitor.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Monitor stopped", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, s := range []*http.Server{apiServer, metricsServer} {
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.String("addr", s.Addr), zap.Error(err))
		}
	}
}

func privateKey(hex string) (symbol.PrivateKey, error) {
	if hex != "" {
		return symbol.ParsePrivateKey(hex)
	}
	account, err := symbol.GenerateAccount()
	if err != nil {
		return symbol.PrivateKey{}, err
	}
	return account.PrivateKey(), nil
}

func newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
}
