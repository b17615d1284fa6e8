package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/coinexplorer-backend/internal/config"
	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/chain"
	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/node"
	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/repository/clickhouse"
	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/service/directory"
	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/service/explorer"
	"github.com/goodnatureofminers/coinexplorer-backend/internal/metrics"
	"github.com/goodnatureofminers/coinexplorer-backend/internal/transport"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

var cfg struct {
	Addr     string         `long:"addr" env:"API_GATEWAY_ADDR" description:"gRPC addr" default:":8000"`
	RestAddr string         `long:"rest-addr" env:"API_GATEWAY_REST_ADDR" description:"rest addr" default:":8001"`
	Node     config.Node    `group:"full node" namespace:"node" env-namespace:"API_GATEWAY_NODE"`
	Storage  config.Storage `group:"storage" env-namespace:"API_GATEWAY"`
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
	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	if err := run(ctx, logger); err != nil {
		logger.Fatal("api gateway failed", zap.Error(err))
	}
}

func run(ctx context.Context, logger *zap.Logger) error {
	client, err := node.NewClient(cfg.Node.ClientConfig())
	if err != nil {
		return fmt.Errorf("init full node client: %w", err)
	}
	gateway, err := node.NewGateway(client, metrics.NewRPCClient(cfg.Storage.Network), cfg.Node.AddressPrefix, cfg.Node.RPS, logger)
	if err != nil {
		return fmt.Errorf("init node gateway: %w", err)
	}
	defer gateway.Close()

	repo, err := clickhouse.NewRepository(cfg.Storage.ClickhouseDSN, metrics.NewClickhouseRepository(cfg.Storage.Network))
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("close repository", zap.Error(err))
		}
	}()

	dir, err := directory.NewService(repo, logger)
	if err != nil {
		return err
	}
	svc, err := explorer.NewService(gateway, chain.NewResolver(gateway), repo, dir, cfg.Node.AddressPrefix, logger)
	if err != nil {
		return err
	}
	handler, err := transport.NewExplorerHandler(svc, logger)
	if err != nil {
		return err
	}

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	gateway.OnReady(func() {
		logger.Info("full node connected, serving")
		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	})
	gateway.Start(ctx)

	interceptors := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(interceptors...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Error("GRPC server stopped", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
	}()

	gw := gwruntime.NewServeMux()
	if err := handler.Register(gw); err != nil {
		return fmt.Errorf("register explorer routes: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", cfg.RestAddr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}
