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

	"github.com/rs/zerolog"
	grpclib "google.golang.org/grpc"

	grpcadapter "github.com/simaogato/wealthflow-advisor/internal/adapter/grpc"
	advisorv1 "github.com/simaogato/wealthflow-advisor/internal/adapter/grpc/advisor/v1"
	"github.com/simaogato/wealthflow-advisor/internal/adapter/httpapi"
	"github.com/simaogato/wealthflow-advisor/internal/adapter/metrics"
	"github.com/simaogato/wealthflow-advisor/internal/config"
	"github.com/simaogato/wealthflow-advisor/internal/domain"
	"github.com/simaogato/wealthflow-advisor/internal/usecase/advisor"
	"github.com/simaogato/wealthflow-advisor/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// 1. Configuration and logging
	cfg, err := config.Load()
	if err != nil {
		// Level and format are unknown until the config loads
		bootLog := logger.New(logger.Config{})
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logr := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	// 2. Metrics and services
	registry := metrics.NewRegistry()
	advisorService := advisor.NewAdvisorService(domain.DefaultReferenceData, registry, logr, cfg.ProjectionSeed)
	assets := domain.DefaultReferenceData.List()

	// 3. gRPC server; logging runs first so rejected calls are counted
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(logr, registry),
			grpcadapter.AuthInterceptor(cfg.APIToken),
		),
	)
	advisorv1.RegisterAdvisorServiceServer(grpcServer, grpcadapter.NewServer(advisorService, assets))

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logr.Fatal().Err(err).Str("addr", cfg.GRPCAddr).Msg("Failed to listen")
	}

	go func() {
		logr.Info().Str("addr", cfg.GRPCAddr).Msg("gRPC server listening")
		if err := grpcServer.Serve(lis); err != nil {
			logr.Fatal().Err(err).Msg("Failed to serve gRPC server")
		}
	}()

	// 4. HTTP server for the display layer and scraping
	httpServer := httpapi.New(httpapi.Config{
		Addr:           cfg.HTTPAddr,
		Log:            logr,
		Advisor:        advisorService,
		Assets:         assets,
		CORSOrigins:    cfg.CORSOrigins,
		Recorder:       registry,
		MetricsHandler: registry.Handler(),
	})

	go func() {
		if err := httpServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal().Err(err).Msg("Failed to serve HTTP server")
		}
	}()

	// Graceful shutdown
	waitForShutdown(logr, grpcServer, httpServer)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down both servers
func waitForShutdown(logr zerolog.Logger, grpcServer *grpclib.Server, httpServer *httpapi.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logr.Info().Str("signal", sig.String()).Msg("Shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logr.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	grpcServer.GracefulStop()
	logr.Info().Msg("gRPC server stopped")
}
