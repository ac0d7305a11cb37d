package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/roamgen/roamgen/internal/pkg/config"
	"github.com/roamgen/roamgen/internal/server"
	"github.com/roamgen/roamgen/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Initialize logger
	if err := logger.Init(zapcore.InfoLevel, zap.String("service", "roamgen")); err != nil {
		return err
	}
	zlog := logger.Log
	defer zlog.Sync()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		zlog.Warn("No .env file found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize observability
	otelShutdown, err := server.InitObservability("roamgen", ":"+cfg.MetricsPort, zlog)
	if err != nil {
		return err
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			zlog.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
		}
	}()

	// Create server
	srv := server.New(cfg, zlog)

	// Setup router
	router := server.SetupRouter(cfg, zlog)
	srv.SetRouter(router)

	// Start pprof server (on separate port, not exposed publicly)
	server.StartPprofServer(":" + cfg.PprofPort)

	// Create HTTP server
	httpServer := srv.HTTPServer()

	// Setup graceful shutdown
	done := make(chan bool, 1)
	go server.GracefulShutdown(httpServer, zlog, done)

	// Start server
	zlog.Info("Server starting",
		zap.String("port", cfg.ServerPort),
		zap.Bool("primary_provider", cfg.UsePrimary()),
		zap.Bool("enhancement_provider", cfg.UseEnhancement()))
	if err := httpServer.ListenAndServe(); err != nil {
		zlog.Error("Server error", zap.Error(err))
	}

	// Wait for graceful shutdown to complete
	<-done
	zlog.Info("Graceful shutdown complete")

	return nil
}
