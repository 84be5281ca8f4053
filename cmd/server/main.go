package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/Dx4Harsh/image-generate-server/internal/config"
	"github.com/Dx4Harsh/image-generate-server/internal/domain/generation"
	"github.com/Dx4Harsh/image-generate-server/internal/infrastructure/inference"
	"github.com/Dx4Harsh/image-generate-server/internal/infrastructure/logger"
	"github.com/Dx4Harsh/image-generate-server/internal/infrastructure/observability"
	"github.com/Dx4Harsh/image-generate-server/internal/interfaces/httpserver"
)

// @title Image Generation Gateway
// @version 1.0
// @description Stateless gateway in front of the Together AI text-to-image API
// @BasePath /
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	if !cfg.HasAPIKey() {
		log.Warn().Msg("TOGETHER_API_KEY is not set; generation requests will fail until it is configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	imageService := inference.NewTogetherService(cfg)
	generationService := generation.NewService(cfg, imageService, log)

	httpServer := httpserver.New(cfg, log, generationService)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
