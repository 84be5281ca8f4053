//go:build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/Dx4Harsh/image-generate-server/internal/config"
	"github.com/Dx4Harsh/image-generate-server/internal/domain/generation"
	"github.com/Dx4Harsh/image-generate-server/internal/infrastructure/inference"
	"github.com/Dx4Harsh/image-generate-server/internal/infrastructure/logger"
	"github.com/Dx4Harsh/image-generate-server/internal/interfaces/httpserver"
)

var generationSet = wire.NewSet(
	inference.NewTogetherService,
	wire.Bind(new(inference.ImageService), new(*inference.TogetherService)),
	generation.NewService,
)

// BuildApplication assembles the gateway with Wire.
func BuildApplication() (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		generationSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}
