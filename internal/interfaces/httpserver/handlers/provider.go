package handlers

import (
	"github.com/rs/zerolog"

	"github.com/Dx4Harsh/image-generate-server/internal/config"
	"github.com/Dx4Harsh/image-generate-server/internal/domain/generation"
)

// Provider wires HTTP handlers.
type Provider struct {
	Generation *GenerationHandler
	System     *SystemHandler
}

func NewProvider(cfg *config.Config, service *generation.Service, log zerolog.Logger) *Provider {
	return &Provider{
		Generation: NewGenerationHandler(cfg, service, log),
		System:     NewSystemHandler(cfg),
	}
}
