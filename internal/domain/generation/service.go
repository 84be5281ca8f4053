package generation

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Dx4Harsh/image-generate-server/internal/config"
	"github.com/Dx4Harsh/image-generate-server/internal/infrastructure/inference"
	"github.com/Dx4Harsh/image-generate-server/internal/infrastructure/metrics"
	"github.com/Dx4Harsh/image-generate-server/internal/infrastructure/observability"
	"github.com/Dx4Harsh/image-generate-server/internal/utils/platformerrors"
)

// Service composes the validation, dispatch, and translation stages of
// one generation request. It holds no mutable state across requests.
type Service struct {
	cfg    *config.Config
	images inference.ImageService
	log    zerolog.Logger
}

func NewService(cfg *config.Config, images inference.ImageService, log zerolog.Logger) *Service {
	return &Service{
		cfg:    cfg,
		images: images,
		log:    log.With().Str("component", "generation-service").Logger(),
	}
}

// Generate validates the request, dispatches the effective payload
// upstream, and translates the reply. On validation failure the
// upstream is never called.
func (s *Service) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, span := observability.StartSpan(ctx, s.cfg.ServiceName, "generation.Generate")
	defer span.End()

	startTime := time.Now()

	if !s.cfg.HasAPIKey() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeConfiguration,
			"Together AI API key not configured",
			nil, "api-key-not-configured")
	}

	payload, err := ValidateAndBuild(ctx, s.cfg, req)
	if err != nil {
		return nil, err
	}

	observability.AddSpanAttributes(ctx,
		attribute.String("model", payload.Model),
		attribute.Int("width", payload.Width),
		attribute.Int("height", payload.Height),
		attribute.Int("n", payload.N),
	)

	s.log.Info().
		Str("model", payload.Model).
		Str("prompt", truncatePrompt(payload.Prompt, 100)).
		Int("n", payload.N).
		Msg("generating image")

	result, err := s.images.Generate(ctx, payload)
	if err != nil {
		observability.RecordError(ctx, err)
		metrics.RecordGeneration(payload.Model, "error", time.Since(startTime).Seconds())
		return nil, err
	}

	response, err := Translate(ctx, result, payload)
	if err != nil {
		observability.RecordError(ctx, err)
		metrics.RecordGeneration(payload.Model, "error", time.Since(startTime).Seconds())
		return nil, err
	}

	duration := time.Since(startTime)
	metrics.RecordGeneration(payload.Model, "success", duration.Seconds())
	urls, inline := 0, 0
	for _, img := range response.Images {
		if img.Kind == ImageKindURL {
			urls++
		} else {
			inline++
		}
	}
	metrics.RecordImages(payload.Model, "url", urls)
	metrics.RecordImages(payload.Model, "b64_json", inline)

	s.log.Info().
		Str("model", payload.Model).
		Int("image_count", len(response.Images)).
		Dur("duration", duration).
		Msg("image generation completed")

	observability.AddSpanAttributes(ctx,
		attribute.Int("image_count", len(response.Images)),
		attribute.Int64("duration_ms", duration.Milliseconds()),
	)

	return response, nil
}

// truncatePrompt truncates a prompt for logging purposes.
func truncatePrompt(prompt string, maxLen int) string {
	if len(prompt) <= maxLen {
		return prompt
	}
	return prompt[:maxLen] + "..."
}
