package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dx4Harsh/image-generate-server/internal/config"
	"github.com/Dx4Harsh/image-generate-server/internal/infrastructure/inference"
	"github.com/Dx4Harsh/image-generate-server/internal/utils/platformerrors"
)

// ValidateAndBuild applies defaults to the raw request, enforces the
// documented bounds, and produces the upstream payload. Checks run in
// a fixed order and the first failure wins. Pure transformation, no
// I/O.
func ValidateAndBuild(ctx context.Context, cfg *config.Config, req Request) (*inference.GenerationPayload, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"Prompt is required",
			nil, "missing-prompt")
	}

	model := req.Model
	if model == "" {
		model = cfg.DefaultModel()
	}
	if !cfg.IsKnownModel(model) {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			fmt.Sprintf("Invalid model. Available models: [%s]", strings.Join(cfg.Models, ", ")),
			nil, "invalid-model")
	}

	width := valueOr(req.Width, cfg.DefaultWidth)
	height := valueOr(req.Height, cfg.DefaultHeight)
	if width < cfg.MinDimension || width > cfg.MaxDimension ||
		height < cfg.MinDimension || height > cfg.MaxDimension {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			fmt.Sprintf("Width and height must be between %d and %d pixels", cfg.MinDimension, cfg.MaxDimension),
			nil, "invalid-dimensions")
	}

	steps := valueOr(req.Steps, cfg.DefaultSteps)
	if steps < cfg.MinSteps || steps > cfg.MaxSteps {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			fmt.Sprintf("Steps must be between %d and %d for Together AI models", cfg.MinSteps, cfg.MaxSteps),
			nil, "invalid-steps")
	}

	negativePrompt := config.DefaultNegativePrompt
	if req.NegativePrompt != nil {
		negativePrompt = *req.NegativePrompt
	}

	guidanceScale := config.DefaultGuidanceScale
	if req.GuidanceScale != nil {
		guidanceScale = *req.GuidanceScale
	}

	return &inference.GenerationPayload{
		Model:          model,
		Prompt:         req.Prompt,
		Width:          width,
		Height:         height,
		Steps:          steps,
		N:              valueOr(req.N, 1),
		NegativePrompt: negativePrompt,
		GuidanceScale:  guidanceScale,
		Seed:           req.Seed,
	}, nil
}

func valueOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
