package generation

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Dx4Harsh/image-generate-server/internal/infrastructure/inference"
	"github.com/Dx4Harsh/image-generate-server/internal/utils/platformerrors"
)

// Translate reshapes the upstream reply into the client-facing
// response. Each data entry decodes into a tagged ImageResult with the
// URL variant taking priority over base64; entries carrying neither
// are skipped with a warning and do not renumber later entries. An
// absent or empty data array is the only failure; an array whose
// entries are all skippable still yields success with zero images.
func Translate(ctx context.Context, result *inference.GenerationResult, payload *inference.GenerationPayload) (*Response, error) {
	if result == nil || len(result.Data) == 0 {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeInternal,
			"No images generated",
			nil, "no-images-generated")
	}

	images := make([]ImageResult, 0, len(result.Data))
	for i, entry := range result.Data {
		switch {
		case entry.URL != "":
			images = append(images, ImageResult{Kind: ImageKindURL, URL: entry.URL, Index: i})
		case entry.B64JSON != "":
			images = append(images, ImageResult{Kind: ImageKindBase64, B64JSON: entry.B64JSON, Index: i})
		default:
			log.Warn().Int("index", i).Msg("image entry has no URL or base64 data, skipping")
		}
	}

	return &Response{
		Success:    true,
		Images:     images,
		Prompt:     payload.Prompt,
		Model:      payload.Model,
		Parameters: *payload,
		Timestamp:  time.Now(),
	}, nil
}
