package inference

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Dx4Harsh/image-generate-server/internal/config"
	"github.com/Dx4Harsh/image-generate-server/internal/utils/httpclients"
	"github.com/Dx4Harsh/image-generate-server/internal/utils/platformerrors"
)

// TogetherService implements ImageService against the Together AI
// images endpoint.
type TogetherService struct {
	cfg     *config.Config
	timeout time.Duration
}

// NewTogetherService creates a new TogetherService instance.
func NewTogetherService(cfg *config.Config) *TogetherService {
	timeout := 120 * time.Second
	if cfg != nil && cfg.UpstreamTimeout > 0 {
		timeout = cfg.UpstreamTimeout
	}
	return &TogetherService{
		cfg:     cfg,
		timeout: timeout,
	}
}

// Generate implements ImageService.Generate.
func (s *TogetherService) Generate(ctx context.Context, payload *GenerationPayload) (*GenerationResult, error) {
	client := httpclients.NewClient("together-images")
	client.SetTimeout(s.timeout)
	client.SetRetryCount(0) // a single upstream failure is a single final failure
	client.SetHeader("Authorization", fmt.Sprintf("Bearer %s", s.cfg.TogetherAPIKey))

	log.Debug().
		Str("endpoint", s.cfg.TogetherAPIURL).
		Str("model", payload.Model).
		Int("n", payload.N).
		Msg("[TogetherService] Calling upstream")

	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(s.cfg.TogetherAPIURL)

	if err != nil {
		if isTimeout(err) {
			log.Error().Err(err).Str("endpoint", s.cfg.TogetherAPIURL).Msg("[TogetherService] Upstream call timed out")
			return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
				platformerrors.ErrorTypeTimeout,
				"Request timeout - image generation took too long",
				err, "together-timeout")
		}
		log.Error().Err(err).Str("endpoint", s.cfg.TogetherAPIURL).Msg("[TogetherService] Upstream call failed")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			fmt.Sprintf("Request failed: %v", err),
			nil, "together-transport-error")
	}

	respBytes := resp.Bytes()

	if resp.StatusCode() != http.StatusOK {
		msg := fmt.Sprintf("Together AI API error: %d", resp.StatusCode())
		var errResp GenerationResult
		if parseErr := json.Unmarshal(respBytes, &errResp); parseErr == nil && errResp.Error != nil && errResp.Error.Message != "" {
			msg += " - " + errResp.Error.Message
		} else if len(respBytes) > 0 {
			msg += " - " + string(respBytes)
		}
		log.Error().Int("status", resp.StatusCode()).Msg("[TogetherService] " + msg)
		return nil, platformerrors.NewErrorWithStatus(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			msg, nil, "together-http-error", resp.StatusCode())
	}

	var result GenerationResult
	if err := json.Unmarshal(respBytes, &result); err != nil {
		log.Error().Err(err).Str("body", string(respBytes)).Msg("[TogetherService] Failed to parse upstream response")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeInternal,
			"failed to parse image provider response",
			err, "together-parse-error")
	}

	log.Debug().
		Int("image_count", len(result.Data)).
		Msg("[TogetherService] Upstream response received")

	return &result, nil
}

// isTimeout distinguishes deadline expiry from other transport failures.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// Ensure TogetherService implements ImageService.
var _ ImageService = (*TogetherService)(nil)
