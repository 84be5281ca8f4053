package inference

import (
	"context"
)

// GenerationPayload is the exact field set the Together AI images
// endpoint expects. It is the effective parameter set of a request:
// fully defaulted and validated before it reaches this package.
type GenerationPayload struct {
	// Model is the validated model identifier.
	Model string `json:"model"`

	// Prompt is the text description of the desired image.
	Prompt string `json:"prompt"`

	// Width and Height are the image dimensions in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Steps is the number of diffusion steps.
	Steps int `json:"steps"`

	// N is the number of images to generate.
	N int `json:"n"`

	// NegativePrompt steers the model away from unwanted traits.
	NegativePrompt string `json:"negative_prompt"`

	// GuidanceScale controls prompt adherence.
	GuidanceScale float64 `json:"guidance_scale"`

	// Seed is forwarded only when the caller supplied one.
	Seed *int64 `json:"seed,omitempty"`
}

// ImageEntry is one element of the upstream data array. An entry may
// carry a retrievable URL, inline base64 data, both, or neither.
type ImageEntry struct {
	URL     string `json:"url,omitempty"`
	B64JSON string `json:"b64_json,omitempty"`
}

// GenerationResult is the decoded upstream reply body.
type GenerationResult struct {
	Data  []ImageEntry `json:"data"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail is the structured error object Together returns on failures.
type ErrorDetail struct {
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
	Code    string `json:"code,omitempty"`
}

// ImageService defines the interface for upstream image generation.
type ImageService interface {
	// Generate submits the payload to the upstream API and returns its
	// decoded reply. Failures are classified platform errors: timeout,
	// transport, or an HTTP error carrying the upstream status.
	Generate(ctx context.Context, payload *GenerationPayload) (*GenerationResult, error)
}
