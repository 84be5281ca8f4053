package requests

import (
	"github.com/Dx4Harsh/image-generate-server/internal/domain/generation"
)

// GenerateRequest represents a full image generation request.
// Presence and bounds are validated by the domain layer so that error
// messages stay specific and ordered; optional numerics are pointers
// to keep "omitted" distinguishable from an explicit zero.
// @Description Image generation request
type GenerateRequest struct {
	// Prompt is the text description of the desired image. Required.
	Prompt string `json:"prompt" example:"A serene mountain landscape at sunset"`

	// Model selects one of the served models. Defaults to the first
	// entry of the enumeration when omitted.
	Model string `json:"model,omitempty" example:"black-forest-labs/FLUX.1-schnell-Free"`

	// Width and Height in pixels, 256-2048. Default 1024.
	Width  *int `json:"width,omitempty" example:"1024"`
	Height *int `json:"height,omitempty" example:"1024"`

	// Steps is the diffusion step count, 1-12. Default 12.
	Steps *int `json:"steps,omitempty" example:"12"`

	// N is the number of images to generate. Default 1.
	N *int `json:"n,omitempty" example:"1"`

	// NegativePrompt steers generation away from unwanted traits.
	// Defaults to a quality guard string when omitted.
	NegativePrompt *string `json:"negative_prompt,omitempty"`

	// Seed is forwarded verbatim when supplied.
	Seed *int64 `json:"seed,omitempty" example:"42"`

	// GuidanceScale controls prompt adherence. Default 7.5.
	GuidanceScale *float64 `json:"guidance_scale,omitempty" example:"7.5"`
}

// ToDomain converts request to domain model
func (r *GenerateRequest) ToDomain() generation.Request {
	return generation.Request{
		Prompt:         r.Prompt,
		Model:          r.Model,
		Width:          r.Width,
		Height:         r.Height,
		Steps:          r.Steps,
		N:              r.N,
		NegativePrompt: r.NegativePrompt,
		Seed:           r.Seed,
		GuidanceScale:  r.GuidanceScale,
	}
}

// GenerateSimpleRequest carries only a prompt; every other parameter
// is defaulted.
// @Description Simplified image generation request
type GenerateSimpleRequest struct {
	// Prompt is the text description of the desired image. Required.
	Prompt string `json:"prompt" example:"a cat"`
}

// ToDomain converts the simple request to a domain request that relies
// entirely on the normalizer's defaults.
func (r *GenerateSimpleRequest) ToDomain() generation.Request {
	return generation.Request{Prompt: r.Prompt}
}
