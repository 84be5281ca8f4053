package responses

import (
	"time"

	"github.com/Dx4Harsh/image-generate-server/internal/domain/generation"
)

// GeneratedImage is one image descriptor: a URL or inline base64 data,
// tagged with its position in the upstream's returned list.
type GeneratedImage struct {
	URL     string `json:"url,omitempty"`
	B64JSON string `json:"b64_json,omitempty"`
	Index   int    `json:"index"`
}

// ParameterSet echoes the effective parameters actually sent upstream.
type ParameterSet struct {
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	Steps          int     `json:"steps"`
	N              int     `json:"n"`
	GuidanceScale  float64 `json:"guidance_scale"`
	NegativePrompt string  `json:"negative_prompt"`
	Seed           *int64  `json:"seed,omitempty"`
}

// GenerateResponse represents a successful generation outcome.
type GenerateResponse struct {
	Success    bool             `json:"success"`
	Images     []GeneratedImage `json:"images"`
	Prompt     string           `json:"prompt"`
	Model      string           `json:"model"`
	Parameters ParameterSet     `json:"parameters"`
	Timestamp  string           `json:"timestamp"`
}

// BuildGenerateResponse creates the response DTO from the domain result
func BuildGenerateResponse(res *generation.Response) *GenerateResponse {
	images := make([]GeneratedImage, 0, len(res.Images))
	for _, img := range res.Images {
		switch img.Kind {
		case generation.ImageKindURL:
			images = append(images, GeneratedImage{URL: img.URL, Index: img.Index})
		case generation.ImageKindBase64:
			images = append(images, GeneratedImage{B64JSON: img.B64JSON, Index: img.Index})
		}
	}

	return &GenerateResponse{
		Success: res.Success,
		Images:  images,
		Prompt:  res.Prompt,
		Model:   res.Model,
		Parameters: ParameterSet{
			Width:          res.Parameters.Width,
			Height:         res.Parameters.Height,
			Steps:          res.Parameters.Steps,
			N:              res.Parameters.N,
			GuidanceScale:  res.Parameters.GuidanceScale,
			NegativePrompt: res.Parameters.NegativePrompt,
			Seed:           res.Parameters.Seed,
		},
		Timestamp: res.Timestamp.Format(time.RFC3339),
	}
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

// ModelsResponse lists the served models and the default selection
type ModelsResponse struct {
	Models  []string `json:"models"`
	Default string   `json:"default"`
}
