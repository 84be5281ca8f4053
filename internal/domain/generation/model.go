package generation

import (
	"time"

	"github.com/Dx4Harsh/image-generate-server/internal/infrastructure/inference"
)

// Request is the raw caller input before defaulting and validation.
// Optional numeric fields are pointers so an omitted field is
// distinguishable from an explicit zero: an omitted width defaults to
// 1024, an explicit 0 fails the bounds check.
type Request struct {
	Prompt         string
	Model          string
	Width          *int
	Height         *int
	Steps          *int
	N              *int
	NegativePrompt *string
	Seed           *int64
	GuidanceScale  *float64
}

// ImageKind tags the delivery variant of a generated image.
type ImageKind string

const (
	ImageKindURL    ImageKind = "url"
	ImageKindBase64 ImageKind = "b64_json"
)

// ImageResult is one generated image, either a retrievable URL or
// inline base64 data. Index is the zero-based position in the
// upstream's returned list and is preserved over skipped entries.
type ImageResult struct {
	Kind    ImageKind
	URL     string
	B64JSON string
	Index   int
}

// Response is the client-facing generation outcome.
type Response struct {
	Success    bool
	Images     []ImageResult
	Prompt     string
	Model      string
	Parameters inference.GenerationPayload
	Timestamp  time.Time
}
