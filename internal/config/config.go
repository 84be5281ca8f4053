package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// DefaultNegativePrompt is appended to upstream payloads when the
// caller does not supply a negative prompt of their own.
const DefaultNegativePrompt = "blurry, low quality, distorted, pixelated, artifacts, bad anatomy"

// DefaultGuidanceScale is used when the caller omits guidance_scale.
const DefaultGuidanceScale = 7.5

// Config holds the environment driven configuration for the image
// generation gateway.
type Config struct {
	// Service Configuration
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"image-generate-server"`
	ServiceTitle    string        `env:"SERVICE_TITLE" envDefault:"Together AI Image Generation Server"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"PORT" envDefault:"5000"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"console"`
	EnableTracing   bool          `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Upstream Configuration
	//
	// TogetherAPIKey is intentionally not marked notEmpty: a missing
	// key must surface as a configuration error on each generation
	// request, not as a startup parse failure. The health and models
	// routes stay usable on a misconfigured deployment.
	TogetherAPIKey  string        `env:"TOGETHER_API_KEY"`
	TogetherAPIURL  string        `env:"TOGETHER_API_URL" envDefault:"https://api.together.xyz/v1/images/generations"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"120s"`

	// Generation Defaults and Bounds
	Models        []string `env:"IMAGE_MODELS" envSeparator:"," envDefault:"black-forest-labs/FLUX.1-schnell-Free,black-forest-labs/FLUX.1-dev,stabilityai/stable-diffusion-xl-base-1.0,stabilityai/stable-diffusion-2-1,runwayml/stable-diffusion-v1-5"`
	DefaultWidth  int      `env:"IMAGE_DEFAULT_WIDTH" envDefault:"1024"`
	DefaultHeight int      `env:"IMAGE_DEFAULT_HEIGHT" envDefault:"1024"`
	MinDimension  int      `env:"IMAGE_MIN_DIMENSION" envDefault:"256"`
	MaxDimension  int      `env:"IMAGE_MAX_DIMENSION" envDefault:"2048"`
	DefaultSteps  int      `env:"IMAGE_DEFAULT_STEPS" envDefault:"12"`
	MinSteps      int      `env:"IMAGE_MIN_STEPS" envDefault:"1"`
	MaxSteps      int      `env:"IMAGE_MAX_STEPS" envDefault:"12"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	cfg.TogetherAPIKey = strings.TrimSpace(cfg.TogetherAPIKey)
	cfg.TogetherAPIURL = strings.TrimSpace(cfg.TogetherAPIURL)
	if cfg.TogetherAPIURL == "" {
		return nil, fmt.Errorf("TOGETHER_API_URL must not be empty")
	}
	if cfg.UpstreamTimeout <= 0 {
		cfg.UpstreamTimeout = 120 * time.Second
	}

	models := make([]string, 0, len(cfg.Models))
	for _, m := range cfg.Models {
		if trimmed := strings.TrimSpace(m); trimmed != "" {
			models = append(models, trimmed)
		}
	}
	cfg.Models = models
	if len(cfg.Models) == 0 {
		return nil, fmt.Errorf("IMAGE_MODELS must list at least one model")
	}

	if cfg.MinDimension <= 0 || cfg.MaxDimension < cfg.MinDimension {
		return nil, fmt.Errorf("invalid image dimension bounds [%d, %d]", cfg.MinDimension, cfg.MaxDimension)
	}
	if cfg.MinSteps <= 0 || cfg.MaxSteps < cfg.MinSteps {
		return nil, fmt.Errorf("invalid steps bounds [%d, %d]", cfg.MinSteps, cfg.MaxSteps)
	}

	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// DefaultModel returns the first entry of the model enumeration.
func (c *Config) DefaultModel() string {
	return c.Models[0]
}

// IsKnownModel reports whether model is part of the enumeration.
func (c *Config) IsKnownModel(model string) bool {
	for _, m := range c.Models {
		if m == model {
			return true
		}
	}
	return false
}

// HasAPIKey reports whether the upstream credential is configured.
func (c *Config) HasAPIKey() bool {
	return c.TogetherAPIKey != ""
}
