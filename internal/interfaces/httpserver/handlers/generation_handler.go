package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Dx4Harsh/image-generate-server/internal/config"
	"github.com/Dx4Harsh/image-generate-server/internal/domain/generation"
	"github.com/Dx4Harsh/image-generate-server/internal/interfaces/httpserver/requests"
	"github.com/Dx4Harsh/image-generate-server/internal/interfaces/httpserver/responses"
	"github.com/Dx4Harsh/image-generate-server/internal/utils/platformerrors"
)

// GenerationHandler exposes the image generation endpoints.
type GenerationHandler struct {
	cfg     *config.Config
	service *generation.Service
	log     zerolog.Logger
}

func NewGenerationHandler(cfg *config.Config, service *generation.Service, log zerolog.Logger) *GenerationHandler {
	return &GenerationHandler{
		cfg:     cfg,
		service: service,
		log:     log.With().Str("component", "generation-handler").Logger(),
	}
}

// Generate godoc
// @Summary      Generate images
// @Description  Validates parameters, forwards them to the upstream text-to-image API, and returns the generated images.
// @Tags         generation
// @Accept       json
// @Produce      json
// @Param        request  body      requests.GenerateRequest  true  "Generation request"
// @Success      200      {object}  responses.GenerateResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      408      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /generate [post]
func (h *GenerationHandler) Generate(c *gin.Context) {
	var req requests.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "No JSON data provided", "invalid-body")
		return
	}

	h.respond(c, req.ToDomain())
}

// GenerateSimple godoc
// @Summary      Generate images with minimal parameters
// @Description  Accepts only a prompt; every other parameter is defaulted.
// @Tags         generation
// @Accept       json
// @Produce      json
// @Param        request  body      requests.GenerateSimpleRequest  true  "Simplified request"
// @Success      200      {object}  responses.GenerateResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      408      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /generate-simple [post]
func (h *GenerationHandler) GenerateSimple(c *gin.Context) {
	var req requests.GenerateSimpleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "No JSON data provided", "invalid-body")
		return
	}

	h.respond(c, req.ToDomain())
}

func (h *GenerationHandler) respond(c *gin.Context, req generation.Request) {
	result, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		h.log.Error().Err(err).Msg("generation failed")
		responses.HandleError(c, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, responses.BuildGenerateResponse(result))
}
