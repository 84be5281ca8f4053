package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Dx4Harsh/image-generate-server/internal/config"
	"github.com/Dx4Harsh/image-generate-server/internal/interfaces/httpserver/responses"
)

// SystemHandler exposes health and model discovery endpoints.
type SystemHandler struct {
	cfg *config.Config
}

func NewSystemHandler(cfg *config.Config) *SystemHandler {
	return &SystemHandler{cfg: cfg}
}

// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  responses.HealthResponse
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, responses.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Service:   h.cfg.ServiceTitle,
	})
}

// Models godoc
// @Summary      List available models
// @Tags         system
// @Produce      json
// @Success      200  {object}  responses.ModelsResponse
// @Router       /models [get]
func (h *SystemHandler) Models(c *gin.Context) {
	c.JSON(http.StatusOK, responses.ModelsResponse{
		Models:  h.cfg.Models,
		Default: h.cfg.DefaultModel(),
	})
}
