package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/Dx4Harsh/image-generate-server/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates route registration for the client contract.
type Routes struct {
	handlers *handlers.Provider
}

func NewRoutes(provider *handlers.Provider) *Routes {
	return &Routes{handlers: provider}
}

// Register attaches the gateway routes. The client contract lives at
// the root, matching the deployed mobile app's expectations.
func (r *Routes) Register(router gin.IRouter) {
	router.GET("/health", r.handlers.System.Health)
	router.GET("/models", r.handlers.System.Models)
	router.POST("/generate", r.handlers.Generation.Generate)
	router.POST("/generate-simple", r.handlers.Generation.GenerateSimple)
}
