package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter configures the API routes.
func SetupRouter(h *Handler) *gin.Engine {
	r := gin.Default()

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/", h.Health)
	r.GET("/mode", h.Mode)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/analyze", h.AnalyzeRepositories)
		v1.GET("/profiles", h.ListProfiles)
		v1.GET("/search", h.SearchProfiles)
		v1.POST("/match", h.MatchPersonas)
	}

	return r
}
