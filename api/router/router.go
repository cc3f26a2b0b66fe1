package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"reply-pilot/api/handlers"
	"reply-pilot/api/middleware"
	_ "reply-pilot/docs"
	"reply-pilot/services"
	"reply-pilot/storage"
)

// Deps carries the constructed services the router wires to routes.
type Deps struct {
	Generation *services.GenerationService
	Analytics  *services.AnalyticsService
	Templates  *services.TemplateService
	Store      storage.Adapter
}

func New(deps Deps) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestLoggingMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := deps.Store.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "storage": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.POST("/generate", handlers.GenerateHandler(deps.Generation))
		api.GET("/analytics", handlers.AnalyticsHandler(deps.Analytics))

		api.GET("/templates", handlers.ListTemplatesHandler(deps.Templates))
		api.POST("/templates", handlers.SaveTemplateHandler(deps.Templates))
		api.DELETE("/templates/:id", handlers.DeleteTemplateHandler(deps.Templates))
	}

	return r
}
