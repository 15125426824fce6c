package router

import (
	"github.com/gin-gonic/gin"

	"github.com/niharsaraf26/smartdocs/internal/config"
	"github.com/niharsaraf26/smartdocs/internal/handler"
	"github.com/niharsaraf26/smartdocs/internal/middleware"
	"github.com/niharsaraf26/smartdocs/internal/service"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth     *handler.AuthHandler
	Document *handler.DocumentHandler
	Answer   *handler.AnswerHandler
	Health   *handler.HealthHandler
}

// New builds the gin engine with all routes mounted under /api/v1.
func New(cfg *config.Config, authService *service.AuthService, h Handlers) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(), middleware.RequestID(), middleware.Logger(), middleware.CORS(cfg.CORS.AllowedOrigins))

	r.GET("/health/live", h.Health.Live)
	r.GET("/health/ready", h.Health.Ready)

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}

	protected := v1.Group("")
	protected.Use(middleware.Auth(authService))
	{
		protected.GET("/ai/answers", h.Answer.GetAnswer)

		docs := protected.Group("/documents")
		{
			docs.POST("", h.Document.Upload)
			docs.GET("", h.Document.List)
			docs.GET("/:id", h.Document.Get)
			docs.GET("/:id/download-url", h.Document.DownloadURL)
			docs.DELETE("/:id", h.Document.Delete)
			docs.POST("/:id/processing-result", h.Document.CompleteProcessing)
			docs.POST("/:id/processing-failure", h.Document.FailProcessing)
		}
	}

	return r
}
