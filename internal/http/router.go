package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/videoscripter-backend/internal/http/handlers"
	httpMW "github.com/yungbote/videoscripter-backend/internal/http/middleware"
	"github.com/yungbote/videoscripter-backend/internal/observability"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	Metrics        *observability.Metrics
	ServiceName    string
	CORSOrigins    []string
	AuthMiddleware *httpMW.AuthMiddleware

	HealthHandler   *httpH.HealthHandler
	ProjectHandler  *httpH.ProjectHandler
	VideoHandler    *httpH.VideoHandler
	ScriptHandler   *httpH.ScriptHandler
	TopicHandler    *httpH.TopicHandler
	ChannelHandler  *httpH.ChannelHandler
	CategoryHandler *httpH.CategoryHandler
	CatalogHandler  *httpH.CatalogHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "videoscripter"
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(serviceName))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins...))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	protected := r.Group("/api")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Projects
		if cfg.ProjectHandler != nil {
			protected.GET("/projects", cfg.ProjectHandler.ListProjects)
			protected.POST("/projects", cfg.ProjectHandler.CreateProject)
			protected.GET("/projects/:id", cfg.ProjectHandler.GetProject)
			protected.PATCH("/projects/:id", cfg.ProjectHandler.UpdateProject)
			protected.DELETE("/projects/:id", cfg.ProjectHandler.DeleteProject)
		}

		// Videos
		if cfg.VideoHandler != nil {
			protected.GET("/projects/:id/videos", cfg.VideoHandler.ListProjectVideos)
			protected.POST("/projects/:id/videos", cfg.VideoHandler.AddVideos)
			protected.DELETE("/projects/:id/videos/:externalId", cfg.VideoHandler.RemoveVideo)
			protected.GET("/videos/unattached", cfg.VideoHandler.ListUnattachedVideos)
			protected.DELETE("/videos/:id", cfg.VideoHandler.DeleteVideo)
		}

		// Transcript topics
		if cfg.TopicHandler != nil {
			protected.GET("/videos/:id/topics", cfg.TopicHandler.ListTopics)
			protected.PATCH("/topics/:id", cfg.TopicHandler.SetTopicSelected)
		}

		// Scripts
		if cfg.ScriptHandler != nil {
			protected.GET("/projects/:id/scripts", cfg.ScriptHandler.ListScripts)
			protected.POST("/projects/:id/scripts", cfg.ScriptHandler.CreateScript)
			protected.PATCH("/scripts/:id", cfg.ScriptHandler.UpdateScript)
			protected.DELETE("/scripts/:id", cfg.ScriptHandler.DeleteScript)
		}

		// Channels
		if cfg.ChannelHandler != nil {
			protected.GET("/channels/:id", cfg.ChannelHandler.GetChannel)
			protected.DELETE("/channels/:id", cfg.ChannelHandler.DeleteChannel)
		}

		// Categories
		if cfg.CategoryHandler != nil {
			protected.GET("/categories", cfg.CategoryHandler.ListCategories)
			protected.POST("/categories", cfg.CategoryHandler.CreateCategory)
			protected.POST("/categories/:id/channels/:channelId", cfg.CategoryHandler.AddChannel)
			protected.DELETE("/categories/:id/channels/:channelId", cfg.CategoryHandler.RemoveChannel)
		}

		// Catalog passthrough
		if cfg.CatalogHandler != nil {
			protected.GET("/catalog/search", cfg.CatalogHandler.Search)
		}
	}

	return r
}
