package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/videoscripter-backend/internal/http"
	"github.com/yungbote/videoscripter-backend/internal/observability"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
)

func wireRouter(log *logger.Logger, cfg Config, metrics *observability.Metrics, handlers Handlers, middleware Middleware) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	return http.NewRouter(http.RouterConfig{
		Log:             log,
		Metrics:         metrics,
		ServiceName:     serviceName,
		CORSOrigins:     cfg.CORSOrigins,
		AuthMiddleware:  middleware.Auth,
		HealthHandler:   handlers.Health,
		ProjectHandler:  handlers.Project,
		VideoHandler:    handlers.Video,
		ScriptHandler:   handlers.Script,
		TopicHandler:    handlers.Topic,
		ChannelHandler:  handlers.Channel,
		CategoryHandler: handlers.Category,
		CatalogHandler:  handlers.Catalog,
	})
}
