package app

import (
	"gorm.io/gorm"

	httpH "github.com/yungbote/videoscripter-backend/internal/http/handlers"
	httpMW "github.com/yungbote/videoscripter-backend/internal/http/middleware"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health   *httpH.HealthHandler
	Project  *httpH.ProjectHandler
	Video    *httpH.VideoHandler
	Script   *httpH.ScriptHandler
	Topic    *httpH.TopicHandler
	Channel  *httpH.ChannelHandler
	Category *httpH.CategoryHandler
	Catalog  *httpH.CatalogHandler
}

func wireHandlers(db *gorm.DB, log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(db),
		Project:  httpH.NewProjectHandler(log, services.Project),
		Video:    httpH.NewVideoHandler(log, services.Video, services.Ingestion),
		Script:   httpH.NewScriptHandler(log, services.Script),
		Topic:    httpH.NewTopicHandler(log, services.Topic),
		Channel:  httpH.NewChannelHandler(log, services.Channel),
		Category: httpH.NewCategoryHandler(log, services.Category),
		Catalog:  httpH.NewCatalogHandler(log, services.CatalogSearch),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}
