package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/videoscripter-backend/internal/observability"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
	"github.com/yungbote/videoscripter-backend/internal/services"
)

type Services struct {
	Auth          services.AuthService
	Project       services.ProjectService
	Video         services.VideoService
	Ingestion     services.IngestionService
	Script        services.ScriptService
	Topic         services.TopicService
	Channel       services.ChannelService
	Category      services.CategoryService
	CatalogSearch services.CatalogSearchService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, clients Clients, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")
	return Services{
		Auth:    services.NewAuthService(log, cfg.JWTSecretKey, cfg.AccessTokenTTL),
		Project: services.NewProjectService(db, log, reposet.Project, reposet.Video, reposet.Script),
		Video:   services.NewVideoService(db, log, reposet.Project, reposet.Video, reposet.TranscriptTopic),
		Ingestion: services.NewIngestionService(
			db, log, clients.Catalog,
			reposet.Project, reposet.Video, reposet.Channel,
			metrics,
			services.IngestionConfig{Concurrency: cfg.IngestConcurrency},
		),
		Script:        services.NewScriptService(db, log, reposet.Project, reposet.Script),
		Topic:         services.NewTopicService(log, reposet.Project, reposet.Video, reposet.TranscriptTopic),
		Channel:       services.NewChannelService(db, log, reposet.Channel, reposet.Video, reposet.Category),
		Category:      services.NewCategoryService(db, log, reposet.Category, reposet.Channel),
		CatalogSearch: services.NewCatalogSearchService(log, clients.Catalog, reposet.Project, reposet.Video, cfg.SearchMaxResults),
	}
}
