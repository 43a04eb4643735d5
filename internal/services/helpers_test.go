package services

import (
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/videoscripter-backend/internal/catalog/catalogtest"
	"github.com/yungbote/videoscripter-backend/internal/data/repos"
	"github.com/yungbote/videoscripter-backend/internal/data/repos/testutil"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
)

type fixture struct {
	db      *gorm.DB
	log     *logger.Logger
	catalog *catalogtest.Fake

	projectRepo  repos.ProjectRepo
	scriptRepo   repos.ScriptRepo
	videoRepo    repos.VideoRepo
	channelRepo  repos.ChannelRepo
	topicRepo    repos.TranscriptTopicRepo
	categoryRepo repos.CategoryRepo

	projects  ProjectService
	videos    VideoService
	ingestion IngestionService
	channels  ChannelService
	scripts   ScriptService
	topics    TopicService
	category  CategoryService
	search    CatalogSearchService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	f := &fixture{
		db:           db,
		log:          log,
		catalog:      catalogtest.NewFake(),
		projectRepo:  repos.NewProjectRepo(db, log),
		scriptRepo:   repos.NewScriptRepo(db, log),
		videoRepo:    repos.NewVideoRepo(db, log),
		channelRepo:  repos.NewChannelRepo(db, log),
		topicRepo:    repos.NewTranscriptTopicRepo(db, log),
		categoryRepo: repos.NewCategoryRepo(db, log),
	}
	f.projects = NewProjectService(db, log, f.projectRepo, f.videoRepo, f.scriptRepo)
	f.videos = NewVideoService(db, log, f.projectRepo, f.videoRepo, f.topicRepo)
	f.ingestion = NewIngestionService(db, log, f.catalog, f.projectRepo, f.videoRepo, f.channelRepo, nil, IngestionConfig{Concurrency: 3})
	f.channels = NewChannelService(db, log, f.channelRepo, f.videoRepo, f.categoryRepo)
	f.scripts = NewScriptService(db, log, f.projectRepo, f.scriptRepo)
	f.topics = NewTopicService(log, f.projectRepo, f.videoRepo, f.topicRepo)
	f.category = NewCategoryService(db, log, f.categoryRepo, f.channelRepo)
	f.search = NewCatalogSearchService(log, f.catalog, f.projectRepo, f.videoRepo, 10)
	return f
}
