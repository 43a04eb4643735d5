package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/videoscripter-backend/internal/data/repos/media"
	"github.com/yungbote/videoscripter-backend/internal/data/repos/projects"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
)

type ProjectRepo = projects.ProjectRepo
type ProjectSummary = projects.ProjectSummary
type ScriptRepo = projects.ScriptRepo

type VideoRepo = media.VideoRepo
type VideoWithChannel = media.VideoWithChannel
type ChannelRepo = media.ChannelRepo
type TranscriptTopicRepo = media.TranscriptTopicRepo
type CategoryRepo = media.CategoryRepo

func NewProjectRepo(db *gorm.DB, baseLog *logger.Logger) ProjectRepo {
	return projects.NewProjectRepo(db, baseLog)
}
func NewScriptRepo(db *gorm.DB, baseLog *logger.Logger) ScriptRepo {
	return projects.NewScriptRepo(db, baseLog)
}

func NewVideoRepo(db *gorm.DB, baseLog *logger.Logger) VideoRepo {
	return media.NewVideoRepo(db, baseLog)
}
func NewChannelRepo(db *gorm.DB, baseLog *logger.Logger) ChannelRepo {
	return media.NewChannelRepo(db, baseLog)
}
func NewTranscriptTopicRepo(db *gorm.DB, baseLog *logger.Logger) TranscriptTopicRepo {
	return media.NewTranscriptTopicRepo(db, baseLog)
}
func NewCategoryRepo(db *gorm.DB, baseLog *logger.Logger) CategoryRepo {
	return media.NewCategoryRepo(db, baseLog)
}
