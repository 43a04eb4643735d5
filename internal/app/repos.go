package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/videoscripter-backend/internal/data/repos"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
)

type Repos struct {
	Project         repos.ProjectRepo
	Script          repos.ScriptRepo
	Video           repos.VideoRepo
	Channel         repos.ChannelRepo
	TranscriptTopic repos.TranscriptTopicRepo
	Category        repos.CategoryRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Project:         repos.NewProjectRepo(db, log),
		Script:          repos.NewScriptRepo(db, log),
		Video:           repos.NewVideoRepo(db, log),
		Channel:         repos.NewChannelRepo(db, log),
		TranscriptTopic: repos.NewTranscriptTopicRepo(db, log),
		Category:        repos.NewCategoryRepo(db, log),
	}
}
