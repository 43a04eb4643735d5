package media

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/videoscripter-backend/internal/data/repos/scope"
	"github.com/yungbote/videoscripter-backend/internal/domain"
	"github.com/yungbote/videoscripter-backend/internal/pkg/dbctx"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
)

type TranscriptTopicRepo interface {
	Create(dbc dbctx.Context, topics []*domain.TranscriptTopic) ([]*domain.TranscriptTopic, error)
	GetByID(dbc dbctx.Context, topicID uuid.UUID) (*domain.TranscriptTopic, error)
	ListByVideo(dbc dbctx.Context, videoID uuid.UUID) ([]*domain.TranscriptTopic, error)
	SetSelected(dbc dbctx.Context, topicID uuid.UUID, selected bool, actor uuid.UUID) (int64, error)
	SoftDeleteByVideoIDs(dbc dbctx.Context, videoIDs []uuid.UUID, actor uuid.UUID) (int64, error)
}

type transcriptTopicRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTranscriptTopicRepo(db *gorm.DB, baseLog *logger.Logger) TranscriptTopicRepo {
	repoLog := baseLog.With("repo", "TranscriptTopicRepo")
	return &transcriptTopicRepo{db: db, log: repoLog}
}

func (r *transcriptTopicRepo) Create(dbc dbctx.Context, topics []*domain.TranscriptTopic) ([]*domain.TranscriptTopic, error) {
	if len(topics) == 0 {
		return []*domain.TranscriptTopic{}, nil
	}
	if err := dbc.Conn(r.db).Create(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *transcriptTopicRepo) GetByID(dbc dbctx.Context, topicID uuid.UUID) (*domain.TranscriptTopic, error) {
	var t domain.TranscriptTopic
	err := dbc.Conn(r.db).Where("id = ?", topicID).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *transcriptTopicRepo) ListByVideo(dbc dbctx.Context, videoID uuid.UUID) ([]*domain.TranscriptTopic, error) {
	var results []*domain.TranscriptTopic
	if err := dbc.Conn(r.db).
		Where("video_id = ?", videoID).
		Order("start_offset_ms ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *transcriptTopicRepo) SetSelected(dbc dbctx.Context, topicID uuid.UUID, selected bool, actor uuid.UUID) (int64, error) {
	return scope.Update(dbc.Conn(r.db), &domain.TranscriptTopic{}, actor, map[string]interface{}{
		"is_selected": selected,
	}, "id = ?", topicID)
}

func (r *transcriptTopicRepo) SoftDeleteByVideoIDs(dbc dbctx.Context, videoIDs []uuid.UUID, actor uuid.UUID) (int64, error) {
	if len(videoIDs) == 0 {
		return 0, nil
	}
	return scope.SoftDelete(dbc.Conn(r.db), &domain.TranscriptTopic{}, actor, "video_id IN ?", videoIDs)
}
