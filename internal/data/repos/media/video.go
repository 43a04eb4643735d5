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

// VideoWithChannel is a video row joined with the columns of its channel that the
// read surface shows.
type VideoWithChannel struct {
	domain.Video
	ChannelExternalID string `gorm:"column:channel_external_id"`
	ChannelTitle      string `gorm:"column:channel_title"`
}

type VideoRepo interface {
	Create(dbc dbctx.Context, videos []*domain.Video) ([]*domain.Video, error)
	GetByID(dbc dbctx.Context, videoID uuid.UUID) (*domain.Video, error)
	GetInProject(dbc dbctx.Context, projectID uuid.UUID, externalID string) (*domain.Video, error)
	// ExternalIDsInProject returns which of externalIDs already have a live row in the project.
	ExternalIDsInProject(dbc dbctx.Context, projectID uuid.UUID, externalIDs []string) (map[string]bool, error)
	ListByProjectWithChannel(dbc dbctx.Context, projectID uuid.UUID) ([]*VideoWithChannel, error)
	ListUnattachedByCreator(dbc dbctx.Context, creatorID uuid.UUID) ([]*VideoWithChannel, error)
	CountByChannel(dbc dbctx.Context, channelID uuid.UUID) (int64, error)
	DetachFromProject(dbc dbctx.Context, projectID, actor uuid.UUID) (int64, error)
	SoftDeleteByIDs(dbc dbctx.Context, videoIDs []uuid.UUID, actor uuid.UUID) (int64, error)
}

type videoRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVideoRepo(db *gorm.DB, baseLog *logger.Logger) VideoRepo {
	repoLog := baseLog.With("repo", "VideoRepo")
	return &videoRepo{db: db, log: repoLog}
}

const videoWithChannelSelect = `video.*,
	COALESCE(channel.external_id, '') AS channel_external_id,
	COALESCE(channel.title, 'Unknown Channel') AS channel_title`

func (r *videoRepo) withChannel(dbc dbctx.Context) *gorm.DB {
	return dbc.Conn(r.db).
		Model(&domain.Video{}).
		Select(videoWithChannelSelect).
		Joins("LEFT JOIN channel ON channel.id = video.channel_id AND " + scope.Active("channel"))
}

func (r *videoRepo) Create(dbc dbctx.Context, videos []*domain.Video) ([]*domain.Video, error) {
	if len(videos) == 0 {
		return []*domain.Video{}, nil
	}
	if err := dbc.Conn(r.db).Create(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *videoRepo) GetByID(dbc dbctx.Context, videoID uuid.UUID) (*domain.Video, error) {
	var v domain.Video
	err := dbc.Conn(r.db).Where("id = ?", videoID).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *videoRepo) GetInProject(dbc dbctx.Context, projectID uuid.UUID, externalID string) (*domain.Video, error) {
	var v domain.Video
	err := dbc.Conn(r.db).
		Where("project_id = ? AND external_id = ?", projectID, externalID).
		First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *videoRepo) ExternalIDsInProject(dbc dbctx.Context, projectID uuid.UUID, externalIDs []string) (map[string]bool, error) {
	found := make(map[string]bool)
	if len(externalIDs) == 0 {
		return found, nil
	}
	var ids []string
	if err := dbc.Conn(r.db).
		Model(&domain.Video{}).
		Where("project_id = ? AND external_id IN ?", projectID, externalIDs).
		Pluck("external_id", &ids).Error; err != nil {
		return nil, err
	}
	for _, id := range ids {
		found[id] = true
	}
	return found, nil
}

func (r *videoRepo) ListByProjectWithChannel(dbc dbctx.Context, projectID uuid.UUID) ([]*VideoWithChannel, error) {
	var rows []*VideoWithChannel
	if err := r.withChannel(dbc).
		Where("video.project_id = ?", projectID).
		Order("video.created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *videoRepo) ListUnattachedByCreator(dbc dbctx.Context, creatorID uuid.UUID) ([]*VideoWithChannel, error) {
	var rows []*VideoWithChannel
	if err := r.withChannel(dbc).
		Where("video.project_id IS NULL AND video.created_by = ?", creatorID).
		Order("video.updated_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *videoRepo) CountByChannel(dbc dbctx.Context, channelID uuid.UUID) (int64, error) {
	var count int64
	if err := dbc.Conn(r.db).
		Model(&domain.Video{}).
		Where("channel_id = ?", channelID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *videoRepo) DetachFromProject(dbc dbctx.Context, projectID, actor uuid.UUID) (int64, error) {
	return scope.Update(dbc.Conn(r.db), &domain.Video{}, actor, map[string]interface{}{
		"project_id": nil,
	}, "project_id = ?", projectID)
}

func (r *videoRepo) SoftDeleteByIDs(dbc dbctx.Context, videoIDs []uuid.UUID, actor uuid.UUID) (int64, error) {
	if len(videoIDs) == 0 {
		return 0, nil
	}
	return scope.SoftDelete(dbc.Conn(r.db), &domain.Video{}, actor, "id IN ?", videoIDs)
}
