package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/videoscripter-backend/internal/data/repos"
	"github.com/yungbote/videoscripter-backend/internal/domain"
	"github.com/yungbote/videoscripter-backend/internal/pkg/dbctx"
	apperrors "github.com/yungbote/videoscripter-backend/internal/pkg/errors"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
)

type VideoService interface {
	ListProjectVideos(ctx context.Context, projectID, ownerID uuid.UUID) ([]*repos.VideoWithChannel, error)
	ListUnattachedVideos(ctx context.Context, ownerID uuid.UUID) ([]*repos.VideoWithChannel, error)
	// RemoveVideo soft-deletes the project's video with the given catalog id.
	RemoveVideo(ctx context.Context, projectID uuid.UUID, externalVideoID string, ownerID uuid.UUID) (bool, error)
	DeleteVideo(ctx context.Context, videoID, ownerID uuid.UUID) (bool, error)
}

type videoService struct {
	db          *gorm.DB
	log         *logger.Logger
	projectRepo repos.ProjectRepo
	videoRepo   repos.VideoRepo
	topicRepo   repos.TranscriptTopicRepo
}

func NewVideoService(
	db *gorm.DB,
	baseLog *logger.Logger,
	projectRepo repos.ProjectRepo,
	videoRepo repos.VideoRepo,
	topicRepo repos.TranscriptTopicRepo,
) VideoService {
	serviceLog := baseLog.With("service", "VideoService")
	return &videoService{
		db:          db,
		log:         serviceLog,
		projectRepo: projectRepo,
		videoRepo:   videoRepo,
		topicRepo:   topicRepo,
	}
}

func (vs *videoService) ListProjectVideos(ctx context.Context, projectID, ownerID uuid.UUID) ([]*repos.VideoWithChannel, error) {
	if err := requireActor(ownerID); err != nil {
		return nil, err
	}
	dbc := dbctx.New(ctx)
	ok, err := vs.projectRepo.ExistsOwned(dbc, projectID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("check project: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	rows, err := vs.videoRepo.ListByProjectWithChannel(dbc, projectID)
	if err != nil {
		vs.log.Error("ListProjectVideos failed", "project_id", projectID, "error", err)
		return nil, fmt.Errorf("list videos: %w", err)
	}
	return rows, nil
}

func (vs *videoService) ListUnattachedVideos(ctx context.Context, ownerID uuid.UUID) ([]*repos.VideoWithChannel, error) {
	if err := requireActor(ownerID); err != nil {
		return nil, err
	}
	rows, err := vs.videoRepo.ListUnattachedByCreator(dbctx.New(ctx), ownerID)
	if err != nil {
		return nil, fmt.Errorf("list unattached videos: %w", err)
	}
	return rows, nil
}

func (vs *videoService) RemoveVideo(ctx context.Context, projectID uuid.UUID, externalVideoID string, ownerID uuid.UUID) (bool, error) {
	if err := requireActor(ownerID); err != nil {
		return false, err
	}
	externalVideoID = strings.TrimSpace(externalVideoID)
	if externalVideoID == "" {
		return false, fmt.Errorf("%w: missing video id", apperrors.ErrInvalidArgument)
	}
	removed := false
	err := vs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		ok, err := vs.projectRepo.ExistsOwned(dbc, projectID, ownerID)
		if err != nil || !ok {
			return err
		}
		v, err := vs.videoRepo.GetInProject(dbc, projectID, externalVideoID)
		if err != nil || v == nil {
			return err
		}
		removed, err = vs.softDelete(dbc, v, ownerID)
		return err
	})
	if err != nil {
		vs.log.Error("RemoveVideo failed", "project_id", projectID, "external_id", externalVideoID, "error", err)
		return false, err
	}
	return removed, nil
}

func (vs *videoService) DeleteVideo(ctx context.Context, videoID, ownerID uuid.UUID) (bool, error) {
	if err := requireActor(ownerID); err != nil {
		return false, err
	}
	deleted := false
	err := vs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		v, err := loadOwnedVideo(dbc, vs.projectRepo, vs.videoRepo, videoID, ownerID)
		if err != nil || v == nil {
			return err
		}
		deleted, err = vs.softDelete(dbc, v, ownerID)
		return err
	})
	if err != nil {
		vs.log.Error("DeleteVideo failed", "video_id", videoID, "error", err)
		return false, err
	}
	return deleted, nil
}

func (vs *videoService) softDelete(dbc dbctx.Context, v *domain.Video, actor uuid.UUID) (bool, error) {
	n, err := vs.videoRepo.SoftDeleteByIDs(dbc, []uuid.UUID{v.ID}, actor)
	if err != nil {
		return false, fmt.Errorf("delete video: %w", err)
	}
	if n == 0 {
		return false, nil
	}
	if _, err := vs.topicRepo.SoftDeleteByVideoIDs(dbc, []uuid.UUID{v.ID}, actor); err != nil {
		return false, fmt.Errorf("delete topics: %w", err)
	}
	vs.log.Info("Video deleted", "video_id", v.ID, "external_id", v.ExternalID)
	return true, nil
}

// loadOwnedVideo returns the video when ownerID owns it: through its project when
// attached, or as its creator when unattached. It returns (nil, nil) otherwise.
func loadOwnedVideo(dbc dbctx.Context, projectRepo repos.ProjectRepo, videoRepo repos.VideoRepo, videoID, ownerID uuid.UUID) (*domain.Video, error) {
	v, err := videoRepo.GetByID(dbc, videoID)
	if err != nil {
		return nil, fmt.Errorf("load video: %w", err)
	}
	if v == nil {
		return nil, nil
	}
	if v.ProjectID == nil {
		if v.CreatedBy != ownerID {
			return nil, nil
		}
		return v, nil
	}
	ok, err := projectRepo.ExistsOwned(dbc, *v.ProjectID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("check project: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return v, nil
}
