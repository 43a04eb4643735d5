package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/yungbote/videoscripter-backend/internal/data/repos"
	"github.com/yungbote/videoscripter-backend/internal/domain"
	"github.com/yungbote/videoscripter-backend/internal/pkg/dbctx"
	apperrors "github.com/yungbote/videoscripter-backend/internal/pkg/errors"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
)

type TopicService interface {
	ListTopics(ctx context.Context, videoID, ownerID uuid.UUID) ([]*domain.TranscriptTopic, error)
	SetTopicSelected(ctx context.Context, topicID, ownerID uuid.UUID, selected bool) (*domain.TranscriptTopic, error)
}

type topicService struct {
	log         *logger.Logger
	projectRepo repos.ProjectRepo
	videoRepo   repos.VideoRepo
	topicRepo   repos.TranscriptTopicRepo
}

func NewTopicService(
	baseLog *logger.Logger,
	projectRepo repos.ProjectRepo,
	videoRepo repos.VideoRepo,
	topicRepo repos.TranscriptTopicRepo,
) TopicService {
	serviceLog := baseLog.With("service", "TopicService")
	return &topicService{log: serviceLog, projectRepo: projectRepo, videoRepo: videoRepo, topicRepo: topicRepo}
}

func (ts *topicService) ListTopics(ctx context.Context, videoID, ownerID uuid.UUID) ([]*domain.TranscriptTopic, error) {
	if err := requireActor(ownerID); err != nil {
		return nil, err
	}
	dbc := dbctx.New(ctx)
	v, err := loadOwnedVideo(dbc, ts.projectRepo, ts.videoRepo, videoID, ownerID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apperrors.ErrNotFound
	}
	return ts.topicRepo.ListByVideo(dbc, videoID)
}

func (ts *topicService) SetTopicSelected(ctx context.Context, topicID, ownerID uuid.UUID, selected bool) (*domain.TranscriptTopic, error) {
	if err := requireActor(ownerID); err != nil {
		return nil, err
	}
	dbc := dbctx.New(ctx)
	topic, err := ts.topicRepo.GetByID(dbc, topicID)
	if err != nil {
		return nil, fmt.Errorf("load topic: %w", err)
	}
	if topic == nil {
		return nil, apperrors.ErrNotFound
	}
	v, err := loadOwnedVideo(dbc, ts.projectRepo, ts.videoRepo, topic.VideoID, ownerID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apperrors.ErrNotFound
	}
	if _, err := ts.topicRepo.SetSelected(dbc, topicID, selected, ownerID); err != nil {
		return nil, fmt.Errorf("update topic: %w", err)
	}
	topic.IsSelected = selected
	topic.UpdatedBy = ownerID
	return topic, nil
}
