package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/videoscripter-backend/internal/data/repos"
	"github.com/yungbote/videoscripter-backend/internal/domain"
	"github.com/yungbote/videoscripter-backend/internal/pkg/dbctx"
	apperrors "github.com/yungbote/videoscripter-backend/internal/pkg/errors"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
)

type ChannelDetail struct {
	Channel    *domain.Channel
	Categories []*domain.Category
}

type ChannelService interface {
	GetChannel(ctx context.Context, channelID uuid.UUID) (*ChannelDetail, error)
	// DeleteChannel fails with ErrConflict while any live video references the channel.
	DeleteChannel(ctx context.Context, channelID, actor uuid.UUID) error
}

type channelService struct {
	db           *gorm.DB
	log          *logger.Logger
	channelRepo  repos.ChannelRepo
	videoRepo    repos.VideoRepo
	categoryRepo repos.CategoryRepo
}

func NewChannelService(
	db *gorm.DB,
	baseLog *logger.Logger,
	channelRepo repos.ChannelRepo,
	videoRepo repos.VideoRepo,
	categoryRepo repos.CategoryRepo,
) ChannelService {
	serviceLog := baseLog.With("service", "ChannelService")
	return &channelService{
		db:           db,
		log:          serviceLog,
		channelRepo:  channelRepo,
		videoRepo:    videoRepo,
		categoryRepo: categoryRepo,
	}
}

func (cs *channelService) GetChannel(ctx context.Context, channelID uuid.UUID) (*ChannelDetail, error) {
	dbc := dbctx.New(ctx)
	ch, err := cs.channelRepo.GetByID(dbc, channelID)
	if err != nil {
		return nil, fmt.Errorf("load channel: %w", err)
	}
	if ch == nil {
		return nil, apperrors.ErrNotFound
	}
	cats, err := cs.categoryRepo.ListByChannel(dbc, channelID)
	if err != nil {
		return nil, fmt.Errorf("load channel categories: %w", err)
	}
	return &ChannelDetail{Channel: ch, Categories: cats}, nil
}

func (cs *channelService) DeleteChannel(ctx context.Context, channelID, actor uuid.UUID) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		ch, err := cs.channelRepo.LockByID(dbc, channelID)
		if err != nil {
			return fmt.Errorf("lock channel: %w", err)
		}
		if ch == nil {
			return apperrors.ErrNotFound
		}
		// Held until commit; ingest batches share-lock the channels they reuse.
		refs, err := cs.videoRepo.CountByChannel(dbc, channelID)
		if err != nil {
			return fmt.Errorf("count channel videos: %w", err)
		}
		if refs > 0 {
			return fmt.Errorf("%w: channel has %d videos", apperrors.ErrConflict, refs)
		}
		if _, err := cs.channelRepo.SoftDelete(dbc, channelID, actor); err != nil {
			return fmt.Errorf("delete channel: %w", err)
		}
		if _, err := cs.categoryRepo.SoftDeleteLinksByChannel(dbc, channelID, actor); err != nil {
			return fmt.Errorf("delete channel categories: %w", err)
		}
		return nil
	})
	if err != nil {
		cs.log.Warn("DeleteChannel failed", "channel_id", channelID, "error", err)
		return err
	}
	cs.log.Info("Channel deleted", "channel_id", channelID)
	return nil
}
