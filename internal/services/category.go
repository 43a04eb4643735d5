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

type CategoryService interface {
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	CreateCategory(ctx context.Context, actor uuid.UUID, name, description string) (*domain.Category, error)
	AddChannel(ctx context.Context, categoryID, channelID, actor uuid.UUID) error
	RemoveChannel(ctx context.Context, categoryID, channelID, actor uuid.UUID) (bool, error)
}

type categoryService struct {
	db           *gorm.DB
	log          *logger.Logger
	categoryRepo repos.CategoryRepo
	channelRepo  repos.ChannelRepo
}

func NewCategoryService(db *gorm.DB, baseLog *logger.Logger, categoryRepo repos.CategoryRepo, channelRepo repos.ChannelRepo) CategoryService {
	serviceLog := baseLog.With("service", "CategoryService")
	return &categoryService{db: db, log: serviceLog, categoryRepo: categoryRepo, channelRepo: channelRepo}
}

func (cs *categoryService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return cs.categoryRepo.List(dbctx.New(ctx))
}

func (cs *categoryService) CreateCategory(ctx context.Context, actor uuid.UUID, name, description string) (*domain.Category, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	in := categoryInput{Name: strings.TrimSpace(name), Description: strings.TrimSpace(description)}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	c := &domain.Category{Name: in.Name, Description: in.Description}
	c.Stamp(actor)
	if _, err := cs.categoryRepo.Create(dbctx.New(ctx), []*domain.Category{c}); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

func (cs *categoryService) AddChannel(ctx context.Context, categoryID, channelID, actor uuid.UUID) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	return cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		cat, err := cs.categoryRepo.GetByID(dbc, categoryID)
		if err != nil {
			return fmt.Errorf("load category: %w", err)
		}
		ch, err := cs.channelRepo.GetByID(dbc, channelID)
		if err != nil {
			return fmt.Errorf("load channel: %w", err)
		}
		if cat == nil || ch == nil {
			return apperrors.ErrNotFound
		}
		if err := cs.categoryRepo.AddChannel(dbc, categoryID, channelID, actor); err != nil {
			return fmt.Errorf("add channel to category: %w", err)
		}
		return nil
	})
}

func (cs *categoryService) RemoveChannel(ctx context.Context, categoryID, channelID, actor uuid.UUID) (bool, error) {
	if err := requireActor(actor); err != nil {
		return false, err
	}
	n, err := cs.categoryRepo.RemoveChannel(dbctx.New(ctx), categoryID, channelID, actor)
	if err != nil {
		return false, fmt.Errorf("remove channel from category: %w", err)
	}
	return n > 0, nil
}
