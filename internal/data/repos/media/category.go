package media

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/videoscripter-backend/internal/data/repos/scope"
	"github.com/yungbote/videoscripter-backend/internal/domain"
	"github.com/yungbote/videoscripter-backend/internal/pkg/dbctx"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
)

type CategoryRepo interface {
	Create(dbc dbctx.Context, categories []*domain.Category) ([]*domain.Category, error)
	GetByID(dbc dbctx.Context, categoryID uuid.UUID) (*domain.Category, error)
	List(dbc dbctx.Context) ([]*domain.Category, error)
	AddChannel(dbc dbctx.Context, categoryID, channelID, actor uuid.UUID) error
	RemoveChannel(dbc dbctx.Context, categoryID, channelID, actor uuid.UUID) (int64, error)
	ListByChannel(dbc dbctx.Context, channelID uuid.UUID) ([]*domain.Category, error)
	ListChannelIDs(dbc dbctx.Context, categoryID uuid.UUID) ([]uuid.UUID, error)
	SoftDeleteLinksByChannel(dbc dbctx.Context, channelID, actor uuid.UUID) (int64, error)
}

type categoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCategoryRepo(db *gorm.DB, baseLog *logger.Logger) CategoryRepo {
	repoLog := baseLog.With("repo", "CategoryRepo")
	return &categoryRepo{db: db, log: repoLog}
}

func (r *categoryRepo) Create(dbc dbctx.Context, categories []*domain.Category) ([]*domain.Category, error) {
	if len(categories) == 0 {
		return []*domain.Category{}, nil
	}
	if err := dbc.Conn(r.db).Create(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepo) GetByID(dbc dbctx.Context, categoryID uuid.UUID) (*domain.Category, error) {
	var c domain.Category
	err := dbc.Conn(r.db).Where("id = ?", categoryID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) List(dbc dbctx.Context) ([]*domain.Category, error) {
	var results []*domain.Category
	if err := dbc.Conn(r.db).Order("name ASC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// AddChannel is idempotent: an existing live membership is left untouched.
func (r *categoryRepo) AddChannel(dbc dbctx.Context, categoryID, channelID, actor uuid.UUID) error {
	link := &domain.ChannelCategory{ChannelID: channelID, CategoryID: categoryID}
	link.Stamp(actor)
	return dbc.Conn(r.db).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "channel_id"}, {Name: "category_id"}},
			TargetWhere: clause.Where{Exprs: []clause.Expression{
				clause.Expr{SQL: "deleted_at IS NULL"},
			}},
			DoNothing: true,
		}).
		Create(link).Error
}

func (r *categoryRepo) RemoveChannel(dbc dbctx.Context, categoryID, channelID, actor uuid.UUID) (int64, error) {
	return scope.SoftDelete(dbc.Conn(r.db), &domain.ChannelCategory{}, actor,
		"category_id = ? AND channel_id = ?", categoryID, channelID)
}

func (r *categoryRepo) ListByChannel(dbc dbctx.Context, channelID uuid.UUID) ([]*domain.Category, error) {
	var results []*domain.Category
	if err := dbc.Conn(r.db).
		Joins("JOIN channel_category ON channel_category.category_id = category.id AND "+scope.Active("channel_category")).
		Where("channel_category.channel_id = ?", channelID).
		Order("category.name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *categoryRepo) ListChannelIDs(dbc dbctx.Context, categoryID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := dbc.Conn(r.db).
		Model(&domain.ChannelCategory{}).
		Where("category_id = ?", categoryID).
		Pluck("channel_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *categoryRepo) SoftDeleteLinksByChannel(dbc dbctx.Context, channelID, actor uuid.UUID) (int64, error) {
	return scope.SoftDelete(dbc.Conn(r.db), &domain.ChannelCategory{}, actor, "channel_id = ?", channelID)
}
