package media

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/videoscripter-backend/internal/data/repos/scope"
	"github.com/yungbote/videoscripter-backend/internal/domain"
	"github.com/yungbote/videoscripter-backend/internal/pkg/dbctx"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
)

type ChannelRepo interface {
	GetByID(dbc dbctx.Context, channelID uuid.UUID) (*domain.Channel, error)
	GetByExternalID(dbc dbctx.Context, externalID string) (*domain.Channel, error)
	// LockByID reads a live channel FOR UPDATE; nil when it is gone. Requires dbc.Tx.
	LockByID(dbc dbctx.Context, channelID uuid.UUID) (*domain.Channel, error)
	// LockLive takes a FOR SHARE lock on the live rows among channelIDs and
	// returns the ids it found. Requires dbc.Tx.
	LockLive(dbc dbctx.Context, channelIDs []uuid.UUID) (map[uuid.UUID]bool, error)
	// CreateIfAbsent inserts ch unless a live channel with the same external id
	// exists. It reports whether this call created the row.
	CreateIfAbsent(dbc dbctx.Context, ch *domain.Channel) (bool, error)
	SoftDelete(dbc dbctx.Context, channelID, actor uuid.UUID) (int64, error)
}

type channelRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChannelRepo(db *gorm.DB, baseLog *logger.Logger) ChannelRepo {
	repoLog := baseLog.With("repo", "ChannelRepo")
	return &channelRepo{db: db, log: repoLog}
}

func (r *channelRepo) GetByID(dbc dbctx.Context, channelID uuid.UUID) (*domain.Channel, error) {
	var ch domain.Channel
	err := dbc.Conn(r.db).Where("id = ?", channelID).First(&ch).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

func (r *channelRepo) GetByExternalID(dbc dbctx.Context, externalID string) (*domain.Channel, error) {
	var ch domain.Channel
	err := dbc.Conn(r.db).Where("external_id = ?", externalID).First(&ch).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

func (r *channelRepo) LockByID(dbc dbctx.Context, channelID uuid.UUID) (*domain.Channel, error) {
	if dbc.Tx == nil {
		return nil, fmt.Errorf("LockByID requires dbc.Tx")
	}
	var rows []*domain.Channel
	if err := dbc.Conn(r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", channelID).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *channelRepo) LockLive(dbc dbctx.Context, channelIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	live := make(map[uuid.UUID]bool, len(channelIDs))
	if len(channelIDs) == 0 {
		return live, nil
	}
	if dbc.Tx == nil {
		return nil, fmt.Errorf("LockLive requires dbc.Tx")
	}
	var rows []*domain.Channel
	if err := dbc.Conn(r.db).
		Clauses(clause.Locking{Strength: "SHARE"}).
		Select("id").
		Where("id IN ?", channelIDs).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, ch := range rows {
		live[ch.ID] = true
	}
	return live, nil
}

func (r *channelRepo) CreateIfAbsent(dbc dbctx.Context, ch *domain.Channel) (bool, error) {
	res := dbc.Conn(r.db).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "external_id"}},
			TargetWhere: clause.Where{Exprs: []clause.Expression{
				clause.Expr{SQL: "deleted_at IS NULL"},
			}},
			DoNothing: true,
		}).
		Create(ch)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *channelRepo) SoftDelete(dbc dbctx.Context, channelID, actor uuid.UUID) (int64, error) {
	return scope.SoftDelete(dbc.Conn(r.db), &domain.Channel{}, actor, "id = ?", channelID)
}
