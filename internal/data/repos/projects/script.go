package projects

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/videoscripter-backend/internal/data/repos/scope"
	"github.com/yungbote/videoscripter-backend/internal/domain"
	"github.com/yungbote/videoscripter-backend/internal/pkg/dbctx"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
)

type ScriptRepo interface {
	Create(dbc dbctx.Context, scripts []*domain.Script) ([]*domain.Script, error)
	ListByProject(dbc dbctx.Context, projectID uuid.UUID) ([]*domain.Script, error)
	// GetOwned loads a script whose parent project is live and owned by ownerID.
	GetOwned(dbc dbctx.Context, scriptID, ownerID uuid.UUID) (*domain.Script, error)
	UpdateContent(dbc dbctx.Context, scriptID uuid.UUID, expectedVersion int, actor uuid.UUID, title, content string) (int64, error)
	SoftDeleteByIDs(dbc dbctx.Context, scriptIDs []uuid.UUID, actor uuid.UUID) (int64, error)
	SoftDeleteByProject(dbc dbctx.Context, projectID, actor uuid.UUID) (int64, error)
}

type scriptRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewScriptRepo(db *gorm.DB, baseLog *logger.Logger) ScriptRepo {
	repoLog := baseLog.With("repo", "ScriptRepo")
	return &scriptRepo{db: db, log: repoLog}
}

func (r *scriptRepo) Create(dbc dbctx.Context, scripts []*domain.Script) ([]*domain.Script, error) {
	if len(scripts) == 0 {
		return []*domain.Script{}, nil
	}
	if err := dbc.Conn(r.db).Create(&scripts).Error; err != nil {
		return nil, err
	}
	return scripts, nil
}

func (r *scriptRepo) ListByProject(dbc dbctx.Context, projectID uuid.UUID) ([]*domain.Script, error) {
	var results []*domain.Script
	if err := dbc.Conn(r.db).
		Where("project_id = ?", projectID).
		Order("updated_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *scriptRepo) GetOwned(dbc dbctx.Context, scriptID, ownerID uuid.UUID) (*domain.Script, error) {
	var s domain.Script
	err := dbc.Conn(r.db).
		Joins("JOIN project ON project.id = script.project_id AND "+scope.Active("project")).
		Where("script.id = ? AND project.owner_id = ?", scriptID, ownerID).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateContent bumps the version only when the stored version still equals
// expectedVersion, so two concurrent edits cannot both land on the same version.
func (r *scriptRepo) UpdateContent(dbc dbctx.Context, scriptID uuid.UUID, expectedVersion int, actor uuid.UUID, title, content string) (int64, error) {
	return scope.Update(dbc.Conn(r.db), &domain.Script{}, actor, map[string]interface{}{
		"title":   title,
		"content": content,
		"version": gorm.Expr("version + 1"),
	}, "id = ? AND version = ?", scriptID, expectedVersion)
}

func (r *scriptRepo) SoftDeleteByIDs(dbc dbctx.Context, scriptIDs []uuid.UUID, actor uuid.UUID) (int64, error) {
	if len(scriptIDs) == 0 {
		return 0, nil
	}
	return scope.SoftDelete(dbc.Conn(r.db), &domain.Script{}, actor, "id IN ?", scriptIDs)
}

func (r *scriptRepo) SoftDeleteByProject(dbc dbctx.Context, projectID, actor uuid.UUID) (int64, error) {
	return scope.SoftDelete(dbc.Conn(r.db), &domain.Script{}, actor, "project_id = ?", projectID)
}
