package projects

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

// ProjectSummary is a project row plus its live child counts.
type ProjectSummary struct {
	domain.Project
	VideoCount  int64 `gorm:"column:video_count"`
	ScriptCount int64 `gorm:"column:script_count"`
}

type ProjectRepo interface {
	Create(dbc dbctx.Context, projects []*domain.Project) ([]*domain.Project, error)
	GetOwned(dbc dbctx.Context, projectID, ownerID uuid.UUID) (*domain.Project, error)
	ExistsOwned(dbc dbctx.Context, projectID, ownerID uuid.UUID) (bool, error)
	// LockOwned reads a live project FOR UPDATE. It requires dbc.Tx and returns
	// nil when the project is missing or not owned by ownerID.
	LockOwned(dbc dbctx.Context, projectID, ownerID uuid.UUID) (*domain.Project, error)
	GetSummary(dbc dbctx.Context, projectID, ownerID uuid.UUID) (*ProjectSummary, error)
	ListSummariesByOwner(dbc dbctx.Context, ownerID uuid.UUID) ([]*ProjectSummary, error)
	UpdateOwned(dbc dbctx.Context, projectID, ownerID uuid.UUID, fields map[string]interface{}) (int64, error)
	SoftDeleteOwned(dbc dbctx.Context, projectID, ownerID uuid.UUID) (int64, error)
}

type projectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProjectRepo(db *gorm.DB, baseLog *logger.Logger) ProjectRepo {
	repoLog := baseLog.With("repo", "ProjectRepo")
	return &projectRepo{db: db, log: repoLog}
}

const summarySelect = `project.*,
	(SELECT COUNT(*) FROM video v WHERE v.project_id = project.id AND v.deleted_at IS NULL) AS video_count,
	(SELECT COUNT(*) FROM script s WHERE s.project_id = project.id AND s.deleted_at IS NULL) AS script_count`

func (r *projectRepo) Create(dbc dbctx.Context, projects []*domain.Project) ([]*domain.Project, error) {
	if len(projects) == 0 {
		return []*domain.Project{}, nil
	}
	if err := dbc.Conn(r.db).Create(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepo) GetOwned(dbc dbctx.Context, projectID, ownerID uuid.UUID) (*domain.Project, error) {
	var p domain.Project
	err := dbc.Conn(r.db).
		Where("id = ? AND owner_id = ?", projectID, ownerID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) ExistsOwned(dbc dbctx.Context, projectID, ownerID uuid.UUID) (bool, error) {
	var count int64
	if err := dbc.Conn(r.db).
		Model(&domain.Project{}).
		Where("id = ? AND owner_id = ?", projectID, ownerID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *projectRepo) LockOwned(dbc dbctx.Context, projectID, ownerID uuid.UUID) (*domain.Project, error) {
	if dbc.Tx == nil {
		return nil, fmt.Errorf("LockOwned requires dbc.Tx")
	}
	var rows []*domain.Project
	if err := dbc.Conn(r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND owner_id = ?", projectID, ownerID).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *projectRepo) GetSummary(dbc dbctx.Context, projectID, ownerID uuid.UUID) (*ProjectSummary, error) {
	var rows []*ProjectSummary
	if err := dbc.Conn(r.db).
		Model(&domain.Project{}).
		Select(summarySelect).
		Where("project.id = ? AND project.owner_id = ?", projectID, ownerID).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *projectRepo) ListSummariesByOwner(dbc dbctx.Context, ownerID uuid.UUID) ([]*ProjectSummary, error) {
	var rows []*ProjectSummary
	if err := dbc.Conn(r.db).
		Model(&domain.Project{}).
		Select(summarySelect).
		Where("project.owner_id = ?", ownerID).
		Order("project.updated_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *projectRepo) UpdateOwned(dbc dbctx.Context, projectID, ownerID uuid.UUID, fields map[string]interface{}) (int64, error) {
	return scope.Update(dbc.Conn(r.db), &domain.Project{}, ownerID, fields,
		"id = ? AND owner_id = ?", projectID, ownerID)
}

func (r *projectRepo) SoftDeleteOwned(dbc dbctx.Context, projectID, ownerID uuid.UUID) (int64, error) {
	return scope.SoftDelete(dbc.Conn(r.db), &domain.Project{}, ownerID,
		"id = ? AND owner_id = ?", projectID, ownerID)
}
