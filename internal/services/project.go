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

type ProjectService interface {
	ListProjects(ctx context.Context, ownerID uuid.UUID) ([]*repos.ProjectSummary, error)
	GetProject(ctx context.Context, projectID, ownerID uuid.UUID) (*repos.ProjectSummary, error)
	ProjectExists(ctx context.Context, projectID, ownerID uuid.UUID) (bool, error)
	CreateProject(ctx context.Context, ownerID uuid.UUID, name, topic string) (*repos.ProjectSummary, error)
	UpdateProject(ctx context.Context, projectID, ownerID uuid.UUID, name, topic string) (*repos.ProjectSummary, error)
	// DeleteProject soft-deletes the project and its scripts and detaches its videos.
	// It reports false when the project is missing or not owned.
	DeleteProject(ctx context.Context, projectID, ownerID uuid.UUID) (bool, error)
}

type projectService struct {
	db          *gorm.DB
	log         *logger.Logger
	projectRepo repos.ProjectRepo
	videoRepo   repos.VideoRepo
	scriptRepo  repos.ScriptRepo
}

func NewProjectService(
	db *gorm.DB,
	baseLog *logger.Logger,
	projectRepo repos.ProjectRepo,
	videoRepo repos.VideoRepo,
	scriptRepo repos.ScriptRepo,
) ProjectService {
	serviceLog := baseLog.With("service", "ProjectService")
	return &projectService{
		db:          db,
		log:         serviceLog,
		projectRepo: projectRepo,
		videoRepo:   videoRepo,
		scriptRepo:  scriptRepo,
	}
}

func (ps *projectService) ListProjects(ctx context.Context, ownerID uuid.UUID) ([]*repos.ProjectSummary, error) {
	if err := requireActor(ownerID); err != nil {
		return nil, err
	}
	rows, err := ps.projectRepo.ListSummariesByOwner(dbctx.New(ctx), ownerID)
	if err != nil {
		ps.log.Error("ListProjects failed", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return rows, nil
}

func (ps *projectService) GetProject(ctx context.Context, projectID, ownerID uuid.UUID) (*repos.ProjectSummary, error) {
	if err := requireActor(ownerID); err != nil {
		return nil, err
	}
	sum, err := ps.projectRepo.GetSummary(dbctx.New(ctx), projectID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}
	if sum == nil {
		return nil, apperrors.ErrNotFound
	}
	return sum, nil
}

func (ps *projectService) ProjectExists(ctx context.Context, projectID, ownerID uuid.UUID) (bool, error) {
	if ownerID == uuid.Nil || projectID == uuid.Nil {
		return false, nil
	}
	ok, err := ps.projectRepo.ExistsOwned(dbctx.New(ctx), projectID, ownerID)
	if err != nil {
		return false, fmt.Errorf("check project: %w", err)
	}
	return ok, nil
}

func (ps *projectService) CreateProject(ctx context.Context, ownerID uuid.UUID, name, topic string) (*repos.ProjectSummary, error) {
	if err := requireActor(ownerID); err != nil {
		return nil, err
	}
	in := projectInput{Name: strings.TrimSpace(name), Topic: strings.TrimSpace(topic)}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	p := &domain.Project{OwnerID: ownerID, Name: in.Name, Topic: in.Topic}
	p.Stamp(ownerID)
	if _, err := ps.projectRepo.Create(dbctx.New(ctx), []*domain.Project{p}); err != nil {
		ps.log.Error("CreateProject failed", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("create project: %w", err)
	}
	ps.log.Info("Project created", "project_id", p.ID, "owner_id", ownerID)
	return &repos.ProjectSummary{Project: *p}, nil
}

func (ps *projectService) UpdateProject(ctx context.Context, projectID, ownerID uuid.UUID, name, topic string) (*repos.ProjectSummary, error) {
	if err := requireActor(ownerID); err != nil {
		return nil, err
	}
	in := projectInput{Name: strings.TrimSpace(name), Topic: strings.TrimSpace(topic)}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	dbc := dbctx.New(ctx)
	n, err := ps.projectRepo.UpdateOwned(dbc, projectID, ownerID, map[string]interface{}{
		"name":  in.Name,
		"topic": in.Topic,
	})
	if err != nil {
		ps.log.Error("UpdateProject failed", "project_id", projectID, "error", err)
		return nil, fmt.Errorf("update project: %w", err)
	}
	if n == 0 {
		return nil, apperrors.ErrNotFound
	}
	return ps.GetProject(ctx, projectID, ownerID)
}

func (ps *projectService) DeleteProject(ctx context.Context, projectID, ownerID uuid.UUID) (bool, error) {
	if err := requireActor(ownerID); err != nil {
		return false, err
	}
	deleted := false
	err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		// Ingest commits lock the same row, so no batch can attach videos
		// between the detach below and the soft delete.
		p, err := ps.projectRepo.LockOwned(dbc, projectID, ownerID)
		if err != nil {
			return fmt.Errorf("lock project: %w", err)
		}
		if p == nil {
			return nil
		}
		if _, err := ps.projectRepo.SoftDeleteOwned(dbc, projectID, ownerID); err != nil {
			return fmt.Errorf("delete project: %w", err)
		}
		detached, err := ps.videoRepo.DetachFromProject(dbc, projectID, ownerID)
		if err != nil {
			return fmt.Errorf("detach videos: %w", err)
		}
		scripts, err := ps.scriptRepo.SoftDeleteByProject(dbc, projectID, ownerID)
		if err != nil {
			return fmt.Errorf("delete scripts: %w", err)
		}
		ps.log.Info("Project deleted",
			"project_id", projectID,
			"videos_detached", detached,
			"scripts_deleted", scripts,
		)
		deleted = true
		return nil
	})
	if err != nil {
		ps.log.Error("DeleteProject failed", "project_id", projectID, "error", err)
		return false, err
	}
	return deleted, nil
}
