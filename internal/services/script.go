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

type ScriptService interface {
	ListScripts(ctx context.Context, projectID, ownerID uuid.UUID) ([]*domain.Script, error)
	CreateScript(ctx context.Context, projectID, ownerID uuid.UUID, title, content string) (*domain.Script, error)
	// UpdateScript replaces title and content and bumps the version.
	UpdateScript(ctx context.Context, scriptID, ownerID uuid.UUID, title, content string) (*domain.Script, error)
	DeleteScript(ctx context.Context, scriptID, ownerID uuid.UUID) (bool, error)
}

type scriptService struct {
	db          *gorm.DB
	log         *logger.Logger
	projectRepo repos.ProjectRepo
	scriptRepo  repos.ScriptRepo
}

func NewScriptService(db *gorm.DB, baseLog *logger.Logger, projectRepo repos.ProjectRepo, scriptRepo repos.ScriptRepo) ScriptService {
	serviceLog := baseLog.With("service", "ScriptService")
	return &scriptService{db: db, log: serviceLog, projectRepo: projectRepo, scriptRepo: scriptRepo}
}

func (ss *scriptService) ListScripts(ctx context.Context, projectID, ownerID uuid.UUID) ([]*domain.Script, error) {
	if err := requireActor(ownerID); err != nil {
		return nil, err
	}
	dbc := dbctx.New(ctx)
	ok, err := ss.projectRepo.ExistsOwned(dbc, projectID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("check project: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return ss.scriptRepo.ListByProject(dbc, projectID)
}

func (ss *scriptService) CreateScript(ctx context.Context, projectID, ownerID uuid.UUID, title, content string) (*domain.Script, error) {
	if err := requireActor(ownerID); err != nil {
		return nil, err
	}
	in := scriptInput{Title: strings.TrimSpace(title), Content: content}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	var s *domain.Script
	err := ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		ok, err := ss.projectRepo.ExistsOwned(dbc, projectID, ownerID)
		if err != nil {
			return fmt.Errorf("check project: %w", err)
		}
		if !ok {
			return apperrors.ErrNotFound
		}
		s = &domain.Script{ProjectID: projectID, Title: in.Title, Content: in.Content, Version: 1}
		s.Stamp(ownerID)
		if _, err := ss.scriptRepo.Create(dbc, []*domain.Script{s}); err != nil {
			return fmt.Errorf("create script: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (ss *scriptService) UpdateScript(ctx context.Context, scriptID, ownerID uuid.UUID, title, content string) (*domain.Script, error) {
	if err := requireActor(ownerID); err != nil {
		return nil, err
	}
	in := scriptInput{Title: strings.TrimSpace(title), Content: content}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	dbc := dbctx.New(ctx)
	current, err := ss.scriptRepo.GetOwned(dbc, scriptID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}
	if current == nil {
		return nil, apperrors.ErrNotFound
	}
	n, err := ss.scriptRepo.UpdateContent(dbc, scriptID, current.Version, ownerID, in.Title, in.Content)
	if err != nil {
		ss.log.Error("UpdateScript failed", "script_id", scriptID, "error", err)
		return nil, fmt.Errorf("update script: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: script changed since version %d", apperrors.ErrConflict, current.Version)
	}
	updated, err := ss.scriptRepo.GetOwned(dbc, scriptID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("reload script: %w", err)
	}
	if updated == nil {
		return nil, apperrors.ErrNotFound
	}
	return updated, nil
}

func (ss *scriptService) DeleteScript(ctx context.Context, scriptID, ownerID uuid.UUID) (bool, error) {
	if err := requireActor(ownerID); err != nil {
		return false, err
	}
	dbc := dbctx.New(ctx)
	s, err := ss.scriptRepo.GetOwned(dbc, scriptID, ownerID)
	if err != nil {
		return false, fmt.Errorf("load script: %w", err)
	}
	if s == nil {
		return false, nil
	}
	n, err := ss.scriptRepo.SoftDeleteByIDs(dbc, []uuid.UUID{scriptID}, ownerID)
	if err != nil {
		return false, fmt.Errorf("delete script: %w", err)
	}
	return n > 0, nil
}
