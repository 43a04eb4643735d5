package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/videoscripter-backend/internal/catalog"
	"github.com/yungbote/videoscripter-backend/internal/data/repos"
	"github.com/yungbote/videoscripter-backend/internal/pkg/dbctx"
	apperrors "github.com/yungbote/videoscripter-backend/internal/pkg/errors"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
)

type SearchResult struct {
	catalog.VideoMeta
	InProject bool
}

type CatalogSearchService interface {
	// Search queries the catalog. With a projectID, results already in that project
	// are flagged InProject.
	Search(ctx context.Context, ownerID uuid.UUID, query string, maxResults int, projectID *uuid.UUID) ([]SearchResult, error)
}

type catalogSearchService struct {
	log         *logger.Logger
	catalog     catalog.Client
	projectRepo repos.ProjectRepo
	videoRepo   repos.VideoRepo
	defaultMax  int
}

func NewCatalogSearchService(
	baseLog *logger.Logger,
	client catalog.Client,
	projectRepo repos.ProjectRepo,
	videoRepo repos.VideoRepo,
	defaultMax int,
) CatalogSearchService {
	serviceLog := baseLog.With("service", "CatalogSearchService")
	if defaultMax <= 0 {
		defaultMax = 25
	}
	return &catalogSearchService{
		log:         serviceLog,
		catalog:     client,
		projectRepo: projectRepo,
		videoRepo:   videoRepo,
		defaultMax:  defaultMax,
	}
}

func (ss *catalogSearchService) Search(ctx context.Context, ownerID uuid.UUID, query string, maxResults int, projectID *uuid.UUID) ([]SearchResult, error) {
	if err := requireActor(ownerID); err != nil {
		return nil, err
	}
	in := searchInput{Query: strings.TrimSpace(query), MaxResults: maxResults}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if in.MaxResults == 0 {
		in.MaxResults = ss.defaultMax
	}

	dbc := dbctx.New(ctx)
	if projectID != nil {
		ok, err := ss.projectRepo.ExistsOwned(dbc, *projectID, ownerID)
		if err != nil {
			return nil, fmt.Errorf("check project: %w", err)
		}
		if !ok {
			return nil, apperrors.ErrNotFound
		}
	}

	metas, err := ss.catalog.Search(ctx, in.Query, in.MaxResults)
	if err != nil {
		ss.log.Error("Catalog search failed", "query", in.Query, "error", err)
		return nil, fmt.Errorf("catalog search: %w", err)
	}

	inProject := map[string]bool{}
	if projectID != nil && len(metas) > 0 {
		ids := make([]string, 0, len(metas))
		for _, m := range metas {
			ids = append(ids, m.ExternalID)
		}
		inProject, err = ss.videoRepo.ExternalIDsInProject(dbc, *projectID, ids)
		if err != nil {
			return nil, fmt.Errorf("mark project videos: %w", err)
		}
	}

	out := make([]SearchResult, 0, len(metas))
	for _, m := range metas {
		out = append(out, SearchResult{VideoMeta: m, InProject: inProject[m.ExternalID]})
	}
	return out, nil
}
