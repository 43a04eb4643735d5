package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/videoscripter-backend/internal/catalog"
	"github.com/yungbote/videoscripter-backend/internal/data/db"
	"github.com/yungbote/videoscripter-backend/internal/data/repos"
	"github.com/yungbote/videoscripter-backend/internal/domain"
	"github.com/yungbote/videoscripter-backend/internal/observability"
	"github.com/yungbote/videoscripter-backend/internal/pkg/dbctx"
	apperrors "github.com/yungbote/videoscripter-backend/internal/pkg/errors"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
)

const DefaultIngestConcurrency = 4

type SkipReason string

const (
	SkipInvalidID           SkipReason = "invalid_id"
	SkipDuplicateInProject  SkipReason = "duplicate_in_project"
	SkipUnresolvable        SkipReason = "unresolvable"
	SkipChannelUnresolvable SkipReason = "channel_unresolvable"
)

type SkippedVideo struct {
	ExternalID string     `json:"videoId"`
	Reason     SkipReason `json:"reason"`
}

type IngestRequest struct {
	ProjectID        uuid.UUID
	OwnerID          uuid.UUID
	ExternalVideoIDs []string
}

// IngestResult summarises one batch. Success=false means nothing was persisted;
// Success=true with VideoCount=0 means every id was skipped.
type IngestResult struct {
	Success    bool           `json:"success"`
	Message    string         `json:"message"`
	VideoCount int            `json:"videoCount"`
	Skipped    []SkippedVideo `json:"skipped,omitempty"`
}

type IngestionService interface {
	Ingest(ctx context.Context, req IngestRequest) (*IngestResult, error)
}

type IngestionConfig struct {
	// Concurrency bounds the number of catalog lookups in flight per batch.
	Concurrency int
}

type ingestionService struct {
	db          *gorm.DB
	log         *logger.Logger
	catalog     catalog.Client
	projectRepo repos.ProjectRepo
	videoRepo   repos.VideoRepo
	channelRepo repos.ChannelRepo
	metrics     *observability.Metrics
	concurrency int
}

func NewIngestionService(
	db *gorm.DB,
	baseLog *logger.Logger,
	client catalog.Client,
	projectRepo repos.ProjectRepo,
	videoRepo repos.VideoRepo,
	channelRepo repos.ChannelRepo,
	metrics *observability.Metrics,
	cfg IngestionConfig,
) IngestionService {
	serviceLog := baseLog.With("service", "IngestionService")
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultIngestConcurrency
	}
	return &ingestionService{
		db:          db,
		log:         serviceLog,
		catalog:     client,
		projectRepo: projectRepo,
		videoRepo:   videoRepo,
		channelRepo: channelRepo,
		metrics:     metrics,
		concurrency: concurrency,
	}
}

func (s *ingestionService) Ingest(ctx context.Context, req IngestRequest) (*IngestResult, error) {
	if err := requireActor(req.OwnerID); err != nil {
		return nil, err
	}
	if !hasNonBlank(req.ExternalVideoIDs) {
		return nil, fmt.Errorf("%w: no video ids", apperrors.ErrInvalidArgument)
	}

	// A started batch runs to completion even if the caller goes away.
	ctx = context.WithoutCancel(ctx)
	ctx, span := observability.Tracer().Start(ctx, "ingestion.Ingest", trace.WithAttributes(
		attribute.String("project_id", req.ProjectID.String()),
		attribute.Int("input_count", len(req.ExternalVideoIDs)),
	))
	defer span.End()

	start := time.Now()
	log := s.log.With("project_id", req.ProjectID, "owner_id", req.OwnerID)
	dbc := dbctx.New(ctx)

	result := &IngestResult{}
	fail := func(stage string, err error) *IngestResult {
		span.RecordError(err)
		span.SetStatus(codes.Error, stage)
		log.Error("Ingest failed", "stage", stage, "error", err)
		s.metrics.ObserveIngest("error", 0, 0, time.Since(start))
		result.Success = false
		result.VideoCount = 0
		result.Message = fmt.Sprintf("Failed to add videos: %v", err)
		return result
	}

	owned, err := s.projectRepo.ExistsOwned(dbc, req.ProjectID, req.OwnerID)
	if err != nil {
		return fail("check project", fmt.Errorf("check project: %w", err)), nil
	}
	if !owned {
		return nil, apperrors.ErrNotFound
	}

	skip := func(id string, reason SkipReason) {
		result.Skipped = append(result.Skipped, SkippedVideo{ExternalID: id, Reason: reason})
		s.metrics.IncIngestSkipped(string(reason))
		log.Debug("Video skipped", "external_id", id, "reason", reason)
	}

	candidates, err := s.filter(dbc, req, skip)
	if err != nil {
		return fail("filter", err), nil
	}

	metas, lookupErrs := s.lookupVideos(ctx, candidates)

	resolver := newChannelResolver(s.channelRepo, s.catalog, req.OwnerID, log)
	videos := make([]*domain.Video, 0, len(candidates))
	for i, id := range candidates {
		meta := metas[i]
		if lookupErrs[i] != nil || meta == nil {
			log.Warn("Video unresolvable", "external_id", id, "error", lookupErrs[i])
			skip(id, SkipUnresolvable)
			continue
		}
		channelID, err := resolver.Resolve(dbc, meta.ChannelExternalID)
		if err != nil {
			if !errors.Is(err, ErrChannelUnresolvable) {
				return fail("resolve channel", err), nil
			}
			log.Warn("Channel unresolvable", "external_id", id, "channel_external_id", meta.ChannelExternalID, "error", err)
			skip(id, SkipChannelUnresolvable)
			continue
		}
		videos = append(videos, buildVideo(id, meta, req.ProjectID, channelID, req.OwnerID))
	}

	if len(videos) == 0 {
		result.Success = true
		result.Message = withSkipped("No new videos to add", len(result.Skipped))
		s.metrics.ObserveIngest("ok", 0, 0, time.Since(start))
		log.Info("Ingest finished", "committed", 0, "skipped", len(result.Skipped))
		return result, nil
	}

	channelsCreated := 0
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txc := dbc.WithTx(tx)
		// The project may have been deleted while the catalog was consulted.
		// Holding its row lock keeps DeleteProject out until the videos land.
		p, err := s.projectRepo.LockOwned(txc, req.ProjectID, req.OwnerID)
		if err != nil {
			return fmt.Errorf("lock project: %w", err)
		}
		if p == nil {
			return apperrors.ErrNotFound
		}
		remap, created, err := resolver.Commit(txc)
		if err != nil {
			return err
		}
		for _, v := range videos {
			if winner, ok := remap[v.ChannelID]; ok {
				v.ChannelID = winner
			}
		}
		if _, err := s.videoRepo.Create(txc, videos); err != nil {
			if db.IsUniqueViolation(err) {
				return fmt.Errorf("videos added concurrently to this project: %w", err)
			}
			return fmt.Errorf("create videos: %w", err)
		}
		channelsCreated = created
		return nil
	})
	if errors.Is(err, apperrors.ErrNotFound) {
		log.Warn("Project deleted during ingest", "videos", len(videos))
		s.metrics.ObserveIngest("error", 0, 0, time.Since(start))
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return fail("commit", err), nil
	}

	result.Success = true
	result.VideoCount = len(videos)
	result.Message = withSkipped(fmt.Sprintf("Added %d videos to project", len(videos)), len(result.Skipped))
	span.SetAttributes(
		attribute.Int("committed", result.VideoCount),
		attribute.Int("skipped", len(result.Skipped)),
		attribute.Int("channels_created", channelsCreated),
	)
	s.metrics.ObserveIngest("ok", result.VideoCount, channelsCreated, time.Since(start))
	log.Info("Ingest finished",
		"committed", result.VideoCount,
		"skipped", len(result.Skipped),
		"channels_created", channelsCreated,
		"duration", time.Since(start),
	)
	return result, nil
}

// filter drops blank ids, repeats within the batch and ids already live in the
// project, preserving input order for the rest.
func (s *ingestionService) filter(dbc dbctx.Context, req IngestRequest, skip func(string, SkipReason)) ([]string, error) {
	trimmed := make([]string, 0, len(req.ExternalVideoIDs))
	for _, raw := range req.ExternalVideoIDs {
		if id := strings.TrimSpace(raw); id != "" {
			trimmed = append(trimmed, id)
		}
	}
	existing, err := s.videoRepo.ExternalIDsInProject(dbc, req.ProjectID, trimmed)
	if err != nil {
		return nil, fmt.Errorf("load project videos: %w", err)
	}

	seen := make(map[string]bool, len(trimmed))
	candidates := make([]string, 0, len(trimmed))
	for _, raw := range req.ExternalVideoIDs {
		id := strings.TrimSpace(raw)
		switch {
		case id == "":
			skip(raw, SkipInvalidID)
		case seen[id] || existing[id]:
			skip(id, SkipDuplicateInProject)
		default:
			seen[id] = true
			candidates = append(candidates, id)
		}
	}
	return candidates, nil
}

// lookupVideos resolves ids against the catalog with at most s.concurrency calls
// in flight. Results are indexed like ids.
func (s *ingestionService) lookupVideos(ctx context.Context, ids []string) ([]*catalog.VideoMeta, []error) {
	metas := make([]*catalog.VideoMeta, len(ids))
	errs := make([]error, len(ids))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, id := range ids {
		g.Go(func() error {
			metas[i], errs[i] = s.catalog.GetVideo(ctx, id)
			return nil
		})
	}
	_ = g.Wait()
	return metas, errs
}

func buildVideo(externalID string, meta *catalog.VideoMeta, projectID, channelID, actor uuid.UUID) *domain.Video {
	v := &domain.Video{
		ProjectID:       &projectID,
		ExternalID:      externalID,
		ChannelID:       channelID,
		Title:           meta.Title,
		Description:     meta.Description,
		ThumbnailURL:    meta.ThumbnailURL,
		ViewCount:       meta.ViewCount,
		LikeCount:       meta.LikeCount,
		CommentCount:    meta.CommentCount,
		DurationSeconds: meta.DurationSeconds,
		PublishedAt:     meta.PublishedAt,
	}
	if len(meta.Tags) > 0 {
		if raw, err := json.Marshal(meta.Tags); err == nil {
			v.Tags = datatypes.JSON(raw)
		}
	}
	v.Stamp(actor)
	return v
}

func hasNonBlank(ids []string) bool {
	for _, id := range ids {
		if strings.TrimSpace(id) != "" {
			return true
		}
	}
	return false
}

func withSkipped(msg string, skipped int) string {
	if skipped == 0 {
		return msg
	}
	return fmt.Sprintf("%s (%d skipped)", msg, skipped)
}
