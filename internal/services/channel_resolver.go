package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/videoscripter-backend/internal/catalog"
	"github.com/yungbote/videoscripter-backend/internal/data/repos"
	"github.com/yungbote/videoscripter-backend/internal/domain"
	"github.com/yungbote/videoscripter-backend/internal/pkg/dbctx"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
)

// ErrChannelUnresolvable means a video's channel is neither stored nor known to the catalog.
var ErrChannelUnresolvable = errors.New("channel unresolvable")

// channelResolver maps catalog channel ids to channel row ids for one ingestion run.
// Channels that must be created are held in pending until commit, so a batch
// creates at most one row per catalog id. Stored channels it hands out are kept
// in reused and re-checked at commit.
type channelResolver struct {
	channels repos.ChannelRepo
	catalog  catalog.Client
	actor    uuid.UUID
	log      *logger.Logger

	byExternalID map[string]uuid.UUID
	pending      []*domain.Channel
	reused       []*domain.Channel
}

func newChannelResolver(channels repos.ChannelRepo, client catalog.Client, actor uuid.UUID, log *logger.Logger) *channelResolver {
	return &channelResolver{
		channels:     channels,
		catalog:      client,
		actor:        actor,
		log:          log,
		byExternalID: map[string]uuid.UUID{},
	}
}

// Resolve returns the id the batch should use for externalChannelID: a cached id,
// an existing live row, or the id of a new pending channel built from the catalog.
// Only catalog misses and catalog failures wrap ErrChannelUnresolvable; store
// errors are returned as they are.
func (r *channelResolver) Resolve(dbc dbctx.Context, externalChannelID string) (uuid.UUID, error) {
	externalChannelID = strings.TrimSpace(externalChannelID)
	if externalChannelID == "" {
		return uuid.Nil, ErrChannelUnresolvable
	}
	if id, ok := r.byExternalID[externalChannelID]; ok {
		return id, nil
	}

	existing, err := r.channels.GetByExternalID(dbc, externalChannelID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("lookup channel %s: %w", externalChannelID, err)
	}
	if existing != nil {
		r.byExternalID[externalChannelID] = existing.ID
		r.reused = append(r.reused, existing)
		return existing.ID, nil
	}

	meta, err := r.catalog.GetChannel(dbc.Ctx, externalChannelID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return uuid.Nil, ErrChannelUnresolvable
		}
		return uuid.Nil, fmt.Errorf("%w: %v", ErrChannelUnresolvable, err)
	}
	ch := &domain.Channel{
		ExternalID:      externalChannelID,
		Title:           meta.Title,
		Description:     meta.Description,
		ThumbnailURL:    meta.ThumbnailURL,
		SubscriberCount: meta.SubscriberCount,
		VideoCount:      meta.VideoCount,
		PublishedAt:     meta.PublishedAt,
	}
	ch.Stamp(r.actor)
	r.pending = append(r.pending, ch)
	r.byExternalID[externalChannelID] = ch.ID
	return ch.ID, nil
}

// Pending reports how many channels Commit would try to insert.
func (r *channelResolver) Pending() int { return len(r.pending) }

// Commit runs inside the batch transaction. Reused channels are share-locked until
// the videos land; any deleted since Resolve are inserted again with the pending
// ones. The returned map sends a
// batch channel id to the row the videos must use instead; created counts the rows
// this call inserted.
func (r *channelResolver) Commit(dbc dbctx.Context) (remap map[uuid.UUID]uuid.UUID, created int, err error) {
	remap = map[uuid.UUID]uuid.UUID{}
	inserts := append([]*domain.Channel(nil), r.pending...)

	if len(r.reused) > 0 {
		ids := make([]uuid.UUID, 0, len(r.reused))
		for _, ch := range r.reused {
			ids = append(ids, ch.ID)
		}
		live, err := r.channels.LockLive(dbc, ids)
		if err != nil {
			return nil, 0, fmt.Errorf("lock channels: %w", err)
		}
		for _, ch := range r.reused {
			if live[ch.ID] {
				continue
			}
			fresh := copyChannel(ch, r.actor)
			r.log.Info("Channel deleted during ingest, recreating", "external_id", ch.ExternalID, "old_channel_id", ch.ID, "channel_id", fresh.ID)
			remap[ch.ID] = fresh.ID
			inserts = append(inserts, fresh)
		}
	}

	for _, ch := range inserts {
		inserted, err := r.channels.CreateIfAbsent(dbc, ch)
		if err != nil {
			return nil, 0, fmt.Errorf("create channel %s: %w", ch.ExternalID, err)
		}
		if inserted {
			created++
			r.byExternalID[ch.ExternalID] = ch.ID
			continue
		}
		winner, err := r.channels.GetByExternalID(dbc, ch.ExternalID)
		if err != nil {
			return nil, 0, fmt.Errorf("reload channel %s: %w", ch.ExternalID, err)
		}
		if winner == nil {
			return nil, 0, fmt.Errorf("channel %s missing after insert conflict", ch.ExternalID)
		}
		if _, err := r.channels.LockLive(dbc, []uuid.UUID{winner.ID}); err != nil {
			return nil, 0, fmt.Errorf("lock channel %s: %w", ch.ExternalID, err)
		}
		r.log.Debug("Channel created concurrently, reusing", "external_id", ch.ExternalID, "channel_id", winner.ID)
		remap[ch.ID] = winner.ID
		r.byExternalID[ch.ExternalID] = winner.ID
	}

	// A recreated channel may itself have lost its insert to a concurrent writer.
	for from, to := range remap {
		if winner, ok := remap[to]; ok {
			remap[from] = winner
		}
	}
	return remap, created, nil
}

// copyChannel builds a new row carrying ch's catalog fields.
func copyChannel(ch *domain.Channel, actor uuid.UUID) *domain.Channel {
	fresh := &domain.Channel{
		ExternalID:      ch.ExternalID,
		Title:           ch.Title,
		Description:     ch.Description,
		ThumbnailURL:    ch.ThumbnailURL,
		SubscriberCount: ch.SubscriberCount,
		VideoCount:      ch.VideoCount,
		PublishedAt:     ch.PublishedAt,
	}
	fresh.Stamp(actor)
	return fresh
}
