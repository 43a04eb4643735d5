package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/videoscripter-backend/internal/domain"
)

func SeedProject(tb testing.TB, ctx context.Context, tx *gorm.DB, ownerID uuid.UUID, name string) *domain.Project {
	tb.Helper()
	p := &domain.Project{OwnerID: ownerID, Name: name, Topic: "topic"}
	p.Stamp(ownerID)
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed project: %v", err)
	}
	return p
}

func SeedChannel(tb testing.TB, ctx context.Context, tx *gorm.DB, externalID string) *domain.Channel {
	tb.Helper()
	ch := &domain.Channel{
		ExternalID:  externalID,
		Title:       "channel " + externalID,
		PublishedAt: time.Now().UTC(),
	}
	ch.Stamp(uuid.Nil)
	if err := tx.WithContext(ctx).Create(ch).Error; err != nil {
		tb.Fatalf("seed channel: %v", err)
	}
	return ch
}

// SeedVideo inserts a video created by creatorID. A nil projectID seeds an unattached video.
func SeedVideo(tb testing.TB, ctx context.Context, tx *gorm.DB, creatorID uuid.UUID, projectID *uuid.UUID, channelID uuid.UUID, externalID string) *domain.Video {
	tb.Helper()
	v := &domain.Video{
		ProjectID:   projectID,
		ExternalID:  externalID,
		ChannelID:   channelID,
		Title:       "video " + externalID,
		PublishedAt: time.Now().UTC(),
	}
	v.Stamp(creatorID)
	if err := tx.WithContext(ctx).Create(v).Error; err != nil {
		tb.Fatalf("seed video: %v", err)
	}
	return v
}

func SeedScript(tb testing.TB, ctx context.Context, tx *gorm.DB, ownerID, projectID uuid.UUID, title string) *domain.Script {
	tb.Helper()
	s := &domain.Script{ProjectID: projectID, Title: title, Content: "draft", Version: 1}
	s.Stamp(ownerID)
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed script: %v", err)
	}
	return s
}

func SeedTopic(tb testing.TB, ctx context.Context, tx *gorm.DB, creatorID, videoID uuid.UUID, offsetMS int64) *domain.TranscriptTopic {
	tb.Helper()
	t := &domain.TranscriptTopic{VideoID: videoID, StartOffsetMS: offsetMS, Content: "content", Summary: "summary"}
	t.Stamp(creatorID)
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed topic: %v", err)
	}
	return t
}

func SeedCategory(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *domain.Category {
	tb.Helper()
	c := &domain.Category{Name: name}
	c.Stamp(uuid.Nil)
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed category: %v", err)
	}
	return c
}

// CountRows counts rows of model including soft-deleted ones.
func CountRows(tb testing.TB, tx *gorm.DB, model interface{}, query interface{}, args ...interface{}) int64 {
	tb.Helper()
	var n int64
	q := tx.Unscoped().Model(model)
	if query != nil {
		q = q.Where(query, args...)
	}
	if err := q.Count(&n).Error; err != nil {
		tb.Fatalf("count rows: %v", err)
	}
	return n
}

func PtrUUID(v uuid.UUID) *uuid.UUID { return &v }
