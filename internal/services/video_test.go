package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/videoscripter-backend/internal/data/repos/testutil"
	"github.com/yungbote/videoscripter-backend/internal/domain"
	apperrors "github.com/yungbote/videoscripter-backend/internal/pkg/errors"
)

func TestRemoveVideoSoftDeletesTopics(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := uuid.New()
	p := testutil.SeedProject(t, ctx, f.db, owner, "p")
	ch := testutil.SeedChannel(t, ctx, f.db, "UC1")
	v := testutil.SeedVideo(t, ctx, f.db, owner, testutil.PtrUUID(p.ID), ch.ID, "v")
	testutil.SeedTopic(t, ctx, f.db, owner, v.ID, 0)
	testutil.SeedTopic(t, ctx, f.db, owner, v.ID, 5000)

	if ok, err := f.videos.RemoveVideo(ctx, p.ID, "v", uuid.New()); err != nil || ok {
		t.Fatalf("RemoveVideo foreign owner: ok=%v err=%v", ok, err)
	}
	if ok, err := f.videos.RemoveVideo(ctx, p.ID, "v", owner); err != nil || !ok {
		t.Fatalf("RemoveVideo: ok=%v err=%v", ok, err)
	}
	if ok, err := f.videos.RemoveVideo(ctx, p.ID, "v", owner); err != nil || ok {
		t.Fatalf("RemoveVideo twice: ok=%v err=%v", ok, err)
	}

	var live int64
	if err := f.db.Model(&domain.TranscriptTopic{}).Where("video_id = ?", v.ID).Count(&live).Error; err != nil {
		t.Fatalf("count topics: %v", err)
	}
	if live != 0 {
		t.Fatalf("live topics: got %d want 0", live)
	}
	if n := testutil.CountRows(t, f.db, &domain.TranscriptTopic{}, "video_id = ?", v.ID); n != 2 {
		t.Fatalf("topic rows kept: got %d want 2", n)
	}
}

func TestDeleteVideoOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := uuid.New()
	intruder := uuid.New()
	ch := testutil.SeedChannel(t, ctx, f.db, "UC1")
	p := testutil.SeedProject(t, ctx, f.db, owner, "p")
	attached := testutil.SeedVideo(t, ctx, f.db, owner, testutil.PtrUUID(p.ID), ch.ID, "a")
	loose := testutil.SeedVideo(t, ctx, f.db, owner, nil, ch.ID, "b")

	for _, id := range []uuid.UUID{attached.ID, loose.ID, uuid.New()} {
		if ok, err := f.videos.DeleteVideo(ctx, id, intruder); err != nil || ok {
			t.Fatalf("DeleteVideo by intruder %s: ok=%v err=%v", id, ok, err)
		}
	}
	for _, id := range []uuid.UUID{attached.ID, loose.ID} {
		if ok, err := f.videos.DeleteVideo(ctx, id, owner); err != nil || !ok {
			t.Fatalf("DeleteVideo %s: ok=%v err=%v", id, ok, err)
		}
	}
}

func TestListProjectVideosJoinsChannel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := uuid.New()
	p := testutil.SeedProject(t, ctx, f.db, owner, "p")
	ch := testutil.SeedChannel(t, ctx, f.db, "UC1")
	testutil.SeedVideo(t, ctx, f.db, owner, testutil.PtrUUID(p.ID), ch.ID, "v")

	rows, err := f.videos.ListProjectVideos(ctx, p.ID, owner)
	if err != nil || len(rows) != 1 {
		t.Fatalf("ListProjectVideos: err=%v len=%d", err, len(rows))
	}
	if rows[0].ChannelExternalID != "UC1" || rows[0].ChannelTitle != ch.Title {
		t.Fatalf("channel join: %+v", rows[0])
	}
	if _, err := f.videos.ListProjectVideos(ctx, uuid.New(), owner); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("missing project: %v", err)
	}
}
