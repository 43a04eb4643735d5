package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/videoscripter-backend/internal/data/repos/testutil"
	apperrors "github.com/yungbote/videoscripter-backend/internal/pkg/errors"
)

func TestCatalogSearchMarksProjectVideos(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := uuid.New()
	p := testutil.SeedProject(t, ctx, f.db, owner, "p")
	ch := testutil.SeedChannel(t, ctx, f.db, "UC1")
	testutil.SeedVideo(t, ctx, f.db, owner, testutil.PtrUUID(p.ID), ch.ID, "have")

	f.catalog.AddVideo("have", "UC1", true)
	f.catalog.AddVideo("new", "UC1", true)

	results, err := f.search.Search(ctx, owner, "video", 0, &p.ID)
	if err != nil || len(results) != 2 {
		t.Fatalf("Search: err=%v len=%d", err, len(results))
	}
	for _, r := range results {
		if r.InProject != (r.ExternalID == "have") {
			t.Fatalf("InProject for %s: got %v", r.ExternalID, r.InProject)
		}
	}

	if _, err := f.search.Search(ctx, owner, "video", 0, testutil.PtrUUID(uuid.New())); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("Search foreign project: %v", err)
	}
	if _, err := f.search.Search(ctx, owner, "  ", 0, nil); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("Search blank query: %v", err)
	}
	if _, err := f.search.Search(ctx, owner, "video", 500, nil); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("Search oversized maxResults: %v", err)
	}
}
