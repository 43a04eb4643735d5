package media

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/videoscripter-backend/internal/data/repos/testutil"
	"github.com/yungbote/videoscripter-backend/internal/domain"
	"github.com/yungbote/videoscripter-backend/internal/pkg/dbctx"
)

func TestVideoRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewVideoRepo(db, testutil.Logger(t))

	owner := uuid.New()
	p := testutil.SeedProject(t, ctx, tx, owner, "p")
	ch := testutil.SeedChannel(t, ctx, tx, "UC1")

	v1 := &domain.Video{ProjectID: testutil.PtrUUID(p.ID), ExternalID: "a", ChannelID: ch.ID, Title: "A"}
	v1.Stamp(owner)
	v2 := &domain.Video{ProjectID: testutil.PtrUUID(p.ID), ExternalID: "b", ChannelID: uuid.New(), Title: "B"}
	v2.Stamp(owner)
	if _, err := repo.Create(dbc, []*domain.Video{v1, v2}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := repo.ExternalIDsInProject(dbc, p.ID, []string{"a", "c"})
	if err != nil {
		t.Fatalf("ExternalIDsInProject: %v", err)
	}
	if !found["a"] || found["c"] || len(found) != 1 {
		t.Fatalf("ExternalIDsInProject: got %v", found)
	}

	rows, err := repo.ListByProjectWithChannel(dbc, p.ID)
	if err != nil || len(rows) != 2 {
		t.Fatalf("ListByProjectWithChannel: err=%v len=%d", err, len(rows))
	}
	byExt := map[string]*VideoWithChannel{}
	for _, r := range rows {
		byExt[r.ExternalID] = r
	}
	if byExt["a"].ChannelExternalID != "UC1" || byExt["a"].ChannelTitle != ch.Title {
		t.Fatalf("joined channel: %+v", byExt["a"])
	}
	if byExt["b"].ChannelTitle != "Unknown Channel" {
		t.Fatalf("missing channel fallback: got %q", byExt["b"].ChannelTitle)
	}

	if n, err := repo.CountByChannel(dbc, ch.ID); err != nil || n != 1 {
		t.Fatalf("CountByChannel: err=%v n=%d", err, n)
	}

	if got, err := repo.GetInProject(dbc, p.ID, "a"); err != nil || got == nil || got.ID != v1.ID {
		t.Fatalf("GetInProject: err=%v got=%v", err, got)
	}

	if n, err := repo.DetachFromProject(dbc, p.ID, owner); err != nil || n != 2 {
		t.Fatalf("DetachFromProject: err=%v n=%d", err, n)
	}
	if rows, err := repo.ListByProjectWithChannel(dbc, p.ID); err != nil || len(rows) != 0 {
		t.Fatalf("after detach ListByProjectWithChannel: err=%v len=%d", err, len(rows))
	}
	unattached, err := repo.ListUnattachedByCreator(dbc, owner)
	if err != nil || len(unattached) != 2 {
		t.Fatalf("ListUnattachedByCreator: err=%v len=%d", err, len(unattached))
	}
	if rows, err := repo.ListUnattachedByCreator(dbc, uuid.New()); err != nil || len(rows) != 0 {
		t.Fatalf("ListUnattachedByCreator foreign: err=%v len=%d", err, len(rows))
	}

	if n, err := repo.SoftDeleteByIDs(dbc, []uuid.UUID{v1.ID}, owner); err != nil || n != 1 {
		t.Fatalf("SoftDeleteByIDs: err=%v n=%d", err, n)
	}
	if got, err := repo.GetByID(dbc, v1.ID); err != nil || got != nil {
		t.Fatalf("after SoftDeleteByIDs GetByID: err=%v got=%v", err, got)
	}
	if n, err := repo.CountByChannel(dbc, ch.ID); err != nil || n != 0 {
		t.Fatalf("CountByChannel after delete: err=%v n=%d", err, n)
	}
}

func TestVideoRepoSameExternalIDAcrossProjects(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	owner := uuid.New()
	p1 := testutil.SeedProject(t, ctx, tx, owner, "p1")
	p2 := testutil.SeedProject(t, ctx, tx, owner, "p2")
	ch := testutil.SeedChannel(t, ctx, tx, "UC1")

	testutil.SeedVideo(t, ctx, tx, owner, testutil.PtrUUID(p1.ID), ch.ID, "same")
	testutil.SeedVideo(t, ctx, tx, owner, testutil.PtrUUID(p2.ID), ch.ID, "same")

	if n := testutil.CountRows(t, tx, &domain.Video{}, "external_id = ?", "same"); n != 2 {
		t.Fatalf("rows for same external id: got %d want 2", n)
	}
}
