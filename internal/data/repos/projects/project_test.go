package projects

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/videoscripter-backend/internal/data/repos/testutil"
	"github.com/yungbote/videoscripter-backend/internal/domain"
	"github.com/yungbote/videoscripter-backend/internal/pkg/dbctx"
)

func TestProjectRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewProjectRepo(db, testutil.Logger(t))

	owner := uuid.New()
	other := uuid.New()

	p := &domain.Project{OwnerID: owner, Name: "p1", Topic: "cooking"}
	p.Stamp(owner)
	if _, err := repo.Create(dbc, []*domain.Project{p}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	ch := testutil.SeedChannel(t, ctx, tx, "UC1")
	testutil.SeedVideo(t, ctx, tx, owner, testutil.PtrUUID(p.ID), ch.ID, "v1")
	dead := testutil.SeedVideo(t, ctx, tx, owner, testutil.PtrUUID(p.ID), ch.ID, "v2")
	if err := tx.Delete(dead).Error; err != nil {
		t.Fatalf("soft delete video: %v", err)
	}
	testutil.SeedScript(t, ctx, tx, owner, p.ID, "s1")

	if got, err := repo.GetOwned(dbc, p.ID, owner); err != nil || got == nil {
		t.Fatalf("GetOwned: err=%v got=%v", err, got)
	}
	if got, err := repo.GetOwned(dbc, p.ID, other); err != nil || got != nil {
		t.Fatalf("GetOwned foreign owner: err=%v got=%v", err, got)
	}
	if ok, err := repo.ExistsOwned(dbc, p.ID, other); err != nil || ok {
		t.Fatalf("ExistsOwned foreign owner: err=%v ok=%v", err, ok)
	}

	sum, err := repo.GetSummary(dbc, p.ID, owner)
	if err != nil || sum == nil {
		t.Fatalf("GetSummary: err=%v sum=%v", err, sum)
	}
	if sum.VideoCount != 1 || sum.ScriptCount != 1 {
		t.Fatalf("GetSummary counts: videos=%d scripts=%d", sum.VideoCount, sum.ScriptCount)
	}

	p2 := &domain.Project{OwnerID: owner, Name: "p2", Topic: "travel"}
	p2.Stamp(owner)
	if _, err := repo.Create(dbc, []*domain.Project{p2}); err != nil {
		t.Fatalf("Create p2: %v", err)
	}
	if n, err := repo.UpdateOwned(dbc, p.ID, owner, map[string]interface{}{"name": "renamed"}); err != nil || n != 1 {
		t.Fatalf("UpdateOwned: err=%v n=%d", err, n)
	}
	if n, err := repo.UpdateOwned(dbc, p.ID, other, map[string]interface{}{"name": "stolen"}); err != nil || n != 0 {
		t.Fatalf("UpdateOwned foreign owner: err=%v n=%d", err, n)
	}

	rows, err := repo.ListSummariesByOwner(dbc, owner)
	if err != nil || len(rows) != 2 {
		t.Fatalf("ListSummariesByOwner: err=%v len=%d", err, len(rows))
	}
	if rows[0].ID != p.ID || rows[0].Name != "renamed" {
		t.Fatalf("ListSummariesByOwner order: first=%s name=%q", rows[0].ID, rows[0].Name)
	}
	if rows, err := repo.ListSummariesByOwner(dbc, other); err != nil || len(rows) != 0 {
		t.Fatalf("ListSummariesByOwner foreign owner: err=%v len=%d", err, len(rows))
	}

	if n, err := repo.SoftDeleteOwned(dbc, p.ID, owner); err != nil || n != 1 {
		t.Fatalf("SoftDeleteOwned: err=%v n=%d", err, n)
	}
	if got, err := repo.GetOwned(dbc, p.ID, owner); err != nil || got != nil {
		t.Fatalf("after SoftDeleteOwned GetOwned: err=%v got=%v", err, got)
	}
	if n, err := repo.SoftDeleteOwned(dbc, p.ID, owner); err != nil || n != 0 {
		t.Fatalf("SoftDeleteOwned twice: err=%v n=%d", err, n)
	}

	var stored domain.Project
	if err := tx.Unscoped().Where("id = ?", p.ID).First(&stored).Error; err != nil {
		t.Fatalf("load deleted: %v", err)
	}
	if !stored.IsDeleted() || stored.UpdatedBy != owner {
		t.Fatalf("deleted row audit: deleted=%v updated_by=%s", stored.IsDeleted(), stored.UpdatedBy)
	}
}

func TestProjectRepoLockOwned(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewProjectRepo(db, testutil.Logger(t))

	owner := uuid.New()
	p := testutil.SeedProject(t, ctx, tx, owner, "p")

	if _, err := repo.LockOwned(dbctx.New(ctx), p.ID, owner); err == nil {
		t.Fatalf("LockOwned without tx: want error")
	}
	got, err := repo.LockOwned(dbc, p.ID, owner)
	if err != nil || got == nil || got.ID != p.ID {
		t.Fatalf("LockOwned: err=%v got=%v", err, got)
	}
	if got, err := repo.LockOwned(dbc, p.ID, uuid.New()); err != nil || got != nil {
		t.Fatalf("LockOwned foreign owner: err=%v got=%v", err, got)
	}
	if _, err := repo.SoftDeleteOwned(dbc, p.ID, owner); err != nil {
		t.Fatalf("SoftDeleteOwned: %v", err)
	}
	if got, err := repo.LockOwned(dbc, p.ID, owner); err != nil || got != nil {
		t.Fatalf("LockOwned deleted: err=%v got=%v", err, got)
	}
}
