package projects

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/videoscripter-backend/internal/data/repos/testutil"
	"github.com/yungbote/videoscripter-backend/internal/domain"
	"github.com/yungbote/videoscripter-backend/internal/pkg/dbctx"
)

func TestScriptRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewScriptRepo(db, testutil.Logger(t))

	owner := uuid.New()
	p := testutil.SeedProject(t, ctx, tx, owner, "p")

	s := &domain.Script{ProjectID: p.ID, Title: "intro", Content: "hello", Version: 1}
	s.Stamp(owner)
	if _, err := repo.Create(dbc, []*domain.Script{s}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if rows, err := repo.ListByProject(dbc, p.ID); err != nil || len(rows) != 1 {
		t.Fatalf("ListByProject: err=%v len=%d", err, len(rows))
	}
	if got, err := repo.GetOwned(dbc, s.ID, uuid.New()); err != nil || got != nil {
		t.Fatalf("GetOwned foreign owner: err=%v got=%v", err, got)
	}

	if n, err := repo.UpdateContent(dbc, s.ID, 1, owner, "intro v2", "hello again"); err != nil || n != 1 {
		t.Fatalf("UpdateContent: err=%v n=%d", err, n)
	}
	// Stale version.
	if n, err := repo.UpdateContent(dbc, s.ID, 1, owner, "lost", "lost"); err != nil || n != 0 {
		t.Fatalf("UpdateContent stale: err=%v n=%d", err, n)
	}
	got, err := repo.GetOwned(dbc, s.ID, owner)
	if err != nil || got == nil {
		t.Fatalf("GetOwned: err=%v got=%v", err, got)
	}
	if got.Version != 2 || got.Title != "intro v2" {
		t.Fatalf("after update: version=%d title=%q", got.Version, got.Title)
	}

	if n, err := repo.SoftDeleteByProject(dbc, p.ID, owner); err != nil || n != 1 {
		t.Fatalf("SoftDeleteByProject: err=%v n=%d", err, n)
	}
	if rows, err := repo.ListByProject(dbc, p.ID); err != nil || len(rows) != 0 {
		t.Fatalf("after SoftDeleteByProject ListByProject: err=%v len=%d", err, len(rows))
	}
}
