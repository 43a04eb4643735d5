package media

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/videoscripter-backend/internal/data/repos/testutil"
	"github.com/yungbote/videoscripter-backend/internal/domain"
	"github.com/yungbote/videoscripter-backend/internal/pkg/dbctx"
)

func TestChannelRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewChannelRepo(db, testutil.Logger(t))

	actor := uuid.New()
	ch := &domain.Channel{ExternalID: "UC1", Title: "first"}
	ch.Stamp(actor)
	created, err := repo.CreateIfAbsent(dbc, ch)
	if err != nil || !created {
		t.Fatalf("CreateIfAbsent: err=%v created=%v", err, created)
	}

	dup := &domain.Channel{ExternalID: "UC1", Title: "second"}
	dup.Stamp(actor)
	created, err = repo.CreateIfAbsent(dbc, dup)
	if err != nil || created {
		t.Fatalf("CreateIfAbsent dup: err=%v created=%v", err, created)
	}

	got, err := repo.GetByExternalID(dbc, "UC1")
	if err != nil || got == nil || got.ID != ch.ID {
		t.Fatalf("GetByExternalID: err=%v got=%v", err, got)
	}
	if got, err := repo.GetByExternalID(dbc, "missing"); err != nil || got != nil {
		t.Fatalf("GetByExternalID missing: err=%v got=%v", err, got)
	}

	if n, err := repo.SoftDelete(dbc, ch.ID, actor); err != nil || n != 1 {
		t.Fatalf("SoftDelete: err=%v n=%d", err, n)
	}
	if got, err := repo.GetByID(dbc, ch.ID); err != nil || got != nil {
		t.Fatalf("after SoftDelete GetByID: err=%v got=%v", err, got)
	}

	fresh := &domain.Channel{ExternalID: "UC1", Title: "fresh"}
	fresh.Stamp(actor)
	if created, err := repo.CreateIfAbsent(dbc, fresh); err != nil || !created {
		t.Fatalf("CreateIfAbsent after delete: err=%v created=%v", err, created)
	}
}

func TestChannelRepoLocks(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewChannelRepo(db, testutil.Logger(t))

	live := testutil.SeedChannel(t, ctx, tx, "UC-live")
	gone := testutil.SeedChannel(t, ctx, tx, "UC-gone")
	if _, err := repo.SoftDelete(dbc, gone.ID, uuid.New()); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	if _, err := repo.LockByID(dbctx.New(ctx), live.ID); err == nil {
		t.Fatalf("LockByID without tx: want error")
	}
	got, err := repo.LockByID(dbc, live.ID)
	if err != nil || got == nil || got.ID != live.ID {
		t.Fatalf("LockByID live: err=%v got=%v", err, got)
	}
	if got, err := repo.LockByID(dbc, gone.ID); err != nil || got != nil {
		t.Fatalf("LockByID deleted: err=%v got=%v", err, got)
	}

	found, err := repo.LockLive(dbc, []uuid.UUID{live.ID, gone.ID, uuid.New()})
	if err != nil {
		t.Fatalf("LockLive: %v", err)
	}
	if len(found) != 1 || !found[live.ID] {
		t.Fatalf("LockLive: got %v want only %s", found, live.ID)
	}
	if found, err := repo.LockLive(dbc, nil); err != nil || len(found) != 0 {
		t.Fatalf("LockLive empty: err=%v found=%v", err, found)
	}
}
