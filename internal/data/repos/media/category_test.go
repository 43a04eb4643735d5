package media

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/videoscripter-backend/internal/data/repos/testutil"
	"github.com/yungbote/videoscripter-backend/internal/domain"
	"github.com/yungbote/videoscripter-backend/internal/pkg/dbctx"
)

func TestCategoryRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewCategoryRepo(db, testutil.Logger(t))

	actor := uuid.New()
	c := &domain.Category{Name: "gaming"}
	c.Stamp(actor)
	if _, err := repo.Create(dbc, []*domain.Category{c}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	ch := testutil.SeedChannel(t, ctx, tx, "UC1")

	if err := repo.AddChannel(dbc, c.ID, ch.ID, actor); err != nil {
		t.Fatalf("AddChannel: %v", err)
	}
	if err := repo.AddChannel(dbc, c.ID, ch.ID, actor); err != nil {
		t.Fatalf("AddChannel twice: %v", err)
	}
	ids, err := repo.ListChannelIDs(dbc, c.ID)
	if err != nil || len(ids) != 1 || ids[0] != ch.ID {
		t.Fatalf("ListChannelIDs: err=%v ids=%v", err, ids)
	}
	if rows, err := repo.ListByChannel(dbc, ch.ID); err != nil || len(rows) != 1 {
		t.Fatalf("ListByChannel: err=%v len=%d", err, len(rows))
	}

	if n, err := repo.RemoveChannel(dbc, c.ID, ch.ID, actor); err != nil || n != 1 {
		t.Fatalf("RemoveChannel: err=%v n=%d", err, n)
	}
	if ids, err := repo.ListChannelIDs(dbc, c.ID); err != nil || len(ids) != 0 {
		t.Fatalf("after RemoveChannel ListChannelIDs: err=%v ids=%v", err, ids)
	}
	if rows, err := repo.List(dbc); err != nil || len(rows) != 1 {
		t.Fatalf("List: err=%v len=%d", err, len(rows))
	}
}
