package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/videoscripter-backend/internal/data/repos/testutil"
	"github.com/yungbote/videoscripter-backend/internal/domain"
	apperrors "github.com/yungbote/videoscripter-backend/internal/pkg/errors"
)

func TestProjectLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := uuid.New()

	created, err := f.projects.CreateProject(ctx, owner, "  Cooking  ", "pasta")
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if created.Name != "Cooking" || created.VideoCount != 0 || created.ScriptCount != 0 {
		t.Fatalf("CreateProject: got %+v", created)
	}
	if created.CreatedBy != owner || created.UpdatedBy != owner {
		t.Fatalf("audit fields: %+v", created.BaseEntity)
	}

	updated, err := f.projects.UpdateProject(ctx, created.ID, owner, "Baking", "bread")
	if err != nil || updated.Name != "Baking" || updated.Topic != "bread" {
		t.Fatalf("UpdateProject: err=%v got=%+v", err, updated)
	}

	list, err := f.projects.ListProjects(ctx, owner)
	if err != nil || len(list) != 1 {
		t.Fatalf("ListProjects: err=%v len=%d", err, len(list))
	}
}

func TestProjectValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := uuid.New()

	cases := []struct{ name, topic string }{
		{"", "topic"},
		{"name", ""},
		{strings.Repeat("n", 201), "topic"},
		{"name", strings.Repeat("t", 501)},
	}
	for _, tc := range cases {
		if _, err := f.projects.CreateProject(ctx, owner, tc.name, tc.topic); !errors.Is(err, apperrors.ErrInvalidArgument) {
			t.Fatalf("CreateProject(%d,%d): want ErrInvalidArgument got %v", len(tc.name), len(tc.topic), err)
		}
	}
	if _, err := f.projects.CreateProject(ctx, owner, strings.Repeat("n", 200), strings.Repeat("t", 500)); err != nil {
		t.Fatalf("CreateProject at limits: %v", err)
	}
}

func TestProjectOwnershipIsolation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := uuid.New()
	intruder := uuid.New()
	p := testutil.SeedProject(t, ctx, f.db, owner, "p")

	_, errForeign := f.projects.GetProject(ctx, p.ID, intruder)
	_, errMissing := f.projects.GetProject(ctx, uuid.New(), intruder)
	if !errors.Is(errForeign, apperrors.ErrNotFound) || !errors.Is(errMissing, apperrors.ErrNotFound) {
		t.Fatalf("GetProject: foreign=%v missing=%v", errForeign, errMissing)
	}
	if errForeign.Error() != errMissing.Error() {
		t.Fatalf("foreign and missing differ: %q vs %q", errForeign, errMissing)
	}

	if _, err := f.projects.UpdateProject(ctx, p.ID, intruder, "x", "y"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("UpdateProject foreign: %v", err)
	}
	if ok, err := f.projects.DeleteProject(ctx, p.ID, intruder); err != nil || ok {
		t.Fatalf("DeleteProject foreign: ok=%v err=%v", ok, err)
	}
	if _, err := f.videos.ListProjectVideos(ctx, p.ID, intruder); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("ListProjectVideos foreign: %v", err)
	}
	if list, err := f.projects.ListProjects(ctx, intruder); err != nil || len(list) != 0 {
		t.Fatalf("ListProjects intruder: err=%v len=%d", err, len(list))
	}
	if got, err := f.projects.GetProject(ctx, p.ID, owner); err != nil || got.Name != "p" {
		t.Fatalf("GetProject owner after intrusion: err=%v got=%+v", err, got)
	}
}

func TestDeleteProjectDetachesVideosAndDeletesScripts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := uuid.New()
	p := testutil.SeedProject(t, ctx, f.db, owner, "p")
	ch := testutil.SeedChannel(t, ctx, f.db, "UC1")
	v := testutil.SeedVideo(t, ctx, f.db, owner, testutil.PtrUUID(p.ID), ch.ID, "v1")
	s := testutil.SeedScript(t, ctx, f.db, owner, p.ID, "s1")

	ok, err := f.projects.DeleteProject(ctx, p.ID, owner)
	if err != nil || !ok {
		t.Fatalf("DeleteProject: ok=%v err=%v", ok, err)
	}
	if _, err := f.projects.GetProject(ctx, p.ID, owner); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("GetProject after delete: %v", err)
	}

	var stored domain.Video
	if err := f.db.Where("id = ?", v.ID).First(&stored).Error; err != nil {
		t.Fatalf("video after project delete: %v", err)
	}
	if stored.ProjectID != nil || stored.IsDeleted() {
		t.Fatalf("video should be live and unattached: project=%v deleted=%v", stored.ProjectID, stored.IsDeleted())
	}
	unattached, err := f.videos.ListUnattachedVideos(ctx, owner)
	if err != nil || len(unattached) != 1 || unattached[0].ID != v.ID {
		t.Fatalf("ListUnattachedVideos: err=%v rows=%v", err, unattached)
	}

	var script domain.Script
	if err := f.db.Unscoped().Where("id = ?", s.ID).First(&script).Error; err != nil {
		t.Fatalf("load script: %v", err)
	}
	if !script.IsDeleted() {
		t.Fatalf("script should be soft-deleted")
	}

	if ok, err := f.projects.DeleteProject(ctx, p.ID, owner); err != nil || ok {
		t.Fatalf("DeleteProject again: ok=%v err=%v", ok, err)
	}
}

func TestListProjectsCountsLiveChildren(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := uuid.New()
	p := testutil.SeedProject(t, ctx, f.db, owner, "p")
	ch := testutil.SeedChannel(t, ctx, f.db, "UC1")
	testutil.SeedVideo(t, ctx, f.db, owner, testutil.PtrUUID(p.ID), ch.ID, "a")
	testutil.SeedVideo(t, ctx, f.db, owner, testutil.PtrUUID(p.ID), ch.ID, "b")
	testutil.SeedScript(t, ctx, f.db, owner, p.ID, "s")

	if ok, err := f.videos.RemoveVideo(ctx, p.ID, "b", owner); err != nil || !ok {
		t.Fatalf("RemoveVideo: ok=%v err=%v", ok, err)
	}

	list, err := f.projects.ListProjects(ctx, owner)
	if err != nil || len(list) != 1 {
		t.Fatalf("ListProjects: err=%v len=%d", err, len(list))
	}
	if list[0].VideoCount != 1 || list[0].ScriptCount != 1 {
		t.Fatalf("counts: videos=%d scripts=%d", list[0].VideoCount, list[0].ScriptCount)
	}
}
