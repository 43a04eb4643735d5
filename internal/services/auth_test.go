package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/videoscripter-backend/internal/data/repos/testutil"
	"github.com/yungbote/videoscripter-backend/internal/pkg/ctxutil"
	apperrors "github.com/yungbote/videoscripter-backend/internal/pkg/errors"
)

func TestAuthRoundTripSetsOwner(t *testing.T) {
	as := NewAuthService(testutil.Logger(t), "secret", time.Minute)
	owner := uuid.New()
	tok, err := as.IssueAccessToken(owner)
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}
	ctx, err := as.SetContextFromToken(context.Background(), tok)
	if err != nil {
		t.Fatalf("SetContextFromToken: %v", err)
	}
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.OwnerID != owner {
		t.Fatalf("request data: %+v", rd)
	}
}

func TestAuthRejectsForeignSignature(t *testing.T) {
	issuer := NewAuthService(testutil.Logger(t), "other", time.Minute)
	tok, err := issuer.IssueAccessToken(uuid.New())
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}
	as := NewAuthService(testutil.Logger(t), "secret", time.Minute)
	if _, err := as.SetContextFromToken(context.Background(), tok); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	as := NewAuthService(testutil.Logger(t), "secret", time.Minute)
	as.(*authService).accessTTL = -time.Minute
	tok, err := as.IssueAccessToken(uuid.New())
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}
	if _, err := as.SetContextFromToken(context.Background(), tok); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
}

func TestAuthRejectsGarbage(t *testing.T) {
	as := NewAuthService(testutil.Logger(t), "secret", time.Minute)
	for _, tok := range []string{"", "not-a-token"} {
		if _, err := as.SetContextFromToken(context.Background(), tok); !errors.Is(err, apperrors.ErrUnauthorized) {
			t.Fatalf("%q: want ErrUnauthorized, got %v", tok, err)
		}
	}
}
