package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yungbote/videoscripter-backend/internal/catalog"
	"github.com/yungbote/videoscripter-backend/internal/catalog/catalogtest"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
)

func TestCachedClientServesRepeatLookupsLocally(t *testing.T) {
	log, _ := logger.New("test")
	fake := catalogtest.NewFake()
	fake.AddVideo("v1", "UC1", true)

	c := catalog.NewCachedClient(fake, catalog.CacheConfig{TTL: time.Minute}, log, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		v, err := c.GetVideo(ctx, "v1")
		if err != nil || v.ChannelExternalID != "UC1" {
			t.Fatalf("GetVideo #%d: err=%v v=%+v", i, err, v)
		}
		if _, err := c.GetChannel(ctx, "UC1"); err != nil {
			t.Fatalf("GetChannel #%d: %v", i, err)
		}
	}
	if n := fake.VideoCalls("v1"); n != 1 {
		t.Fatalf("upstream video calls: got %d want 1", n)
	}
	if n := fake.ChannelCalls("UC1"); n != 1 {
		t.Fatalf("upstream channel calls: got %d want 1", n)
	}
}

func TestCachedClientDoesNotCacheMisses(t *testing.T) {
	log, _ := logger.New("test")
	fake := catalogtest.NewFake()
	c := catalog.NewCachedClient(fake, catalog.CacheConfig{TTL: time.Minute}, log, nil)
	ctx := context.Background()

	if _, err := c.GetVideo(ctx, "late"); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("GetVideo: want ErrNotFound got %v", err)
	}
	fake.AddVideo("late", "UC1", true)
	if _, err := c.GetVideo(ctx, "late"); err != nil {
		t.Fatalf("GetVideo after add: %v", err)
	}
}

func TestCachedClientZeroTTLPassesThrough(t *testing.T) {
	log, _ := logger.New("test")
	fake := catalogtest.NewFake()
	if c := catalog.NewCachedClient(fake, catalog.CacheConfig{}, log, nil); c != catalog.Client(fake) {
		t.Fatalf("zero TTL should return the wrapped client")
	}
}
