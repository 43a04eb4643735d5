// Package catalogtest provides an in-memory catalog.Client for tests.
package catalogtest

import (
	"context"
	"strings"
	"sync"

	"github.com/yungbote/videoscripter-backend/internal/catalog"
)

type Fake struct {
	mu       sync.Mutex
	videos   map[string]catalog.VideoMeta
	channels map[string]catalog.ChannelMeta
	// Fail maps an id (video or channel) to the error returned for it.
	Fail map[string]error

	videoCalls   map[string]int
	channelCalls map[string]int
}

func NewFake() *Fake {
	return &Fake{
		videos:       map[string]catalog.VideoMeta{},
		channels:     map[string]catalog.ChannelMeta{},
		Fail:         map[string]error{},
		videoCalls:   map[string]int{},
		channelCalls: map[string]int{},
	}
}

// AddVideo registers a video owned by channelID. The channel is registered too
// unless withChannel is false.
func (f *Fake) AddVideo(videoID, channelID string, withChannel bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.videos[videoID] = catalog.VideoMeta{
		ExternalID:        videoID,
		Title:             "video " + videoID,
		ChannelExternalID: channelID,
		ChannelTitle:      "channel " + channelID,
		DurationSeconds:   60,
		ViewCount:         100,
	}
	if withChannel {
		f.channels[channelID] = catalog.ChannelMeta{ExternalID: channelID, Title: "channel " + channelID}
	}
}

func (f *Fake) Search(ctx context.Context, query string, maxResults int) ([]catalog.VideoMeta, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []catalog.VideoMeta{}
	for _, v := range f.videos {
		if query == "" || strings.Contains(v.Title, query) {
			out = append(out, v)
		}
		if maxResults > 0 && len(out) >= maxResults {
			break
		}
	}
	return out, nil
}

func (f *Fake) GetVideo(ctx context.Context, externalVideoID string) (*catalog.VideoMeta, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.videoCalls[externalVideoID]++
	if err, ok := f.Fail[externalVideoID]; ok {
		return nil, err
	}
	v, ok := f.videos[externalVideoID]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return &v, nil
}

func (f *Fake) GetChannel(ctx context.Context, externalChannelID string) (*catalog.ChannelMeta, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.channelCalls[externalChannelID]++
	if err, ok := f.Fail[externalChannelID]; ok {
		return nil, err
	}
	ch, ok := f.channels[externalChannelID]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return &ch, nil
}

func (f *Fake) VideoCalls(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.videoCalls[id]
}

func (f *Fake) ChannelCalls(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.channelCalls[id]
}
