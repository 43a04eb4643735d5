package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/yungbote/videoscripter-backend/internal/observability"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
)

const (
	defaultSearchResults = 25
	maxSearchResults     = 50
	// Search only returns videos between 4 and 20 minutes long.
	searchVideoDuration = "medium"
)

type YouTubeConfig struct {
	APIKey string
	// Endpoint overrides the API base URL; empty uses the public endpoint.
	Endpoint   string
	HTTPClient *http.Client
}

type youTubeClient struct {
	svc     *youtube.Service
	log     *logger.Logger
	metrics *observability.Metrics
}

func NewYouTubeClient(ctx context.Context, cfg YouTubeConfig, baseLog *logger.Logger, metrics *observability.Metrics) (Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("youtube: missing API key")
	}
	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}
	svc, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("youtube: new service: %w", err)
	}
	return &youTubeClient{
		svc:     svc,
		log:     baseLog.With("client", "YouTube"),
		metrics: metrics,
	}, nil
}

func (c *youTubeClient) Search(ctx context.Context, query string, maxResults int) ([]VideoMeta, error) {
	if maxResults <= 0 {
		maxResults = defaultSearchResults
	}
	if maxResults > maxSearchResults {
		maxResults = maxSearchResults
	}
	start := time.Now()
	resp, err := c.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		Order("relevance").
		VideoDuration(searchVideoDuration).
		MaxResults(int64(maxResults)).
		Context(ctx).
		Do()
	c.observe("search", err, start)
	if err != nil {
		c.log.Error("youtube search failed", "query", query, "error", err)
		return nil, fmt.Errorf("youtube search: %w", err)
	}

	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			ids = append(ids, item.Id.VideoId)
		}
	}
	if len(ids) == 0 {
		return []VideoMeta{}, nil
	}

	// Search results carry no statistics; a failed detail lookup still returns the
	// snippets with zeroed counts.
	details, err := c.listVideos(ctx, ids)
	if err != nil {
		c.log.Warn("youtube video details failed", "count", len(ids), "error", err)
		details = map[string]*youtube.Video{}
	}

	out := make([]VideoMeta, 0, len(ids))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		meta := VideoMeta{
			ExternalID:        item.Id.VideoId,
			Title:             item.Snippet.Title,
			Description:       item.Snippet.Description,
			ThumbnailURL:      thumbnailURL(item.Snippet.Thumbnails),
			ChannelExternalID: item.Snippet.ChannelId,
			ChannelTitle:      item.Snippet.ChannelTitle,
			PublishedAt:       parseTime(item.Snippet.PublishedAt),
		}
		if v, ok := details[item.Id.VideoId]; ok {
			applyVideoDetails(&meta, v)
		}
		out = append(out, meta)
	}
	return out, nil
}

func (c *youTubeClient) GetVideo(ctx context.Context, externalVideoID string) (*VideoMeta, error) {
	start := time.Now()
	details, err := c.listVideos(ctx, []string{externalVideoID})
	c.observe("get_video", err, start)
	if err != nil {
		return nil, err
	}
	v, ok := details[externalVideoID]
	if !ok || v.Snippet == nil {
		return nil, ErrNotFound
	}
	meta := &VideoMeta{
		ExternalID:        v.Id,
		Title:             v.Snippet.Title,
		Description:       v.Snippet.Description,
		ThumbnailURL:      thumbnailURL(v.Snippet.Thumbnails),
		ChannelExternalID: v.Snippet.ChannelId,
		ChannelTitle:      v.Snippet.ChannelTitle,
		PublishedAt:       parseTime(v.Snippet.PublishedAt),
	}
	applyVideoDetails(meta, v)
	return meta, nil
}

func (c *youTubeClient) GetChannel(ctx context.Context, externalChannelID string) (*ChannelMeta, error) {
	start := time.Now()
	resp, err := c.svc.Channels.List([]string{"snippet", "statistics"}).
		Id(externalChannelID).
		Context(ctx).
		Do()
	c.observe("get_channel", err, start)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("youtube channel %s: %w", externalChannelID, err)
	}
	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil {
		return nil, ErrNotFound
	}
	ch := resp.Items[0]
	meta := &ChannelMeta{
		ExternalID:   ch.Id,
		Title:        ch.Snippet.Title,
		Description:  ch.Snippet.Description,
		ThumbnailURL: thumbnailURL(ch.Snippet.Thumbnails),
		PublishedAt:  parseTime(ch.Snippet.PublishedAt),
	}
	if ch.Statistics != nil {
		meta.SubscriberCount = int64(ch.Statistics.SubscriberCount)
		meta.VideoCount = int64(ch.Statistics.VideoCount)
	}
	return meta, nil
}

func (c *youTubeClient) listVideos(ctx context.Context, ids []string) (map[string]*youtube.Video, error) {
	resp, err := c.svc.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		if isNotFound(err) {
			return map[string]*youtube.Video{}, nil
		}
		return nil, fmt.Errorf("youtube videos: %w", err)
	}
	out := make(map[string]*youtube.Video, len(resp.Items))
	for _, v := range resp.Items {
		out[v.Id] = v
	}
	return out, nil
}

func (c *youTubeClient) observe(op string, err error, start time.Time) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.metrics.ObserveCatalog(op, status, time.Since(start))
}

func applyVideoDetails(meta *VideoMeta, v *youtube.Video) {
	if v.Statistics != nil {
		meta.ViewCount = int64(v.Statistics.ViewCount)
		meta.LikeCount = int64(v.Statistics.LikeCount)
		meta.CommentCount = int64(v.Statistics.CommentCount)
	}
	if v.ContentDetails != nil {
		meta.DurationSeconds = ParseDuration(v.ContentDetails.Duration)
	}
	if v.Snippet != nil && len(v.Snippet.Tags) > 0 {
		meta.Tags = v.Snippet.Tags
	}
}

func thumbnailURL(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	if t.Medium != nil && t.Medium.Url != "" {
		return t.Medium.Url
	}
	if t.Default != nil {
		return t.Default.Url
	}
	return ""
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return ts.UTC()
}

func isNotFound(err error) bool {
	var gerr *googleapi.Error
	return errors.As(err, &gerr) && gerr.Code == http.StatusNotFound
}
