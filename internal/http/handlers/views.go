package handlers

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/videoscripter-backend/internal/data/repos"
	"github.com/yungbote/videoscripter-backend/internal/domain"
	"github.com/yungbote/videoscripter-backend/internal/services"
)

type projectView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Topic       string    `json:"topic"`
	VideoCount  int64     `json:"videoCount"`
	ScriptCount int64     `json:"scriptCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toProjectView(p *repos.ProjectSummary) projectView {
	return projectView{
		ID:          p.ID,
		Name:        p.Name,
		Topic:       p.Topic,
		VideoCount:  p.VideoCount,
		ScriptCount: p.ScriptCount,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type videoView struct {
	ID                uuid.UUID  `json:"id"`
	ProjectID         *uuid.UUID `json:"projectId,omitempty"`
	ExternalID        string     `json:"videoId"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	ThumbnailURL      string     `json:"thumbnailUrl"`
	ChannelID         uuid.UUID  `json:"channelId"`
	ChannelExternalID string     `json:"channelExternalId"`
	ChannelTitle      string     `json:"channelTitle"`
	ViewCount         int64      `json:"viewCount"`
	LikeCount         int64      `json:"likeCount"`
	CommentCount      int64      `json:"commentCount"`
	DurationSeconds   int        `json:"durationSeconds"`
	Duration          string     `json:"duration"`
	PublishedAt       time.Time  `json:"publishedAt"`
	Tags              []string   `json:"tags"`
}

func toVideoView(v *repos.VideoWithChannel) videoView {
	tags := []string{}
	if len(v.Tags) > 0 {
		_ = json.Unmarshal(v.Tags, &tags)
	}
	return videoView{
		ID:                v.ID,
		ProjectID:         v.ProjectID,
		ExternalID:        v.ExternalID,
		Title:             v.Title,
		Description:       v.Description,
		ThumbnailURL:      v.ThumbnailURL,
		ChannelID:         v.ChannelID,
		ChannelExternalID: v.ChannelExternalID,
		ChannelTitle:      v.ChannelTitle,
		ViewCount:         v.ViewCount,
		LikeCount:         v.LikeCount,
		CommentCount:      v.CommentCount,
		DurationSeconds:   v.DurationSeconds,
		Duration:          domain.FormatDuration(v.DurationSeconds),
		PublishedAt:       v.PublishedAt,
		Tags:              tags,
	}
}

func toVideoViews(rows []*repos.VideoWithChannel) []videoView {
	out := make([]videoView, 0, len(rows))
	for _, v := range rows {
		out = append(out, toVideoView(v))
	}
	return out
}

type scriptView struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"projectId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toScriptView(s *domain.Script) scriptView {
	return scriptView{
		ID:        s.ID,
		ProjectID: s.ProjectID,
		Title:     s.Title,
		Content:   s.Content,
		Version:   s.Version,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

type topicView struct {
	ID            uuid.UUID `json:"id"`
	VideoID       uuid.UUID `json:"videoId"`
	StartOffsetMS int64     `json:"startOffsetMs"`
	Content       string    `json:"content"`
	Summary       string    `json:"summary"`
	IsSelected    bool      `json:"isSelected"`
}

func toTopicView(t *domain.TranscriptTopic) topicView {
	return topicView{
		ID:            t.ID,
		VideoID:       t.VideoID,
		StartOffsetMS: t.StartOffsetMS,
		Content:       t.Content,
		Summary:       t.Summary,
		IsSelected:    t.IsSelected,
	}
}

type categoryView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

func toCategoryView(c *domain.Category) categoryView {
	return categoryView{ID: c.ID, Name: c.Name, Description: c.Description}
}

type channelView struct {
	ID              uuid.UUID      `json:"id"`
	ExternalID      string         `json:"channelId"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	ThumbnailURL    string         `json:"thumbnailUrl"`
	SubscriberCount int64          `json:"subscriberCount"`
	VideoCount      int64          `json:"videoCount"`
	PublishedAt     time.Time      `json:"publishedAt"`
	Categories      []categoryView `json:"categories"`
}

func toChannelView(d *services.ChannelDetail) channelView {
	cats := make([]categoryView, 0, len(d.Categories))
	for _, c := range d.Categories {
		cats = append(cats, toCategoryView(c))
	}
	return channelView{
		ID:              d.Channel.ID,
		ExternalID:      d.Channel.ExternalID,
		Title:           d.Channel.Title,
		Description:     d.Channel.Description,
		ThumbnailURL:    d.Channel.ThumbnailURL,
		SubscriberCount: d.Channel.SubscriberCount,
		VideoCount:      d.Channel.VideoCount,
		PublishedAt:     d.Channel.PublishedAt,
		Categories:      cats,
	}
}

type searchResultView struct {
	ExternalID        string    `json:"videoId"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	ThumbnailURL      string    `json:"thumbnailUrl"`
	ChannelExternalID string    `json:"channelId"`
	ChannelTitle      string    `json:"channelTitle"`
	PublishedAt       time.Time `json:"publishedAt"`
	ViewCount         int64     `json:"viewCount"`
	LikeCount         int64     `json:"likeCount"`
	CommentCount      int64     `json:"commentCount"`
	Duration          string    `json:"duration"`
	InProject         bool      `json:"inProject"`
}

func toSearchResultView(r services.SearchResult) searchResultView {
	return searchResultView{
		ExternalID:        r.ExternalID,
		Title:             r.Title,
		Description:       r.Description,
		ThumbnailURL:      r.ThumbnailURL,
		ChannelExternalID: r.ChannelExternalID,
		ChannelTitle:      r.ChannelTitle,
		PublishedAt:       r.PublishedAt,
		ViewCount:         r.ViewCount,
		LikeCount:         r.LikeCount,
		CommentCount:      r.CommentCount,
		Duration:          domain.FormatDuration(r.DurationSeconds),
		InProject:         r.InProject,
	}
}
