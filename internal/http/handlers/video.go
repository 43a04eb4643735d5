package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/videoscripter-backend/internal/http/response"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
	"github.com/yungbote/videoscripter-backend/internal/services"
)

type VideoHandler struct {
	log              *logger.Logger
	videoService     services.VideoService
	ingestionService services.IngestionService
}

func NewVideoHandler(log *logger.Logger, videoService services.VideoService, ingestionService services.IngestionService) *VideoHandler {
	return &VideoHandler{
		log:              log.With("handler", "VideoHandler"),
		videoService:     videoService,
		ingestionService: ingestionService,
	}
}

type addVideosRequest struct {
	VideoIDs []string `json:"videoIds"`
}

// GET /api/projects/:id/videos
func (h *VideoHandler) ListProjectVideos(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	projectID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	rows, err := h.videoService.ListProjectVideos(c.Request.Context(), projectID, owner)
	if err != nil {
		response.RespondServiceError(c, err, "load_videos_failed")
		return
	}
	response.RespondOK(c, gin.H{"videos": toVideoViews(rows)})
}

// POST /api/projects/:id/videos
func (h *VideoHandler) AddVideos(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	projectID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req addVideosRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.ingestionService.Ingest(c.Request.Context(), services.IngestRequest{
		ProjectID:        projectID,
		OwnerID:          owner,
		ExternalVideoIDs: req.VideoIDs,
	})
	if err != nil {
		response.RespondServiceError(c, err, "add_videos_failed")
		return
	}
	status := http.StatusOK
	if !res.Success {
		h.log.Error("AddVideos commit failed", "project_id", projectID, "message", res.Message)
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{
		"success":      res.Success,
		"message":      res.Message,
		"videoCount":   res.VideoCount,
		"skippedCount": len(res.Skipped),
	})
}

// DELETE /api/projects/:id/videos/:externalId
func (h *VideoHandler) RemoveVideo(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	projectID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	externalID := strings.TrimSpace(c.Param("externalId"))
	if externalID == "" {
		response.RespondError(c, http.StatusBadRequest, "invalid_externalId", fmt.Errorf("missing video id"))
		return
	}
	removed, err := h.videoService.RemoveVideo(c.Request.Context(), projectID, externalID, owner)
	if err != nil {
		h.log.Error("RemoveVideo failed", "error", err, "project_id", projectID, "external_id", externalID)
		response.RespondServiceError(c, err, "remove_video_failed")
		return
	}
	if !removed {
		response.RespondError(c, http.StatusNotFound, "not_found", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/videos/unattached
func (h *VideoHandler) ListUnattachedVideos(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	rows, err := h.videoService.ListUnattachedVideos(c.Request.Context(), owner)
	if err != nil {
		response.RespondServiceError(c, err, "load_videos_failed")
		return
	}
	response.RespondOK(c, gin.H{"videos": toVideoViews(rows)})
}

// DELETE /api/videos/:id
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	videoID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	deleted, err := h.videoService.DeleteVideo(c.Request.Context(), videoID, owner)
	if err != nil {
		h.log.Error("DeleteVideo failed", "error", err, "video_id", videoID)
		response.RespondServiceError(c, err, "delete_video_failed")
		return
	}
	if !deleted {
		response.RespondError(c, http.StatusNotFound, "not_found", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
