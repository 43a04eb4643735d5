package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/videoscripter-backend/internal/http/response"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
	"github.com/yungbote/videoscripter-backend/internal/services"
)

type TopicHandler struct {
	log          *logger.Logger
	topicService services.TopicService
}

func NewTopicHandler(log *logger.Logger, topicService services.TopicService) *TopicHandler {
	return &TopicHandler{
		log:          log.With("handler", "TopicHandler"),
		topicService: topicService,
	}
}

type topicSelectRequest struct {
	IsSelected *bool `json:"isSelected" binding:"required"`
}

// GET /api/videos/:id/topics
func (h *TopicHandler) ListTopics(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	videoID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	rows, err := h.topicService.ListTopics(c.Request.Context(), videoID, owner)
	if err != nil {
		response.RespondServiceError(c, err, "load_topics_failed")
		return
	}
	out := make([]topicView, 0, len(rows))
	for _, t := range rows {
		out = append(out, toTopicView(t))
	}
	response.RespondOK(c, gin.H{"topics": out})
}

// PATCH /api/topics/:id
func (h *TopicHandler) SetTopicSelected(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	topicID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req topicSelectRequest
	if !bindJSON(c, &req) {
		return
	}
	t, err := h.topicService.SetTopicSelected(c.Request.Context(), topicID, owner, *req.IsSelected)
	if err != nil {
		response.RespondServiceError(c, err, "update_topic_failed")
		return
	}
	response.RespondOK(c, gin.H{"topic": toTopicView(t)})
}
