package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/videoscripter-backend/internal/http/response"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
	"github.com/yungbote/videoscripter-backend/internal/services"
)

type ChannelHandler struct {
	log            *logger.Logger
	channelService services.ChannelService
}

func NewChannelHandler(log *logger.Logger, channelService services.ChannelService) *ChannelHandler {
	return &ChannelHandler{
		log:            log.With("handler", "ChannelHandler"),
		channelService: channelService,
	}
}

// GET /api/channels/:id
func (h *ChannelHandler) GetChannel(c *gin.Context) {
	if _, ok := requireOwner(c); !ok {
		return
	}
	channelID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	d, err := h.channelService.GetChannel(c.Request.Context(), channelID)
	if err != nil {
		response.RespondServiceError(c, err, "load_channel_failed")
		return
	}
	response.RespondOK(c, gin.H{"channel": toChannelView(d)})
}

// DELETE /api/channels/:id
func (h *ChannelHandler) DeleteChannel(c *gin.Context) {
	actor, ok := requireOwner(c)
	if !ok {
		return
	}
	channelID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.channelService.DeleteChannel(c.Request.Context(), channelID, actor); err != nil {
		response.RespondServiceError(c, err, "delete_channel_failed")
		return
	}
	c.Status(http.StatusNoContent)
}
