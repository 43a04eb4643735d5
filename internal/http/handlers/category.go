package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/videoscripter-backend/internal/http/response"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
	"github.com/yungbote/videoscripter-backend/internal/services"
)

type CategoryHandler struct {
	log             *logger.Logger
	categoryService services.CategoryService
}

func NewCategoryHandler(log *logger.Logger, categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		log:             log.With("handler", "CategoryHandler"),
		categoryService: categoryService,
	}
}

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GET /api/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	if _, ok := requireOwner(c); !ok {
		return
	}
	rows, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err, "load_categories_failed")
		return
	}
	out := make([]categoryView, 0, len(rows))
	for _, cat := range rows {
		out = append(out, toCategoryView(cat))
	}
	response.RespondOK(c, gin.H{"categories": out})
}

// POST /api/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	actor, ok := requireOwner(c)
	if !ok {
		return
	}
	var req categoryRequest
	if !bindJSON(c, &req) {
		return
	}
	cat, err := h.categoryService.CreateCategory(c.Request.Context(), actor, req.Name, req.Description)
	if err != nil {
		response.RespondServiceError(c, err, "create_category_failed")
		return
	}
	response.RespondCreated(c, gin.H{"category": toCategoryView(cat)})
}

// POST /api/categories/:id/channels/:channelId
func (h *CategoryHandler) AddChannel(c *gin.Context) {
	actor, ok := requireOwner(c)
	if !ok {
		return
	}
	categoryID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	channelID, ok := uuidParam(c, "channelId")
	if !ok {
		return
	}
	if err := h.categoryService.AddChannel(c.Request.Context(), categoryID, channelID, actor); err != nil {
		response.RespondServiceError(c, err, "add_channel_failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /api/categories/:id/channels/:channelId
func (h *CategoryHandler) RemoveChannel(c *gin.Context) {
	actor, ok := requireOwner(c)
	if !ok {
		return
	}
	categoryID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	channelID, ok := uuidParam(c, "channelId")
	if !ok {
		return
	}
	removed, err := h.categoryService.RemoveChannel(c.Request.Context(), categoryID, channelID, actor)
	if err != nil {
		response.RespondServiceError(c, err, "remove_channel_failed")
		return
	}
	if !removed {
		response.RespondError(c, http.StatusNotFound, "not_found", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
