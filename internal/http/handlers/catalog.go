package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/videoscripter-backend/internal/http/response"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
	"github.com/yungbote/videoscripter-backend/internal/services"
)

type CatalogHandler struct {
	log           *logger.Logger
	searchService services.CatalogSearchService
}

func NewCatalogHandler(log *logger.Logger, searchService services.CatalogSearchService) *CatalogHandler {
	return &CatalogHandler{
		log:           log.With("handler", "CatalogHandler"),
		searchService: searchService,
	}
}

// GET /api/catalog/search?q=&maxResults=&projectId=
func (h *CatalogHandler) Search(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	maxResults := 0
	if raw := strings.TrimSpace(c.Query("maxResults")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_maxResults", fmt.Errorf("maxResults must be a number"))
			return
		}
		maxResults = n
	}
	var projectID *uuid.UUID
	if raw := strings.TrimSpace(c.Query("projectId")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_projectId", fmt.Errorf("invalid projectId %q", raw))
			return
		}
		projectID = &id
	}
	results, err := h.searchService.Search(c.Request.Context(), owner, c.Query("q"), maxResults, projectID)
	if err != nil {
		h.log.Warn("catalog search failed", "error", err)
		response.RespondServiceError(c, err, "catalog_search_failed")
		return
	}
	out := make([]searchResultView, 0, len(results))
	for _, r := range results {
		out = append(out, toSearchResultView(r))
	}
	response.RespondOK(c, gin.H{"results": out})
}
