package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/videoscripter-backend/internal/http/response"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
	"github.com/yungbote/videoscripter-backend/internal/services"
)

type ScriptHandler struct {
	log           *logger.Logger
	scriptService services.ScriptService
}

func NewScriptHandler(log *logger.Logger, scriptService services.ScriptService) *ScriptHandler {
	return &ScriptHandler{
		log:           log.With("handler", "ScriptHandler"),
		scriptService: scriptService,
	}
}

type scriptRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// GET /api/projects/:id/scripts
func (h *ScriptHandler) ListScripts(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	projectID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	rows, err := h.scriptService.ListScripts(c.Request.Context(), projectID, owner)
	if err != nil {
		response.RespondServiceError(c, err, "load_scripts_failed")
		return
	}
	out := make([]scriptView, 0, len(rows))
	for _, s := range rows {
		out = append(out, toScriptView(s))
	}
	response.RespondOK(c, gin.H{"scripts": out})
}

// POST /api/projects/:id/scripts
func (h *ScriptHandler) CreateScript(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	projectID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req scriptRequest
	if !bindJSON(c, &req) {
		return
	}
	s, err := h.scriptService.CreateScript(c.Request.Context(), projectID, owner, req.Title, req.Content)
	if err != nil {
		response.RespondServiceError(c, err, "create_script_failed")
		return
	}
	response.RespondCreated(c, gin.H{"script": toScriptView(s)})
}

// PATCH /api/scripts/:id
func (h *ScriptHandler) UpdateScript(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	scriptID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req scriptRequest
	if !bindJSON(c, &req) {
		return
	}
	s, err := h.scriptService.UpdateScript(c.Request.Context(), scriptID, owner, req.Title, req.Content)
	if err != nil {
		response.RespondServiceError(c, err, "update_script_failed")
		return
	}
	response.RespondOK(c, gin.H{"script": toScriptView(s)})
}

// DELETE /api/scripts/:id
func (h *ScriptHandler) DeleteScript(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	scriptID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	deleted, err := h.scriptService.DeleteScript(c.Request.Context(), scriptID, owner)
	if err != nil {
		h.log.Error("DeleteScript failed", "error", err, "script_id", scriptID)
		response.RespondServiceError(c, err, "delete_script_failed")
		return
	}
	if !deleted {
		response.RespondError(c, http.StatusNotFound, "not_found", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
