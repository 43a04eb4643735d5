package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/videoscripter-backend/internal/http/response"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
	"github.com/yungbote/videoscripter-backend/internal/services"
)

type ProjectHandler struct {
	log            *logger.Logger
	projectService services.ProjectService
}

func NewProjectHandler(log *logger.Logger, projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		log:            log.With("handler", "ProjectHandler"),
		projectService: projectService,
	}
}

type projectRequest struct {
	Name  string `json:"name"`
	Topic string `json:"topic"`
}

// GET /api/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	rows, err := h.projectService.ListProjects(c.Request.Context(), owner)
	if err != nil {
		h.log.Error("ListProjects failed", "error", err, "owner_id", owner)
		response.RespondServiceError(c, err, "load_projects_failed")
		return
	}
	out := make([]projectView, 0, len(rows))
	for _, p := range rows {
		out = append(out, toProjectView(p))
	}
	response.RespondOK(c, gin.H{"projects": out})
}

// GET /api/projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	projectID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	p, err := h.projectService.GetProject(c.Request.Context(), projectID, owner)
	if err != nil {
		response.RespondServiceError(c, err, "load_project_failed")
		return
	}
	response.RespondOK(c, gin.H{"project": toProjectView(p)})
}

// POST /api/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	var req projectRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.projectService.CreateProject(c.Request.Context(), owner, req.Name, req.Topic)
	if err != nil {
		h.log.Warn("CreateProject failed", "error", err, "owner_id", owner)
		response.RespondServiceError(c, err, "create_project_failed")
		return
	}
	response.RespondCreated(c, gin.H{"project": toProjectView(p)})
}

// PATCH /api/projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	projectID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req projectRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.projectService.UpdateProject(c.Request.Context(), projectID, owner, req.Name, req.Topic)
	if err != nil {
		response.RespondServiceError(c, err, "update_project_failed")
		return
	}
	response.RespondOK(c, gin.H{"project": toProjectView(p)})
}

// DELETE /api/projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	owner, ok := requireOwner(c)
	if !ok {
		return
	}
	projectID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	deleted, err := h.projectService.DeleteProject(c.Request.Context(), projectID, owner)
	if err != nil {
		h.log.Error("DeleteProject failed", "error", err, "project_id", projectID)
		response.RespondServiceError(c, err, "delete_project_failed")
		return
	}
	if !deleted {
		response.RespondError(c, http.StatusNotFound, "not_found", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
