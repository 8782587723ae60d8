package handler

import (
	"net/http"

	"planhub/internal/model"
	"planhub/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles project-related HTTP requests
type ProjectHandler struct {
	projects *service.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projects *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// Create handles POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var input model.ProjectCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	created, err := h.projects.Create(c.Request.Context(), &input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Database error", err.Error()))
		return
	}
	c.JSON(http.StatusCreated, created)
}

// List handles GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	skip, limit := parseListQuery(c)
	projects, err := h.projects.List(c.Request.Context(), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Database error", err.Error()))
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Get handles GET /projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.projects.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Database error", err.Error()))
		return
	}
	if project == nil {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("Project not found", ""))
		return
	}
	c.JSON(http.StatusOK, project)
}

// Update handles PUT /projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	var input model.ProjectUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	updated, err := h.projects.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Database error", err.Error()))
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("Project not found", ""))
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	deleted, err := h.projects.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Database error", err.Error()))
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("Project not found", ""))
		return
	}
	c.Status(http.StatusNoContent)
}
