package handler

import (
	"errors"
	"net/http"

	"planhub/internal/model"
	"planhub/internal/service"
	"planhub/pkg/docstore"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	tasks *service.TaskService
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// Create handles POST /tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var input model.TaskCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	created, err := h.tasks.Create(c.Request.Context(), &input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Database error", err.Error()))
		return
	}
	c.JSON(http.StatusCreated, created)
}

// List handles GET /tasks
func (h *TaskHandler) List(c *gin.Context) {
	skip, limit := parseListQuery(c)
	tasks, err := h.tasks.List(c.Request.Context(), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Database error", err.Error()))
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// Get handles GET /tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	task, err := h.tasks.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Database error", err.Error()))
		return
	}
	if task == nil {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("Task not found", ""))
		return
	}
	c.JSON(http.StatusOK, task)
}

// Update handles PUT /tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	var input model.TaskUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	updated, err := h.tasks.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Database error", err.Error()))
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("Task not found", ""))
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	deleted, err := h.tasks.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Database error", err.Error()))
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("Task not found", ""))
		return
	}
	c.Status(http.StatusNoContent)
}

// TimeSummary handles GET /tasks/:id/time-summary
func (h *TaskHandler) TimeSummary(c *gin.Context) {
	summary, err := h.tasks.TimeSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, docstore.ErrInvalidID):
			c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid Task ID format", ""))
		case errors.Is(err, docstore.ErrNotFound):
			c.JSON(http.StatusNotFound, model.NewErrorResponse("Task not found", ""))
		default:
			c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Database error", err.Error()))
		}
		return
	}
	c.JSON(http.StatusOK, summary)
}
