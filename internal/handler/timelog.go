package handler

import (
	"net/http"

	"planhub/internal/model"
	"planhub/internal/service"

	"github.com/gin-gonic/gin"
)

// TimeLogHandler handles time log HTTP requests
type TimeLogHandler struct {
	timeLogs *service.TimeLogService
}

// NewTimeLogHandler creates a new time log handler
func NewTimeLogHandler(timeLogs *service.TimeLogService) *TimeLogHandler {
	return &TimeLogHandler{timeLogs: timeLogs}
}

// Create handles POST /time_logs
func (h *TimeLogHandler) Create(c *gin.Context) {
	var input model.TimeLogCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	created, err := h.timeLogs.Create(c.Request.Context(), &input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Database error", err.Error()))
		return
	}
	c.JSON(http.StatusCreated, created)
}

// List handles GET /time_logs
func (h *TimeLogHandler) List(c *gin.Context) {
	skip, limit := parseListQuery(c)
	logs, err := h.timeLogs.List(c.Request.Context(), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Database error", err.Error()))
		return
	}
	c.JSON(http.StatusOK, logs)
}

// Get handles GET /time_logs/:id
func (h *TimeLogHandler) Get(c *gin.Context) {
	log, err := h.timeLogs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Database error", err.Error()))
		return
	}
	if log == nil {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("Time Log not found", ""))
		return
	}
	c.JSON(http.StatusOK, log)
}

// Update handles PUT /time_logs/:id
func (h *TimeLogHandler) Update(c *gin.Context) {
	var input model.TimeLogUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	updated, err := h.timeLogs.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Database error", err.Error()))
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("Time Log not found", ""))
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /time_logs/:id
func (h *TimeLogHandler) Delete(c *gin.Context) {
	deleted, err := h.timeLogs.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Database error", err.Error()))
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("Time Log not found", ""))
		return
	}
	c.Status(http.StatusNoContent)
}
