package handler

import (
	"errors"
	"net/http"

	"planhub/internal/model"
	"planhub/internal/service"
	"planhub/pkg/docstore"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler serves derived assignment views
type AssignmentHandler struct {
	assignments *service.AssignmentService
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignments *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments}
}

// Workload handles GET /assignment/workload/:member_id
func (h *AssignmentHandler) Workload(c *gin.Context) {
	summary, err := h.assignments.Workload(c.Request.Context(), c.Param("member_id"))
	if err != nil {
		switch {
		case errors.Is(err, docstore.ErrInvalidID):
			c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid Member ID format", ""))
		case errors.Is(err, docstore.ErrNotFound):
			c.JSON(http.StatusNotFound, model.NewErrorResponse("Member not found", ""))
		default:
			c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Database error", err.Error()))
		}
		return
	}
	c.JSON(http.StatusOK, summary)
}
