package handler

import (
	"net/http"

	"planhub/internal/model"
	"planhub/internal/service"

	"github.com/gin-gonic/gin"
)

// MemberHandler handles team member HTTP requests
type MemberHandler struct {
	members *service.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(members *service.MemberService) *MemberHandler {
	return &MemberHandler{members: members}
}

// Create handles POST /members
func (h *MemberHandler) Create(c *gin.Context) {
	var input model.MemberCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	created, err := h.members.Create(c.Request.Context(), &input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Database error", err.Error()))
		return
	}
	c.JSON(http.StatusCreated, created)
}

// List handles GET /members
func (h *MemberHandler) List(c *gin.Context) {
	skip, limit := parseListQuery(c)
	members, err := h.members.List(c.Request.Context(), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Database error", err.Error()))
		return
	}
	c.JSON(http.StatusOK, members)
}

// Get handles GET /members/:id
func (h *MemberHandler) Get(c *gin.Context) {
	member, err := h.members.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Database error", err.Error()))
		return
	}
	if member == nil {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("Member not found", ""))
		return
	}
	c.JSON(http.StatusOK, member)
}

// Update handles PUT /members/:id
func (h *MemberHandler) Update(c *gin.Context) {
	var input model.MemberUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	updated, err := h.members.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Database error", err.Error()))
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("Member not found", ""))
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /members/:id
func (h *MemberHandler) Delete(c *gin.Context) {
	deleted, err := h.members.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Database error", err.Error()))
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("Member not found", ""))
		return
	}
	c.Status(http.StatusNoContent)
}
