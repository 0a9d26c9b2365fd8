package handler

import (
	"github.com/gin-gonic/gin"

	"taskmaster/usecase"
	"taskmaster/utils"
)

type ConflictsHandler struct {
	service *usecase.ConflictsService
}

func NewConflictsHandler(service *usecase.ConflictsService) *ConflictsHandler {
	return &ConflictsHandler{service: service}
}

// GetConflicts reports every scheduling collision across the user's tasks and
// timetable.
func (h *ConflictsHandler) GetConflicts(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	conflicts, err := h.service.FindAll(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{
		"conflicts": conflicts,
		"count":     len(conflicts),
	})
}
