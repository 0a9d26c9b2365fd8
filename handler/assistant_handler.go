package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"taskmaster/dto"
	"taskmaster/usecase"
	"taskmaster/utils"
)

type AssistantHandler struct {
	service *usecase.AssistantService
}

func NewAssistantHandler(service *usecase.AssistantService) *AssistantHandler {
	return &AssistantHandler{service: service}
}

// ParseTasks turns a natural-language message into task drafts the client can
// review and submit through the normal task endpoints.
func (h *AssistantHandler) ParseTasks(c *gin.Context) {
	if _, exists := c.Get("user_id"); !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req dto.AssistantParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	drafts, err := h.service.ParseTasks(c.Request.Context(), req.Message, usecase.ParseOptions{
		History: req.History,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrAssistantDisabled) {
			utils.UnprocessableEntity(c, "Assistant is not configured")
			return
		}
		utils.BadGateway(c, err.Error())
		return
	}

	utils.Success(c, dto.AssistantParseResponse{Drafts: drafts})
}
