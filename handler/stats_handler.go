package handler

import (
	"github.com/gin-gonic/gin"

	"taskmaster/usecase"
	"taskmaster/utils"
)

type StatsHandler struct {
	service *usecase.StatsService
}

func NewStatsHandler(service *usecase.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) GetDashboardStats(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	stats, err := h.service.Dashboard(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, stats)
}
