package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"taskmaster/utils"
)

type HealthHandler struct {
	mongoClient *mongo.Client
	startedAt   time.Time
}

func NewHealthHandler(mongoClient *mongo.Client) *HealthHandler {
	return &HealthHandler{mongoClient: mongoClient, startedAt: time.Now()}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := "healthy"
	mongoStatus := "connected"
	if err := h.mongoClient.Ping(ctx, readpref.Primary()); err != nil {
		status = "degraded"
		mongoStatus = "unreachable"
	}

	body := gin.H{
		"status":         status,
		"uptime":         time.Since(h.startedAt).Round(time.Second).String(),
		"mongo":          mongoStatus,
		"cpu_percent":    utils.GetCPUUsage(),
		"memory_percent": utils.GetMemoryUsage(),
	}

	if status != "healthy" {
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}
	c.JSON(http.StatusOK, body)
}
